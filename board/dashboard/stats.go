package dashboard

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable replaces any number whose listing call failed.
const NotAvailable = "N/A"

// Board holds the six dashboard numbers, already formatted.
type Board struct {
	FreeCount     string `json:"free_count"`
	GBPCount      string `json:"gbp_count"`
	EssexCount    string `json:"essex_count"`
	GBPOver100Sum string `json:"gbp_over_100_sum"`
	GBPSum        string `json:"gbp_sum"`
	GBPEssexSum   string `json:"gbp_essex_sum"`
}

type stat struct {
	query url.Values
	sum   bool
	out   func(*Board) *string
}

var stats = []stat{
	{url.Values{"price_min": {"0"}, "price_max": {"0"}}, false, func(b *Board) *string { return &b.FreeCount }},
	{url.Values{"currency": {"gbp"}}, false, func(b *Board) *string { return &b.GBPCount }},
	{url.Values{"shipping_county": {"essex"}}, false, func(b *Board) *string { return &b.EssexCount }},
	{url.Values{"currency": {"gbp"}, "price_min": {"100"}}, true, func(b *Board) *string { return &b.GBPOver100Sum }},
	{url.Values{"currency": {"gbp"}}, true, func(b *Board) *string { return &b.GBPSum }},
	{url.Values{"currency": {"gbp"}, "shipping_county": {"essex"}}, true, func(b *Board) *string { return &b.GBPEssexSum }},
}

var printer = message.NewPrinter(language.BritishEnglish)

// Collect runs the six listings concurrently. A failed listing only
// degrades its own number to NotAvailable.
func Collect(ctx context.Context, r Reader) (board Board) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, s := range stats {
		wg.Add(1)
		go func(s stat) {
			defer wg.Done()

			value := NotAvailable
			listing, err := r.Orders(ctx, s.query)
			switch {
			case err != nil:
				log.Errorf("dashboard listing failed	query=%s err=%v", s.query.Encode(), err)
			case s.sum:
				value = printer.Sprintf("%.2f", listing.TotalPrice)
			default:
				value = printer.Sprintf("%d", listing.Pagination.Total)
			}

			mu.Lock()
			*s.out(&board) = value
			mu.Unlock()
		}(s)
	}
	wg.Wait()
	return
}

// Complete tells whether every number was collected.
func (b Board) Complete() bool {
	for _, v := range []string{b.FreeCount, b.GBPCount, b.EssexCount, b.GBPOver100Sum, b.GBPSum, b.GBPEssexSum} {
		if v == NotAvailable {
			return false
		}
	}
	return true
}
