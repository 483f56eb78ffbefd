package orders

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/tryanzu/orders/core/common"
	"github.com/tryanzu/orders/core/store"
)

// PerPage is the fixed listing page size.
const PerPage = 10

// Snapshot fields the query engine filters and sums on.
const (
	PriceField          = "product_snapshot.price"
	CurrencyField       = "product_snapshot.currency"
	BillingCountyField  = "customer_snapshot.billing_address.county"
	ShippingCountyField = "customer_snapshot.shipping_address.county"
)

// ErrInvalidFilter is wrapped by every filter parsing error.
var ErrInvalidFilter = errors.New("invalid filter value")

// Filters holds the optional listing constraints. Nil bounds and empty
// strings mean no constraint at all.
type Filters struct {
	PriceMin       *float64
	PriceMax       *float64
	Currency       string
	BillingCounty  string
	ShippingCounty string
}

// ParseFilters reads filters from request query values. Empty values count
// as absent, a non numeric price bound is rejected.
func ParseFilters(values url.Values) (f Filters, err error) {
	if f.PriceMin, err = parseBound(values, "price_min"); err != nil {
		return
	}
	if f.PriceMax, err = parseBound(values, "price_max"); err != nil {
		return
	}
	f.Currency = strings.TrimSpace(values.Get("currency"))
	f.BillingCounty = strings.TrimSpace(values.Get("billing_county"))
	f.ShippingCounty = strings.TrimSpace(values.Get("shipping_county"))
	return
}

func parseBound(values url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidFilter, name, raw)
	}
	return &n, nil
}

// ParsePage reads the page number, 1 when absent.
func ParsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("%w: page must be a positive integer, got %q", ErrInvalidFilter, raw)
	}
	return page, nil
}

// Predicate compiles the filters into the single predicate shared by the
// listing and the price sum. One clause per supplied parameter.
func (f Filters) Predicate() store.Predicate {
	where := store.Predicate{}
	if f.PriceMin != nil {
		where = where.And(PriceField, store.Gte, *f.PriceMin)
	}
	if f.PriceMax != nil {
		where = where.And(PriceField, store.Lte, *f.PriceMax)
	}
	if f.Currency != "" {
		where = where.And(CurrencyField, store.Eq, common.Currency(f.Currency))
	}
	if f.BillingCounty != "" {
		where = where.And(BillingCountyField, store.Eq, common.County(f.BillingCounty))
	}
	if f.ShippingCounty != "" {
		where = where.And(ShippingCountyField, store.Eq, common.County(f.ShippingCounty))
	}
	return where
}

// Result of a listing: one page of orders plus the price sum of every match.
type Result struct {
	Orders     Orders
	Page       store.Page
	TotalPrice float64
}

// Query pages through the orders matching f and sums their snapshot prices
// at full precision. An empty match set is a valid result with a zero sum.
func Query(d deps, f Filters, page int) (result Result, err error) {
	if page < 1 {
		page = 1
	}
	where := f.Predicate()
	result.Orders = Orders{}
	result.Page, err = d.Store().Find(Collection, where, page, PerPage, &result.Orders)
	if err != nil {
		log.Errorf("orders find failed	where=%v err=%v", where.M(), err)
		return
	}
	if result.Orders == nil {
		result.Orders = Orders{}
	}
	result.TotalPrice, err = d.Store().AggregateSum(Collection, where, PriceField)
	if err != nil {
		log.Errorf("orders sum failed	where=%v err=%v", where.M(), err)
	}
	return
}
