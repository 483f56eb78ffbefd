package products

import (
	"errors"
	"time"

	"github.com/tryanzu/orders/core/common"
)

// ErrMissingKey is returned when title or url are empty.
var ErrMissingKey = errors.New("product title and url are required")

// Upsert creates the product on first sighting of its (title, url) pair and
// refreshes description, price and currency on later sightings.
func Upsert(d deps, p Product) (product Product, err error) {
	if p.Title == "" || p.URL == "" {
		return product, ErrMissingKey
	}
	p.ID = ""
	p.Currency = common.Currency(p.Currency)
	p.Updated = time.Now()

	err = d.Store().Upsert(Collection, byKey(p.Title, p.URL), p, &product)
	if err != nil {
		log.Errorf("product upsert failed	title=%s url=%s err=%v", p.Title, p.URL, err)
	}
	return
}
