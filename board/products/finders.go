package products

import (
	"errors"

	"github.com/tryanzu/orders/core/store"
)

// ErrNotFound product.
var ErrNotFound = errors.New("product has not been found by given criteria")

func byKey(title, url string) store.Predicate {
	return store.Where("title", store.Eq, title).And("url", store.Eq, url)
}

// FindKey looks a product up by its (title, url) natural key.
func FindKey(d deps, title, url string) (product Product, err error) {
	err = d.Store().FindOne(Collection, byKey(title, url), &product)
	if err == store.ErrNotFound {
		return product, ErrNotFound
	}
	return
}
