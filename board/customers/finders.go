package customers

import (
	"errors"

	"github.com/tryanzu/orders/core/store"
)

// ErrNotFound customer.
var ErrNotFound = errors.New("customer has not been found by given criteria")

// FindEmail looks a customer up by its natural key.
func FindEmail(d deps, email string) (customer Customer, err error) {
	err = d.Store().FindOne(Collection, store.Where("email", store.Eq, email), &customer)
	if err == store.ErrNotFound {
		return customer, ErrNotFound
	}
	return
}
