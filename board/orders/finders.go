package orders

import (
	"errors"

	"github.com/tryanzu/orders/core/store"
)

// ErrNotFound order.
var ErrNotFound = errors.New("order has not been found by given criteria")

// FindUUID looks an order up by its feed UUID.
func FindUUID(d deps, uuid string) (order Order, err error) {
	err = d.Store().FindOne(Collection, store.Where("uuid", store.Eq, uuid), &order)
	if err == store.ErrNotFound {
		return order, ErrNotFound
	}
	return
}
