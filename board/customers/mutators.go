package customers

import (
	"errors"
	"time"

	"github.com/tryanzu/orders/core/common"
	"github.com/tryanzu/orders/core/store"
)

// ErrMissingEmail is returned when upserting a customer without natural key.
var ErrMissingEmail = errors.New("customer email is required")

// Upsert creates the customer on first sighting of its email, otherwise every
// attribute of the stored record is overwritten in place.
func Upsert(d deps, c Customer) (customer Customer, err error) {
	if c.Email == "" {
		return customer, ErrMissingEmail
	}
	c.ID = ""
	c.BillingAddress.County = common.County(c.BillingAddress.County)
	c.ShippingAddress.County = common.County(c.ShippingAddress.County)
	c.Updated = time.Now()

	err = d.Store().Upsert(Collection, store.Where("email", store.Eq, c.Email), c, &customer)
	if err != nil {
		log.Errorf("customer upsert failed	email=%s err=%v", c.Email, err)
		return
	}
	return
}
