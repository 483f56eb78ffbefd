package orders

import (
	"errors"
	"time"

	"github.com/tryanzu/orders/core/common"
	"github.com/tryanzu/orders/core/store"
)

var (
	// ErrMissingUUID order.
	ErrMissingUUID = errors.New("order uuid is required")
	// ErrMissingRefs is returned when customer or product ids are not set.
	ErrMissingRefs = errors.New("order customer and product references are required")
)

// Upsert creates the order on first sighting of its UUID. On later sightings
// references and snapshots are replaced as a whole, never merged.
func Upsert(d deps, o Order) (order Order, err error) {
	if o.UUID == "" {
		return order, ErrMissingUUID
	}
	if !o.CustomerID.Valid() || !o.ProductID.Valid() {
		return order, ErrMissingRefs
	}
	o.ID = ""
	o.Updated = time.Now()
	o.Product.Currency = common.Currency(o.Product.Currency)
	o.Customer.BillingAddress.County = common.County(o.Customer.BillingAddress.County)
	o.Customer.ShippingAddress.County = common.County(o.Customer.ShippingAddress.County)

	err = d.Store().Upsert(Collection, store.Where("uuid", store.Eq, o.UUID), o, &order)
	if err != nil {
		log.Errorf("order upsert failed	uuid=%s err=%v", o.UUID, err)
	}
	return
}
