package orders

import (
	"github.com/tryanzu/orders/board/customers"
	"github.com/tryanzu/orders/core/store"
	"gopkg.in/mgo.v2/bson"
)

type testDeps struct {
	db *store.Memory
}

func (d testDeps) Store() store.Store {
	return d.db
}

func newOrder(uuid string, price float64, currency, billing, shipping string) Order {
	return Order{
		UUID:       uuid,
		CustomerID: bson.NewObjectId(),
		Customer: CustomerSnapshot{
			FirstName:       "Hass",
			LastName:        "Mohammed",
			Email:           "hass@example.com",
			BillingAddress:  customers.Address{Street: "1 Fake St", City: "London", County: billing},
			ShippingAddress: customers.Address{Street: "1 Fake St", City: "London", County: shipping},
		},
		ProductID: bson.NewObjectId(),
		Product:   ProductSnapshot{Title: "P-" + uuid, Price: price, Currency: currency},
		Created:   "2024-02-18T12:00:00Z",
	}
}

func seed(d testDeps, list ...Order) {
	for _, o := range list {
		if _, err := Upsert(d, o); err != nil {
			panic(err)
		}
	}
}
