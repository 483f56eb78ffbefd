package deps

import (
	"github.com/tryanzu/orders/board/customers"
	"github.com/tryanzu/orders/board/orders"
	"github.com/tryanzu/orders/board/products"
	"github.com/tryanzu/orders/core/store"
	"github.com/tryanzu/orders/mongo"
)

// Indexes keep the natural keys unique.
var Indexes = []mongo.Index{
	{Collection: customers.Collection, Key: customers.NaturalKey},
	{Collection: products.Collection, Key: products.NaturalKey},
	{Collection: orders.Collection, Key: orders.NaturalKey},
}

func IgniteMongoDB(container Deps) (Deps, error) {
	uri := container.Config().UString("database.uri")
	name := container.Config().UString("database.name", "orders")

	service, err := mongo.Dial(uri, name)
	if err != nil {
		log.Errorf("mongodb dial failed	database=%s err=%v", name, err)
		return container, err
	}
	if err := service.EnsureIndexes(Indexes...); err != nil {
		service.Close()
		return container, err
	}

	container.DatabaseProvider = service
	container.StoreProvider = service
	return container, nil
}

// IgniteMemory backs the container with a process local store.
func IgniteMemory(container Deps) (Deps, error) {
	container.StoreProvider = store.NewMemory()
	return container, nil
}
