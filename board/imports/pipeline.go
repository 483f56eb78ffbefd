package imports

import (
	"fmt"

	"github.com/tryanzu/orders/board/customers"
	"github.com/tryanzu/orders/board/orders"
	"github.com/tryanzu/orders/board/products"
	"gopkg.in/mgo.v2/bson"
)

// Summary of an import run.
type Summary struct {
	RunID     string
	Records   int
	Customers int
	Products  int
	Orders    int
}

// Validate checks the whole batch before anything is written.
func Validate(records []Record) error {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// Run imports records in order: product, then customer, then the order with
// snapshots of the stored product and customer. Each upsert commits on its
// own, a failure leaves earlier records persisted.
func Run(d deps, records []Record) (summary Summary, err error) {
	summary.RunID = bson.NewObjectId().Hex()
	if err = Validate(records); err != nil {
		log.Errorf("import rejected	run=%s err=%v", summary.RunID, err)
		return
	}

	log.Infof("import started	run=%s records=%d", summary.RunID, len(records))
	seen := map[string]map[bson.ObjectId]bool{
		customers.Collection: {},
		products.Collection:  {},
		orders.Collection:    {},
	}
	for i, r := range records {
		product, err := products.Upsert(d, r.product())
		if err != nil {
			return summary, fmt.Errorf("record %d: product: %w", i, err)
		}
		customer, err := customers.Upsert(d, r.customer())
		if err != nil {
			return summary, fmt.Errorf("record %d: customer: %w", i, err)
		}
		order, err := orders.Upsert(d, orders.Order{
			UUID:       r.UUID,
			CustomerID: customer.ID,
			Customer:   orders.SnapshotCustomer(customer),
			ProductID:  product.ID,
			Product:    orders.SnapshotProduct(product),
			Created:    r.Created,
		})
		if err != nil {
			return summary, fmt.Errorf("record %d: order: %w", i, err)
		}

		summary.Records++
		seen[products.Collection][product.ID] = true
		seen[customers.Collection][customer.ID] = true
		seen[orders.Collection][order.ID] = true
	}

	summary.Customers = len(seen[customers.Collection])
	summary.Products = len(seen[products.Collection])
	summary.Orders = len(seen[orders.Collection])
	log.Infof("import finished	run=%s records=%d customers=%d products=%d orders=%d",
		summary.RunID, summary.Records, summary.Customers, summary.Products, summary.Orders)
	return
}
