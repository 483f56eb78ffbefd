package orders

import (
	"time"

	"github.com/tryanzu/orders/board/customers"
	"github.com/tryanzu/orders/board/products"
	"gopkg.in/mgo.v2/bson"
)

// Collection where orders are stored.
const Collection = "orders"

// NaturalKey fields, unique per order.
var NaturalKey = []string{"uuid"}

// Order is keyed by the feed supplied UUID. Customer and Product are
// point-in-time copies taken on the order's last import; they are never
// refreshed from the referenced records and every query reads them instead.
type Order struct {
	ID         bson.ObjectId    `bson:"_id,omitempty" json:"id"`
	UUID       string           `bson:"uuid" json:"uuid"`
	CustomerID bson.ObjectId    `bson:"customer_id" json:"customer_id"`
	Customer   CustomerSnapshot `bson:"customer_snapshot" json:"customer_snapshot"`
	ProductID  bson.ObjectId    `bson:"product_id" json:"product_id"`
	Product    ProductSnapshot  `bson:"product_snapshot" json:"product_snapshot"`
	Created    string           `bson:"created_at" json:"created_at"`
	Updated    time.Time        `bson:"updated_at" json:"updated_at"`
}

type CustomerSnapshot struct {
	FirstName       string            `bson:"first_name" json:"first_name"`
	LastName        string            `bson:"last_name" json:"last_name"`
	Email           string            `bson:"email" json:"email"`
	BillingAddress  customers.Address `bson:"billing_address" json:"billing_address"`
	ShippingAddress customers.Address `bson:"shipping_address" json:"shipping_address"`
}

type ProductSnapshot struct {
	Title    string  `bson:"title" json:"title"`
	Price    float64 `bson:"price" json:"price"`
	Currency string  `bson:"currency" json:"currency"`
}

// SnapshotCustomer copies the customer fields an order keeps.
func SnapshotCustomer(c customers.Customer) CustomerSnapshot {
	return CustomerSnapshot{
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Email:           c.Email,
		BillingAddress:  c.BillingAddress,
		ShippingAddress: c.ShippingAddress,
	}
}

// SnapshotProduct copies the product fields an order keeps.
func SnapshotProduct(p products.Product) ProductSnapshot {
	return ProductSnapshot{
		Title:    p.Title,
		Price:    p.Price,
		Currency: p.Currency,
	}
}

// Orders list.
type Orders []Order

func (list Orders) IDs() []bson.ObjectId {
	m := make([]bson.ObjectId, len(list))
	for k, item := range list {
		m[k] = item.ID
	}
	return m
}

// Sum of the product snapshot prices in the list.
func (list Orders) Sum() float64 {
	total := 0.0
	for _, item := range list {
		total += item.Product.Price
	}
	return total
}
