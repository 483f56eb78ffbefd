package customers

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

// Collection where customers are stored.
const Collection = "customers"

// NaturalKey fields, unique per customer.
var NaturalKey = []string{"email"}

// Address of a customer, used for both billing and shipping.
type Address struct {
	Street   string `bson:"street" json:"street"`
	City     string `bson:"city" json:"city"`
	County   string `bson:"county" json:"county"`
	Postcode string `bson:"postcode,omitempty" json:"postcode,omitempty"`
}

// Customer is keyed by email, exact and case sensitive.
type Customer struct {
	ID              bson.ObjectId `bson:"_id,omitempty" json:"id"`
	FirstName       string        `bson:"first_name" json:"first_name"`
	LastName        string        `bson:"last_name" json:"last_name"`
	Email           string        `bson:"email" json:"email"`
	Phone           string        `bson:"phone" json:"phone"`
	BillingAddress  Address       `bson:"billing_address" json:"billing_address"`
	ShippingAddress Address       `bson:"shipping_address" json:"shipping_address"`
	Updated         time.Time     `bson:"updated_at" json:"updated_at"`
}
