package products

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

// Collection where products are stored.
const Collection = "products"

// NaturalKey fields, unique per product.
var NaturalKey = []string{"title", "url"}

// Product is keyed by the (title, url) pair. LegacyID keeps the upstream
// feed id for reference only and never identifies a product.
type Product struct {
	ID          bson.ObjectId `bson:"_id,omitempty" json:"id"`
	LegacyID    string        `bson:"legacy_id,omitempty" json:"legacy_id,omitempty"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Currency    string        `bson:"currency" json:"currency"`
	Price       float64       `bson:"price" json:"price"`
	URL         string        `bson:"url" json:"url"`
	Updated     time.Time     `bson:"updated_at" json:"updated_at"`
}

