package imports

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goware/emailx"
	"github.com/satori/go.uuid"
	"github.com/tryanzu/orders/board/customers"
	"github.com/tryanzu/orders/board/products"
	"gopkg.in/go-playground/validator.v8"
)

// ErrInvalidRecord is wrapped by every record validation error.
var ErrInvalidRecord = errors.New("invalid order record")

var validate = validator.New(&validator.Config{TagName: "validate", FieldNameTag: "json"})

// Record is one order of the feed, with its customer and product embedded.
type Record struct {
	ID          Text        `json:"id"`
	UUID        string      `json:"uuid" validate:"required"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Price       json.Number `json:"price" validate:"required"`
	Currency    string      `json:"currency" validate:"required"`
	URL         string      `json:"url" validate:"required"`
	Created     string      `json:"created_at" validate:"required"`
	Customer    *Customer   `json:"customer" validate:"required"`
}

type Customer struct {
	Name            Name               `json:"name"`
	Email           string             `json:"email" validate:"required"`
	Phone           Text               `json:"phone"`
	BillingAddress  *customers.Address `json:"billing_address" validate:"required"`
	ShippingAddress *customers.Address `json:"shipping_address" validate:"required"`
}

type Name struct {
	First string `json:"first" validate:"required"`
	Last  string `json:"last" validate:"required"`
}

// Text accepts both JSON strings and numbers, feeds are not consistent
// about ids and phone numbers.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Text(n)
	return nil
}

// Validate checks every required field of the record.
func (r Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		if list, ok := err.(validator.ValidationErrors); ok {
			missing := []string{}
			for _, field := range list {
				name := field.NameNamespace
				if i := strings.Index(name, "."); i >= 0 {
					name = name[i+1:]
				}
				missing = append(missing, name)
			}
			sort.Strings(missing)
			return fmt.Errorf("%w: missing %s", ErrInvalidRecord, strings.Join(missing, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if err := emailx.ValidateFast(r.Customer.Email); err != nil {
		return fmt.Errorf("%w: customer email %q: %v", ErrInvalidRecord, r.Customer.Email, err)
	}
	if _, err := r.Price.Float64(); err != nil {
		return fmt.Errorf("%w: price %q is not a number", ErrInvalidRecord, r.Price)
	}
	if _, err := uuid.FromString(r.UUID); err != nil {
		log.Warningf("order uuid is not RFC 4122	uuid=%s", r.UUID)
	}
	return nil
}

func (r Record) product() products.Product {
	price, _ := r.Price.Float64()
	return products.Product{
		LegacyID:    string(r.ID),
		Title:       r.Title,
		Description: r.Description,
		Currency:    r.Currency,
		Price:       price,
		URL:         r.URL,
	}
}

func (r Record) customer() customers.Customer {
	return customers.Customer{
		FirstName:       r.Customer.Name.First,
		LastName:        r.Customer.Name.Last,
		Email:           r.Customer.Email,
		Phone:           string(r.Customer.Phone),
		BillingAddress:  *r.Customer.BillingAddress,
		ShippingAddress: *r.Customer.ShippingAddress,
	}
}
