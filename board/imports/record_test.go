package imports

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func decode(raw map[string]interface{}) Record {
	data, err := json.Marshal(raw)
	if err != nil {
		panic(err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		panic(err)
	}
	return r
}

func TestRecordValidate(t *testing.T) {
	Convey("Validating feed records", t, func() {
		Convey("a complete record passes", func() {
			So(decode(orderData("f47ac10b-58cc-4372-a567-0e02b2c3d479", "99.99")).Validate(), ShouldBeNil)
		})

		Convey("a numeric price and id are accepted", func() {
			raw := orderData("U1", "")
			raw["price"] = 12.5
			raw["id"] = 12345
			r := decode(raw)
			So(r.Validate(), ShouldBeNil)
			So(r.product().Price, ShouldEqual, 12.5)
			So(r.product().LegacyID, ShouldEqual, "12345")
		})

		for _, key := range []string{"uuid", "title", "url", "price", "currency", "created_at", "customer"} {
			Convey("a record without "+key+" is rejected", func() {
				raw := orderData("U1", "10")
				delete(raw, key)
				err := decode(raw).Validate()
				So(errors.Is(err, ErrInvalidRecord), ShouldBeTrue)
			})
		}

		for _, key := range []string{"email", "name", "billing_address", "shipping_address"} {
			Convey("a customer without "+key+" is rejected", func() {
				raw := orderData("U1", "10")
				delete(raw["customer"].(map[string]interface{}), key)
				err := decode(raw).Validate()
				So(errors.Is(err, ErrInvalidRecord), ShouldBeTrue)
			})
		}

		Convey("a malformed email is rejected", func() {
			raw := orderData("U1", "10")
			raw["customer"].(map[string]interface{})["email"] = "not-an-email"
			So(errors.Is(decode(raw).Validate(), ErrInvalidRecord), ShouldBeTrue)
		})

		Convey("description and phone are optional", func() {
			raw := orderData("U1", "10")
			delete(raw, "description")
			delete(raw["customer"].(map[string]interface{}), "phone")
			So(decode(raw).Validate(), ShouldBeNil)
		})
	})
}

func TestText(t *testing.T) {
	var tests = []struct{ in, out string }{
		{`"abc"`, "abc"},
		{`123`, "123"},
		{`null`, ""},
	}

	for _, test := range tests {
		var v Text
		if err := json.Unmarshal([]byte(test.in), &v); err != nil || string(v) != test.out {
			t.Errorf("%s: %q (%v) != %q", test.in, v, err, test.out)
		}
	}
}
