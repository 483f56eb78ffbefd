package products

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tryanzu/orders/core/store"
)

type testDeps struct {
	db *store.Memory
}

func (d testDeps) Store() store.Store {
	return d.db
}

func sample() Product {
	return Product{
		LegacyID:    "12345",
		Title:       "Tillo Product",
		Description: "A test product description",
		Currency:    "gbp",
		Price:       99.99,
		URL:         "https://example.com/product/12345",
	}
}

func TestUpsert(t *testing.T) {
	Convey("Given an empty products collection", t, func() {
		d := testDeps{store.NewMemory()}

		Convey("a new (title, url) pair creates a product", func() {
			created, err := Upsert(d, sample())
			So(err, ShouldBeNil)
			So(created.ID.Valid(), ShouldBeTrue)
			So(created.Currency, ShouldEqual, "GBP")
			So(created.LegacyID, ShouldEqual, "12345")

			Convey("the same pair refreshes price and description", func() {
				p := sample()
				p.Price = 50
				p.Description = "Updated"

				updated, err := Upsert(d, p)
				So(err, ShouldBeNil)
				So(updated.ID, ShouldEqual, created.ID)
				So(updated.Price, ShouldEqual, 50)
				So(updated.Description, ShouldEqual, "Updated")
				So(d.db.Len(Collection), ShouldEqual, 1)
			})

			Convey("the upstream id is not part of the key", func() {
				p := sample()
				p.LegacyID = "999"

				updated, err := Upsert(d, p)
				So(err, ShouldBeNil)
				So(updated.ID, ShouldEqual, created.ID)
				So(updated.LegacyID, ShouldEqual, "999")
				So(d.db.Len(Collection), ShouldEqual, 1)
			})

			Convey("a different url is a different product", func() {
				p := sample()
				p.URL = "https://example.com/product/other"

				other, err := Upsert(d, p)
				So(err, ShouldBeNil)
				So(other.ID, ShouldNotEqual, created.ID)
				So(d.db.Len(Collection), ShouldEqual, 2)

				found, err := FindKey(d, p.Title, p.URL)
				So(err, ShouldBeNil)
				So(found.ID, ShouldEqual, other.ID)
			})
		})

		Convey("a product without title is rejected", func() {
			p := sample()
			p.Title = ""
			_, err := Upsert(d, p)
			So(err, ShouldEqual, ErrMissingKey)
		})

		Convey("an unknown key is not found", func() {
			_, err := FindKey(d, "nope", "nope")
			So(err, ShouldEqual, ErrNotFound)
		})
	})
}
