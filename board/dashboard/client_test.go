package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClientOrders(t *testing.T) {
	Convey("Given a read API", t, func() {
		var received url.Values
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = r.URL.Query()
			if r.URL.Query().Get("currency") == "fail" {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"status":"error","message":"boom"}`))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"orders":[],"pagination":{"total":15,"per_page":10,"current_page":1,"last_page":2},"total_price":150.5}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL + "/api/orders")

		Convey("a listing decodes pagination and the price sum", func() {
			listing, err := client.Orders(context.Background(), url.Values{"currency": {"gbp"}, "price_min": {"100"}})
			So(err, ShouldBeNil)
			So(listing.Pagination.Total, ShouldEqual, 15)
			So(listing.Pagination.LastPage, ShouldEqual, 2)
			So(listing.TotalPrice, ShouldEqual, 150.5)
			So(received.Get("currency"), ShouldEqual, "gbp")
			So(received.Get("price_min"), ShouldEqual, "100")
		})

		Convey("a non 2xx response is an error", func() {
			_, err := client.Orders(context.Background(), url.Values{"currency": {"fail"}})
			So(err, ShouldNotBeNil)
		})

		Convey("an unreachable API is an error", func() {
			down := NewClient("http://127.0.0.1:1/api/orders")
			_, err := down.Orders(context.Background(), url.Values{})
			So(err, ShouldNotBeNil)
		})
	})
}
