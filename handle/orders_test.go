package handle

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tryanzu/orders/board/orders"
	"github.com/tryanzu/orders/deps"
)

type listing struct {
	Status     string                   `json:"status"`
	Message    string                   `json:"message"`
	Orders     []map[string]interface{} `json:"orders"`
	Pagination struct {
		Total       int `json:"total"`
		PerPage     int `json:"per_page"`
		CurrentPage int `json:"current_page"`
		LastPage    int `json:"last_page"`
	} `json:"pagination"`
	TotalPrice float64 `json:"total_price"`
}

func ordersRouter(d *deps.Deps) *gin.Engine {
	api := &OrdersAPI{Deps: d}
	router := gin.New()
	router.GET("/orders", api.List)
	router.GET("/api/orders", api.List)
	return router
}

func get(router *gin.Engine, target string) (int, listing) {
	w := serve(router, target)
	var body listing
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		panic(fmt.Sprintf("%s: %s", err, w.Body.String()))
	}
	return w.Code, body
}

func TestOrdersList(t *testing.T) {
	Convey("Given fifteen GBP orders and two in EUR", t, func() {
		list := []orders.Order{}
		for i := 0; i < 15; i++ {
			list = append(list, order(fmt.Sprintf("G%02d", i), 10, "GBP", "Essex"))
		}
		list = append(list, order("E1", 0, "EUR", "Kent"), order("E2", 250.5, "eur", "kent"))
		router := ordersRouter(memoryDeps(list...))

		Convey("no filters pages through everything and sums every match", func() {
			code, body := get(router, "/orders")
			So(code, ShouldEqual, http.StatusOK)
			So(len(body.Orders), ShouldEqual, 10)
			So(body.Pagination.Total, ShouldEqual, 17)
			So(body.Pagination.PerPage, ShouldEqual, 10)
			So(body.Pagination.CurrentPage, ShouldEqual, 1)
			So(body.Pagination.LastPage, ShouldEqual, 2)
			So(body.TotalPrice, ShouldEqual, 400.5)
		})

		Convey("orders expose their snapshots as stored", func() {
			_, body := get(router, "/orders?currency=EUR&price_max=0")
			So(len(body.Orders), ShouldEqual, 1)
			So(body.Orders[0]["uuid"], ShouldEqual, "E1")
			So(body.Orders[0]["product_snapshot"], ShouldNotBeNil)
			So(body.Orders[0]["customer_snapshot"], ShouldNotBeNil)
			So(body.Orders[0]["customer_id"], ShouldNotBeEmpty)
		})

		Convey("currency filters are case insensitive", func() {
			code, body := get(router, "/api/orders?currency=gbp")
			So(code, ShouldEqual, http.StatusOK)
			So(body.Pagination.Total, ShouldEqual, 15)
			So(body.TotalPrice, ShouldEqual, 150)
		})

		Convey("the second page holds the remainder", func() {
			_, body := get(router, "/orders?currency=GBP&page=2")
			So(len(body.Orders), ShouldEqual, 5)
			So(body.Pagination.CurrentPage, ShouldEqual, 2)
			So(body.TotalPrice, ShouldEqual, 150)
		})

		Convey("a free order is matched by a zero price range", func() {
			_, body := get(router, "/orders?price_min=0&price_max=0")
			So(body.Pagination.Total, ShouldEqual, 1)
			So(body.TotalPrice, ShouldEqual, 0)
		})

		Convey("county filters match lower case source values", func() {
			_, body := get(router, "/orders?shipping_county=KENT")
			So(body.Pagination.Total, ShouldEqual, 2)
			_, body = get(router, "/orders?billing_county=Essex")
			So(body.Pagination.Total, ShouldEqual, 17)
		})

		Convey("an empty match is a valid response", func() {
			code, body := get(router, "/orders?currency=USD")
			So(code, ShouldEqual, http.StatusOK)
			So(body.Orders, ShouldNotBeNil)
			So(len(body.Orders), ShouldEqual, 0)
			So(body.Pagination.Total, ShouldEqual, 0)
			So(body.Pagination.LastPage, ShouldEqual, 1)
			So(body.TotalPrice, ShouldEqual, 0)
		})

		Convey("invalid filters are client errors", func() {
			for _, target := range []string{
				"/orders?price_min=abc",
				"/orders?price_max=NaN",
				"/orders?page=0",
				"/orders?page=two",
			} {
				code, body := get(router, target)
				So(code, ShouldEqual, http.StatusBadRequest)
				So(body.Status, ShouldEqual, "error")
				So(body.Message, ShouldNotBeEmpty)
			}
		})
	})

	Convey("A failing store is a server error, not an empty result", t, func() {
		router := ordersRouter(&deps.Deps{StoreProvider: brokenStore{}})
		code, body := get(router, "/orders?currency=GBP")
		So(code, ShouldEqual, http.StatusInternalServerError)
		So(body.Status, ShouldEqual, "error")
		So(body.Orders, ShouldBeNil)
	})
}

func TestMoney(t *testing.T) {
	var tests = []struct{ in, out float64 }{
		{99.99, 99.99},
		{150, 150},
		{0.1 + 0.2, 0.3},
		{33.333, 33.33},
		{0, 0},
	}

	for _, test := range tests {
		if out := money(test.in); out != test.out {
			t.Errorf("%v: %v != %v", test.in, out, test.out)
		}
	}
}
