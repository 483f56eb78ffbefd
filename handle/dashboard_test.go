package handle

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tryanzu/orders/board/dashboard"
)

type downReader struct{}

func (downReader) Orders(context.Context, url.Values) (dashboard.Listing, error) {
	return dashboard.Listing{}, errors.New("read api is down")
}

func TestDashboardGet(t *testing.T) {
	Convey("Given the read API serving a few orders", t, func() {
		d := memoryDeps(
			order("A", 0, "GBP", "Essex"),
			order("B", 120, "gbp", "essex"),
			order("C", 80.5, "GBP", "Kent"),
			order("D", 300, "EUR", "Essex"),
		)
		srv := httptest.NewServer(ordersRouter(d))
		defer srv.Close()

		api := &DashboardAPI{Deps: d, Reader: dashboard.NewClient(srv.URL + "/api/orders")}
		router := gin.New()
		router.GET("/dashboard", api.Get)

		Convey("the page shows the six numbers", func() {
			w := serve(router, "/dashboard")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldStartWith, "text/html")

			body := w.Body.String()
			So(body, ShouldContainSubstring, `id="free-count">1<`)
			So(body, ShouldContainSubstring, `id="gbp-count">3<`)
			So(body, ShouldContainSubstring, `id="essex-count">3<`)
			So(body, ShouldContainSubstring, `id="gbp-over-100-sum">£120.00<`)
			So(body, ShouldContainSubstring, `id="gbp-sum">£200.50<`)
			So(body, ShouldContainSubstring, `id="gbp-essex-sum">£120.00<`)
		})
	})

	Convey("Given the read API is down", t, func() {
		api := &DashboardAPI{Deps: memoryDeps(), Reader: downReader{}}
		router := gin.New()
		router.GET("/dashboard", api.Get)

		Convey("the page still renders with unavailable numbers", func() {
			w := serve(router, "/dashboard")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `id="gbp-count">N/A<`)
			So(w.Body.String(), ShouldContainSubstring, `id="gbp-sum">£N/A<`)
		})
	})
}

