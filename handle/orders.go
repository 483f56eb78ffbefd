package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tryanzu/orders/board/orders"
	"github.com/tryanzu/orders/deps"
)

type OrdersAPI struct {
	Deps *deps.Deps `inject:""`
}

// List one page of orders matching the query filters, along with the price
// sum of every matching order.
func (di *OrdersAPI) List(c *gin.Context) {
	filters, err := orders.ParseFilters(c.Request.URL.Query())
	if err != nil {
		jsonErr(c, http.StatusBadRequest, err.Error())
		return
	}
	page, err := orders.ParsePage(c.Query("page"))
	if err != nil {
		jsonErr(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := orders.Query(di.Deps, filters, page)
	if errors.Is(err, orders.ErrInvalidFilter) {
		jsonErr(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Errorf("orders listing failed	query=%s err=%v", c.Request.URL.RawQuery, err)
		jsonErr(c, http.StatusInternalServerError, "could not list orders, try again later")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":      result.Orders,
		"pagination":  result.Page,
		"total_price": money(result.TotalPrice),
	})
}
