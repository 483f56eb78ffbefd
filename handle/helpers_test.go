package handle

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/tryanzu/orders/board/customers"
	"github.com/tryanzu/orders/board/orders"
	"github.com/tryanzu/orders/core/store"
	"github.com/tryanzu/orders/deps"
	"gopkg.in/mgo.v2/bson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type brokenStore struct{}

var errBroken = errors.New("connection refused")

func (brokenStore) FindOne(string, store.Predicate, interface{}) error { return errBroken }
func (brokenStore) Upsert(string, store.Predicate, interface{}, interface{}) error {
	return errBroken
}
func (brokenStore) Find(string, store.Predicate, int, int, interface{}) (store.Page, error) {
	return store.Page{}, errBroken
}
func (brokenStore) AggregateSum(string, store.Predicate, string) (float64, error) {
	return 0, errBroken
}

func order(uuid string, price float64, currency, shipping string) orders.Order {
	return orders.Order{
		UUID:       uuid,
		CustomerID: bson.NewObjectId(),
		Customer: orders.CustomerSnapshot{
			FirstName:       "Hass",
			LastName:        "Mohammed",
			Email:           "hass@example.com",
			BillingAddress:  customers.Address{Street: "1 Fake St", City: "London", County: "essex"},
			ShippingAddress: customers.Address{Street: "1 Fake St", City: "London", County: shipping},
		},
		ProductID: bson.NewObjectId(),
		Product:   orders.ProductSnapshot{Title: "P-" + uuid, Price: price, Currency: currency},
		Created:   "2024-02-18T12:00:00Z",
	}
}

func memoryDeps(list ...orders.Order) *deps.Deps {
	d := &deps.Deps{StoreProvider: store.NewMemory()}
	for _, o := range list {
		if _, err := orders.Upsert(d, o); err != nil {
			panic(err)
		}
	}
	return d
}

func serve(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}
