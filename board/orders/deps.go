package orders

import (
	"github.com/op/go-logging"
	"github.com/tryanzu/orders/core/store"
)

type deps interface {
	Store() store.Store
}

var log = logging.MustGetLogger("orders")
