package dashboard

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("dashboard")
