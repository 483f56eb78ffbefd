package handle

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/raven-go"
	"github.com/gin-gonic/gin"
	"github.com/tryanzu/orders/deps"
)

type MiddlewareAPI struct {
	Deps         *deps.Deps    `inject:""`
	ErrorService *raven.Client `inject:""`
}

func (di *MiddlewareAPI) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// ErrorTracking recovers handler panics, reports them to sentry and answers
// with a JSON server error.
func (di *MiddlewareAPI) ErrorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		tags := map[string]string{
			"config_file": deps.EnvFile(),
			"route":       c.FullPath(),
		}

		defer func() {
			var packet *raven.Packet

			switch rval := recover().(type) {
			case nil:
				return
			case error:
				packet = raven.NewPacket(rval.Error(), raven.NewException(rval, raven.NewStacktrace(2, 3, nil)))
			default:
				rvalStr := fmt.Sprint(rval)
				packet = raven.NewPacket(rvalStr, raven.NewException(errors.New(rvalStr), raven.NewStacktrace(2, 3, nil)))
			}

			log.Errorf("request panicked	path=%s err=%s", c.Request.URL.Path, packet.Message)
			if di.ErrorService != nil {
				di.ErrorService.Capture(packet, tags)
			}
			jsonErr(c, http.StatusInternalServerError, "internal server error")
		}()

		c.Next()
	}
}

// Tracing wraps every request in a new relic transaction when an agent is
// configured.
func (di *MiddlewareAPI) Tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		if di.Deps == nil || di.Deps.Tracer() == nil {
			c.Next()
			return
		}
		txn := di.Deps.Tracer().StartTransaction(c.Request.Method+" "+c.FullPath(), c.Writer, c.Request)
		defer txn.End()
		c.Next()
	}
}
