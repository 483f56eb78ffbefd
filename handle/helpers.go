package handle

import (
	"math"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("handle")

func jsonErr(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}

// money rounds to cents, for display only.
func money(amount float64) float64 {
	return math.Round(amount*100) / 100
}
