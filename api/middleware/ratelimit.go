package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"files-manager/common"
)

// GlobalAPIRateLimit bounds the whole API to rps requests per second with a
// burst of twice that. Requests over the limit get 429 instead of queueing.
func GlobalAPIRateLimit(rps int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), rps*2)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			common.RespErrorStr(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
