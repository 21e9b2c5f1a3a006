package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// PublicFormRateLimit builds an in-memory per-IP rate limit for the public
// submission endpoints. The formatted rate follows the limiter convention,
// e.g. "10-M" for ten requests per minute.
func PublicFormRateLimit(formatted string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		// A bad literal is a programmer error caught at startup.
		panic(err)
	}
	store := memory.NewStore()
	return limitergin.NewMiddleware(limiter.New(store, rate))
}
