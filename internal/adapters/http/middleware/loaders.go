package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/question-bank/internal/app/loader"
)

// Loaders attaches a fresh batching loader set to each request, so loads
// are coalesced and cached for that request only.
func Loaders(cl *loader.ContextLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := loader.WithContext(c.Request.Context(), cl.ForRequest())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
