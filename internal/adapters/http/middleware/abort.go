package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/question-bank/internal/adapters/http/dto"
	"github.com/jsamuelsen/question-bank/internal/platform/telemetry"
)

// abortWithCode stops the chain with the error envelope for code. If a
// handler already started writing, the response is left as is.
func abortWithCode(c *gin.Context, code, message string) {
	if c.Writer.Written() {
		c.Abort()
		return
	}

	resp := dto.NewErrorResponse(code, message).WithTraceID(telemetry.TraceID(c.Request.Context()))
	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), resp)
}
