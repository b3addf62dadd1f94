package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/question-bank/internal/adapters/http/dto"
	"github.com/jsamuelsen/question-bank/internal/platform/telemetry"
)

// RespondWithErrorCode writes the error envelope for code, with the trace id
// when the request is traced.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	resp := dto.NewErrorResponse(code, message).WithTraceID(telemetry.TraceID(c.Request.Context()))
	c.JSON(dto.HTTPStatusFromCode(code), resp)
}

func notFound(c *gin.Context) {
	RespondWithErrorCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
}
