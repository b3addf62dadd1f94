// Package middleware provides the gin middleware of the HTTP adapter.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/question-bank/internal/platform/logging"
)

const (
	// HeaderRequestID identifies a single request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID identifies a business transaction that may span
	// several requests and services.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key of the request id.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key of the correlation id.
	ContextKeyCorrelationID = "correlation_id"

	// maxIDLength bounds ids accepted from clients.
	maxIDLength = 128
)

type idConfig struct {
	header string
	key    string
	withID func(ctx context.Context, id string) context.Context
}

// RequestID takes the request id from X-Request-ID or generates a UUID. The
// id is echoed in the response and added to the request logger.
func RequestID() gin.HandlerFunc {
	return idMiddleware(idConfig{
		header: HeaderRequestID,
		key:    ContextKeyRequestID,
		withID: logging.WithRequestID,
	})
}

// CorrelationID is RequestID for X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(idConfig{
		header: HeaderCorrelationID,
		key:    ContextKeyCorrelationID,
		withID: logging.WithCorrelationID,
	})
}

// GetRequestID returns the request id, or "" outside RequestID.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation id, or "" outside CorrelationID.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

func idMiddleware(cfg idConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.header)
		if !validID(id) {
			id = uuid.NewString()
		}

		c.Set(cfg.key, id)
		c.Header(cfg.header, id)
		c.Request = c.Request.WithContext(cfg.withID(c.Request.Context(), id))

		c.Next()
	}
}

// validID accepts short printable ASCII ids; anything else is replaced so it
// cannot pollute logs or response headers.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}

	return true
}
