package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fittrack/tracker/internal/domain"
	"fittrack/tracker/internal/service"
)

const (
	// RequestIDHeader is the HTTP header carrying the request correlation ID.
	RequestIDHeader = "X-Request-ID"

	// ContextRequestIDKey is the gin context key the ID is stored under.
	ContextRequestIDKey = "requestID"
)

// RequestID ensures each request has a correlation id: reuse the incoming
// X-Request-ID if the caller sent one, otherwise generate a UUID. The id is
// echoed back on the response so clients can quote it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogger writes one structured log line per request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetString(ContextRequestIDKey)).
			Msg("request")
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// handleServiceError maps service-layer errors onto HTTP responses. Anything
// outside the known taxonomy is a store or infrastructure failure: log the
// detail server-side, answer with a generic message only.
func handleServiceError(c *gin.Context, logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidWorkoutID):
		abortWithError(c, http.StatusBadRequest, "invalid workout id")
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "workout not found")
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, "validation failed: "+err.Error())
	default:
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString(ContextRequestIDKey)).
			Msg("store operation failed")
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}
