package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"zipabout/internal/redis"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
)

// responseWriter wraps gin.ResponseWriter to capture the response.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response when a mutating request
// repeats an Idempotency-Key, so a retried booking does not fail with
// "user already renting".
func IdempotencyMiddleware(cache redis.ResponseCache, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only apply to mutating methods.
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch && c.Request.Method != http.MethodDelete {
			c.Next()
			return
		}

		header := c.GetHeader(idempotencyHeader)
		if header == "" {
			c.Next()
			return
		}
		key := idempotencyKey(c.Request, header)

		ctx := c.Request.Context()

		cached, err := cache.Get(ctx, key)
		if err != nil {
			// Cache error - proceed without idempotency.
			logger.Warn("idempotency cache unavailable", slog.String("error", err.Error()))
			c.Next()
			return
		}

		if cached != nil {
			for k, v := range cached.Headers {
				for _, val := range v {
					c.Header(k, val)
				}
			}
			c.Data(cached.StatusCode, "application/json", cached.Body)
			c.Abort()
			return
		}

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = w

		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 500 {
			response := redis.CachedResponse{
				StatusCode: c.Writer.Status(),
				Body:       w.body.Bytes(),
				Headers:    extractResponseHeaders(c),
			}
			if err := cache.Set(ctx, key, &response, idempotencyTTL); err != nil {
				logger.Warn("failed to cache idempotent response", slog.String("error", err.Error()))
			}
		}
	}
}

// idempotencyKey scopes a client key to the method and path it was sent with,
// so reusing a key on another endpoint does not replay the wrong response.
func idempotencyKey(r *http.Request, header string) string {
	return r.Method + " " + r.URL.Path + " " + header
}

// extractResponseHeaders extracts headers to cache.
func extractResponseHeaders(c *gin.Context) http.Header {
	headers := make(http.Header)
	// Only cache Content-Type header.
	if ct := c.Writer.Header().Get("Content-Type"); ct != "" {
		headers.Set("Content-Type", ct)
	}
	return headers
}
