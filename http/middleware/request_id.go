package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/replykit/reply"
)

// RequestID tags each *http.Request with a unique ID,
// stored in the request context under [reply.RequestIDKey].
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), reply.RequestIDKey, uuid.NewString())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
