package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/replykit/reply/http/middleware"
	"github.com/stretchr/testify/require"
)

func NoopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

func teapotHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestChain(t *testing.T) {
	// Arrange
	var calls []string
	tag := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	middleware.Chain(teapotHandler(), tag("first"), tag("second")).ServeHTTP(w, r)

	// Assert
	require.Equal(t, []string{"first", "second"}, calls)
	require.Equal(t, http.StatusTeapot, w.Code)
}
