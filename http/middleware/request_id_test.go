package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/replykit/reply"
	"github.com/replykit/reply/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	actual := middleware.RequestID()

	// Assert
	actual(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		val, ok := rx.Context().Value(reply.RequestIDKey).(string)
		require.True(t, ok)
		require.NotZero(t, val)
	})).ServeHTTP(w, r)
}
