package logger_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/replykit/reply/logger"
	"github.com/stretchr/testify/require"
)

func TestLogContextMarshalText(t *testing.T) {
	t.Run("Zero-Value", func(t *testing.T) {
		b, err := logger.LogContext{}.MarshalText()
		require.NoError(t, err)
		require.Equal(t, "{}", string(b))
	})

	t.Run("Error", func(t *testing.T) {
		lc := logger.LogContext{Error: errors.New("boom")}
		b, err := lc.MarshalText()
		require.NoError(t, err)
		require.Contains(t, string(b), `"error":"boom"`)
	})

	t.Run("Request", func(t *testing.T) {
		r := httptest.NewRequest("POST", "https://example.com/test", strings.NewReader(`{"key":"val"}`))
		r.Header.Set("Content-Type", "application/json")

		lc := logger.LogContext{Request: r}
		b, err := lc.MarshalText()
		require.NoError(t, err)
		require.Contains(t, string(b), `"method":"POST"`)
		require.Contains(t, string(b), `"key":"val"`)

		// the body remains readable after marshaling
		buf := make([]byte, 13)
		_, err = r.Body.Read(buf)
		require.NoError(t, err)
		require.Equal(t, `{"key":"val"}`, string(buf))
	})

	t.Run("Data", func(t *testing.T) {
		lc := logger.LogContext{Data: map[string]any{"n": 1}}
		b, err := lc.MarshalText()
		require.NoError(t, err)
		require.Contains(t, string(b), `"n":1`)
	})
}
