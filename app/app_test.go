package app_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/replykit/reply"
	"github.com/replykit/reply/app"
	"github.com/replykit/reply/http/resp"
	"github.com/replykit/reply/http/router"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Act
		a, err := app.New()

		// Assert
		require.Nil(t, err)
		require.NotNil(t, a.Responder)
		require.NotNil(t, a.Router)
		require.NotNil(t, a.EmitLogger())
		require.NotNil(t, a.EmitSessionStore())
		require.Equal(t, reply.Development, a.EmitEnv())
	})

	t.Run("Bad-Env", func(t *testing.T) {
		// Act
		_, err := app.New(app.WithEnv("MOON"))

		// Assert
		require.ErrorIs(t, err, reply.ErrBadConfig)
	})

	t.Run("Bad-URL", func(t *testing.T) {
		// Act
		_, err := app.New(app.WithBaseURL("not a url"))

		// Assert
		require.ErrorIs(t, err, reply.ErrBadConfig)
	})

	t.Run("With-Router", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder()
		r := router.New(reply.Testing, d)
		r.Handle(router.Route{
			Path:   "/ping",
			Method: http.MethodGet,
			Handler: func(rx *http.Request) resp.Response {
				return resp.Plain("pong")
			},
		})

		// Act
		a, err := app.New(app.WithEnv(reply.Testing), app.WithResponder(d), app.WithRouter(r))

		// Assert
		require.Nil(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "https://example.com/ping", nil)
		a.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "pong", w.Body.String())
	})
}

func TestMaintModeHandler(t *testing.T) {
	// Arrange
	d := resp.NewResponder()
	r := router.New(reply.Testing, d)
	r.CatchAll(app.MaintModeHandler(""))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "https://example.com/anything", nil)

	// Act
	r.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "600", w.Header().Get("Retry-After"))
	require.Equal(t, "Down for maintenance, back soon.", w.Body.String())
}
