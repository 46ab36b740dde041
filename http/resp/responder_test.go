package resp_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/replykit/reply"
	"github.com/replykit/reply/http/resp"
	"github.com/replykit/reply/http/session"
	"github.com/replykit/reply/logger"
	"github.com/stretchr/testify/require"
)

var _ logger.Logger = (*testLogger)(nil)

// testLogger captures messages for asserting against.
type testLogger struct {
	b *bytes.Buffer
}

func newLogger() *testLogger { return &testLogger{b: new(bytes.Buffer)} }

func (l *testLogger) Debug(msg string, _ *logger.LogContext) { l.b.WriteString(msg) }
func (l *testLogger) Error(msg string, _ *logger.LogContext) { l.b.WriteString(msg) }
func (l *testLogger) Fatal(msg string, _ *logger.LogContext) { l.b.WriteString(msg) }
func (l *testLogger) Info(msg string, _ *logger.LogContext)  { l.b.WriteString(msg) }
func (l *testLogger) Warn(msg string, _ *logger.LogContext)  { l.b.WriteString(msg) }
func (l *testLogger) LogLevel() logger.LogLevel              { return logger.LogLevelDebug }

// newSessionRequest stashes a stubbed session in a request's context,
// the way middleware.InjectSession does for a live application.
func newSessionRequest(t *testing.T, target string) (*http.Request, session.Session) {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, target, nil)
	s, err := session.NewStub(false).GetSession(r)
	require.Nil(t, err)

	ctx := context.WithValue(r.Context(), reply.SessionKey, s)
	return r.Clone(ctx), s
}

func TestResponderRespond(t *testing.T) {
	t.Run("Cancelled", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		ctx, cancel := context.WithCancel(r.Context())
		r = r.Clone(ctx)

		w := httptest.NewRecorder()
		w.WriteHeader(http.StatusPaymentRequired)

		cancel()

		d := resp.NewResponder()

		// Act
		err := d.Respond(w, r, resp.Plain("too late"))

		// Assert
		require.ErrorIs(t, err, resp.ErrDone)
		require.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Nil-Response", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		w := httptest.NewRecorder()
		l := newLogger()
		d := resp.NewResponder(resp.WithLogger(l))

		err := d.Respond(w, r, nil)

		require.ErrorIs(t, err, resp.ErrMissingData)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, l.b.String(), resp.ErrMissingData.Error())
	})

	t.Run("Variant-Failure-Logged", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		w := httptest.NewRecorder()
		l := newLogger()
		d := resp.NewResponder(resp.WithLogger(l))

		// a channel cannot be marshaled
		err := d.Respond(w, r, resp.JSON(make(chan int)))

		require.NotNil(t, err)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, l.b.String(), "cannot encode payload")
	})
}

func TestResponderHandler(t *testing.T) {
	// one signature, three response kinds
	handler := func(r *http.Request) resp.Response {
		switch strings.TrimPrefix(r.URL.Path, "/response/") {
		case "0":
			return resp.NoContent()
		case "1":
			return resp.Redirect("/admin")
		default:
			return resp.Plain("Hello world")
		}
	}

	tcs := []struct {
		id           string
		expectedCode int
		assert       func(*testing.T, *httptest.ResponseRecorder)
	}{
		{"0", http.StatusNoContent, func(t *testing.T, w *httptest.ResponseRecorder) {
			require.Zero(t, w.Body.Len())
		}},
		{"1", http.StatusFound, func(t *testing.T, w *httptest.ResponseRecorder) {
			require.Equal(t, "/admin", w.Header().Get("Location"))
		}},
		{"2", http.StatusOK, func(t *testing.T, w *httptest.ResponseRecorder) {
			require.Equal(t, plainMediaType, w.Header().Get("Content-Type"))
			require.Equal(t, "Hello world", w.Body.String())
		}},
	}

	d := resp.NewResponder()
	h := d.Handler(handler)

	for _, tc := range tcs {
		t.Run(tc.id, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/response/"+tc.id, nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			require.Equal(t, tc.expectedCode, w.Code)
			tc.assert(t, w)
		})
	}
}

func TestResponderErr(t *testing.T) {
	tcs := []struct {
		name     string
		expected error
	}{
		{"Nil", nil},
		{"ErrDone", resp.ErrDone},
		{"Custom", fmt.Errorf("my favorite error")},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
			w := httptest.NewRecorder()
			l := newLogger()
			d := resp.NewResponder(resp.WithLogger(l))

			// Act
			d.Err(w, r, tc.expected)

			// Assert
			require.Equal(t, http.StatusInternalServerError, w.Code)
			if tc.expected != nil {
				require.Equal(t, tc.expected.Error(), l.b.String())
			}
		})
	}
}

func TestResponderSession(t *testing.T) {
	d := resp.NewResponder()

	t.Run("Not-Set", func(t *testing.T) {
		_, err := d.Session(context.Background())
		require.ErrorIs(t, err, resp.ErrNotFound)
	})

	t.Run("Wrong-Type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), reply.SessionKey, "not a session")
		_, err := d.Session(ctx)
		require.ErrorIs(t, err, resp.ErrInvalid)
	})

	t.Run("Set", func(t *testing.T) {
		r, s := newSessionRequest(t, "https://example.com")
		actual, err := d.Session(r.Context())
		require.Nil(t, err)
		require.Equal(t, s, actual)
	})
}
