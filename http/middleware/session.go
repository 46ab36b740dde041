package middleware

import (
	"context"
	"net/http"

	"github.com/replykit/reply"
	"github.com/replykit/reply/http/session"
)

// InjectSession stores the session associated with the *http.Request
// in *http.Request.Context under [reply.SessionKey],
// where variants like resp.WithFlash expect to find it.
//
// If store is nil, NoopAdapter returns and this middleware does nothing.
func InjectSession(store session.SessionStorer) Adapter {
	if store == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := store.GetSession(r)
			if err != nil {
				h.ServeHTTP(w, r)

				return
			}

			ctx := context.WithValue(r.Context(), reply.SessionKey, s)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
