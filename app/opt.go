package app

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/replykit/reply"
	"github.com/replykit/reply/http/resp"
	"github.com/replykit/reply/http/router"
	"github.com/replykit/reply/http/session"
	"github.com/replykit/reply/logger"
)

// An Option configures the *App under construction.
// Options run before defaults, so whatever an Option sets is kept.
type Option func(a *App) error

// WithBaseURL sets the URL the application runs on.
func WithBaseURL(raw string) Option {
	return func(a *App) error {
		u, err := url.ParseRequestURI(raw)
		if err != nil {
			return fmt.Errorf("cannot use base URL %q: %s", raw, err)
		}

		a.url = u
		return nil
	}
}

// WithEnv sets the Environment the application operates in.
func WithEnv(env reply.Environment) Option {
	return func(a *App) error {
		if err := env.Valid(); err != nil {
			return fmt.Errorf("cannot use env %q: %s", env, err)
		}

		a.env = env
		return nil
	}
}

// WithLogger sets the logger.Logger all components share.
func WithLogger(l logger.Logger) Option {
	return func(a *App) error {
		a.l = l
		return nil
	}
}

// WithResponder sets the *resp.Responder handlers render through.
func WithResponder(d *resp.Responder) Option {
	return func(a *App) error {
		a.Responder = d
		return nil
	}
}

// WithRouter sets the *router.Router the web server serves.
func WithRouter(r *router.Router) Option {
	return func(a *App) error {
		a.Router = r
		return nil
	}
}

// WithServer sets the *http.Server hosting the application.
func WithServer(srv *http.Server) Option {
	return func(a *App) error {
		a.srv = srv
		return nil
	}
}

// WithSessionStore sets the session.SessionStorer backing sessions.
func WithSessionStore(store session.SessionStorer) Option {
	return func(a *App) error {
		a.sessions = store
		return nil
	}
}
