package app

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/replykit/reply"
	"github.com/replykit/reply/http/middleware"
	"github.com/replykit/reply/http/resp"
	"github.com/replykit/reply/http/router"
	"github.com/replykit/reply/http/session"
	"github.com/replykit/reply/logger"
)

const (
	// Base URL defaults
	BaseURLEnvVar  = "BASE_URL"
	defaultBaseURL = "http://localhost:3000"

	// App metadata
	AppTitleEnvVar  = "APP_TITLE"
	ContactUsEnvVar = "CONTACT_US_EMAIL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Web server defaults
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Session defaults
	SessionAuthKeyEnvVar    = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar = "SESSION_ENCRYPTION_KEY"
)

// defaultOpts fills in each component of an *App not already configured
// by the Options passed to New.
//
// The order matters: later components are built out of earlier ones.
func defaultOpts() []Option {
	return []Option{
		defaultEnv(),
		defaultBaseURLOpt(),
		defaultLogger(),
		defaultSessionStore(),
		defaultResponder(),
		defaultRouter(),
		defaultServer(),
	}
}

func defaultEnv() Option {
	return func(a *App) error {
		if a.env != "" {
			return nil
		}

		a.env = reply.EnvVarOrEnv(environmentEnvVar, reply.Development)
		return nil
	}
}

func defaultBaseURLOpt() Option {
	return func(a *App) error {
		if a.url != nil {
			return nil
		}

		a.url = reply.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL)
		return nil
	}
}

func defaultLogger() Option {
	return func(a *App) error {
		if a.l != nil {
			return nil
		}

		args := []logger.LoggerOptFn{logger.WithEnv(a.env.String())}
		if ll := logger.NewLogLevel(os.Getenv(logLevelEnvVar)); ll != logger.LogLevelUnk {
			args = append(args, logger.WithLevel(ll))
		}

		a.l = logger.New(args...)
		return nil
	}
}

// defaultSessionStore builds a cookie-backed session store from the
// SESSION_AUTH_KEY and SESSION_ENCRYPTION_KEY env vars.
//
// Absent those keys, outside production a stubbed store stands in;
// in production the missing configuration is an error.
func defaultSessionStore() Option {
	return func(a *App) error {
		if a.sessions != nil {
			return nil
		}

		authKey := os.Getenv(SessionAuthKeyEnvVar)
		if authKey == "" {
			if a.env.IsProduction() {
				return fmt.Errorf("%s must be set in %s", SessionAuthKeyEnvVar, a.env)
			}

			a.sessions = session.NewStub(false)
			return nil
		}

		cfg := session.Config{
			AuthKey:     authKey,
			EncryptKey:  os.Getenv(SessionEncryptKeyEnvVar),
			Env:         a.env,
			SessionName: reply.EnvVarOrString(AppTitleEnvVar, "reply-app"),
		}

		store, err := session.NewStoreService(
			cfg,
			session.WithCookie(),
			session.WithMaxAge(3600*24*7),
		)
		if err != nil {
			return err
		}

		a.sessions = store
		return nil
	}
}

func defaultResponder() Option {
	return func(a *App) error {
		if a.Responder != nil {
			return nil
		}

		args := []resp.ResponderOptFn{
			resp.WithLogger(a.l),
			resp.WithRootUrl(a.url.String()),
		}
		if contact := os.Getenv(ContactUsEnvVar); contact != "" {
			args = append(args, resp.WithContactErrMsg(fmt.Sprintf(session.ContactUsErr, contact)))
		}

		a.Responder = resp.NewResponder(args...)
		return nil
	}
}

// defaultRouter wires the every-request middleware stack:
// panic reporting, request IDs, IP promotion, request logging,
// and session injection.
func defaultRouter() Option {
	return func(a *App) error {
		if a.Router != nil {
			return nil
		}

		r := router.New(a.env, a.Responder)
		r.OnEveryRequest(
			middleware.ReportPanic(a.env),
			middleware.RequestID(),
			middleware.InjectIPAddress(),
			middleware.LogRequest(a.l),
			middleware.InjectSession(a.sessions),
		)

		a.Router = r
		return nil
	}
}

func defaultServer() Option {
	return func(a *App) error {
		if a.srv != nil {
			return nil
		}

		port := reply.EnvVarOrString(portEnvVar, DefaultPort)
		if port[0] != ':' {
			port = ":" + port
		}

		a.srv = &http.Server{
			Addr:         port,
			IdleTimeout:  reply.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
			ReadTimeout:  reply.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
			WriteTimeout: reply.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
		}

		return nil
	}
}
