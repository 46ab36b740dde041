package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/replykit/reply"
)

// ReportPanic recovers and reports panics to Sentry.
//
// In reply.Development and reply.Testing, NoopAdapter returns
// so panics surface during local work.
func ReportPanic(env reply.Environment) Adapter {
	if env.IsDevelopment() || env.IsTesting() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(h http.Handler) http.Handler {
		return sh.Handle(h)
	}
}
