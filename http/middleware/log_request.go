package middleware

import (
	"net/http"
	"strings"

	"github.com/replykit/reply"
	"github.com/replykit/reply/logger"
)

// LogRequest logs the request's method, requested URL, and originating IP address
// using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following query params:
// - password
//
// If logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			q := r.URL.Query()
			if val := q.Get("password"); val != "" {
				q.Set("password", "xxxxxxx")
			}

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri}
			if ip, ok := r.Context().Value(reply.IpAddrKey).(string); ok {
				strs = append([]string{ip}, strs...)
			}

			ls.Info(strings.Join(strs, " "), nil)
			h.ServeHTTP(w, r)
		})
	}
}
