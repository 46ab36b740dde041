package app

import (
	"net/http"
	"strconv"
	"time"

	"github.com/replykit/reply/http/resp"
)

const defaultRetryAfter = 600 * time.Second

// MaintModeHandler answers every request with a 503
// and a Retry-After header, for use with (*router.Router).CatchAll
// when the application is undergoing maintenance.
func MaintModeHandler(msg string) resp.HandlerFunc {
	if msg == "" {
		msg = "Down for maintenance, back soon."
	}

	retry := strconv.Itoa(int(defaultRetryAfter.Seconds()))
	return func(r *http.Request) resp.Response {
		return resp.WithHeader(
			"Retry-After",
			retry,
			resp.WithStatus(http.StatusServiceUnavailable, resp.Plain(msg)),
		)
	}
}
