package resp

import (
	"fmt"
	"net/http"

	"github.com/replykit/reply/http/session"
	"github.com/replykit/reply/logger"
)

// withFlash stores a one-shot message in the request's session
// before the wrapped variant writes.
type withFlash struct {
	flash session.Flash
	inner Response
}

// WithFlash responds with the wrapped variant after setting the flash
// in the session stashed in the request's context.
//
// Dispatch fails with ErrNotFound when no middleware put a session there.
func WithFlash(flash session.Flash, inner Response) Response {
	return withFlash{flash: flash, inner: inner}
}

// FlashRedirect responds 302 to target, carrying flash for the next request.
func FlashRedirect(target string, flash session.Flash) Response {
	return WithFlash(flash, Redirect(target))
}

func (re withFlash) respond(d *Responder, w http.ResponseWriter, r *http.Request) error {
	s, err := d.Session(r.Context())
	if err != nil {
		return err
	}

	if err := s.SetFlash(w, r, re.flash); err != nil {
		return fmt.Errorf("cannot set flash: %w", err)
	}

	return re.inner.respond(d, w, r)
}

// genericErr is the catch-all failure variant.
type genericErr struct {
	err error
}

// GenericErr logs the passed in error, sets a generic error flash in the
// session - using either the string set by WithContactErrMsg or
// session.DefaultErrMsg - and redirects to the Responder's root URL.
//
// When no session or root URL is available, the client receives a 500 instead.
func GenericErr(err error) Response { return genericErr{err: err} }

func (re genericErr) respond(d *Responder, w http.ResponseWriter, r *http.Request) error {
	if re.err != nil {
		d.logger.Error(re.err.Error(), &logger.LogContext{Error: re.err, Request: r})
	}

	msg := session.DefaultErrMsg
	if d.contactErrMsg != "" {
		msg = d.contactErrMsg
	}

	flash := session.Flash{Class: session.FlashError, Msg: msg}
	if err := WithFlash(flash, Redirect("")).respond(d, w, r); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}

	return nil
}
