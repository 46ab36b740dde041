package resp

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/replykit/reply"
	"github.com/replykit/reply/http/session"
	"github.com/replykit/reply/http/template"
	"github.com/replykit/reply/logger"
)

const responderFrames = 1

// A Responder maintains reusable pieces for dispatching [Response] variants.
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
// Meaning, one needs only application-wide configuration of how HTTP responses should look.
// Our suggestion does not exclude creating diverse Responders
// for non-overlapping segments of an application.
type Responder struct {
	logger logger.Logger

	// Initialized template parser
	parser template.Parser

	// Pool of *bytes.Buffer to prerender response bodies into
	pool *sync.Pool

	// Error message to use for "contact us" style client-side error messages,
	// i.e., those set in a session.Flash by GenericErr
	contactErrMsg string

	// Root URL the responder is listening on;
	// the fallback destination for redirects without a target
	rootUrl *url.URL
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	// ranging over opts may or may not overwrite defaults
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	if d.parser != nil {
		d.parser.AddFn(template.Nonce())
		if d.rootUrl != nil {
			d.parser.AddFn(template.RootUrl(d.rootUrl))
		}
	}

	return d
}

// Respond consumes res, delegating writing the outbound response to whichever
// variant res is. Respond adds no behavior of its own: errors the variant's
// underlying machinery throws - template rendering, encoding, session saving -
// come back unchanged.
//
// When a variant fails before anything was written, the client receives a 500
// through Err.
func (d *Responder) Respond(w http.ResponseWriter, r *http.Request, res Response) error {
	select {
	case <-r.Context().Done():
		return fmt.Errorf("%w", ErrDone)
	default:
	}

	if res == nil {
		err := fmt.Errorf("%w: nil Response", ErrMissingData)
		d.Err(w, r, err)
		return err
	}

	if err := res.respond(d, w, r); err != nil {
		d.Err(w, r, err)
		return err
	}

	return nil
}

// A HandlerFunc returns one of the [Response] variants
// for a [*Responder] to dispatch.
type HandlerFunc func(r *http.Request) Response

// Handler adapts fn into an [http.Handler] dispatching through d.
func (d *Responder) Handler(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = d.Respond(w, r, fn(r))
	})
}

// Err wraps http.Error(), logging the error causing the failure state.
//
// Use in exceptional circumstances when no Response variant can be written.
func (d *Responder) Err(w http.ResponseWriter, r *http.Request, err error) {
	var msg string
	if err != nil {
		msg = err.Error()
		d.logger.Error(msg, &logger.LogContext{Error: err, Request: r})
	}

	http.Error(w, msg, http.StatusInternalServerError)
}

// Session retrieves the session set in the context as a session.Session.
//
// If no middleware stashed a session under [reply.SessionKey], ErrNotFound returns.
func (d *Responder) Session(ctx context.Context) (session.Session, error) {
	val := ctx.Value(reply.SessionKey)
	if val == nil {
		return session.Session{}, fmt.Errorf("%w: no session found with %q", ErrNotFound, reply.SessionKey)
	}

	s, ok := val.(session.Session)
	if !ok {
		return session.Session{}, fmt.Errorf("%w: is not session.Session, is %T", ErrInvalid, val)
	}

	return s, nil
}

// buffer fetches a reset *bytes.Buffer from the Responder's pool.
func (d *Responder) buffer() *bytes.Buffer {
	b := d.pool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

func (d *Responder) release(b *bytes.Buffer) { d.pool.Put(b) }
