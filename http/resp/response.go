package resp

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// A Response is one variant of the closed set of response kinds a
// [HandlerFunc] can return. Exactly one variant is active per value;
// constructing a variant decides which dispatch path runs.
//
// The set is closed on purpose: a variant is its own type, so the
// payload a variant carries always matches its kind.
type Response interface {
	// respond writes the variant to w, pulling any shared
	// configuration it needs off the Responder consuming it.
	respond(d *Responder, w http.ResponseWriter, r *http.Request) error
}

// raw is a fixed content type over a preencoded body.
type raw struct {
	contentType string
	body        []byte
}

func (re raw) respond(_ *Responder, w http.ResponseWriter, _ *http.Request) error {
	if re.contentType != "" {
		w.Header().Set("Content-Type", re.contentType)
	}

	_, err := w.Write(re.body)
	return err
}

// Plain responds with body as text/plain.
func Plain(body string) Response {
	return raw{contentType: "text/plain; charset=utf-8", body: []byte(body)}
}

// HTML responds with body as text/html, written exactly as passed in.
func HTML(body string) Response {
	return raw{contentType: "text/html; charset=utf-8", body: []byte(body)}
}

// CSS responds with body as a text/css stylesheet.
func CSS(body string) Response {
	return raw{contentType: "text/css; charset=utf-8", body: []byte(body)}
}

// JavaScript responds with body as a text/javascript script.
func JavaScript(body string) Response {
	return raw{contentType: "text/javascript; charset=utf-8", body: []byte(body)}
}

// JSONRaw responds with an already encoded JSON body.
// Use JSON to have a payload encoded for you.
func JSONRaw(body string) Response {
	return raw{contentType: "application/json; charset=UTF-8", body: []byte(body)}
}

// XML responds with body as text/xml.
func XML(body string) Response {
	return raw{contentType: "text/xml; charset=utf-8", body: []byte(body)}
}

// Bytes responds with b as an application/octet-stream payload.
func Bytes(b []byte) Response {
	return raw{contentType: "application/octet-stream", body: b}
}

// statusOnly writes a bare status code.
type statusOnly int

func (re statusOnly) respond(_ *Responder, w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(int(re))
	return nil
}

// Status responds with the status code and nothing else.
func Status(code int) Response { return statusOnly(code) }

// NoContent responds 204.
func NoContent() Response { return statusOnly(http.StatusNoContent) }

// statusMsg writes a status code with an optional plain-text message body.
type statusMsg struct {
	code int
	msg  string
}

func (re statusMsg) respond(_ *Responder, w http.ResponseWriter, _ *http.Request) error {
	if re.msg == "" {
		w.WriteHeader(re.code)
		return nil
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(re.code)
	_, err := io.WriteString(w, re.msg)
	return err
}

// Accepted responds 202 with the optional plain-text msg.
func Accepted(msg string) Response { return statusMsg{code: http.StatusAccepted, msg: msg} }

// BadRequest responds 400 with the optional plain-text msg.
func BadRequest(msg string) Response { return statusMsg{code: http.StatusBadRequest, msg: msg} }

// Conflict responds 409 with the optional plain-text msg.
func Conflict(msg string) Response { return statusMsg{code: http.StatusConflict, msg: msg} }

// Forbidden responds 403 with the optional plain-text msg.
func Forbidden(msg string) Response { return statusMsg{code: http.StatusForbidden, msg: msg} }

// NotFound responds 404 with the optional plain-text msg.
func NotFound(msg string) Response { return statusMsg{code: http.StatusNotFound, msg: msg} }

// Unauthorized responds 401 with the optional plain-text msg.
func Unauthorized(msg string) Response { return statusMsg{code: http.StatusUnauthorized, msg: msg} }

type created struct {
	location string
}

func (re created) respond(_ *Responder, w http.ResponseWriter, _ *http.Request) error {
	if re.location != "" {
		w.Header().Set("Location", re.location)
	}

	w.WriteHeader(http.StatusCreated)
	return nil
}

// Created responds 201 with a Location header pointing at the new resource.
func Created(location string) Response { return created{location: location} }

type redirect struct {
	target string
	code   int
}

// Redirect responds 302, sending the client to target.
//
// If target is the zero-value, the Responder's root URL set by WithRootUrl
// is the destination; absent both, dispatch fails with ErrMissingData.
func Redirect(target string) Response { return redirect{target: target} }

// RedirectPermanent responds 308, sending the client to target.
func RedirectPermanent(target string) Response {
	return redirect{target: target, code: http.StatusPermanentRedirect}
}

func (re redirect) respond(d *Responder, w http.ResponseWriter, r *http.Request) error {
	target := re.target
	if target == "" {
		if d.rootUrl == nil {
			return fmt.Errorf("%w: cannot redirect, no target and no root URL", ErrMissingData)
		}
		target = d.rootUrl.String()
	} else {
		if _, err := url.ParseRequestURI(target); err != nil {
			return fmt.Errorf("%w: target is not a valid URL: %v", ErrInvalid, err)
		}
	}

	code := re.code
	if code == 0 {
		code = http.StatusFound
	}

	http.Redirect(w, r, target, code)
	return nil
}

// withStatus overrides the status the wrapped variant would write.
type withStatus struct {
	code  int
	inner Response
}

// WithStatus responds with the wrapped variant's headers and body
// but the provided status code.
func WithStatus(code int, inner Response) Response {
	return withStatus{code: code, inner: inner}
}

func (re withStatus) respond(d *Responder, w http.ResponseWriter, r *http.Request) error {
	return re.inner.respond(d, &overrideWriter{ResponseWriter: w, code: re.code}, r)
}

// withHeader adds a header before the wrapped variant writes.
type withHeader struct {
	key, val string
	inner    Response
}

// WithHeader responds with the wrapped variant plus the provided header.
func WithHeader(key, val string, inner Response) Response {
	return withHeader{key: key, val: val, inner: inner}
}

func (re withHeader) respond(d *Responder, w http.ResponseWriter, r *http.Request) error {
	w.Header().Add(re.key, re.val)
	return re.inner.respond(d, w, r)
}

var _ http.ResponseWriter = (*overrideWriter)(nil)

// An overrideWriter rewrites the first status code written through it,
// whether written explicitly or implied by the first Write.
type overrideWriter struct {
	http.ResponseWriter
	code  int
	wrote bool
}

func (w *overrideWriter) WriteHeader(_ int) {
	if w.wrote {
		return
	}

	w.wrote = true
	w.ResponseWriter.WriteHeader(w.code)
}

func (w *overrideWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(w.code)
	}

	return w.ResponseWriter.Write(b)
}
