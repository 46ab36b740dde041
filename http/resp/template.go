//go:build templates

package resp

import (
	"fmt"
	"net/http"
	"path"

	"github.com/replykit/reply/http/session"
)

// tmpl renders through the Responder's template.Parser when dispatched.
type tmpl struct {
	data any
	fps  []string
}

// Template responds with the named templates rendered around data,
// the first filepath being the root template.
//
// Templates receive a struct with the fields Data and Flashes;
// Flashes holds any one-shot messages drained from the request's session.
//
// Compiled only under the "templates" build tag.
// Dispatch fails with ErrBadConfig unless WithParser configured the Responder.
func Template(data any, fps ...string) Response { return tmpl{data: data, fps: fps} }

func (re tmpl) respond(d *Responder, w http.ResponseWriter, r *http.Request) error {
	if d.parser == nil {
		return fmt.Errorf("%w: no parser configured", ErrBadConfig)
	}

	if len(re.fps) == 0 {
		return fmt.Errorf("%w: no templates to render", ErrMissingData)
	}

	t, err := d.parser.Parse(re.fps...)
	if err != nil {
		return fmt.Errorf("cannot parse: %w", err)
	}

	rd := struct {
		Data    any
		Flashes []session.Flash
	}{Data: re.data}

	if s, err := d.Session(r.Context()); err == nil {
		rd.Flashes = s.Flashes(w, r)
	}

	b := d.buffer()
	defer d.release(b)

	if err := t.ExecuteTemplate(b, path.Base(re.fps[0]), rd); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = b.WriteTo(w)
	return err
}
