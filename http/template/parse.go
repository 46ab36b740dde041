package template

import (
	"fmt"
	html "html/template"
	"io/fs"
	"os"
	"path"
)

// Parser is the interface for parsing HTML templates with the functions provided.
type Parser interface {
	AddFn(name string, fn any)
	Parse(fps ...string) (*html.Template, error)
}

// Parse implements Parser with a focus on utilizing embedded HTML templates through fs.FS.
type Parse struct {
	fs  fs.FS
	fns html.FuncMap
}

// NewParser constructs a Parse with the provided functional options.
//
// Absent a WithFS option, templates are read from the current working directory.
func NewParser(opts ...ParserOptFn) Parser {
	p := &Parse{fns: make(html.FuncMap)}
	for _, opt := range opts {
		opt(p)
	}

	if p.fs == nil {
		p.fs = os.DirFS(".")
	}

	return p
}

// AddFn includes the named function in the Parse function map.
func (p *Parse) AddFn(name string, fn any) {
	if p.fns == nil {
		p.fns = make(html.FuncMap)
	}
	p.fns[name] = fn
}

// Parse parses files found in the *Parse.fs with those functions provided previously.
//
// The first filepath is the root template; any others are associated with it.
func (p *Parse) Parse(fps ...string) (*html.Template, error) {
	for i, fp := range fps {
		if fp == "" {
			fps = append(fps[:i], fps[i+1:]...)
		}
	}

	if len(fps) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	return html.New(path.Base(fps[0])).Funcs(p.fns).ParseFS(p.fs, fps...)
}
