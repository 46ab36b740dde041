package resp

import (
	"io/fs"
	"net/http"
)

type file struct {
	path string
}

// File responds with the contents of the file at path on the OS filesystem,
// delegating content type, range requests, and error statuses to [http.ServeFile].
func File(path string) Response { return file{path: path} }

func (re file) respond(_ *Responder, w http.ResponseWriter, r *http.Request) error {
	http.ServeFile(w, r, re.path)
	return nil
}

type fileFS struct {
	fsys fs.FS
	name string
}

// FileFS responds with the named file from fsys,
// most usefully an embedded filesystem.
func FileFS(fsys fs.FS, name string) Response { return fileFS{fsys: fsys, name: name} }

func (re fileFS) respond(_ *Responder, w http.ResponseWriter, r *http.Request) error {
	http.ServeFileFS(w, r, re.fsys, re.name)
	return nil
}
