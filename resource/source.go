package resource

import (
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Source opens named assets. A missing asset is reported with an error
// matching fs.ErrNotExist so the next source can be tried.
type Source interface {
	Open(name string) (io.ReadCloser, error)
}

// FS serves assets from a file system.
type FS struct {
	fs.FS
}

func (f FS) Open(name string) (io.ReadCloser, error) {
	name = cleanName(name)
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return f.FS.Open(name)
}

// Dir serves assets from the directory tree rooted at dir.
func Dir(dir string) Source {
	return FS{os.DirFS(dir)}
}

// cleanName turns an asset name into a slash separated relative path.
func cleanName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}
