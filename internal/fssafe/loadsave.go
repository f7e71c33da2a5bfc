package fssafe

import (
	"fmt"
	"io"
	"os"
)

// Loader is a function that returns a reader for a document we want to
// rewrite.
type Loader func() (io.ReadCloser, error)

// Saver is a function that returns a writer that replaces the document.
type Saver func() (io.WriteCloser, error)

// LoaderSaver is the interface that pairs a Loader with a Saver.
type LoaderSaver interface {
	Loader() (io.ReadCloser, error)
	Saver() (io.WriteCloser, error)
}

// BasicLoaderSaver provides the minimum functionality for a LoaderSaver.
type BasicLoaderSaver struct {
	loader Loader // get a reader to load from
	saver  Saver  // get a writer to save to
}

// NewLoaderSaver builds a LoaderSaver from a pair of functions.
func NewLoaderSaver(loader Loader, saver Saver) *BasicLoaderSaver {
	return &BasicLoaderSaver{loader, saver}
}

// safeWriter writes the replacement document to path with .new suffixed. On
// Close, the original is moved aside to path with .old suffixed and the new
// file is moved into place. A reader of path never sees a partial document.
type safeWriter struct {
	w    *os.File
	path string
	mode os.FileMode
}

func (w *safeWriter) Write(b []byte) (int, error) {
	return w.w.Write(b)
}

func (w *safeWriter) Close() error {
	err := w.w.Close()
	if err != nil {
		return err
	}

	if w.mode != 0 {
		err = os.Chmod(w.path+".new", w.mode)
		if err != nil {
			return fmt.Errorf("unable to copy file mode to %s.new: %w", w.path, err)
		}
	}

	_ = os.Rename(w.path, w.path+".old")
	err = os.Rename(w.path+".new", w.path)
	if err != nil {
		return err
	}

	return nil
}

// Abort discards the replacement and leaves the original document alone.
func (w *safeWriter) Abort() error {
	_ = w.w.Close()
	return os.Remove(w.path + ".new")
}

// NewFileSystemLoaderSaver builds a loader/saver for a file that keeps a single
// .old backup of the previous content and swaps the new content in only once it
// is completely written.
func NewFileSystemLoaderSaver(path string) *BasicLoaderSaver {
	loader := func() (io.ReadCloser, error) {
		return os.Open(path)
	}

	saver := func() (io.WriteCloser, error) {
		var mode os.FileMode
		if fi, err := os.Stat(path); err == nil {
			mode = fi.Mode().Perm()
		}

		cfw, err := os.Create(path + ".new")
		if err != nil {
			return nil, err
		}

		return &safeWriter{cfw, path, mode}, nil
	}

	return &BasicLoaderSaver{loader, saver}
}

// Loader provides an io.ReadCloser for reading the document.
func (ls *BasicLoaderSaver) Loader() (io.ReadCloser, error) {
	return ls.loader()
}

// Saver provides an io.WriteCloser for replacing the document.
func (ls *BasicLoaderSaver) Saver() (io.WriteCloser, error) {
	return ls.saver()
}

// Transform loads the whole document, passes it through fn, and saves the
// result. Nothing is saved when fn fails or returns the document unchanged.
// The returned boolean reports whether a save happened.
func Transform(ls LoaderSaver, fn func(string) (string, error)) (bool, error) {
	r, err := ls.Loader()
	if err != nil {
		return false, err
	}

	in, err := io.ReadAll(r)
	_ = r.Close()
	if err != nil {
		return false, fmt.Errorf("unable to read document: %w", err)
	}

	out, err := fn(string(in))
	if err != nil {
		return false, err
	}

	if out == string(in) {
		return false, nil
	}

	w, err := ls.Saver()
	if err != nil {
		return false, err
	}

	if _, err := io.WriteString(w, out); err != nil {
		if a, ok := w.(interface{ Abort() error }); ok {
			_ = a.Abort()
		} else {
			_ = w.Close()
		}
		return false, fmt.Errorf("unable to write document: %w", err)
	}

	return true, w.Close()
}
