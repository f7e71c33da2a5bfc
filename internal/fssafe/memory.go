package fssafe

import (
	"bytes"
	"io"
	"strings"
)

// MemoryWriter is a buffer that records whether it has been closed.
type MemoryWriter struct {
	bytes.Buffer
	Closed bool
}

func (w *MemoryWriter) Close() error { w.Closed = true; return nil }

// MemoryLoaderSaver keeps the document in memory. Each save replaces the
// content once the writer is closed. Every writer handed out is kept in
// Writers.
type MemoryLoaderSaver struct {
	BasicLoaderSaver
	Content string
	Writers []*MemoryWriter
}

type memoryWriteCloser struct {
	*MemoryWriter
	ls *MemoryLoaderSaver
}

func (w memoryWriteCloser) Close() error {
	w.ls.Content = w.String()
	return w.MemoryWriter.Close()
}

// NewMemoryLoaderSaver returns a LoaderSaver holding the given content.
func NewMemoryLoaderSaver(content string) *MemoryLoaderSaver {
	ls := &MemoryLoaderSaver{Content: content}

	ls.loader = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(ls.Content)), nil
	}

	ls.saver = func() (io.WriteCloser, error) {
		w := &MemoryWriter{}
		ls.Writers = append(ls.Writers, w)
		return memoryWriteCloser{w, ls}, nil
	}

	return ls
}
