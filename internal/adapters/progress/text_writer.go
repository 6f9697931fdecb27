package progress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/zerr"
)

var _ progrock.Writer = (*TextWriter)(nil)

// TextWriter renders a progrock status stream as plain lines prefixed with the
// vertex name, e.g. "[worker-1] Hashing a.bin  50%".
type TextWriter struct {
	mu      sync.Mutex
	out     io.Writer
	names   map[string]string
	partial map[string][]byte
	failed  map[string]bool
}

// NewTextWriter creates a TextWriter. out is closed by Close when it is an io.Closer.
func NewTextWriter(out io.Writer) *TextWriter {
	return &TextWriter{
		out:     out,
		names:   make(map[string]string),
		partial: make(map[string][]byte),
		failed:  make(map[string]bool),
	}
}

// WriteStatus writes every complete log line of u and reports failed vertices.
func (w *TextWriter) WriteStatus(u *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range u.Vertexes {
		w.names[v.Id] = v.Name
	}

	for _, l := range u.Logs {
		data := append(w.partial[l.Vertex], l.Data...)
		for {
			i := bytes.IndexByte(data, '\n')
			if i < 0 {
				break
			}
			if err := w.line(l.Vertex, data[:i]); err != nil {
				return err
			}
			data = data[i+1:]
		}
		w.partial[l.Vertex] = data
	}

	for _, v := range u.Vertexes {
		if v.Error != nil && !w.failed[v.Id] {
			w.failed[v.Id] = true
			if err := w.line(v.Id, []byte("failed: "+*v.Error)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close flushes unterminated lines and closes the output.
func (w *TextWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, rest := range w.partial {
		if len(rest) > 0 {
			_ = w.line(id, rest)
		}
	}
	w.partial = make(map[string][]byte)

	if c, ok := w.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (w *TextWriter) line(vertex string, text []byte) error {
	name, ok := w.names[vertex]
	if !ok {
		name = vertex
	}
	if _, err := fmt.Fprintf(w.out, "[%s] %s\n", name, text); err != nil {
		return zerr.Wrap(err, "failed to write progress line")
	}
	return nil
}
