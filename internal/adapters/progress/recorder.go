package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
)

var _ ports.ProgressSubscriber = (*Recorder)(nil)

// Recorder mirrors status events onto a progrock status stream, one vertex per worker.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu       sync.Mutex
	vertices map[domain.WorkerID]*progrock.VertexRecorder
	failed   map[domain.WorkerID]error
}

// NewTextRecorder creates a Recorder rendering to out through a TextWriter.
func NewTextRecorder(out io.Writer) *Recorder {
	return NewRecorder(NewTextWriter(out))
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:        w,
		rec:      progrock.NewRecorder(w),
		vertices: make(map[domain.WorkerID]*progrock.VertexRecorder),
		failed:   make(map[domain.WorkerID]error),
	}
}

// Handle records ev on the vertex of the worker it belongs to.
// Log lines and errors go to the "main" vertex.
func (r *Recorder) Handle(ev domain.StatusEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch ev := ev.(type) {
	case domain.ProgressUpdate:
		v := r.vertex(ev.Worker)
		_, _ = fmt.Fprintf(v.Stdout(), "%s %3.0f%%\n", ev.Message, ev.Fraction.Float()*100)
	case domain.LogLine:
		v := r.vertex(domain.NoWorker)
		_, _ = fmt.Fprintf(r.stream(v, ev.Level), "[%s] %s\n", ev.Level, ev.Text)
	case domain.ErrorEvent:
		v := r.vertex(domain.NoWorker)
		if ev.Err != nil {
			_, _ = fmt.Fprintf(v.Stderr(), "%s: %v\n", ev.Message, ev.Err)
			r.failed[domain.NoWorker] = ev.Err
			return
		}
		_, _ = fmt.Fprintln(v.Stderr(), ev.Message)
	}
}

// Close completes every vertex and closes the underlying writer.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, v := range r.vertices {
		v.Done(r.failed[id])
	}
	r.vertices = make(map[domain.WorkerID]*progrock.VertexRecorder)

	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func (r *Recorder) vertex(id domain.WorkerID) *progrock.VertexRecorder {
	if v, ok := r.vertices[id]; ok {
		return v
	}
	name := id.String()
	v := r.rec.Vertex(digest.FromString(name), name)
	r.vertices[id] = v
	return v
}

func (r *Recorder) stream(v *progrock.VertexRecorder, level domain.LogLevel) io.Writer {
	if level >= domain.LogLevelWarn {
		return v.Stderr()
	}
	return v.Stdout()
}
