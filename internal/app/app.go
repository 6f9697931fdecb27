// Package app implements the application layer for patchwork.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.trai.ch/patchwork/internal/adapters/patch"    //nolint:depguard // Patch cache is built from config
	"go.trai.ch/patchwork/internal/adapters/progress" //nolint:depguard // Progress recorder is built from config
	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/patchwork/internal/core/ports"
	"go.trai.ch/patchwork/internal/engine/workqueue"
	"go.trai.ch/zerr"
)

// HashingMessage names the tracker used by HashFiles.
const HashingMessage = "Hashing files"

// Sink is a progress sink that owns background subscribers.
type Sink interface {
	ports.ProgressSink
	Subscribe(sub ports.ProgressSubscriber)
	Close() error
}

// configurableLogger is implemented by loggers that can be tuned from the config file.
type configurableLogger interface {
	SetJSON(enable bool)
	SetLevel(level domain.LogLevel)
	OpenFile(path string) error
}

// FileHash pairs a path with its content hash.
type FileHash struct {
	Path string
	Hash domain.Hash
}

// Overrides are command line values that take precedence over the config file.
type Overrides struct {
	Workers      *int
	Verbose      bool
	ProgressFile string
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	sink         Sink
	hasher       ports.Hasher
	hashes       ports.HashCache
	differ       ports.Differ
	resolver     ports.FileResolver

	mu             sync.Mutex
	config         domain.Config
	queue          *workqueue.Queue
	patches        ports.PatchCache
	patchesFixed   bool
	progressTarget string
}

// Option configures an App.
type Option func(*App)

// WithPatchCache uses cache instead of the file cache under the configured cache_dir.
func WithPatchCache(cache ports.PatchCache) Option {
	return func(a *App) {
		a.patches = cache
		a.patchesFixed = true
	}
}

// New creates a new App instance. Configure must be called before any operation.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	sink Sink,
	hasher ports.Hasher,
	hashes ports.HashCache,
	differ ports.Differ,
	resolver ports.FileResolver,
	opts ...Option,
) *App {
	a := &App{
		configLoader: loader,
		logger:       logger,
		sink:         sink,
		hasher:       hasher,
		hashes:       hashes,
		differ:       differ,
		resolver:     resolver,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Configure loads the configuration at path, applies overrides and starts the work queue.
func (a *App) Configure(path string, overrides Overrides) error {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if overrides.Workers != nil {
		cfg.Workers = *overrides.Workers
	}
	if overrides.Verbose {
		cfg.Log.Level = domain.LogLevelDebug
	}
	if overrides.ProgressFile != "" {
		cfg.Log.ProgressFile = overrides.ProgressFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if l, ok := a.logger.(configurableLogger); ok {
		l.SetJSON(cfg.Log.JSON)
		l.SetLevel(cfg.Log.Level)
		if cfg.Log.File != "" {
			if err := l.OpenFile(cfg.Log.File); err != nil {
				return err
			}
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.recordProgress(cfg.Log.ProgressFile); err != nil {
		return err
	}
	if a.queue != nil {
		_ = a.queue.Close()
	}
	a.config = cfg
	a.queue = workqueue.New(cfg.Workers,
		workqueue.WithPollInterval(cfg.PollInterval),
		workqueue.WithLogger(a.logger),
		workqueue.WithSink(a.sink),
	)
	if !a.patchesFixed {
		a.patches = patch.NewCache(cfg.PatchDir(), a.differ, a.hasher,
			patch.WithBackoff(cfg.Patch.Backoff),
			patch.WithMaxPublishAttempts(cfg.Patch.MaxPublishAttempts),
			patch.WithLogger(a.logger),
			patch.WithSink(a.sink),
		)
	}

	a.logger.Debug(fmt.Sprintf("work queue started with %d workers", a.queue.Workers()))
	return nil
}

// Config returns the active configuration.
func (a *App) Config() domain.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.config
}

// HashFiles hashes every file named by args in parallel. With cached set, valid
// sidecars are reused and fresh ones are written.
func (a *App) HashFiles(ctx context.Context, args []string, cached bool) ([]FileHash, error) {
	q, _, err := a.runtime()
	if err != nil {
		return nil, err
	}

	paths, err := a.resolver.ResolveFiles(args)
	if err != nil {
		return nil, err
	}

	hash := a.hashes.FileHash
	if cached {
		hash = a.hashes.FileHashCached
	}

	tracker := workqueue.NewTracker(a.sink, HashingMessage, len(paths))
	return workqueue.PMapTracked(ctx, q, tracker, paths, func(ctx context.Context, path string) (FileHash, error) {
		h, err := hash(ctx, path)
		if err != nil {
			return FileHash{}, err
		}
		return FileHash{Path: path, Hash: h}, nil
	})
}

// Diff writes the patch turning the file at fromPath into the file at toPath to w.
// Both inputs are read in parallel on the pool and the patch goes through the cache.
func (a *App) Diff(ctx context.Context, fromPath, toPath string, w io.Writer) error {
	q, patches, err := a.runtime()
	if err != nil {
		return err
	}

	fut := workqueue.Submit(ctx, q, func(ctx context.Context) ([]byte, error) {
		blobs, err := workqueue.PMap(ctx, q, []string{fromPath, toPath}, readFile)
		if err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := patches.CreatePatch(ctx, blobs[0], blobs[1], &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})

	data, err := workqueue.Await(ctx, q, fut)
	if err != nil {
		return err
	}
	return write(w, data)
}

// Lookup returns a cached patch by the hex digests of its inputs.
func (a *App) Lookup(_ context.Context, fromHex, toHex string) ([]byte, error) {
	_, patches, err := a.runtime()
	if err != nil {
		return nil, err
	}

	from, err := domain.ParseHash(fromHex)
	if err != nil {
		return nil, err
	}
	to, err := domain.ParseHash(toHex)
	if err != nil {
		return nil, err
	}

	lookup := patches.TryGetPatch(from, to)
	switch lookup.State {
	case domain.LookupHit:
		return lookup.Patch, nil
	case domain.LookupError:
		return nil, lookup.Err
	default:
		return nil, zerr.With(domain.ErrPatchNotFound, "key", domain.NewPatchKey(from, to).String())
	}
}

// Apply applies the patch file at patchPath to the file at oldPath and writes the result to w.
func (a *App) Apply(ctx context.Context, oldPath, patchPath string, w io.Writer) error {
	q, _, err := a.runtime()
	if err != nil {
		return err
	}

	fut := workqueue.Submit(ctx, q, func(ctx context.Context) ([]byte, error) {
		blobs, err := workqueue.PMap(ctx, q, []string{oldPath, patchPath}, readFile)
		if err != nil {
			return nil, err
		}
		return a.differ.Apply(blobs[0], blobs[1])
	})

	data, err := workqueue.Await(ctx, q, fut)
	if err != nil {
		return err
	}
	return write(w, data)
}

// Close stops the work queue and flushes progress subscribers.
func (a *App) Close() error {
	a.mu.Lock()
	q := a.queue
	a.queue = nil
	a.mu.Unlock()

	var errs []error
	if q != nil {
		errs = append(errs, q.Close())
	}
	if a.sink != nil {
		errs = append(errs, a.sink.Close())
	}
	if c, ok := a.logger.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// recordProgress subscribes a text recorder writing to path. Called with a.mu held.
func (a *App) recordProgress(path string) error {
	if path == "" || path == a.progressTarget {
		return nil
	}

	//nolint:gosec // Path is provided by user
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLogFileOpenFailed.Error()), "path", path)
	}
	a.sink.Subscribe(progress.NewTextRecorder(f))
	a.progressTarget = path
	return nil
}

func (a *App) runtime() (*workqueue.Queue, ports.PatchCache, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.queue == nil {
		return nil, nil, domain.ErrNotConfigured
	}
	return a.queue, a.patches, nil
}

func readFile(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	return data, nil
}

func write(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}
