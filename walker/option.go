package walker

import (
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/reachability/archive"
	"github.com/viant/reachability/diagnostic"
)

type Option func(*Walker)

// WithFs sets file system used to load archives
func WithFs(fs afs.Service) Option {
	return func(w *Walker) {
		w.archives = archive.New(fs)
	}
}

// WithSink sets diagnostics sink
func WithSink(sink diagnostic.Sink) Option {
	return func(w *Walker) {
		w.sink = sink
	}
}

// WithLogger sets structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(w *Walker) {
		w.logger = logger
	}
}

// WithFingerprint enables archive content hashing in walk report
func WithFingerprint() Option {
	return func(w *Walker) {
		w.fingerprint = true
	}
}
