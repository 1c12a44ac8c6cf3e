package buildstep

import (
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/reachability/diagnostic"
	"github.com/viant/reachability/walker"
)

// Option configures a Step and the walker it drives
type Option func(s *Step, walkerOptions []walker.Option) []walker.Option

// WithLogger sets structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Step, walkerOptions []walker.Option) []walker.Option {
		s.logger = logger
		return walkerOptions
	}
}

// WithSink sets diagnostics sink
func WithSink(sink diagnostic.Sink) Option {
	return func(s *Step, walkerOptions []walker.Option) []walker.Option {
		return append(walkerOptions, walker.WithSink(sink))
	}
}

// WithFs sets file system
func WithFs(fs afs.Service) Option {
	return func(s *Step, walkerOptions []walker.Option) []walker.Option {
		return append(walkerOptions, walker.WithFs(fs))
	}
}

// WithFingerprint enables archive hashing in the walk report
func WithFingerprint() Option {
	return func(s *Step, walkerOptions []walker.Option) []walker.Option {
		return append(walkerOptions, walker.WithFingerprint())
	}
}
