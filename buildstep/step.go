// Package buildstep imports native-image reachability metadata from an
// application archive and its class path as a single feature build item.
package buildstep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/viant/reachability/diagnostic"
	"github.com/viant/reachability/feature"
	"github.com/viant/reachability/walker"
)

// Step represents the reachability metadata import build step
type Step struct {
	walker *walker.Walker
	logger *slog.Logger
	report *walker.Report
}

// ImportGraalConfiguration walks jar and its class path, producing exactly one feature item on success
func (s *Step) ImportGraalConfiguration(ctx context.Context, jar *SourceJar, producer Producer) error {
	if jar == nil || jar.Path == "" {
		return errors.New("source jar path was empty")
	}
	if producer == nil {
		return errors.New("producer was nil")
	}
	acc := feature.NewAccumulator()
	report, err := s.walker.Walk(ctx, jar.Path, acc)
	if err != nil {
		return fmt.Errorf("failed to import reachability metadata from %s: %w", jar.Path, err)
	}
	s.report = report
	item := &FeatureItem{Feature: acc.Finalize()}
	producer.Produce(item)
	s.logger.Debug("imported reachability metadata", "jar", jar.Path, "archives", len(report.Visits), "feature", item.Feature.String())
	return nil
}

// Report returns the walk report of the last successful import
func (s *Step) Report() *walker.Report {
	return s.report
}

// New creates a build step
func New(options ...Option) *Step {
	ret := &Step{}
	var walkerOptions []walker.Option
	for _, option := range options {
		walkerOptions = option(ret, walkerOptions)
	}
	if ret.logger == nil {
		ret.logger = diagnostic.NopLogger()
	}
	walkerOptions = append(walkerOptions, walker.WithLogger(ret.logger))
	ret.walker = walker.New(walkerOptions...)
	return ret
}
