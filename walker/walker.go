// Package walker traverses archives reachable from a root archive through
// manifest Class-Path attributes and folds their native-image metadata into an
// accumulator.
package walker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/viant/reachability/archive"
	"github.com/viant/reachability/diagnostic"
	"github.com/viant/reachability/directive"
	"github.com/viant/reachability/feature"
)

// Walker walks an archive class path graph
type Walker struct {
	archives    *archive.Service
	sink        diagnostic.Sink
	logger      *slog.Logger
	fingerprint bool
}

// visited holds normalized archive paths already processed in one walk
type visited map[string]bool

// add marks path as visited, returns false if it was already there
func (v visited) add(path string) bool {
	if v[path] {
		return false
	}
	v[path] = true
	return true
}

type walk struct {
	*Walker
	visited visited
	acc     *feature.Accumulator
	report  *Report
}

// Walk processes root archive and every archive transitively listed in manifest Class-Path
// attributes, depth first. Each path is processed once. Any archive that cannot be opened
// fails the whole walk. A nil acc walks without collecting metadata.
func (w *Walker) Walk(ctx context.Context, root string, acc *feature.Accumulator) (*Report, error) {
	if acc == nil {
		acc = feature.NewAccumulator()
	}
	location, err := filepath.Abs(root)
	if err != nil {
		return nil, &archive.OpenError{Path: root, Err: err}
	}
	state := &walk{Walker: w, visited: visited{}, acc: acc, report: &Report{}}
	if err = state.search(ctx, location); err != nil {
		return nil, err
	}
	return state.report, nil
}

func (w *walk) search(ctx context.Context, path string) error {
	path = filepath.Clean(path)
	if !w.visited.add(path) {
		return nil
	}
	isDir, err := w.archives.IsDir(ctx, path)
	if err != nil {
		return err
	}
	visit := &Visit{Path: path, Directory: isDir}
	w.report.Visits = append(w.report.Visits, visit)
	if isDir {
		w.logger.Debug("skipping directory", "path", path)
		return nil
	}
	w.logger.Debug("searching archive", "path", path)

	classPath, err := w.scan(ctx, path, visit)
	if err != nil {
		return err
	}
	parent := filepath.Dir(path)
	for _, item := range classPath {
		if err = w.search(ctx, resolve(parent, item)); err != nil {
			return err
		}
	}
	return nil
}

// scan extracts metadata from archive at path and returns its class path entries
func (w *walk) scan(ctx context.Context, path string, visit *Visit) ([]string, error) {
	jar, err := w.archives.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer jar.Close()
	if w.fingerprint {
		if visit.Hash, err = jar.Hash(); err != nil {
			return nil, fmt.Errorf("failed to hash %s: %w", path, err)
		}
	}

	for _, name := range jar.Entries() {
		if !directive.InRegion(name) {
			continue
		}
		if directive.IsReflectionConfig(name) {
			w.logger.Debug("found reflection config", "path", path, "entry", name)
			w.report.ReflectionConfigs = append(w.report.ReflectionConfigs, &Resource{Archive: path, Entry: name})
		}
		if directive.IsDescriptor(name) {
			w.loadDescriptor(jar, name)
		}
	}

	if visit.Artifacts, err = jar.PomInfos(); err != nil {
		w.sink.Report(&diagnostic.Diagnostic{Kind: diagnostic.EntryRead, Message: "failed to read maven metadata",
			Value: err.Error(), Archive: path})
	}

	value, ok, err := jar.ClassPath()
	if err != nil {
		return nil, &archive.OpenError{Path: path, Err: err}
	}
	if !ok {
		return nil, nil
	}
	for _, item := range strings.Split(value, " ") {
		if item != "" {
			visit.ClassPath = append(visit.ClassPath, item)
		}
	}
	return visit.ClassPath, nil
}

// loadDescriptor parses native-image properties entry, read failures are reported and skipped
func (w *walk) loadDescriptor(jar *archive.Archive, name string) {
	sink := diagnostic.Located(w.sink, jar.Path, name)
	data, err := jar.ReadEntry(name)
	if err == nil {
		var args string
		var ok bool
		if args, ok, err = directive.LoadArgs(data); err == nil {
			if !ok {
				return
			}
			directives := directive.Parse(args, sink)
			w.acc.AddRuntimeInit(directive.RuntimeInitClasses(directives)...)
			return
		}
	}
	sink.Report(&diagnostic.Diagnostic{Kind: diagnostic.EntryRead, Message: "failed to read descriptor", Value: err.Error()})
}

func resolve(parent, item string) string {
	item = filepath.FromSlash(item)
	if filepath.IsAbs(item) {
		return filepath.Clean(item)
	}
	return filepath.Join(parent, item)
}

// New creates a walker
func New(options ...Option) *Walker {
	ret := &Walker{}
	for _, option := range options {
		option(ret)
	}
	if ret.archives == nil {
		ret.archives = archive.New(nil)
	}
	if ret.sink == nil {
		ret.sink = diagnostic.NewLogger(ret.logger)
	}
	if ret.logger == nil {
		ret.logger = diagnostic.NopLogger()
	}
	return ret
}
