package walker

import (
	"sort"

	"github.com/viant/reachability/archive"
)

// Visit represents an archive reached during a walk
type Visit struct {
	Path      string   `yaml:"path"`
	Directory bool     `yaml:"directory,omitempty"`
	Hash      uint64   `yaml:"hash,omitempty"`
	ClassPath []string `yaml:"classPath,omitempty"`

	Artifacts []*archive.PomInfo `yaml:"artifacts,omitempty"`
}

// Resource represents a detected reflection configuration resource
type Resource struct {
	Archive string `yaml:"archive"`
	Entry   string `yaml:"entry"`
}

// Report traces one walk, visits are in traversal order
type Report struct {
	Visits            []*Visit    `yaml:"visits"`
	ReflectionConfigs []*Resource `yaml:"reflectionConfigs,omitempty"`
}

// Paths returns visited archive paths in traversal order
func (r *Report) Paths() []string {
	var result = make([]string, 0, len(r.Visits))
	for _, visit := range r.Visits {
		result = append(result, visit.Path)
	}
	return result
}

// ReflectionConfigEntries returns distinct reflection config entry names, sorted
func (r *Report) ReflectionConfigEntries() []string {
	unique := map[string]bool{}
	for _, resource := range r.ReflectionConfigs {
		unique[resource.Entry] = true
	}
	var result = make([]string, 0, len(unique))
	for entry := range unique {
		result = append(result, entry)
	}
	sort.Strings(result)
	return result
}
