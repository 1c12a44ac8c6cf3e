// Package diagnostic defines non-fatal findings reported while scanning archives.
package diagnostic

import "fmt"

// Kind classifies a diagnostic
type Kind string

const (
	// UnexpectedArgument is reported for an unrecognized native-image argument
	UnexpectedArgument Kind = "UNEXPECTED_ARGUMENT"
	// UnexpectedReflectionConfig is reported for a reflection config resource with an unexpected name
	UnexpectedReflectionConfig Kind = "UNEXPECTED_REFLECTION_CONFIG"
	// EntryRead is reported when a descriptor entry could not be read or parsed
	EntryRead Kind = "ENTRY_READ"
)

// Diagnostic represents a single non-fatal finding
type Diagnostic struct {
	Kind    Kind   `yaml:"kind" json:"kind"`
	Message string `yaml:"message" json:"message"`
	Value   string `yaml:"value,omitempty" json:"value,omitempty"`
	Archive string `yaml:"archive,omitempty" json:"archive,omitempty"`
	Entry   string `yaml:"entry,omitempty" json:"entry,omitempty"`
}

// String returns a human readable form
func (d *Diagnostic) String() string {
	location := d.Archive
	if d.Entry != "" {
		location += "!" + d.Entry
	}
	if location == "" {
		return fmt.Sprintf("%s: %s", d.Message, d.Value)
	}
	return fmt.Sprintf("%s: %s (%s)", d.Message, d.Value, location)
}

// Sink receives diagnostics
type Sink interface {
	Report(d *Diagnostic)
}

// Func adapts a function to Sink
type Func func(d *Diagnostic)

// Report calls f(d)
func (f Func) Report(d *Diagnostic) {
	f(d)
}

// Discard ignores all diagnostics
var Discard Sink = Func(func(*Diagnostic) {})

// Multi fans diagnostics out to every sink
func Multi(sinks ...Sink) Sink {
	return Func(func(d *Diagnostic) {
		for _, sink := range sinks {
			if sink != nil {
				sink.Report(d)
			}
		}
	})
}

// Located returns a sink that stamps archive and entry on every diagnostic before forwarding
func Located(sink Sink, archive, entry string) Sink {
	return Func(func(d *Diagnostic) {
		if d.Archive == "" {
			d.Archive = archive
		}
		if d.Entry == "" {
			d.Entry = entry
		}
		sink.Report(d)
	})
}
