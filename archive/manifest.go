package archive

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	// ManifestName is the location of the manifest inside an archive
	ManifestName = "META-INF/MANIFEST.MF"
	// ClassPathAttribute names the main attribute listing dependent archives
	ClassPathAttribute = "Class-Path"
	nameAttribute      = "Name"
)

// Attributes holds manifest attributes keyed by lower case name
type Attributes map[string]string

// Get returns attribute value, lookup is case insensitive
func (a Attributes) Get(name string) (string, bool) {
	value, ok := a[strings.ToLower(name)]
	return value, ok
}

func (a Attributes) set(name, value string) {
	a[strings.ToLower(name)] = value
}

// Manifest represents a parsed archive manifest
type Manifest struct {
	Main    Attributes
	Entries map[string]Attributes
}

// ClassPath returns the Class-Path main attribute
func (m *Manifest) ClassPath() (string, bool) {
	return m.Main.Get(ClassPathAttribute)
}

// ParseManifest parses manifest content. Sections are separated by blank lines,
// a line starting with a single space continues the previous attribute value.
func ParseManifest(data []byte) (*Manifest, error) {
	manifest := &Manifest{Main: Attributes{}, Entries: map[string]Attributes{}}
	section := manifest.Main
	inMain := true
	started := false
	var name, value string
	pending := false

	flush := func() error {
		if !pending {
			return nil
		}
		pending = false
		if !inMain && !started {
			if !strings.EqualFold(name, nameAttribute) {
				return fmt.Errorf("invalid manifest: section must start with %s, got %s", nameAttribute, name)
			}
			section = Attributes{}
			manifest.Entries[value] = section
			started = true
		}
		section.set(name, value)
		return nil
	}

	for i, line := range splitLines(data) {
		switch {
		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}
			inMain = false
			started = false
		case line[0] == ' ':
			if !pending {
				return nil, fmt.Errorf("invalid manifest: line %d: continuation without attribute", i+1)
			}
			value += line[1:]
		default:
			if err := flush(); err != nil {
				return nil, err
			}
			index := strings.Index(line, ": ")
			if index <= 0 {
				return nil, fmt.Errorf("invalid manifest: line %d: invalid header %q", i+1, line)
			}
			name, value = line[:index], line[index+2:]
			pending = true
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func splitLines(data []byte) []string {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
	return strings.Split(string(data), "\n")
}
