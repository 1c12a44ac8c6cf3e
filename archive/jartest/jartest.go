// Package jartest builds jar fixtures for tests.
package jartest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

// Jar describes a fixture archive
type Jar struct {
	// ClassPath is written as manifest Class-Path attribute when not empty
	ClassPath string
	// NoManifest skips manifest generation
	NoManifest bool
	// Entries maps entry name to content, names are written in Order first, then any remaining
	Entries map[string]string
	Order   []string
}

// Properties returns native-image.properties content for args
func Properties(args ...string) string {
	return "Args = " + strings.Join(args, " \\\n       ") + "\n"
}

// Write writes jar at path, creating parent directories
func Write(t testing.TB, path string, jar *Jar) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer file.Close()
	writer := zip.NewWriter(file)
	if !jar.NoManifest {
		manifest := "Manifest-Version: 1.0\r\n"
		if jar.ClassPath != "" {
			manifest += wrap("Class-Path: "+jar.ClassPath) + "\r\n"
		}
		write(t, writer, "META-INF/MANIFEST.MF", manifest+"\r\n")
	}
	written := map[string]bool{}
	for _, name := range jar.Order {
		write(t, writer, name, jar.Entries[name])
		written[name] = true
	}
	for name, content := range jar.Entries {
		if !written[name] {
			write(t, writer, name, content)
		}
	}
	if err = writer.Close(); err != nil {
		t.Fatalf("failed to close %s: %v", path, err)
	}
	return path
}

func write(t testing.TB, writer *zip.Writer, name, content string) {
	w, err := writer.Create(name)
	if err != nil {
		t.Fatalf("failed to create entry %s: %v", name, err)
	}
	if _, err = w.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write entry %s: %v", name, err)
	}
}

// wrap splits a manifest header into 72 byte lines
func wrap(header string) string {
	const width = 72
	if len(header) <= width {
		return header
	}
	builder := &strings.Builder{}
	builder.WriteString(header[:width])
	for rest := header[width:]; len(rest) > 0; {
		n := min(width-1, len(rest))
		builder.WriteString("\r\n ")
		builder.WriteString(rest[:n])
		rest = rest[n:]
	}
	return builder.String()
}
