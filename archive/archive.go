package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
)

// Archive represents an opened packaged archive
type Archive struct {
	Path     string
	data     []byte
	reader   *zip.Reader
	index    map[string]*zip.File
	manifest *Manifest
	loaded   bool
}

// Entries returns entry names in archive directory order
func (a *Archive) Entries() []string {
	if a.reader == nil {
		return nil
	}
	var result = make([]string, 0, len(a.reader.File))
	for _, file := range a.reader.File {
		result = append(result, file.Name)
	}
	return result
}

// Open opens entry content, caller has to close returned reader
func (a *Archive) Open(name string) (io.ReadCloser, error) {
	if a.reader == nil {
		return nil, fmt.Errorf("archive %s is closed", a.Path)
	}
	file, ok := a.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	return file.Open()
}

// ReadEntry reads whole entry content
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	reader, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %s: %w", name, err)
	}
	return data, nil
}

// Manifest returns parsed manifest or nil if archive has none
func (a *Archive) Manifest() (*Manifest, error) {
	if a.loaded {
		return a.manifest, nil
	}
	if _, ok := a.index[ManifestName]; !ok {
		a.loaded = true
		return nil, nil
	}
	data, err := a.ReadEntry(ManifestName)
	if err != nil {
		return nil, err
	}
	if a.manifest, err = ParseManifest(data); err != nil {
		return nil, err
	}
	a.loaded = true
	return a.manifest, nil
}

// ClassPath returns manifest Class-Path attribute
func (a *Archive) ClassPath() (string, bool, error) {
	manifest, err := a.Manifest()
	if err != nil || manifest == nil {
		return "", false, err
	}
	value, ok := manifest.ClassPath()
	return value, ok, nil
}

// Hash returns archive content fingerprint
func (a *Archive) Hash() (uint64, error) {
	return Fingerprint(bytes.NewReader(a.data))
}

// Close releases archive content
func (a *Archive) Close() error {
	a.data = nil
	a.reader = nil
	a.index = nil
	return nil
}

// NewArchive decodes archive content
func NewArchive(path string, data []byte) (*Archive, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	index := make(map[string]*zip.File, len(reader.File))
	for _, file := range reader.File {
		if _, ok := index[file.Name]; !ok {
			index[file.Name] = file
		}
	}
	return &Archive{Path: path, data: data, reader: reader, index: index}, nil
}
