package archive

import (
	"context"

	"github.com/viant/afs"
)

// Service opens archives from a file system
type Service struct {
	fs afs.Service
}

// IsDir returns true if path is a directory
func (s *Service) IsDir(ctx context.Context, path string) (bool, error) {
	object, err := s.fs.Object(ctx, path)
	if err != nil {
		return false, &OpenError{Path: path, Err: err}
	}
	return object.IsDir(), nil
}

// Open loads and decodes archive at path
func (s *Service) Open(ctx context.Context, path string) (*Archive, error) {
	data, err := s.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return NewArchive(path, data)
}

// New creates archive service, nil fs uses default afs service
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}
