package ufcdata

import (
	"context"
	"os"

	crerr "github.com/cockroachdb/errors"
)

// Source returns one raw upstream document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads the document from disk on every fetch.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.path == "" {
		return nil, crerr.New("data file path is empty")
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read data file %s", s.path)
	}
	return data, nil
}

func (s *FileSource) String() string {
	return "file:" + s.path
}
