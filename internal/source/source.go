package source

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DataFileName is the file name CMS uses for Timely and Effective Care
// exports; local discovery matches on it.
const DataFileName = "Timely_and_Effective_Care-Hospital.csv"

// Source is one named delimited-text input: a local file, an uploaded
// payload, or a blob-store entry.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads a local file.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return os.Open(s.Path)
}

// BytesSource wraps an in-memory payload, e.g. a user upload.
type BytesSource struct {
	name string
	data []byte
}

// NewBytesSource names an in-memory payload so it can join a batch.
func NewBytesSource(name string, data []byte) BytesSource {
	return BytesSource{name: name, data: data}
}

func (s BytesSource) Name() string { return s.name }

func (s BytesSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

// Discover walks root recursively and returns a FileSource for every
// Timely and Effective Care export found. Order is lexical by path.
func Discover(root string) ([]Source, error) {
	var out []Source
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == DataFileName {
			out = append(out, FileSource{Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
