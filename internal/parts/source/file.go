package source

import (
	"context"
	"os"

	"parts_api/internal/parts/repository"
	"parts_api/platform/apperr"
	"parts_api/platform/validator"
)

// File reads the catalog from a YAML or JSON document on disk.
type File struct {
	path string
	val  *validator.Validator
}

// NewFile creates a file-backed source.
func NewFile(path string, val *validator.Validator) *File {
	return &File{path: path, val: val}
}

// Name implements Source.
func (f *File) Name() string { return "file:" + f.path }

// Load implements Source.
func (f *File) Load(_ context.Context) ([]repository.Part, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "open catalog file", err).WithOp("source.File.Load")
	}
	defer file.Close()

	return Decode(file, f.val)
}
