// Package source loads the parts catalog once at startup. Every source
// yields an ordered slice of parts; after loading, the catalog never changes.
package source

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"parts_api/internal/parts/repository"
	"parts_api/platform/apperr"
	"parts_api/platform/validator"
)

const opDecode = "source.Decode"

// maxDocumentSize caps catalog documents read from files or object storage.
const maxDocumentSize = 8 << 20

// Source loads a catalog snapshot.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Load returns the catalog records in catalog order.
	Load(ctx context.Context) ([]repository.Part, error)
}

// Decode parses a YAML or JSON list of parts. Every record must carry a
// PartNumber. Failures are KindInternal errors.
func Decode(r io.Reader, val *validator.Validator) ([]repository.Part, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "read catalog", err).WithOp(opDecode)
	}
	if len(data) > maxDocumentSize {
		return nil, apperr.Internal(fmt.Sprintf("catalog document exceeds %d bytes", maxDocumentSize)).WithOp(opDecode)
	}

	var parts []repository.Part
	if err := yaml.Unmarshal(data, &parts); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "decode catalog", err).WithOp(opDecode)
	}
	if len(parts) == 0 {
		return nil, apperr.Internal("catalog is empty").WithOp(opDecode)
	}

	for i, part := range parts {
		if err := val.Struct(part); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, fmt.Sprintf("catalog record %d", i), err).
				WithOp(opDecode).
				WithDetails(validator.FailedFields(err))
		}
	}
	return parts, nil
}

// Embedded serves the built-in dataset.
type Embedded struct{}

// Name implements Source.
func (Embedded) Name() string { return "embedded" }

// Load implements Source.
func (Embedded) Load(_ context.Context) ([]repository.Part, error) {
	return repository.DefaultParts(), nil
}
