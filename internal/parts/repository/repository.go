package repository

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"parts_api/platform/apperr"
)

const partNotFoundMessage = "Part not found"

// Catalog is an immutable, ordered in-memory parts catalog.
// It is safe for concurrent use; every read returns a copy.
type Catalog struct {
	parts []Part
}

// New creates a catalog from parts. The slice is copied, so later changes
// to parts do not affect the catalog.
func New(parts []Part) *Catalog {
	return &Catalog{parts: cloneParts(parts)}
}

// NewDefault creates a catalog holding the built-in dataset.
func NewDefault() *Catalog {
	return &Catalog{parts: cloneParts(defaultParts)}
}

// Count returns the number of records in the catalog.
func (c *Catalog) Count() int {
	return len(c.parts)
}

// ListParts returns every record in catalog order.
func (c *Catalog) ListParts(_ context.Context) ([]Part, error) {
	return cloneParts(c.parts), nil
}

// GetPartByNumber returns the first record whose PartNumber equals
// partNumber exactly.
func (c *Catalog) GetPartByNumber(_ context.Context, partNumber string) (Part, error) {
	for _, part := range c.parts {
		if part.PartNumber == partNumber {
			return part, nil
		}
	}
	return Part{}, apperr.NotFound(partNotFoundMessage)
}

// SearchParts narrows the catalog by each set filter in turn: part number,
// then NSN, then nomenclature. Catalog order is preserved.
func (c *Catalog) SearchParts(_ context.Context, params SearchPartsParams) ([]Part, error) {
	results := cloneParts(c.parts)

	if params.PartNumber != "" {
		results = filterParts(results, func(p Part) bool {
			return p.PartNumber == params.PartNumber
		})
	}

	if params.NSN != "" {
		results = filterParts(results, func(p Part) bool {
			return p.NSN == params.NSN
		})
	}

	if params.NomenClature != "" {
		needle := foldCase(params.NomenClature)
		results = filterParts(results, func(p Part) bool {
			return p.NomenClature != "" && strings.Contains(foldCase(p.NomenClature), needle)
		})
	}

	return results, nil
}

func filterParts(parts []Part, keep func(Part) bool) []Part {
	kept := make([]Part, 0, len(parts))
	for _, part := range parts {
		if keep(part) {
			kept = append(kept, part)
		}
	}
	return kept
}

// foldCase lower-cases s. A Caser is stateful, so one is made per call.
func foldCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

func cloneParts(parts []Part) []Part {
	out := make([]Part, len(parts))
	copy(out, parts)
	return out
}

var _ Repository = (*Catalog)(nil)
