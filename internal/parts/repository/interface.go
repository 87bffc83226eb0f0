package repository

import "context"

// Part is a single catalog entry. NomenClature and NSN may be empty.
type Part struct {
	PartNumber   string `yaml:"PartNumber" json:"PartNumber" validate:"required"`
	NomenClature string `yaml:"NomenClature" json:"NomenClature"`
	NSN          string `yaml:"NSN" json:"NSN"`
}

// SearchPartsParams holds the search filters. An empty field is not applied.
type SearchPartsParams struct {
	PartNumber   string
	NSN          string
	NomenClature string
}

// Repository defines read-only catalog operations.
type Repository interface {
	ListParts(ctx context.Context) ([]Part, error)
	GetPartByNumber(ctx context.Context, partNumber string) (Part, error)
	SearchParts(ctx context.Context, params SearchPartsParams) ([]Part, error)
	Count() int
}
