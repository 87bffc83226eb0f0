package service

import (
	"context"

	"parts_api/internal/parts/repository"
	"parts_api/internal/parts/transport"
	"parts_api/platform/apperr"
	"parts_api/platform/logger"
	"parts_api/platform/metrics"
	"parts_api/platform/validator"
)

const msgSearchQueryRequired = "Please provide a search query (nsn, nomenclature, or partnumber)"

// Service provides the read-only parts catalog operations.
type Service struct {
	repo repository.Repository
	val  *validator.Validator
	log  *logger.Logger
}

// New creates a new parts service.
func New(repo repository.Repository, val *validator.Validator, log *logger.Logger) *Service {
	return &Service{repo: repo, val: val, log: log}
}

// ListAll returns every part in catalog order.
func (s *Service) ListAll(ctx context.Context) ([]transport.PartResponse, error) {
	parts, err := s.repo.ListParts(ctx)
	if err != nil {
		return nil, err
	}
	return toPartResponses(parts), nil
}

// GetByPartNumber returns the first part whose number equals partNumber.
func (s *Service) GetByPartNumber(ctx context.Context, partNumber string) (transport.PartResponse, error) {
	part, err := s.repo.GetPartByNumber(ctx, partNumber)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			s.log.WithContext(ctx).Debug("part not found", "partNumber", partNumber)
		}
		return transport.PartResponse{}, err
	}
	return toPartResponse(part), nil
}

// Search narrows the catalog by the supplied filters. At least one filter
// must be non-empty.
func (s *Service) Search(ctx context.Context, req transport.SearchPartsRequest) ([]transport.PartResponse, error) {
	if err := s.val.Struct(req); err != nil {
		return nil, apperr.BadRequest(msgSearchQueryRequired)
	}

	params := repository.SearchPartsParams{
		PartNumber:   req.PartNumber,
		NSN:          req.NSN,
		NomenClature: req.NomenClature,
	}

	parts, err := s.repo.SearchParts(ctx, params)
	if err != nil {
		return nil, err
	}

	metrics.ObserveSearchResults(len(parts))
	s.log.WithContext(ctx).Debug("parts searched",
		"partNumber", params.PartNumber,
		"nsn", params.NSN,
		"nomenclature", params.NomenClature,
		"results", len(parts),
	)
	return toPartResponses(parts), nil
}

// Count returns the number of parts in the catalog.
func (s *Service) Count() int {
	return s.repo.Count()
}

func toPartResponse(part repository.Part) transport.PartResponse {
	return transport.PartResponse{
		PartNumber:   part.PartNumber,
		NomenClature: part.NomenClature,
		NSN:          part.NSN,
	}
}

func toPartResponses(parts []repository.Part) []transport.PartResponse {
	out := make([]transport.PartResponse, 0, len(parts))
	for _, part := range parts {
		out = append(out, toPartResponse(part))
	}
	return out
}
