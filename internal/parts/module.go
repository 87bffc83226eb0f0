// Package parts provides the parts catalog bounded context module.
package parts

import (
	apphttp "parts_api/internal/http"
	"parts_api/internal/parts/handler"
	"parts_api/internal/parts/repository"
	"parts_api/internal/parts/service"
	"parts_api/platform/logger"
	"parts_api/platform/metrics"
	"parts_api/platform/validator"
)

// Module is the parts bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule freezes records into an immutable catalog and wires the module.
func NewModule(records []repository.Part, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(records)
	svc := service.New(repo, val, log)
	h := handler.New(svc)

	metrics.SetCatalogRecords(repo.Count())

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "parts"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the catalog repository.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts the catalog routes on the root group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Root.GET("/", m.handler.Home)
	ctx.Root.GET("/parts", m.handler.ListParts)
	ctx.Root.GET("/parts/search", m.handler.SearchParts)
	ctx.Root.GET("/part/*partNumber", m.handler.GetPartByNumber)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
