package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"parts_api/internal/parts/service"
	"parts_api/internal/parts/transport"
	"parts_api/platform/httpkit"
)

// Handler handles HTTP requests for the parts catalog.
type Handler struct {
	svc *service.Service
}

const (
	msgRunning        = "Parts API is running!"
	msgInvalidRequest = "invalid request"
)

// New creates a new parts handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Home reports that the API is up.
// GET /
func (h *Handler) Home(c *gin.Context) {
	httpkit.OK(c, transport.StatusResponse{Message: msgRunning})
}

// ListParts returns every part.
// GET /parts
func (h *Handler) ListParts(c *gin.Context) {
	result, err := h.svc.ListAll(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetPartByNumber returns one part by its exact, URL-decoded part number.
// The route is a catch-all so numbers containing '/' resolve.
// GET /part/*partNumber
func (h *Handler) GetPartByNumber(c *gin.Context) {
	partNumber := strings.TrimPrefix(c.Param("partNumber"), "/")

	result, err := h.svc.GetByPartNumber(c.Request.Context(), partNumber)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// SearchParts filters parts by nsn, nomenclature and partnumber.
// GET /parts/search
func (h *Handler) SearchParts(c *gin.Context) {
	var req transport.SearchPartsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.Search(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
