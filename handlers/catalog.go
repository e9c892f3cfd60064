package handlers

import (
	"net/http"

	"cinedex/models"
	"cinedex/services/catalog"
)

type catalogService interface {
	Filter(query string) []models.CatalogEntry
}

var _ catalogService = (*catalog.Service)(nil)

// CatalogHandler serves the built-in dataset with optional filtering.
type CatalogHandler struct {
	Service catalogService
}

func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{Service: service}
}

// List returns the catalog entries matching the query, or all of them
// when the query is empty.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.Service.Filter(r.URL.Query().Get("query"))
	writeJSON(w, http.StatusOK, map[string]any{"results": entries})
}
