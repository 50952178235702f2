package handlers

import (
	"log/slog"
	"net/http"

	"github.com/clearlabel/clearlabel/internal/service"
)

// SearchHandler serves the JSON product search endpoint.
type SearchHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc *service.ProductService, log *slog.Logger) *SearchHandler {
	return &SearchHandler{
		service: svc,
		log:     log,
	}
}

// Search handles GET /search?q=. The response is always a JSON array of
// product summaries; an empty query returns a capped listing for browsing.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.log.Error("search failed", "query", query, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	writeJSON(w, http.StatusOK, results, h.log)
}
