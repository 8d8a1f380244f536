package api

import (
	"net/http"

	"totetracker/internal/search"
)

// SearchHandler handles the free-text search endpoint.
type SearchHandler struct {
	Engine *search.Engine
}

// Search handles GET /api/search?q=. An empty or whitespace query returns
// empty result lists, distinct from an error.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.Engine.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		errorResponse(w, err, "search failed")
		return
	}
	jsonResponse(w, http.StatusOK, results)
}
