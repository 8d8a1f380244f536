package web

import (
	"net/http"

	"go.uber.org/zap"

	"totetracker/internal/search"
)

// SearchPage handles GET /search. An empty query renders the empty state,
// which is distinct from a failed search.
func (s *Server) SearchPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := s.Search.Search(r.Context(), query)
	if err != nil {
		zap.L().Error("search failed", zap.String("query", query), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "search.html", &struct {
		PageData
		Results *search.Results
	}{
		PageData: PageData{Title: "Search", Query: query},
		Results:  results,
	})
}
