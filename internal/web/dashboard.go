package web

import (
	"net/http"

	"go.uber.org/zap"

	"totetracker/internal/aggregate"
	"totetracker/internal/model"
	"totetracker/internal/store"
)

// Dashboard handles GET /. Shows the most popular totes and overall counts.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	totes, err := store.ListTotes(r.Context(), s.DB)
	if err != nil {
		zap.L().Error("listing totes for dashboard", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	items, err := store.ListItems(r.Context(), s.DB, "")
	if err != nil {
		zap.L().Error("listing items for dashboard", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	stats := aggregate.ComputeToteStats(items)
	withStats := make([]model.ToteWithStats, 0, len(totes))
	for _, tote := range totes {
		withStats = append(withStats, model.ToteWithStats{
			Tote:      tote,
			ToteStats: stats[tote.ID],
		})
	}
	popular := aggregate.SortTotesByPopularity(withStats)
	if len(popular) > 3 {
		popular = popular[:3]
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		PopularTotes []model.ToteWithStats
		ToteCount    int
		ItemCount    int
		Unassigned   int
	}{
		PageData:     PageData{Title: "Dashboard"},
		PopularTotes: popular,
		ToteCount:    len(totes),
		ItemCount:    len(items),
		Unassigned:   aggregate.CountUnassigned(items),
	})
}
