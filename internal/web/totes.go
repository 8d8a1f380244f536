package web

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"totetracker/internal/aggregate"
	"totetracker/internal/model"
	"totetracker/internal/store"
)

// TotesPage handles GET /totes. Totes are listed by popularity with their
// live statistics.
func (s *Server) TotesPage(w http.ResponseWriter, r *http.Request) {
	totes, err := store.ListTotes(r.Context(), s.DB)
	if err != nil {
		zap.L().Error("listing totes", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	items, err := store.ListItems(r.Context(), s.DB, "")
	if err != nil {
		zap.L().Error("listing items for tote stats", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	stats := aggregate.ComputeToteStats(items)
	withStats := make([]model.ToteWithStats, 0, len(totes))
	for _, tote := range totes {
		withStats = append(withStats, model.ToteWithStats{Tote: tote, ToteStats: stats[tote.ID]})
	}

	s.Templates.Render(w, "totes.html", &struct {
		PageData
		Totes []model.ToteWithStats
	}{
		PageData: PageData{Title: "Totes"},
		Totes:    aggregate.SortTotesByPopularity(withStats),
	})
}

// ToteNewPage handles GET /totes/new.
func (s *Server) ToteNewPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "tote_form.html", &struct {
		PageData
		Tote *model.Tote
	}{
		PageData: PageData{Title: "New Tote"},
	})
}

// ToteCreateSubmit handles POST /totes. Creates the tote, generates its QR
// code, and redirects to the detail page.
func (s *Server) ToteCreateSubmit(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	description := r.FormValue("description")

	tote, err := store.CreateTote(r.Context(), s.DB, name, description, "")
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			s.Templates.Render(w, "tote_form.html", &struct {
				PageData
				Tote *model.Tote
			}{
				PageData: PageData{Title: "New Tote", Error: "Name is required."},
			})
			return
		}
		zap.L().Error("creating tote", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	url, err := s.Encoder.Generate(tote.ID)
	if err == nil {
		err = store.SetToteQRCodeURL(r.Context(), s.DB, tote.ID, url)
	}
	if err != nil {
		zap.L().Error("qr generation at tote creation", zap.String("tote_id", tote.ID), zap.Error(err))
	}

	http.Redirect(w, r, "/tote/"+tote.ID, http.StatusSeeOther)
}

// ToteDetailPage handles GET /tote/{id} — the page a tote's QR code points
// at.
func (s *Server) ToteDetailPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	tote, err := store.GetTote(r.Context(), s.DB, id)
	if errors.Is(err, model.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		zap.L().Error("getting tote", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	items, err := store.ListItems(r.Context(), s.DB, id)
	if err != nil {
		zap.L().Error("listing tote items", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	totalQuantity := 0
	for _, item := range items {
		totalQuantity += item.Quantity
	}

	s.Templates.Render(w, "tote_detail.html", &struct {
		PageData
		Tote          *model.Tote
		Items         []model.Item
		TotalQuantity int
	}{
		PageData:      PageData{Title: tote.Name},
		Tote:          tote,
		Items:         items,
		TotalQuantity: totalQuantity,
	})
}

// ToteEditPage handles GET /tote/{id}/edit.
func (s *Server) ToteEditPage(w http.ResponseWriter, r *http.Request) {
	tote, err := store.GetTote(r.Context(), s.DB, r.PathValue("id"))
	if errors.Is(err, model.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		zap.L().Error("getting tote", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "tote_form.html", &struct {
		PageData
		Tote *model.Tote
	}{
		PageData: PageData{Title: "Edit " + tote.Name},
		Tote:     tote,
	})
}

// ToteUpdateSubmit handles POST /tote/{id}.
func (s *Server) ToteUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := store.UpdateTote(r.Context(), s.DB, id, r.FormValue("name"), r.FormValue("description"))
	if errors.Is(err, model.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		zap.L().Error("updating tote", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/tote/"+id, http.StatusSeeOther)
}

// ToteDeleteSubmit handles POST /tote/{id}/delete. The tote's items go with
// it; the confirmation dialog on the listing page spells that out.
func (s *Server) ToteDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	err := store.DeleteTote(r.Context(), s.DB, r.PathValue("id"))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		zap.L().Error("deleting tote", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/totes", http.StatusSeeOther)
}
