package web

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"totetracker/internal/aggregate"
	"totetracker/internal/model"
	"totetracker/internal/store"
)

// ItemsPage handles GET /items. Items are grouped unassigned-first,
// name-sorted, filtered by an optional q parameter, and paginated.
func (s *Server) ItemsPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var items []model.ItemWithTote
	if query != "" {
		results, err := s.Search.Search(r.Context(), query)
		if err != nil {
			zap.L().Error("searching items", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		items = results.Items
	} else {
		var err error
		items, err = store.ListItemsWithTotes(r.Context(), s.DB)
		if err != nil {
			zap.L().Error("listing items", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	sorted := aggregate.SortAndGroupItems(items)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	paged, totalPages := aggregate.Paginate(sorted, page, aggregate.DefaultPageSize)
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	totes, err := store.ListTotes(r.Context(), s.DB)
	if err != nil {
		zap.L().Error("listing totes for item form", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "items.html", &struct {
		PageData
		Items      []model.ItemWithTote
		Totes      []model.Tote
		Total      int
		Page       int
		TotalPages int
	}{
		PageData:   PageData{Title: "Items", Query: query},
		Items:      paged,
		Totes:      totes,
		Total:      len(sorted),
		Page:       page,
		TotalPages: totalPages,
	})
}

// ItemNewPage handles GET /items/new. An optional tote query parameter
// preselects the tote.
func (s *Server) ItemNewPage(w http.ResponseWriter, r *http.Request) {
	totes, err := store.ListTotes(r.Context(), s.DB)
	if err != nil {
		zap.L().Error("listing totes for item form", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "item_form.html", &struct {
		PageData
		Item         *model.Item
		Totes        []model.Tote
		SelectedTote string
	}{
		PageData:     PageData{Title: "New Item"},
		Totes:        totes,
		SelectedTote: r.URL.Query().Get("tote"),
	})
}

// ItemCreateSubmit handles POST /items.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	quantity, _ := strconv.Atoi(r.FormValue("quantity"))

	_, err := store.CreateItem(r.Context(), s.DB,
		r.FormValue("name"), r.FormValue("description"), r.FormValue("brand"),
		quantity, formToteID(r))
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			totes, _ := store.ListTotes(r.Context(), s.DB)
			s.Templates.Render(w, "item_form.html", &struct {
				PageData
				Item         *model.Item
				Totes        []model.Tote
				SelectedTote string
			}{
				PageData: PageData{Title: "New Item", Error: "Name is required and quantity must be positive."},
				Totes:    totes,
			})
			return
		}
		zap.L().Error("creating item", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/items", http.StatusSeeOther)
}

// ItemEditPage handles GET /item/{id}/edit.
func (s *Server) ItemEditPage(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetItem(r.Context(), s.DB, r.PathValue("id"))
	if errors.Is(err, model.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		zap.L().Error("getting item", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	totes, err := store.ListTotes(r.Context(), s.DB)
	if err != nil {
		zap.L().Error("listing totes for item form", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	selected := ""
	if item.ToteID != nil {
		selected = *item.ToteID
	}

	s.Templates.Render(w, "item_form.html", &struct {
		PageData
		Item         *model.Item
		Totes        []model.Tote
		SelectedTote string
	}{
		PageData:     PageData{Title: "Edit " + item.Name},
		Item:         item,
		Totes:        totes,
		SelectedTote: selected,
	})
}

// ItemUpdateSubmit handles POST /item/{id}. Covers edits and moves,
// including moving to unassigned.
func (s *Server) ItemUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	quantity, _ := strconv.Atoi(r.FormValue("quantity"))

	err := store.UpdateItem(r.Context(), s.DB, id,
		r.FormValue("name"), r.FormValue("description"), r.FormValue("brand"),
		quantity, formToteID(r))
	if errors.Is(err, model.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		zap.L().Error("updating item", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/items", http.StatusSeeOther)
}

// ItemDeleteSubmit handles POST /item/{id}/delete.
func (s *Server) ItemDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	err := store.DeleteItem(r.Context(), s.DB, r.PathValue("id"))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		zap.L().Error("deleting item", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/items", http.StatusSeeOther)
}

// formToteID reads the tote select value; empty means unassigned.
func formToteID(r *http.Request) *string {
	id := r.FormValue("toteId")
	if id == "" {
		return nil
	}
	return &id
}
