package api

import (
	"database/sql"
	"net/http"

	"totetracker/internal/model"
	"totetracker/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type itemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Quantity    int     `json:"quantity"`
	ToteID      *string `json:"toteId"`
}

// List handles GET /api/items, returning all items joined with their owning
// tote's name.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItemsWithTotes(r.Context(), h.DB)
	if err != nil {
		errorResponse(w, err, "failed to list items")
		return
	}
	if items == nil {
		items = []model.ItemWithTote{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, req.Name, req.Description, req.Brand, req.Quantity, req.ToteID)
	if err != nil {
		errorResponse(w, err, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		errorResponse(w, err, "failed to get item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}. Changing toteId moves the item,
// including to unassigned (null).
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.UpdateItem(r.Context(), h.DB, id, req.Name, req.Description, req.Brand, req.Quantity, req.ToteID); err != nil {
		errorResponse(w, err, "failed to update item")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		errorResponse(w, err, "failed to get item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteItem(r.Context(), h.DB, r.PathValue("id")); err != nil {
		errorResponse(w, err, "failed to delete item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}
