package api

import (
	"database/sql"
	"net/http"

	"go.uber.org/zap"

	"totetracker/internal/model"
	"totetracker/internal/qr"
	"totetracker/internal/store"
)

// TotesHandler handles tote CRUD endpoints.
type TotesHandler struct {
	DB      *sql.DB
	Encoder *qr.Encoder
}

type toteRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List handles GET /api/totes.
func (h *TotesHandler) List(w http.ResponseWriter, r *http.Request) {
	totes, err := store.ListTotes(r.Context(), h.DB)
	if err != nil {
		errorResponse(w, err, "failed to list totes")
		return
	}
	if totes == nil {
		totes = []model.Tote{}
	}
	jsonResponse(w, http.StatusOK, totes)
}

// Create handles POST /api/totes. The new tote's QR code is generated and
// its retrieval path persisted before responding.
func (h *TotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req toteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tote, err := store.CreateTote(r.Context(), h.DB, req.Name, req.Description, "")
	if err != nil {
		errorResponse(w, err, "failed to create tote")
		return
	}

	// A failed encoding leaves the tote without a QR image; the bulk
	// regeneration endpoint can rebuild it later.
	url, err := h.Encoder.Generate(tote.ID)
	if err == nil {
		err = store.SetToteQRCodeURL(r.Context(), h.DB, tote.ID, url)
	}
	if err != nil {
		zap.L().Error("qr generation at tote creation", zap.String("tote_id", tote.ID), zap.Error(err))
	} else {
		tote.QRCodeURL = url
	}

	jsonResponse(w, http.StatusCreated, tote)
}

// Get handles GET /api/totes/{id}, returning the tote with its items.
func (h *TotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	tote, err := store.GetTote(r.Context(), h.DB, id)
	if err != nil {
		errorResponse(w, err, "failed to get tote")
		return
	}

	items, err := store.ListItems(r.Context(), h.DB, id)
	if err != nil {
		errorResponse(w, err, "failed to list tote items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"tote":  tote,
		"items": items,
	})
}

// Update handles PUT /api/totes/{id}.
func (h *TotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req toteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.UpdateTote(r.Context(), h.DB, id, req.Name, req.Description); err != nil {
		errorResponse(w, err, "failed to update tote")
		return
	}

	tote, err := store.GetTote(r.Context(), h.DB, id)
	if err != nil {
		errorResponse(w, err, "failed to get tote")
		return
	}
	jsonResponse(w, http.StatusOK, tote)
}

// Delete handles DELETE /api/totes/{id}. Items in the tote are deleted with
// it.
func (h *TotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := store.DeleteTote(r.Context(), h.DB, id); err != nil {
		errorResponse(w, err, "failed to delete tote")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "tote deleted"})
}
