package api

import (
	"database/sql"
	"net/http"

	"totetracker/internal/qr"
	"totetracker/internal/search"
)

// NewRouter creates the API router with all endpoints registered. The
// returned mux also owns /qrcodes/ so the image cache is served with the
// same handler for pages and API clients.
func NewRouter(db *sql.DB, encoder *qr.Encoder) http.Handler {
	mux := http.NewServeMux()

	totesHandler := &TotesHandler{DB: db, Encoder: encoder}
	itemsHandler := &ItemsHandler{DB: db}
	searchHandler := &SearchHandler{Engine: search.New(db)}
	qrCodesHandler := &QRCodesHandler{Dir: encoder.Dir}
	adminHandler := &AdminHandler{DB: db, Encoder: encoder}

	// Totes.
	mux.HandleFunc("GET /api/totes", totesHandler.List)
	mux.HandleFunc("POST /api/totes", totesHandler.Create)
	mux.HandleFunc("GET /api/totes/{id}", totesHandler.Get)
	mux.HandleFunc("PUT /api/totes/{id}", totesHandler.Update)
	mux.HandleFunc("DELETE /api/totes/{id}", totesHandler.Delete)

	// Items.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PUT /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)

	// Search.
	mux.HandleFunc("GET /api/search", searchHandler.Search)

	// Admin maintenance.
	mux.HandleFunc("POST /api/admin/regenerate-qr", adminHandler.RegenerateQR)

	// QR image cache.
	mux.HandleFunc("GET /qrcodes/{file}", qrCodesHandler.Get)

	return mux
}
