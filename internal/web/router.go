package web

import (
	"database/sql"
	"net/http"

	"totetracker/internal/qr"
	"totetracker/internal/search"
	webembed "totetracker/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, encoder *qr.Encoder) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
		Encoder:   encoder,
		Search:    search.New(db),
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.Dashboard)

	mux.HandleFunc("GET /totes", s.TotesPage)
	mux.HandleFunc("GET /totes/new", s.ToteNewPage)
	mux.HandleFunc("POST /totes", s.ToteCreateSubmit)
	mux.HandleFunc("GET /tote/{id}", s.ToteDetailPage)
	mux.HandleFunc("GET /tote/{id}/edit", s.ToteEditPage)
	mux.HandleFunc("POST /tote/{id}", s.ToteUpdateSubmit)
	mux.HandleFunc("POST /tote/{id}/delete", s.ToteDeleteSubmit)

	mux.HandleFunc("GET /items", s.ItemsPage)
	mux.HandleFunc("GET /items/new", s.ItemNewPage)
	mux.HandleFunc("POST /items", s.ItemCreateSubmit)
	mux.HandleFunc("GET /item/{id}/edit", s.ItemEditPage)
	mux.HandleFunc("POST /item/{id}", s.ItemUpdateSubmit)
	mux.HandleFunc("POST /item/{id}/delete", s.ItemDeleteSubmit)

	mux.HandleFunc("GET /search", s.SearchPage)

	return mux, nil
}
