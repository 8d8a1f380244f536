package api

import (
	"database/sql"
	"fmt"
	"net/http"

	"totetracker/internal/qr"
)

// AdminHandler handles bulk maintenance endpoints.
type AdminHandler struct {
	DB      *sql.DB
	Encoder *qr.Encoder
}

// RegenerateQR handles POST /api/admin/regenerate-qr. Every tote is
// attempted; per-tote failures are reported, not fatal.
func (h *AdminHandler) RegenerateQR(w http.ResponseWriter, r *http.Request) {
	result, err := h.Encoder.RegenerateAll(r.Context(), h.DB)
	if err != nil {
		errorResponse(w, err, "failed to regenerate qr codes")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("regenerated QR codes for %d/%d totes", result.Updated, result.Total),
		"updated": result.Updated,
		"total":   result.Total,
		"errors":  result.Errors,
	})
}
