package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"totetracker/internal/imaging"
)

// QRCodesHandler serves the QR image cache.
type QRCodesHandler struct {
	Dir string
}

// Get handles GET /qrcodes/{file}. An optional size query parameter scales
// the PNG for printing.
func (h *QRCodesHandler) Get(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	if !strings.HasSuffix(file, ".png") || filepath.Base(file) != file {
		jsonError(w, http.StatusBadRequest, "invalid qr code name")
		return
	}

	data, err := os.ReadFile(filepath.Join(h.Dir, file))
	if os.IsNotExist(err) {
		jsonError(w, http.StatusNotFound, "qr code not found")
		return
	}
	if err != nil {
		zap.L().Error("reading qr code", zap.String("file", file), zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to read qr code")
		return
	}

	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			jsonError(w, http.StatusBadRequest, "invalid size")
			return
		}
		data, err = imaging.ScalePNG(data, size)
		if err != nil {
			zap.L().Error("scaling qr code", zap.String("file", file), zap.Error(err))
			jsonError(w, http.StatusInternalServerError, "failed to scale qr code")
			return
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if _, err := w.Write(data); err != nil {
		zap.L().Error("writing qr code response", zap.Error(err))
	}
}
