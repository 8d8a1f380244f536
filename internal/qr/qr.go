// Package qr generates and caches tote QR codes as PNG files on disk.
package qr

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"totetracker/internal/model"
	"totetracker/internal/store"
)

// ImageSize is the pixel size of generated QR images.
const ImageSize = 256

// Encoder writes scannable QR images to a local file cache. Each tote's code
// encodes "{BaseURL}/tote/{id}".
type Encoder struct {
	// BaseURL is the externally reachable application URL, without a
	// trailing slash.
	BaseURL string

	// Dir is the on-disk cache directory for generated PNGs.
	Dir string
}

// Generate encodes the tote's URL into {Dir}/{id}.png and returns the public
// retrieval path for it.
func (e *Encoder) Generate(toteID string) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating qr cache dir: %w: %w", model.ErrEncodingFailed, err)
	}

	target := fmt.Sprintf("%s/tote/%s", e.BaseURL, toteID)
	path := filepath.Join(e.Dir, toteID+".png")
	if err := qrcode.WriteFile(target, qrcode.Medium, ImageSize, path); err != nil {
		return "", fmt.Errorf("encoding qr for tote %s: %w: %w", toteID, model.ErrEncodingFailed, err)
	}

	return "/qrcodes/" + toteID + ".png", nil
}

// ToteError records a single tote's failure during bulk regeneration.
type ToteError struct {
	ToteID string `json:"toteId"`
	Error  string `json:"error"`
}

// RegenerateResult summarizes a bulk regeneration run.
type RegenerateResult struct {
	Updated int         `json:"updated"`
	Total   int         `json:"total"`
	Errors  []ToteError `json:"errors,omitempty"`
}

// RegenerateAll rebuilds every tote's QR image from its ID and the current
// base URL, persisting the new retrieval path. Each tote is attempted
// independently; individual failures are recorded and do not abort the
// batch. Partial success is success. The operation is idempotent.
func (e *Encoder) RegenerateAll(ctx context.Context, db *sql.DB) (*RegenerateResult, error) {
	totes, err := store.ListTotes(ctx, db)
	if err != nil {
		return nil, err
	}

	result := &RegenerateResult{Total: len(totes)}
	for _, tote := range totes {
		url, err := e.Generate(tote.ID)
		if err == nil {
			err = store.SetToteQRCodeURL(ctx, db, tote.ID, url)
		}
		if err != nil {
			zap.L().Warn("qr regeneration failed for tote",
				zap.String("tote_id", tote.ID), zap.Error(err))
			result.Errors = append(result.Errors, ToteError{ToteID: tote.ID, Error: err.Error()})
			continue
		}
		result.Updated++
	}

	zap.L().Info("qr regeneration complete",
		zap.Int("updated", result.Updated), zap.Int("total", result.Total))
	return result, nil
}
