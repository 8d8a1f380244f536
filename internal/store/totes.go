package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"totetracker/internal/model"
)

// CreateTote creates a new tote. The QR code URL may be empty and set later
// via SetToteQRCodeURL.
func CreateTote(ctx context.Context, db *sql.DB, name, description, qrCodeURL string) (*model.Tote, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("tote name required: %w", model.ErrValidation)
	}

	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO totes (id, name, description, qr_code_url) VALUES (?, ?, ?, ?)`,
		id, name, nullable(description), nullable(qrCodeURL),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tote: %w: %w", model.ErrStoreUnavailable, err)
	}

	return GetTote(ctx, db, id)
}

// GetTote returns a tote by ID.
func GetTote(ctx context.Context, db *sql.DB, id string) (*model.Tote, error) {
	tote := &model.Tote{}
	var description, qrCodeURL sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, description, qr_code_url, created_at FROM totes WHERE id = ?`, id,
	).Scan(&tote.ID, &tote.Name, &description, &qrCodeURL, &tote.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tote %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting tote: %w: %w", model.ErrStoreUnavailable, err)
	}
	tote.Description = description.String
	tote.QRCodeURL = qrCodeURL.String
	return tote, nil
}

// ListTotes returns all totes in creation order.
func ListTotes(ctx context.Context, db *sql.DB) ([]model.Tote, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, qr_code_url, created_at FROM totes ORDER BY created_at, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing totes: %w: %w", model.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var totes []model.Tote
	for rows.Next() {
		var tote model.Tote
		var description, qrCodeURL sql.NullString
		if err := rows.Scan(&tote.ID, &tote.Name, &description, &qrCodeURL, &tote.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning tote: %w: %w", model.ErrStoreUnavailable, err)
		}
		tote.Description = description.String
		tote.QRCodeURL = qrCodeURL.String
		totes = append(totes, tote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing totes: %w: %w", model.ErrStoreUnavailable, err)
	}
	return totes, nil
}

// UpdateTote updates a tote's name and description.
func UpdateTote(ctx context.Context, db *sql.DB, id, name, description string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("tote name required: %w", model.ErrValidation)
	}

	result, err := db.ExecContext(ctx,
		`UPDATE totes SET name = ?, description = ? WHERE id = ?`,
		name, nullable(description), id,
	)
	if err != nil {
		return fmt.Errorf("updating tote: %w: %w", model.ErrStoreUnavailable, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("tote %s: %w", id, model.ErrNotFound)
	}
	return nil
}

// SetToteQRCodeURL stores the retrieval path of a tote's generated QR image.
func SetToteQRCodeURL(ctx context.Context, db *sql.DB, id, url string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE totes SET qr_code_url = ? WHERE id = ?`, nullable(url), id,
	)
	if err != nil {
		return fmt.Errorf("setting tote qr code url: %w: %w", model.ErrStoreUnavailable, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("tote %s: %w", id, model.ErrNotFound)
	}
	return nil
}

// DeleteTote deletes a tote and all items assigned to it. Both deletes run in
// one transaction so the cascade is all-or-nothing.
func DeleteTote(ctx context.Context, db *sql.DB, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w: %w", model.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE tote_id = ?`, id); err != nil {
		return fmt.Errorf("deleting tote items: %w: %w", model.ErrStoreUnavailable, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM totes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tote: %w: %w", model.ErrStoreUnavailable, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("tote %s: %w", id, model.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tote deletion: %w: %w", model.ErrStoreUnavailable, err)
	}
	return nil
}

// nullable maps an empty string to NULL so optional text columns stay NULL
// instead of storing empty strings.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
