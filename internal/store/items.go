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

// CreateItem creates a new item, optionally assigned to a tote. A nil toteID
// creates the item unassigned. Quantity 0 defaults to 1.
func CreateItem(ctx context.Context, db *sql.DB, name, description, brand string, quantity int, toteID *string) (*model.Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("item name required: %w", model.ErrValidation)
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", model.ErrValidation)
	}
	if err := checkToteRef(ctx, db, toteID); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO items (id, name, description, brand, quantity, tote_id) VALUES (?, ?, ?, ?, ?, ?)`,
		id, name, nullable(description), nullable(brand), quantity, toteID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w: %w", model.ErrStoreUnavailable, err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	item := &model.Item{}
	var description, brand, toteID sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, description, brand, quantity, tote_id, created_at FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &description, &brand, &item.Quantity, &toteID, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w: %w", model.ErrStoreUnavailable, err)
	}
	item.Description = description.String
	item.Brand = brand.String
	if toteID.Valid {
		item.ToteID = &toteID.String
	}
	return item, nil
}

// ListItems returns all items in creation order, optionally filtered to one
// tote. An empty toteID returns everything.
func ListItems(ctx context.Context, db *sql.DB, toteID string) ([]model.Item, error) {
	var rows *sql.Rows
	var err error

	if toteID != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT id, name, description, brand, quantity, tote_id, created_at
			 FROM items WHERE tote_id = ? ORDER BY created_at, rowid`, toteID,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT id, name, description, brand, quantity, tote_id, created_at
			 FROM items ORDER BY created_at, rowid`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing items: %w: %w", model.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var description, brand, tid sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &description, &brand, &item.Quantity, &tid, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w: %w", model.ErrStoreUnavailable, err)
		}
		item.Description = description.String
		item.Brand = brand.String
		if tid.Valid {
			item.ToteID = &tid.String
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing items: %w: %w", model.ErrStoreUnavailable, err)
	}
	return items, nil
}

// ListItemsWithTotes returns all items joined with their owning tote's name,
// in creation order. Unassigned items have a nil ToteName.
func ListItemsWithTotes(ctx context.Context, db *sql.DB) ([]model.ItemWithTote, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT i.id, i.name, i.description, i.brand, i.quantity, i.tote_id, i.created_at,
		        t.name AS tote_name
		 FROM items i
		 LEFT JOIN totes t ON t.id = i.tote_id
		 ORDER BY i.created_at, i.rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items with totes: %w: %w", model.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var items []model.ItemWithTote
	for rows.Next() {
		var item model.ItemWithTote
		var description, brand, tid, toteName sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &description, &brand, &item.Quantity, &tid, &item.CreatedAt, &toteName); err != nil {
			return nil, fmt.Errorf("scanning item with tote: %w: %w", model.ErrStoreUnavailable, err)
		}
		item.Description = description.String
		item.Brand = brand.String
		if tid.Valid {
			item.ToteID = &tid.String
		}
		if toteName.Valid {
			item.ToteName = &toteName.String
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing items with totes: %w: %w", model.ErrStoreUnavailable, err)
	}
	return items, nil
}

// UpdateItem updates an item's fields, including moving it between totes or
// to unassigned (nil toteID). The write is a single atomic statement.
func UpdateItem(ctx context.Context, db *sql.DB, id, name, description, brand string, quantity int, toteID *string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("item name required: %w", model.ErrValidation)
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", model.ErrValidation)
	}
	if err := checkToteRef(ctx, db, toteID); err != nil {
		return err
	}

	result, err := db.ExecContext(ctx,
		`UPDATE items SET name = ?, description = ?, brand = ?, quantity = ?, tote_id = ? WHERE id = ?`,
		name, nullable(description), nullable(brand), quantity, toteID, id,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w: %w", model.ErrStoreUnavailable, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("item %s: %w", id, model.ErrNotFound)
	}
	return nil
}

// DeleteItem deletes an item.
func DeleteItem(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w: %w", model.ErrStoreUnavailable, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("item %s: %w", id, model.ErrNotFound)
	}
	return nil
}

// checkToteRef verifies that a non-nil tote reference points at an existing
// tote, before any mutation is attempted.
func checkToteRef(ctx context.Context, db *sql.DB, toteID *string) error {
	if toteID == nil {
		return nil
	}
	var exists int
	err := db.QueryRowContext(ctx, `SELECT 1 FROM totes WHERE id = ?`, *toteID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("tote %s does not exist: %w", *toteID, model.ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("checking tote reference: %w: %w", model.ErrStoreUnavailable, err)
	}
	return nil
}
