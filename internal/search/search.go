// Package search implements free-text lookup across items and totes.
//
// Matching is a case-insensitive substring test, OR-ed across fields: items
// match on name, brand, description, or the owning tote's name; totes match
// on name or description. There is no ranking: results keep store order.
package search

import (
	"context"
	"database/sql"
	"strings"

	"totetracker/internal/model"
	"totetracker/internal/store"
)

// Results holds everything a search matched. Both slices are non-nil.
type Results struct {
	Items []model.SearchResult `json:"items"`
	Totes []model.ToteSummary  `json:"totes"`
}

// Engine answers search queries against the entity store. It only reads.
type Engine struct {
	db *sql.DB
}

// New creates a search engine over the given store handle.
func New(db *sql.DB) *Engine {
	return &Engine{db: db}
}

// Search returns all items and totes matching the query. An empty or
// whitespace-only query returns empty results without touching the store.
// On a store failure the error is returned with no partial results.
func (e *Engine) Search(ctx context.Context, query string) (*Results, error) {
	results := &Results{
		Items: []model.SearchResult{},
		Totes: []model.ToteSummary{},
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results, nil
	}

	// Both reads must complete before matching so item and tote views are
	// combined from the same pass.
	items, err := store.ListItemsWithTotes(ctx, e.db)
	if err != nil {
		return nil, err
	}
	totes, err := store.ListTotes(ctx, e.db)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, item := range items {
		if item.ToteID != nil {
			counts[*item.ToteID]++
		}
	}

	for _, item := range items {
		if matchesItem(item, q) {
			results.Items = append(results.Items, item)
		}
	}
	for _, tote := range totes {
		if contains(tote.Name, q) || contains(tote.Description, q) {
			results.Totes = append(results.Totes, model.ToteSummary{
				ID:          tote.ID,
				Name:        tote.Name,
				Description: tote.Description,
				ItemCount:   counts[tote.ID],
			})
		}
	}

	return results, nil
}

// matchesItem reports whether the lowercased query hits any searchable item
// field. Unassigned items have no tote name to match on.
func matchesItem(item model.ItemWithTote, q string) bool {
	if contains(item.Name, q) || contains(item.Brand, q) || contains(item.Description, q) {
		return true
	}
	return item.ToteName != nil && contains(*item.ToteName, q)
}

func contains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}
