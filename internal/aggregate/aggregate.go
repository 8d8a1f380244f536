// Package aggregate derives display orderings and per-tote statistics from
// the live item and tote lists. Everything here is a pure function of its
// inputs; nothing reads or writes the store.
package aggregate

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"totetracker/internal/model"
)

// DefaultPageSize is the fixed page size used by the item listing pages.
const DefaultPageSize = 12

// ComputeToteStats returns per-tote item counts and summed quantities.
// Unassigned items are excluded. Totes with no items are absent from the
// map; callers default to zero stats on a missed lookup.
func ComputeToteStats(items []model.Item) map[string]model.ToteStats {
	stats := make(map[string]model.ToteStats)
	for _, item := range items {
		if item.ToteID == nil {
			continue
		}
		s := stats[*item.ToteID]
		s.ItemCount++
		s.TotalQuantity += item.Quantity
		stats[*item.ToteID] = s
	}
	return stats
}

// CountUnassigned returns the number of items not assigned to any tote.
func CountUnassigned(items []model.Item) int {
	n := 0
	for _, item := range items {
		if item.ToteID == nil {
			n++
		}
	}
	return n
}

// SortTotesByPopularity orders totes by descending item count. The sort is
// stable: ties keep their input order. The input slice is not mutated.
func SortTotesByPopularity(totes []model.ToteWithStats) []model.ToteWithStats {
	sorted := make([]model.ToteWithStats, len(totes))
	copy(sorted, totes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ItemCount > sorted[j].ItemCount
	})
	return sorted
}

// SortAndGroupItems orders items for listing: unassigned items first, then
// assigned ones, each group name-sorted with a locale-aware case-insensitive
// comparison. The result is deterministic across calls on identical input,
// so slicing it into fixed-size pages is reproducible. The input slice is
// not mutated.
func SortAndGroupItems(items []model.ItemWithTote) []model.ItemWithTote {
	c := collate.New(language.Und, collate.Loose)
	sorted := make([]model.ItemWithTote, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if (a.ToteID == nil) != (b.ToteID == nil) {
			return a.ToteID == nil
		}
		return c.CompareString(a.Name, b.Name) < 0
	})
	return sorted
}

// Paginate slices a sorted item list into the given 1-based page. A page
// size of 0 uses DefaultPageSize; out-of-range pages clamp to the nearest
// valid page. The second return value is the total number of pages.
func Paginate(items []model.ItemWithTote, page, perPage int) ([]model.ItemWithTote, int) {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
