package model

// Item represents a tracked thing, optionally assigned to a tote.
// A nil ToteID means the item is unassigned.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	Quantity    int     `json:"quantity"`
	ToteID      *string `json:"toteId"`
	CreatedAt   int64   `json:"createdAt"`
}

// ItemWithTote is an item joined with its owning tote's name.
// ToteName is nil when the item is unassigned.
type ItemWithTote struct {
	Item
	ToteName *string `json:"toteName"`
}

// SearchResult is the flattened item view returned by a search. It carries
// everything needed to render a result without a second fetch.
type SearchResult = ItemWithTote
