package model

// Tote represents a storage container. The ID is an opaque UUID string and
// CreatedAt is seconds since epoch, both immutable after creation.
type Tote struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	QRCodeURL   string `json:"qrCodeUrl,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

// ToteStats holds per-tote statistics derived from the live item list.
type ToteStats struct {
	ItemCount     int `json:"itemCount"`
	TotalQuantity int `json:"totalQuantity"`
}

// ToteWithStats is a tote enriched with its derived statistics.
type ToteWithStats struct {
	Tote
	ToteStats
}

// ToteSummary is a tote matched by a search, with its live item count.
type ToteSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ItemCount   int    `json:"itemCount"`
}
