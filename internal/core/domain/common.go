package domain

import "time"

// CreatedAt is embedded by entities that are immutable once written.
type CreatedAt struct {
	CreatedAt time.Time `json:"createdAt"`
}

// Timestamps is embedded by entities whose mutable flags carry an update time.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
