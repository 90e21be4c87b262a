package domain

import "time"

// Timestamps holds the bookkeeping times every persisted entity carries.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
