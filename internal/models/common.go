package models

import "time"

// Timestamps maps the created_at/updated_at columns every table carries.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
