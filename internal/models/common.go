package models

import "time"

// Timestamps embeds the lifecycle columns shared by every table.
type Timestamps struct {
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
