package domain

import "time"

// Timestamps holds the standard lifecycle columns shared by every entity.
// DeletedAt is the soft-deletion marker; rows are never physically removed.
type Timestamps struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
