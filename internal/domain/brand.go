package domain

import "time"

// Field length limits enforced at the request boundary and mirrored by the
// database schema.
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 500
)

// Brand represents a brand record with a soft-delete lifecycle. A brand is
// live while DeletedAt is nil; once set it is never cleared.
type Brand struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Status      bool       `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the brand has been soft-deleted.
func (b *Brand) IsDeleted() bool {
	return b.DeletedAt != nil
}
