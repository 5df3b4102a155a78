package repository

import (
	"context"

	"github.com/Fylinde/brand-service/internal/domain"
)

// BrandFilter defines filter criteria for listing brands.
type BrandFilter struct {
	Status *bool
	Offset int
	Limit  int
}

// BrandRepository defines the interface for brand persistence operations.
// Every operation sees live (not soft-deleted) rows only; there is no way to
// read or resurrect a deleted record through this interface.
type BrandRepository interface {
	// Create inserts a new brand and assigns its ID. A live brand with the
	// same name causes a conflict error.
	Create(ctx context.Context, brand *domain.Brand) error

	// GetByID retrieves a live brand by its identifier.
	GetByID(ctx context.Context, id int64) (*domain.Brand, error)

	// List returns live brands matching the filter, ordered by id ascending,
	// along with the total count of matching rows.
	List(ctx context.Context, filter BrandFilter) ([]domain.Brand, int, error)

	// Update persists the full state of a loaded brand and refreshes
	// updated_at. Updating an absent or deleted brand is a not-found error.
	Update(ctx context.Context, brand *domain.Brand) error

	// SoftDelete marks a live brand as deleted. A second delete of the same
	// id is a not-found error since the record is no longer visible.
	SoftDelete(ctx context.Context, id int64) error

	// Activate sets status to active. Activating an already-active brand is
	// a conflict error.
	Activate(ctx context.Context, id int64) (*domain.Brand, error)

	// Deactivate sets status to inactive, symmetric to Activate.
	Deactivate(ctx context.Context, id int64) (*domain.Brand, error)
}
