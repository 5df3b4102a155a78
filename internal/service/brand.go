package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Fylinde/brand-service/internal/domain"
	"github.com/Fylinde/brand-service/internal/repository"
	apperrors "github.com/Fylinde/brand-service/pkg/errors"
)

// EventPublisher publishes brand lifecycle events. Publishing is
// best-effort: the service logs failures and never rolls back the
// state change that triggered the event.
type EventPublisher interface {
	PublishBrandCreated(ctx context.Context, brand *domain.Brand) error
	PublishBrandUpdated(ctx context.Context, brand *domain.Brand) error
	PublishBrandDeleted(ctx context.Context, brandID int64) error
	PublishBrandActivated(ctx context.Context, brandID int64) error
	PublishBrandDeactivated(ctx context.Context, brandID int64) error
}

// BrandCache caches single-brand lookups. Get returns nil on a miss.
type BrandCache interface {
	Get(ctx context.Context, id int64) (*domain.Brand, error)
	Set(ctx context.Context, brand *domain.Brand) error
	Invalidate(ctx context.Context, id int64) error
}

// BrandService implements the business logic for brand operations.
type BrandService struct {
	repo      repository.BrandRepository
	publisher EventPublisher
	cache     BrandCache
	logger    *slog.Logger
}

// NewBrandService creates a new brand service.
func NewBrandService(repo repository.BrandRepository, publisher EventPublisher, cache BrandCache, logger *slog.Logger) *BrandService {
	return &BrandService{
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		logger:    logger,
	}
}

// CreateBrandInput holds the parameters for creating a brand.
type CreateBrandInput struct {
	Name        string
	Description *string
}

// UpdateBrandInput holds the parameters for a partial brand update.
// Status is deliberately absent: activation state changes only through
// ActivateBrand and DeactivateBrand.
type UpdateBrandInput struct {
	Name        *string
	Description *string
}

// CreateBrand creates a new brand. Brands start out active.
func (s *BrandService) CreateBrand(ctx context.Context, input *CreateBrandInput) (*domain.Brand, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	brand := &domain.Brand{
		Name:        input.Name,
		Description: input.Description,
		Status:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}

	if err := s.publisher.PublishBrandCreated(ctx, brand); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish brand.created event",
			slog.Int64("brand_id", brand.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "brand created",
		slog.Int64("brand_id", brand.ID),
		slog.String("name", brand.Name),
	)

	return brand, nil
}

// GetBrand retrieves a live brand by its ID, consulting the cache first.
func (s *BrandService) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	if cached, err := s.cache.Get(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "brand cache read failed",
			slog.Int64("brand_id", id),
			slog.String("error", err.Error()),
		)
	} else if cached != nil {
		return cached, nil
	}

	brand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand by id: %w", err)
	}

	if err := s.cache.Set(ctx, brand); err != nil {
		s.logger.WarnContext(ctx, "brand cache write failed",
			slog.Int64("brand_id", id),
			slog.String("error", err.Error()),
		)
	}

	return brand, nil
}

// ListBrands returns a filtered, paginated list of live brands in
// insertion order.
func (s *BrandService) ListBrands(ctx context.Context, filter repository.BrandFilter) ([]domain.Brand, int, error) {
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	brands, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list brands: %w", err)
	}

	return brands, total, nil
}

// UpdateBrand applies a partial update to an existing brand. Absent
// fields keep their current values.
func (s *BrandService) UpdateBrand(ctx context.Context, id int64, input *UpdateBrandInput) (*domain.Brand, error) {
	brand, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand for update: %w", err)
	}

	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
		brand.Name = *input.Name
	}

	if input.Description != nil {
		if err := validateDescription(input.Description); err != nil {
			return nil, err
		}
		brand.Description = input.Description
	}

	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}

	s.invalidateCache(ctx, id)

	if err := s.publisher.PublishBrandUpdated(ctx, brand); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish brand.updated event",
			slog.Int64("brand_id", brand.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "brand updated",
		slog.Int64("brand_id", brand.ID),
		slog.String("name", brand.Name),
	)

	return brand, nil
}

// DeleteBrand soft-deletes a live brand. The brand disappears from
// reads but its row is retained.
func (s *BrandService) DeleteBrand(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}

	s.invalidateCache(ctx, id)

	if err := s.publisher.PublishBrandDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish brand.deleted event",
			slog.Int64("brand_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "brand deleted", slog.Int64("brand_id", id))

	return nil
}

// ActivateBrand transitions an inactive brand to active.
func (s *BrandService) ActivateBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	brand, err := s.repo.Activate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("activate brand: %w", err)
	}

	s.invalidateCache(ctx, id)

	if err := s.publisher.PublishBrandActivated(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish brand.activated event",
			slog.Int64("brand_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "brand activated", slog.Int64("brand_id", id))

	return brand, nil
}

// DeactivateBrand transitions an active brand to inactive.
func (s *BrandService) DeactivateBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	brand, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("deactivate brand: %w", err)
	}

	s.invalidateCache(ctx, id)

	if err := s.publisher.PublishBrandDeactivated(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish brand.deactivated event",
			slog.Int64("brand_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "brand deactivated", slog.Int64("brand_id", id))

	return brand, nil
}

func (s *BrandService) invalidateCache(ctx context.Context, id int64) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "brand cache invalidation failed",
			slog.Int64("brand_id", id),
			slog.String("error", err.Error()),
		)
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.InvalidInput("brand name is required")
	}
	if len(name) > domain.MaxNameLength {
		return apperrors.InvalidInput(fmt.Sprintf("brand name must not exceed %d characters", domain.MaxNameLength))
	}
	return nil
}

func validateDescription(description *string) error {
	if description != nil && len(*description) > domain.MaxDescriptionLength {
		return apperrors.InvalidInput(fmt.Sprintf("brand description must not exceed %d characters", domain.MaxDescriptionLength))
	}
	return nil
}
