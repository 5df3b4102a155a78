package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Fylinde/brand-service/internal/domain"
	"github.com/Fylinde/brand-service/internal/repository"
	"github.com/Fylinde/brand-service/pkg/database"
	apperrors "github.com/Fylinde/brand-service/pkg/errors"
)

const brandColumns = "id, name, description, status, created_at, updated_at, deleted_at"

// BrandRepository implements repository.BrandRepository using PostgreSQL.
// Name uniqueness among live rows is guarded by a partial unique index, so
// concurrent creates with the same name resolve to exactly one winner.
type BrandRepository struct {
	pool database.DBTX
}

// NewBrandRepository creates a new PostgreSQL-backed brand repository.
func NewBrandRepository(pool database.DBTX) *BrandRepository {
	return &BrandRepository{pool: pool}
}

// Create inserts a new brand and assigns the generated id.
func (r *BrandRepository) Create(ctx context.Context, b *domain.Brand) error {
	query := `
		INSERT INTO brands (name, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		b.Name,
		b.Description,
		b.Status,
		b.CreatedAt,
		b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict(fmt.Sprintf("brand with name %q already exists", b.Name))
		}
		return fmt.Errorf("insert brand: %w", err)
	}

	return nil
}

// GetByID retrieves a live brand by id.
func (r *BrandRepository) GetByID(ctx context.Context, id int64) (*domain.Brand, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM brands
		WHERE id = $1 AND deleted_at IS NULL`, brandColumns)

	var b domain.Brand
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Name,
		&b.Description,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("brand", id)
		}
		return nil, fmt.Errorf("scan brand: %w", err)
	}

	return &b, nil
}

// List returns live brands in insertion order with the total match count.
func (r *BrandRepository) List(ctx context.Context, filter repository.BrandFilter) ([]domain.Brand, int, error) {
	var (
		conditions = []string{"deleted_at IS NULL"}
		args       []any
		argIndex   = 1
	)

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s, count(*) OVER() AS total_count
		FROM brands
		WHERE %s
		ORDER BY id
		LIMIT $%d OFFSET $%d`,
		brandColumns, strings.Join(conditions, " AND "), argIndex, argIndex+1,
	)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var (
		brands     []domain.Brand
		totalCount int
	)

	for rows.Next() {
		var b domain.Brand

		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Description,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.DeletedAt,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan brand row: %w", err)
		}

		brands = append(brands, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate brand rows: %w", err)
	}

	if brands == nil {
		brands = []domain.Brand{}
	}

	return brands, totalCount, nil
}

// Update persists the full state of a loaded brand.
func (r *BrandRepository) Update(ctx context.Context, b *domain.Brand) error {
	b.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE brands
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4 AND deleted_at IS NULL`

	ct, err := r.pool.Exec(ctx, query,
		b.Name,
		b.Description,
		b.UpdatedAt,
		b.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict(fmt.Sprintf("brand with name %q already exists", b.Name))
		}
		return fmt.Errorf("update brand: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("brand", b.ID)
	}

	return nil
}

// SoftDelete marks a live brand as deleted. The row is retained for history;
// deleted_at is never cleared.
func (r *BrandRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE brands
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete brand: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("brand", id)
	}

	return nil
}

// Activate sets status to active for a currently inactive brand.
func (r *BrandRepository) Activate(ctx context.Context, id int64) (*domain.Brand, error) {
	return r.setStatus(ctx, id, true, "brand is already active")
}

// Deactivate sets status to inactive for a currently active brand.
func (r *BrandRepository) Deactivate(ctx context.Context, id int64) (*domain.Brand, error) {
	return r.setStatus(ctx, id, false, "brand is already inactive")
}

// setStatus flips the status flag inside a transaction. The row is locked
// first so the current-state check and the update are observed as one unit
// by concurrent callers.
func (r *BrandRepository) setStatus(ctx context.Context, id int64, target bool, conflictMsg string) (*domain.Brand, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current bool
	err = tx.QueryRow(ctx,
		`SELECT status FROM brands WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`,
		id,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("brand", id)
		}
		return nil, fmt.Errorf("lock brand row: %w", err)
	}

	if current == target {
		return nil, apperrors.Conflict(conflictMsg)
	}

	query := fmt.Sprintf(`
		UPDATE brands
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING %s`, brandColumns)

	var b domain.Brand
	err = tx.QueryRow(ctx, query, target, time.Now().UTC(), id).Scan(
		&b.ID,
		&b.Name,
		&b.Description,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.DeletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update brand status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit status change: %w", err)
	}

	return &b, nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
