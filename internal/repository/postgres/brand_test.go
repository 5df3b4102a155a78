package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fylinde/brand-service/internal/domain"
	"github.com/Fylinde/brand-service/internal/repository"
	"github.com/Fylinde/brand-service/pkg/database"
	apperrors "github.com/Fylinde/brand-service/pkg/errors"
)

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func setupRepo(t *testing.T) (*BrandRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	repo := NewBrandRepository(mock)
	return repo, mock
}

func strPtr(s string) *string {
	return &s
}

func sampleBrand() *domain.Brand {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Brand{
		ID:          1,
		Name:        "Acme",
		Description: strPtr("Widgets"),
		Status:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func brandColumnNames() []string {
	return []string{"id", "name", "description", "status", "created_at", "updated_at", "deleted_at"}
}

func brandRow(b *domain.Brand) *pgxmock.Rows {
	return pgxmock.NewRows(brandColumnNames()).
		AddRow(b.ID, b.Name, b.Description, b.Status, b.CreatedAt, b.UpdatedAt, b.DeletedAt)
}

func uniqueViolation() error {
	return errors.New(`ERROR: duplicate key value violates unique constraint "brands_name_live_key" (SQLSTATE 23505)`)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestBrandRepository_Create_Success(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	b := sampleBrand()
	b.ID = 0

	mock.ExpectQuery("INSERT INTO brands").
		WithArgs(b.Name, b.Description, b.Status, b.CreatedAt, b.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	err := repo.Create(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_Create_DuplicateName(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	b := sampleBrand()
	b.ID = 0

	mock.ExpectQuery("INSERT INTO brands").
		WithArgs(b.Name, b.Description, b.Status, b.CreatedAt, b.UpdatedAt).
		WillReturnError(uniqueViolation())

	err := repo.Create(context.Background(), b)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_Create_PersistenceFailure(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	b := sampleBrand()
	b.ID = 0

	mock.ExpectQuery("INSERT INTO brands").
		WithArgs(b.Name, b.Description, b.Status, b.CreatedAt, b.UpdatedAt).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), b)

	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// GetByID
// ---------------------------------------------------------------------------

func TestBrandRepository_GetByID_Success(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	b := sampleBrand()

	mock.ExpectQuery("SELECT (.+) FROM brands").
		WithArgs(b.ID).
		WillReturnRows(brandRow(b))

	got, err := repo.GetByID(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, "Acme", got.Name)
	assert.True(t, got.Status)
	assert.Nil(t, got.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM brands").
		WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows(brandColumnNames()))

	got, err := repo.GetByID(context.Background(), 999)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestBrandRepository_List_Pagination(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	b1 := sampleBrand()
	b2 := sampleBrand()
	b2.ID = 2
	b2.Name = "Globex"

	rows := pgxmock.NewRows(append(brandColumnNames(), "total_count")).
		AddRow(b1.ID, b1.Name, b1.Description, b1.Status, b1.CreatedAt, b1.UpdatedAt, b1.DeletedAt, 5).
		AddRow(b2.ID, b2.Name, b2.Description, b2.Status, b2.CreatedAt, b2.UpdatedAt, b2.DeletedAt, 5)

	mock.ExpectQuery("SELECT (.+) FROM brands").
		WithArgs(2, 0).
		WillReturnRows(rows)

	brands, total, err := repo.List(context.Background(), repository.BrandFilter{Offset: 0, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, brands, 2)
	// Insertion order: id ascending.
	assert.Equal(t, int64(1), brands[0].ID)
	assert.Equal(t, int64(2), brands[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_List_StatusFilter(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	inactive := sampleBrand()
	inactive.Status = false

	rows := pgxmock.NewRows(append(brandColumnNames(), "total_count")).
		AddRow(inactive.ID, inactive.Name, inactive.Description, inactive.Status, inactive.CreatedAt, inactive.UpdatedAt, inactive.DeletedAt, 1)

	status := false
	mock.ExpectQuery("SELECT (.+) FROM brands").
		WithArgs(status, 10, 0).
		WillReturnRows(rows)

	brands, total, err := repo.List(context.Background(), repository.BrandFilter{Status: &status, Offset: 0, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, brands, 1)
	assert.False(t, brands[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_List_Empty(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM brands").
		WithArgs(10, 0).
		WillReturnRows(pgxmock.NewRows(append(brandColumnNames(), "total_count")))

	brands, total, err := repo.List(context.Background(), repository.BrandFilter{Offset: 0, Limit: 10})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, brands)
	assert.Empty(t, brands)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestBrandRepository_Update_Success(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	b := sampleBrand()
	before := b.UpdatedAt

	mock.ExpectExec("UPDATE brands").
		WithArgs(b.Name, b.Description, pgxmock.AnyArg(), b.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), b)

	require.NoError(t, err)
	assert.True(t, b.UpdatedAt.After(before))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_Update_NotFound(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	b := sampleBrand()
	b.ID = 404

	mock.ExpectExec("UPDATE brands").
		WithArgs(b.Name, b.Description, pgxmock.AnyArg(), b.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), b)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_Update_DuplicateName(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	b := sampleBrand()

	mock.ExpectExec("UPDATE brands").
		WithArgs(b.Name, b.Description, pgxmock.AnyArg(), b.ID).
		WillReturnError(uniqueViolation())

	err := repo.Update(context.Background(), b)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// SoftDelete
// ---------------------------------------------------------------------------

func TestBrandRepository_SoftDelete_Success(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE brands").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SoftDelete(context.Background(), 1)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_SoftDelete_AlreadyDeleted(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	// A deleted row is invisible to the live-row predicate, so a second
	// delete affects zero rows and reports not found.
	mock.ExpectExec("UPDATE brands").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.SoftDelete(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// Activate / Deactivate
// ---------------------------------------------------------------------------

func TestBrandRepository_Activate_Success(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	activated := sampleBrand()
	activated.Status = true

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM brands").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(false))
	mock.ExpectQuery("UPDATE brands").
		WithArgs(true, pgxmock.AnyArg(), int64(1)).
		WillReturnRows(brandRow(activated))
	mock.ExpectCommit()

	got, err := repo.Activate(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_Activate_AlreadyActive(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM brands").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(true))
	mock.ExpectRollback()

	got, err := repo.Activate(context.Background(), 1)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Contains(t, err.Error(), "already active")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_Activate_NotFound(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM brands").
		WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	got, err := repo.Activate(context.Background(), 999)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_Deactivate_Success(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	deactivated := sampleBrand()
	deactivated.Status = false

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM brands").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(true))
	mock.ExpectQuery("UPDATE brands").
		WithArgs(false, pgxmock.AnyArg(), int64(1)).
		WillReturnRows(brandRow(deactivated))
	mock.ExpectCommit()

	got, err := repo.Deactivate(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_Deactivate_AlreadyInactive(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM brands").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(false))
	mock.ExpectRollback()

	got, err := repo.Deactivate(context.Background(), 1)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Contains(t, err.Error(), "already inactive")
	assert.NoError(t, mock.ExpectationsWereMet())
}
