package holiday_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"rikimaka/internal/auditlog"
	"rikimaka/internal/holiday"
	holidayerrors "rikimaka/internal/holiday/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeHolidayRepository struct {
	withTxFn        func(tx *sql.Tx) holiday.Repository
	createFn        func(ctx context.Context, h *holiday.Holiday) error
	findAllActiveFn func(ctx context.Context) ([]holiday.Holiday, error)
	findByIDFn      func(ctx context.Context, id string) (*holiday.Holiday, error)
	existsByDateFn  func(ctx context.Context, date string, excludeID *string) (bool, error)
	updateFn        func(ctx context.Context, h *holiday.Holiday) error
}

func (f *fakeHolidayRepository) WithTx(tx *sql.Tx) holiday.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeHolidayRepository) Create(ctx context.Context, h *holiday.Holiday) error {
	if f.createFn != nil {
		return f.createFn(ctx, h)
	}
	return nil
}

func (f *fakeHolidayRepository) FindAllActive(ctx context.Context) ([]holiday.Holiday, error) {
	if f.findAllActiveFn != nil {
		return f.findAllActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) FindByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeHolidayRepository) ExistsByDate(ctx context.Context, date string, excludeID *string) (bool, error) {
	if f.existsByDateFn != nil {
		return f.existsByDateFn(ctx, date, excludeID)
	}
	return false, nil
}

func (f *fakeHolidayRepository) Update(ctx context.Context, h *holiday.Holiday) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, h)
	}
	return nil
}

type holidayServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service holiday.Service
	repo    *fakeHolidayRepository
}

func setupHolidayServiceTest(t *testing.T) *holidayServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeHolidayRepository{}
	svc := holiday.NewService(db, repo, auditlog.NopRecorder{})

	return &holidayServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestHolidayService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		resp, err := deps.service.Create(ctx, actorID, holiday.CreateHolidayRequest{
			Date: "2026-12-25",
			Name: "  Navidad  ",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Navidad", resp.Name)
		assert.Equal(t, "2026-12-25", resp.Date)
		assert.True(t, resp.IsActive)
	})

	t.Run("duplicate date", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.existsByDateFn = func(ctx context.Context, date string, excludeID *string) (bool, error) {
			assert.Nil(t, excludeID)
			return true, nil
		}

		_, err := deps.service.Create(ctx, actorID, holiday.CreateHolidayRequest{
			Date: "2026-12-25",
			Name: "Navidad",
		})
		assert.ErrorIs(t, err, holidayerrors.ErrDuplicateDate)
	})

	t.Run("malformed date", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, actorID, holiday.CreateHolidayRequest{
			Date: "25/12/2026",
			Name: "Navidad",
		})
		assert.ErrorIs(t, err, holidayerrors.ErrInvalidDateFormat)
	})
}

func TestHolidayService_Update(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("date change excludes self from the duplicate check", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		h := &holiday.Holiday{
			ID:       uuid.New(),
			Date:     time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC),
			Name:     "Navidad",
			IsActive: true,
		}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*holiday.Holiday, error) {
			return h, nil
		}
		deps.repo.existsByDateFn = func(ctx context.Context, date string, excludeID *string) (bool, error) {
			assert.NotNil(t, excludeID)
			assert.Equal(t, h.ID.String(), *excludeID)
			return false, nil
		}

		newDate := "2026-12-24"
		resp, err := deps.service.Update(ctx, actorID, h.ID.String(), holiday.UpdateHolidayRequest{
			Date: &newDate,
		})
		assert.NoError(t, err)
		assert.Equal(t, "2026-12-24", resp.Date)
	})

	t.Run("missing holiday", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		name := "Ano Nuevo"
		_, err := deps.service.Update(ctx, actorID, uuid.New().String(), holiday.UpdateHolidayRequest{
			Name: &name,
		})
		assert.ErrorIs(t, err, holidayerrors.ErrHolidayNotFound)
	})
}

func TestHolidayService_Deactivate(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("soft delete flips the flag and keeps the row", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.db.Close()

		h := &holiday.Holiday{
			ID:       uuid.New(),
			Date:     time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC),
			Name:     "Navidad",
			IsActive: true,
		}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*holiday.Holiday, error) {
			return h, nil
		}

		var saved *holiday.Holiday
		deps.repo.updateFn = func(ctx context.Context, h *holiday.Holiday) error {
			saved = h
			return nil
		}

		err := deps.service.Deactivate(ctx, actorID, h.ID.String())
		assert.NoError(t, err)
		assert.NotNil(t, saved)
		assert.False(t, saved.IsActive)
	})

	t.Run("deactivated holiday no longer lists", func(t *testing.T) {
		deps := setupHolidayServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllActiveFn = func(ctx context.Context) ([]holiday.Holiday, error) {
			return []holiday.Holiday{}, nil
		}

		holidays, err := deps.service.GetAll(ctx)
		assert.NoError(t, err)
		assert.Empty(t, holidays)
	})
}
