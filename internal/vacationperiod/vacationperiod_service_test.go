package vacationperiod_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"rikimaka/internal/auditlog"
	"rikimaka/internal/vacationperiod"
	vacationperioderrors "rikimaka/internal/vacationperiod/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePeriodRepository struct {
	withTxFn              func(tx *sql.Tx) vacationperiod.Repository
	createFn              func(ctx context.Context, p *vacationperiod.VacationPeriod) error
	findAllActiveFn       func(ctx context.Context) ([]vacationperiod.VacationPeriod, error)
	findAllActiveLockedFn func(ctx context.Context) ([]vacationperiod.VacationPeriod, error)
	findByIDFn            func(ctx context.Context, id string) (*vacationperiod.VacationPeriod, error)
	updateFn              func(ctx context.Context, p *vacationperiod.VacationPeriod) error
}

func (f *fakePeriodRepository) WithTx(tx *sql.Tx) vacationperiod.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePeriodRepository) Create(ctx context.Context, p *vacationperiod.VacationPeriod) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePeriodRepository) FindAllActive(ctx context.Context) ([]vacationperiod.VacationPeriod, error) {
	if f.findAllActiveFn != nil {
		return f.findAllActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakePeriodRepository) FindAllActiveLocked(ctx context.Context) ([]vacationperiod.VacationPeriod, error) {
	if f.findAllActiveLockedFn != nil {
		return f.findAllActiveLockedFn(ctx)
	}
	return nil, nil
}

func (f *fakePeriodRepository) FindByID(ctx context.Context, id string) (*vacationperiod.VacationPeriod, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePeriodRepository) Update(ctx context.Context, p *vacationperiod.VacationPeriod) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func setupPeriodServiceTest(t *testing.T) (vacationperiod.Service, *fakePeriodRepository) {
	t.Helper()
	repo := &fakePeriodRepository{}
	return vacationperiod.NewService(repo, auditlog.NopRecorder{}), repo
}

func TestPeriodService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("success zeroes time components", func(t *testing.T) {
		svc, repo := setupPeriodServiceTest(t)

		var saved *vacationperiod.VacationPeriod
		repo.createFn = func(ctx context.Context, p *vacationperiod.VacationPeriod) error {
			saved = p
			return nil
		}

		resp, err := svc.Create(ctx, actorID, vacationperiod.CreatePeriodRequest{
			Name:      "Cierre anual",
			StartDate: "2026-12-15",
			EndDate:   "2026-12-31",
		})
		assert.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.Equal(t, time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC), saved.StartDate)
		assert.Equal(t, 0, saved.StartDate.Hour())
	})

	t.Run("end before start", func(t *testing.T) {
		svc, _ := setupPeriodServiceTest(t)

		_, err := svc.Create(ctx, actorID, vacationperiod.CreatePeriodRequest{
			Name:      "Cierre anual",
			StartDate: "2026-12-31",
			EndDate:   "2026-12-15",
		})
		assert.ErrorIs(t, err, vacationperioderrors.ErrInvalidDateRange)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, _ := setupPeriodServiceTest(t)

		_, err := svc.Create(ctx, actorID, vacationperiod.CreatePeriodRequest{
			Name:      "Cierre anual",
			StartDate: "15-12-2026",
			EndDate:   "2026-12-31",
		})
		assert.ErrorIs(t, err, vacationperioderrors.ErrInvalidDateFormat)
	})
}

func TestPeriodService_Deactivate(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("soft delete keeps the row out of the active set", func(t *testing.T) {
		svc, repo := setupPeriodServiceTest(t)

		p := &vacationperiod.VacationPeriod{
			ID:        uuid.New(),
			Name:      "Cierre anual",
			StartDate: time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			IsActive:  true,
		}
		repo.findByIDFn = func(ctx context.Context, id string) (*vacationperiod.VacationPeriod, error) {
			return p, nil
		}

		var saved *vacationperiod.VacationPeriod
		repo.updateFn = func(ctx context.Context, p *vacationperiod.VacationPeriod) error {
			saved = p
			return nil
		}

		err := svc.Deactivate(ctx, actorID, p.ID.String())
		assert.NoError(t, err)
		assert.False(t, saved.IsActive)
	})

	t.Run("unknown period", func(t *testing.T) {
		svc, _ := setupPeriodServiceTest(t)

		err := svc.Deactivate(ctx, actorID, uuid.New().String())
		assert.ErrorIs(t, err, vacationperioderrors.ErrPeriodNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := setupPeriodServiceTest(t)

		err := svc.Deactivate(ctx, actorID, "no-es-uuid")
		assert.ErrorIs(t, err, vacationperioderrors.ErrInvalidPeriodID)
	})
}

func TestPeriodService_ActivePeriodsTx(t *testing.T) {
	t.Run("reads locked rows on the caller transaction", func(t *testing.T) {
		svc, repo := setupPeriodServiceTest(t)

		var gotTx *sql.Tx
		locked := false
		repo.withTxFn = func(tx *sql.Tx) vacationperiod.Repository {
			gotTx = tx
			return repo
		}
		repo.findAllActiveLockedFn = func(ctx context.Context) ([]vacationperiod.VacationPeriod, error) {
			locked = true
			return []vacationperiod.VacationPeriod{{ID: uuid.New(), Name: "Cierre anual", IsActive: true}}, nil
		}

		tx := &sql.Tx{}
		periods, err := svc.ActivePeriodsTx(context.Background(), tx)
		assert.NoError(t, err)
		assert.True(t, locked)
		assert.Same(t, tx, gotTx)
		assert.Len(t, periods, 1)
	})
}
