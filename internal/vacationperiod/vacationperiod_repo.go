package vacationperiod

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *VacationPeriod) error
	FindAllActive(ctx context.Context) ([]VacationPeriod, error)
	FindAllActiveLocked(ctx context.Context) ([]VacationPeriod, error)
	FindByID(ctx context.Context, id string) (*VacationPeriod, error)
	Update(ctx context.Context, p *VacationPeriod) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, p *VacationPeriod) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAllActive(ctx context.Context) ([]VacationPeriod, error) {
	var periods []VacationPeriod
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

// FindAllActiveLocked takes SHARE locks on the active windows so a period
// activation cannot commit between a blackout check and the write it guards.
// Call it through WithTx; outside a transaction the locks release immediately.
func (r *repository) FindAllActiveLocked(ctx context.Context) ([]VacationPeriod, error) {
	var periods []VacationPeriod
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("is_active = ?", true).
		Order("start_date ASC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*VacationPeriod, error) {
	var p VacationPeriod
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *VacationPeriod) error {
	return r.db.WithContext(ctx).Save(p).Error
}
