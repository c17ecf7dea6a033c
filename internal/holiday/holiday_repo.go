package holiday

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, h *Holiday) error
	FindAllActive(ctx context.Context) ([]Holiday, error)
	FindByID(ctx context.Context, id string) (*Holiday, error)
	ExistsByDate(ctx context.Context, date string, excludeID *string) (bool, error)
	Update(ctx context.Context, h *Holiday) error
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

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) FindAllActive(ctx context.Context) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Holiday, error) {
	var h Holiday
	err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error
	return &h, err
}

// ExistsByDate also matches soft-deleted rows: the date stays reserved.
func (r *repository) ExistsByDate(ctx context.Context, date string, excludeID *string) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&Holiday{}).
		Where("date = ?", date)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Save(h).Error
}
