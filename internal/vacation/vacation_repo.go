package vacation

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, v *Vacation) error
	FindAll(ctx context.Context) ([]Vacation, error)
	FindByUser(ctx context.Context, userID string) ([]Vacation, error)
	FindPending(ctx context.Context) ([]Vacation, error)
	FindByID(ctx context.Context, id string) (*Vacation, error)
	Update(ctx context.Context, v *Vacation) error
	Delete(ctx context.Context, id string) error
	OwnerExists(ctx context.Context, userID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto an open transaction so the blackout
// check and the insert commit or fail together.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, v *Vacation) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Vacation, error) {
	var vacations []Vacation
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("ApprovedBy").
		Order("created_at DESC").
		Find(&vacations).Error
	return vacations, err
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]Vacation, error) {
	var vacations []Vacation
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("ApprovedBy").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&vacations).Error
	return vacations, err
}

func (r *repository) FindPending(ctx context.Context) ([]Vacation, error) {
	var vacations []Vacation
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", StatusPending).
		Order("created_at DESC").
		Find(&vacations).Error
	return vacations, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Vacation, error) {
	var v Vacation
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("ApprovedBy").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *repository) Update(ctx context.Context, v *Vacation) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Vacation{}, "id = ?", id).Error
}

func (r *repository) OwnerExists(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", userID).
		Where("is_active = ?", true).
		Count(&count).Error
	return count > 0, err
}
