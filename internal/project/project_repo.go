package project

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rikimaka/internal/user"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Project) error
	FindAll(ctx context.Context) ([]Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
	ReplaceAssignments(ctx context.Context, p *Project, users []user.User) error
	AddAssignment(ctx context.Context, p *Project, u *user.User) error
	FindUsersByIDs(ctx context.Context, ids []string) ([]user.User, error)
	FindUserByID(ctx context.Context, id string) (*user.User, error)
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

func (r *repository) Create(ctx context.Context, p *Project) error {
	// Associations are managed explicitly through the assignment methods.
	return r.db.WithContext(ctx).Omit("AssignedUsers").Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Preload("AssignedUsers").
		Preload("CreatedBy").
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Preload("AssignedUsers").
		Preload("CreatedBy").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Omit("AssignedUsers").Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	pid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Exec("DELETE FROM project_users WHERE project_id = ?", pid).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&Project{}, "id = ?", pid).Error
}

func (r *repository) ReplaceAssignments(ctx context.Context, p *Project, users []user.User) error {
	return r.db.WithContext(ctx).Model(p).Association("AssignedUsers").Replace(users)
}

// AddAssignment has set semantics: appending an already assigned user is a
// no-op, not an error.
func (r *repository) AddAssignment(ctx context.Context, p *Project, u *user.User) error {
	return r.db.WithContext(ctx).Model(p).Association("AssignedUsers").Append(u)
}

func (r *repository) FindUsersByIDs(ctx context.Context, ids []string) ([]user.User, error) {
	var users []user.User
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("is_active = ?", true).
		Find(&users).Error
	return users, err
}

func (r *repository) FindUserByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&u, "id = ?", id).Error
	return &u, err
}
