package auditlog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, entry *AuditLog) error
	FindFiltered(ctx context.Context, filter ListFilter) ([]AuditLog, error)
	FindActors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ActorRef, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindFiltered(ctx context.Context, filter ListFilter) ([]AuditLog, error) {
	db := r.db.WithContext(ctx).Model(&AuditLog{})

	if filter.Action != "" {
		db = db.Where("action = ?", filter.Action)
	}
	if filter.Resource != "" {
		db = db.Where("resource = ?", filter.Resource)
	}
	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var logs []AuditLog
	err := db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

type actorRow struct {
	ID       uuid.UUID
	Name     string
	FullName string
}

// FindActors resolves actor display fields without importing the user
// package; the join fields are enumerated here, per endpoint.
func (r *repository) FindActors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ActorRef, error) {
	actors := make(map[uuid.UUID]ActorRef, len(ids))
	if len(ids) == 0 {
		return actors, nil
	}

	var rows []actorRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id", "name", "full_name").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		actors[row.ID] = ActorRef{
			ID:       row.ID.String(),
			Name:     row.Name,
			FullName: row.FullName,
		}
	}
	return actors, nil
}
