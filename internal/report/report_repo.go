package report

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *DailyReport) error
	FindAll(ctx context.Context) ([]DailyReport, error)
	FindByUser(ctx context.Context, userID string) ([]DailyReport, error)
	FindByProject(ctx context.Context, projectID string) ([]DailyReport, error)
	FindByID(ctx context.Context, id string) (*DailyReport, error)
	Update(ctx context.Context, r *DailyReport) error
	ReplaceActivities(ctx context.Context, r *DailyReport, activities []Activity) error
	Delete(ctx context.Context, id string) error
	HoursByProject(ctx context.Context) ([]ProjectHours, error)
	CountProjects(ctx context.Context, ids []string) (int64, error)
	OwnerExists(ctx context.Context, userID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, rep *DailyReport) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *repository) FindAll(ctx context.Context) ([]DailyReport, error) {
	var reports []DailyReport
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Activities.Project").
		Order("date DESC").
		Find(&reports).Error
	return reports, err
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]DailyReport, error) {
	var reports []DailyReport
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Activities.Project").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&reports).Error
	return reports, err
}

func (r *repository) FindByProject(ctx context.Context, projectID string) ([]DailyReport, error) {
	var reports []DailyReport
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Activities.Project").
		Where("id IN (SELECT report_id FROM report_activities WHERE project_id = ?)", projectID).
		Order("date DESC").
		Find(&reports).Error
	return reports, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*DailyReport, error) {
	var rep DailyReport
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Activities.Project").
		First(&rep, "id = ?", id).Error
	return &rep, err
}

func (r *repository) Update(ctx context.Context, rep *DailyReport) error {
	return r.db.WithContext(ctx).Omit("Activities").Save(rep).Error
}

// ReplaceActivities swaps the full activity list; partial activity edits are
// not part of the contract.
func (r *repository) ReplaceActivities(ctx context.Context, rep *DailyReport, activities []Activity) error {
	if err := r.db.WithContext(ctx).
		Delete(&Activity{}, "report_id = ?", rep.ID).Error; err != nil {
		return err
	}
	if len(activities) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&activities).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Delete(&Activity{}, "report_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&DailyReport{}, "id = ?", id).Error
}

// HoursByProject groups every activity across every report by project.
// reportCount is the number of distinct reports touching the project, and
// the ordering by name keeps the output deterministic.
func (r *repository) HoursByProject(ctx context.Context) ([]ProjectHours, error) {
	var stats []ProjectHours
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.name AS project_name,
		       COALESCE(SUM(a.hours), 0) AS total_hours,
		       COUNT(DISTINCT a.report_id) AS report_count
		FROM report_activities a
		JOIN projects p ON p.id = a.project_id
		GROUP BY p.id, p.name
		ORDER BY p.name ASC
	`).Scan(&stats).Error
	return stats, err
}

func (r *repository) CountProjects(ctx context.Context, ids []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("projects").
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
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
