package report

import (
	"time"

	"github.com/google/uuid"

	"rikimaka/internal/project"
	"rikimaka/internal/user"
)

const (
	ActivityCompleted  = "completed"
	ActivityInProgress = "in-progress"
	ActivityBlocked    = "blocked"
)

// DailyReport holds one day of work split into per-project activities.
// TotalHours is derived from the activities on every save, never taken
// from the client.
type DailyReport struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date       time.Time  `gorm:"type:date;not null;index:idx_daily_reports_date"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_daily_reports_user"`
	User       *user.User `gorm:"foreignKey:UserID"`
	Activities []Activity `gorm:"foreignKey:ReportID"`
	TotalHours float64    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DailyReport) TableName() string { return "daily_reports" }

type Activity struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReportID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_report_activities_report"`
	ProjectID   uuid.UUID        `gorm:"type:uuid;not null;index:idx_report_activities_project"`
	Project     *project.Project `gorm:"foreignKey:ProjectID"`
	Description string           `gorm:"type:text;not null"`
	Hours       float64          `gorm:"not null"`
	Status      string           `gorm:"type:varchar(20);not null"`
}

func (Activity) TableName() string { return "report_activities" }
