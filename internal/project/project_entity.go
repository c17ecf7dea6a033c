package project

import (
	"time"

	"github.com/google/uuid"

	"rikimaka/internal/user"
)

const (
	StatusPlanning  = "planning"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Project deletion is physical; there is no soft-delete flag here.
type Project struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string      `gorm:"type:varchar(150);not null"`
	Description    string      `gorm:"type:text;not null"`
	Budget         float64     `gorm:"type:numeric(14,2);not null"`
	EstimatedHours float64     `gorm:"not null;default:0"`
	StartDate      time.Time   `gorm:"type:date;not null"`
	EndDate        time.Time   `gorm:"type:date;not null"`
	Status         string      `gorm:"type:varchar(20);not null;default:'planning'"`
	AssignedUsers  []user.User `gorm:"many2many:project_users"`
	CreatedByID    uuid.UUID   `gorm:"type:uuid;not null"`
	CreatedBy      *user.User  `gorm:"foreignKey:CreatedByID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
