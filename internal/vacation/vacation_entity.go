package vacation

import (
	"time"

	"github.com/google/uuid"

	"rikimaka/internal/user"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Vacation is a leave request. Only pending requests may be edited or
// deleted; approved/rejected are terminal.
type Vacation struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_vacations_user"`
	User         *user.User `gorm:"foreignKey:UserID"`
	StartDate    time.Time  `gorm:"type:date;not null"`
	EndDate      time.Time  `gorm:"type:date;not null"`
	Days         int        `gorm:"not null;default:1"`
	Reason       string     `gorm:"type:text;not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_vacations_status"`
	ApprovedByID *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy   *user.User `gorm:"foreignKey:ApprovedByID"`
	ApprovalDate *time.Time
	Comments     *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
