package vacationperiod

import (
	"time"

	"github.com/google/uuid"
)

// VacationPeriod is a blackout window: while active, no vacation request may
// touch any day inside [StartDate, EndDate].
type VacationPeriod struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	StartDate   time.Time `gorm:"type:date;not null;index:idx_vacation_periods_dates"`
	EndDate     time.Time `gorm:"type:date;not null;index:idx_vacation_periods_dates"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
