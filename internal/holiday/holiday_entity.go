package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Holiday rows are soft-deleted: the active flag flips, the date stays
// reserved in storage.
type Holiday struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_holidays_date"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
