package auditlog

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog rows are append-only; nothing updates or deletes them.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     *uuid.UUID `gorm:"type:uuid;index:idx_audit_logs_user"`
	Action     string     `gorm:"type:varchar(20);not null;index:idx_audit_logs_action"`
	Resource   string     `gorm:"type:varchar(50);not null;index:idx_audit_logs_resource"`
	ResourceID string     `gorm:"type:varchar(64)"`
	Details    string     `gorm:"type:text"`
	IPAddress  string     `gorm:"type:varchar(45)"`
	UserAgent  string     `gorm:"type:varchar(255)"`
	CreatedAt  time.Time
}

const (
	ActionLogin   = "LOGIN"
	ActionLogout  = "LOGOUT"
	ActionCreate  = "CREATE"
	ActionUpdate  = "UPDATE"
	ActionDelete  = "DELETE"
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
)
