package entity

import (
	"time"
)

// AuditLog is one entry of a user's activity trail
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit actions
const (
	AuditActionUserRegister     = "user.register"
	AuditActionUserLogin        = "user.login"
	AuditActionUserLogout       = "user.logout"
	AuditActionUserDelete       = "user.delete"
	AuditActionProfileUpdate    = "profile.update"
	AuditActionRecordCreate     = "record.create"
	AuditActionRecordUpdate     = "record.update"
	AuditActionRecordDelete     = "record.delete"
	AuditActionGoalCreate       = "goal.create"
	AuditActionGoalUpdate       = "goal.update"
	AuditActionGoalDelete       = "goal.delete"
	AuditActionGoalLog          = "goal.log"
	AuditActionReportGenerate   = "report.generate"
	AuditActionReportDelete     = "report.delete"
	AuditActionReminderCreate   = "reminder.create"
	AuditActionReminderUpdate   = "reminder.update"
	AuditActionReminderDelete   = "reminder.delete"
	AuditActionReminderGenerate = "reminder.generate"
	AuditActionShareCreate      = "share.create"
	AuditActionShareUpdate      = "share.update"
	AuditActionShareDelete      = "share.delete"
	AuditActionCommentCreate    = "comment.create"
	AuditActionCommentDelete    = "comment.delete"
)
