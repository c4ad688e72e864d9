package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginAttemptModel mirrors the append-only 'login_attempts' table.
// No unique constraints; indexed by code and time for audit queries.
type LoginAttemptModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"type:varchar(6);not null;index:idx_login_attempts_employee_code"`
	IPAddress    string    `gorm:"type:varchar(45)"`
	Success      bool      `gorm:"not null;default:false"`
	AttemptTime  time.Time `gorm:"autoCreateTime;index:idx_login_attempts_attempt_time"`
}

// TableName explicitly sets the table name for GORM.
func (LoginAttemptModel) TableName() string {
	return "login_attempts"
}

// BeforeCreate assigns the row ID application-side for portability between
// PostgreSQL and the sqlite test database.
func (m *LoginAttemptModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
