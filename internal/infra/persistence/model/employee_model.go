// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeModel mirrors the 'employees' table. Phone number, identification
// number, and employee code each carry their own unique index; the index
// names are load-bearing, constraint-violation mapping matches on them.
type EmployeeModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullNames            string    `gorm:"type:varchar(255);not null"`
	PhoneNumber          string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_employees_phone_number"`
	IdentificationNumber string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_employees_identification_number"`
	EmployeeCode         string    `gorm:"type:varchar(6);not null;uniqueIndex:idx_employees_employee_code"`
	PasswordHash         string    `gorm:"column:password;type:varchar(255);not null"`
	ProfileImage         string    `gorm:"type:varchar(255)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}

// BeforeCreate assigns the surrogate ID application-side so the model works
// against both PostgreSQL and the sqlite test database.
func (m *EmployeeModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
