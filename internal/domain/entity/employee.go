// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the core entity of the system: a registered staff member.
// The employee code is generated by the system at registration and acts as
// the login identifier; it is never chosen by the user and never reassigned.
type Employee struct {
	ID                   uuid.UUID // Surrogate identifier used inside tokens and foreign references.
	FullNames            string    // The employee's full name as entered at signup.
	PhoneNumber          string    // Mobile number, globally unique and immutable once registered.
	IdentificationNumber string    // National ID/passport number, globally unique and immutable.
	EmployeeCode         string    // Generated 6-digit login code, globally unique and immutable.
	PasswordHash         string    // bcrypt digest; never exposed outside the persistence boundary.
	ProfileImage         string    // Optional path/URL of the uploaded profile image.
	CreatedAt            time.Time // Timestamp of record creation, assigned by the store.
	UpdatedAt            time.Time // Timestamp of the last modification, maintained by the store.
}

// Public returns a projection of the employee stripped of credential material,
// safe to serialize into API responses.
func (e *Employee) Public() *EmployeePublic {
	if e == nil {
		return nil
	}

	return &EmployeePublic{
		ID:           e.ID,
		FullNames:    e.FullNames,
		PhoneNumber:  e.PhoneNumber,
		EmployeeCode: e.EmployeeCode,
		ProfileImage: e.ProfileImage,
		CreatedAt:    e.CreatedAt,
	}
}

// EmployeePublic is the externally visible projection of an Employee.
// The password hash and identification number stay server-side.
type EmployeePublic struct {
	ID           uuid.UUID `json:"id"`
	FullNames    string    `json:"full_names"`
	PhoneNumber  string    `json:"phone_number"`
	EmployeeCode string    `json:"employee_code"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
