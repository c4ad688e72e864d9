package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoginAttempt is an append-only audit entry written when someone tries to
// log in. The submitted code is stored as-is and may not correspond to any
// employee. Attempts are never mutated or deleted and are not consulted for
// lockout decisions.
type LoginAttempt struct {
	ID           uuid.UUID // Unique ID for this audit row.
	EmployeeCode string    // The code as submitted by the caller.
	IPAddress    string    // Originating network address of the request.
	Success      bool      // Whether the credentials verified.
	AttemptTime  time.Time // When the attempt happened, assigned by the store.
}
