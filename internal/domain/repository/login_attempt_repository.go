package repository

import (
	"context"

	"staffgate/internal/domain/entity"
)

// LoginAttemptRepository records login attempts for audit purposes.
// The table is append-only; nothing in the system reads it back on the hot path.
type LoginAttemptRepository interface {
	// Record appends a single login attempt.
	Record(ctx context.Context, attempt *entity.LoginAttempt) error
}
