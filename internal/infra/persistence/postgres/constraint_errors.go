package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// isUniqueConstraintViolation reports whether err is a unique-constraint
// rejection from the store. The store's constraint layer is the actual
// enforcement point for uniqueness; pre-checks only reduce the error rate.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}

	// sqlite (tests) reports "UNIQUE constraint failed: employees.phone_number".
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// uniqueViolationColumn identifies which unique column a violation hit, using
// the PostgreSQL constraint name when available and falling back to the error
// text. Returns the bare column name or "" when it cannot tell.
func uniqueViolationColumn(err error) string {
	source := err.Error()

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		source = pgErr.ConstraintName
	}

	switch {
	case strings.Contains(source, "phone_number"):
		return "phone_number"
	case strings.Contains(source, "identification_number"):
		return "identification_number"
	case strings.Contains(source, "employee_code"):
		return "employee_code"
	}

	return ""
}

func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") ||
		strings.Contains(msg, "not null") ||
		strings.Contains(msg, "23502") // PostgreSQL not_null_violation error code
}
