package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when no record matches the given id, token or
	// slug. Handlers translate it to 404.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique constraint (blog or case study
	// slug, admin username) is violated. Handlers translate it to 409.
	ErrConflict = errors.New("record already exists")
)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
