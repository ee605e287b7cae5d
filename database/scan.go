package database

// rowScanner lets scan helpers work with both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// jsonOrEmpty guards jsonb writes: a nil slice would encode as NULL and
// violate the NOT NULL DEFAULT '[]' columns, so it becomes an empty array.
func jsonOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
