package database

import (
	"errors"

	"github.com/lib/pq"
)

const pqForeignKeyViolation = "23503"

// isForeignKeyViolation reports whether err is a Postgres FK violation,
// which here means the referenced bench is gone
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqForeignKeyViolation
}
