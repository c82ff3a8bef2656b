package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrPeriodNotFound  = errors.New("period not found")
	ErrDuplicateMember = errors.New("member already exists")
	ErrDuplicatePeriod = errors.New("period already exists")
)

const uniqueViolation = "23505"

// isUniqueViolation recognizes constraint errors from both drivers we ship:
// pgx in production and lib/pq inside the test containers.
func isUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
