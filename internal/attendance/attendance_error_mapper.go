package attendance

import (
	"errors"

	attendanceerrors "go-ponto/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation  = "23505"
	constraintKindOnce = "uq_time_record_kind"
)

// mapRepositoryError turns a duplicate kind for the same day into a retryable
// conflict; it only happens when the day lock was bypassed.
func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintKindOnce {
		return attendanceerrors.ErrConcurrentMark
	}
	return err
}
