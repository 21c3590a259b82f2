package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/noteloft/noteloft/internal/domain"
)

// scannable abstracts pgx.Row and pgx.Rows for shared scan helpers.
type scannable interface {
	Scan(dest ...any) error
}

// invalidTextRepresentation is SQLSTATE 22P02, raised when a lookup value
// cannot be cast to the column type, e.g. a non-UUID note ID against the
// uuid primary key.
const invalidTextRepresentation = "22P02"

// isAbsentRow reports whether err means the requested row cannot exist:
// either no row matched, or the ID is not even a valid UUID. Both map to
// domain.ErrNotFound so a malformed ID is indistinguishable from a
// missing one.
func isAbsentRow(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}

// notFoundWrap checks whether err means the row is absent and, if so,
// wraps domain.ErrNotFound with the given message. Otherwise it wraps
// the original error.
func notFoundWrap(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if isAbsentRow(err) {
		return fmt.Errorf("%s: %w", msg, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// execExpectOne verifies that an Exec affected exactly one row. Absent
// rows (no match, malformed ID) surface as domain.ErrNotFound.
func execExpectOne(tag pgconn.CommandTag, err error, format string, args ...any) error {
	if err != nil {
		return notFoundWrap(err, format, args...)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf(fmt.Sprintf(format, args...)+": %w", domain.ErrNotFound)
	}
	return nil
}
