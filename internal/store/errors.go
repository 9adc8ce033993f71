package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a queried row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate value for unique column")

	// ErrInvalidReference is returned when an insert references a row that
	// does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// classify maps driver errors to the package sentinel errors, wrapping them
// with the calling operation name. pgx.ErrNoRows becomes ErrNotFound; the
// PostgreSQL error codes for unique and foreign key violations become
// ErrDuplicate and ErrInvalidReference. Anything else is wrapped unchanged.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
func classify(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w", op, ErrDuplicate)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, ErrInvalidReference)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
