package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// IsNoRows reports whether err is pgx's no-rows condition. Callers map it
// to the repository-level not-found signal; any other query error from a
// fixed read-only statement is treated as a store failure.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
