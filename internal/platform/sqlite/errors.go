package sqlite

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// isUniqueConstraintErr reports whether the error is a SQLite UNIQUE
// constraint violation, which store implementations map to store.ErrDuplicate
// variants.
func isUniqueConstraintErr(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
