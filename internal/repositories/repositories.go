package repositories

import (
	"database/sql"

	intconfig "wearecars/internal/config"
)

// Execer lets write operations run against either the shared connection or an
// open transaction.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func sharedDB(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}
