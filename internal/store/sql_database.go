package store

import (
	"database/sql"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/migrations"
)

// DB wraps the single process-wide *sql.DB handle to the on-disk SQLite
// database. All repositories share this handle; it is opened once at startup
// and closed once during the ordered shutdown drain.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
