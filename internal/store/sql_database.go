package store

import (
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/migrations"
)

// DB is a SQLite connection together with the logger used for
// connection-level events.
type DB struct {
	*sqlx.DB
	logger *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	if db == nil || db.DB == nil {
		return migrations.Migrate(nil)
	}
	return migrations.Migrate(db.DB.DB)
}
