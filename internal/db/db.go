// Package db owns the storage-engine lifecycle: registering the
// instrumented driver, opening the single shared handle, creating the
// schema, and seeding an empty database.
package db

import (
	"context"
	"database/sql"
	"log"

	"go.nhat.io/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	_ "modernc.org/sqlite"

	"customer-tracker/internal/config"
)

// Open registers an otelsql-wrapped sqlite driver and opens the database
// file at cfg.DatabasePath, creating it if absent. An error here is fatal
// for the caller; nothing useful can happen without the handle.
func Open(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	driverName, err := otelsql.Register("sqlite",
		otelsql.AllowRoot(),
		otelsql.TraceQueryWithArgs(),
		otelsql.TraceRowsAffected(),
		otelsql.TraceLastInsertID(),
		otelsql.WithSystem(semconv.DBSystemSqlite),
		otelsql.WithDatabaseName(cfg.DatabaseName),
		otelsql.WithInstanceName(cfg.DatabasePath),
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(driverName, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	// One logical thread of control, and sqlite serialises writers anyway.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	if err := otelsql.RecordStats(sqlDB,
		otelsql.WithSystem(semconv.DBSystemSqlite),
		otelsql.WithDatabaseName(cfg.DatabaseName),
	); err != nil {
		log.Println("Could not record connection stats:", err)
	}

	return sqlDB, nil
}

// Close closes the handle, logging rather than failing on error.
func Close(sqlDB *sql.DB) {
	if err := sqlDB.Close(); err != nil {
		log.Println("Error closing DB:", err)
		return
	}
	log.Println("Closed Database Successfully.")
}
