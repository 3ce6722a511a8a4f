package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	config "github.com/vyrade/postlog/configs"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// maxOpenConns bounds the shared pool; requests queue beyond it.
const maxOpenConns = 10

// Connect opens the Postgres pool, verifies connectivity and applies any
// pending migrations.
func Connect(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns)

	if err := Migrate(db.DB, "postgres"); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs the embedded goose migrations against db.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("database migrations completed")
	return nil
}
