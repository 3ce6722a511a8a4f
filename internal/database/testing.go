package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewTestDB creates an in-memory SQLite database running the production
// migrations. The returned cleanup func closes it.
func NewTestDB() (*sqlx.DB, func(), error) {
	db, err := sqlx.Connect("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open test database: %w", err)
	}

	// Every connection to :memory: is a distinct database.
	db.SetMaxOpenConns(1)

	if err := Migrate(db.DB, "sqlite3"); err != nil {
		db.Close()
		return nil, nil, err
	}

	cleanup := func() {
		db.Close()
	}

	return db, cleanup, nil
}
