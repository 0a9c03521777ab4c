package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS ratings (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    latitude      REAL,
    longitude     REAL,
    when_visited  TEXT NOT NULL,
    is_favorited  INTEGER NOT NULL DEFAULT 0 CHECK(is_favorited IN (0,1)),
    study_vibe    INTEGER NOT NULL CHECK(study_vibe BETWEEN 0 AND 10),
    food_drink    INTEGER NOT NULL CHECK(food_drink BETWEEN 0 AND 10),
    availability  INTEGER NOT NULL CHECK(availability BETWEEN 0 AND 5),
    noise_level   INTEGER NOT NULL DEFAULT 1,
    overall       REAL NOT NULL,
    comments      TEXT,
    created_at    TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE TABLE IF NOT EXISTS wishlist (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    latitude     REAL,
    longitude    REAL,
    has_visited  INTEGER NOT NULL DEFAULT 0 CHECK(has_visited IN (0,1)),
    comments     TEXT,
    created_at   TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE INDEX IF NOT EXISTS idx_ratings_is_favorited ON ratings(is_favorited);
`

// Open opens or creates the SQLite database and initializes the schema.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
