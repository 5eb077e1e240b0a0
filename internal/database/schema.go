package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const createVenuesTable = `CREATE TABLE IF NOT EXISTS venues (
	id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	city VARCHAR(120) NOT NULL,
	state VARCHAR(120) NOT NULL,
	address VARCHAR(120) NOT NULL,
	phone VARCHAR(120) NOT NULL,
	image_link VARCHAR(500) NULL,
	genres TEXT NOT NULL,
	facebook_link VARCHAR(120) NULL,
	website_link VARCHAR(120) NULL,
	seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description TEXT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	KEY idx_venues_location (city, state)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const createArtistsTable = `CREATE TABLE IF NOT EXISTS artists (
	id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	city VARCHAR(120) NOT NULL,
	state VARCHAR(120) NOT NULL,
	phone VARCHAR(120) NOT NULL,
	genres VARCHAR(120) NOT NULL,
	image_link VARCHAR(500) NULL,
	facebook_link VARCHAR(120) NULL,
	website_link VARCHAR(120) NULL,
	seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
	seeking_description TEXT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// The composite primary key is the show's identity; there is no
// surrogate id to collide on.
const createShowsTable = `CREATE TABLE IF NOT EXISTS shows (
	venue_id BIGINT UNSIGNED NOT NULL,
	artist_id BIGINT UNSIGNED NOT NULL,
	start_time DATETIME NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (venue_id, artist_id, start_time),
	KEY idx_shows_artist (artist_id),
	KEY idx_shows_start (start_time),
	CONSTRAINT fk_shows_venue FOREIGN KEY (venue_id) REFERENCES venues (id) ON DELETE CASCADE,
	CONSTRAINT fk_shows_artist FOREIGN KEY (artist_id) REFERENCES artists (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// Migrate creates the directory tables when they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range []struct {
		table string
		ddl   string
	}{
		{"venues", createVenuesTable},
		{"artists", createArtistsTable},
		{"shows", createShowsTable},
	} {
		if _, err := db.ExecContext(ctx, stmt.ddl); err != nil {
			return fmt.Errorf("creating %s table: %w", stmt.table, err)
		}
	}
	return nil
}
