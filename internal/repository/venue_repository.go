package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/model"
)

// Optional columns are NULL in the table and empty strings in the model.
const venueColumns = `id, name, city, state, address, phone,
	COALESCE(image_link, '') AS image_link,
	genres,
	COALESCE(facebook_link, '') AS facebook_link,
	COALESCE(website_link, '') AS website_link,
	seeking_talent,
	COALESCE(seeking_description, '') AS seeking_description,
	created_at, updated_at`

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// ListVenues returns every venue ordered by id.
func (q *queries) ListVenues(ctx context.Context) ([]model.Venue, error) {
	out := []model.Venue{}
	if err := sqlx.SelectContext(ctx, q.db, &out, `SELECT `+venueColumns+` FROM venues ORDER BY id`); err != nil {
		return nil, fmt.Errorf("listing venues: %w", err)
	}
	return out, nil
}

// SearchVenues returns venues whose name contains term, ignoring case.
func (q *queries) SearchVenues(ctx context.Context, term string) ([]model.Venue, error) {
	const query = `SELECT ` + venueColumns + ` FROM venues WHERE LOWER(name) LIKE ? ORDER BY id`
	out := []model.Venue{}
	if err := sqlx.SelectContext(ctx, q.db, &out, query, likePattern(term)); err != nil {
		return nil, fmt.Errorf("searching venues: %w", err)
	}
	return out, nil
}

// GetVenue fetches a venue by id.  It returns ErrVenueNotFound if no row
// is found.
func (q *queries) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	var v model.Venue
	if err := sqlx.GetContext(ctx, q.db, &v, `SELECT `+venueColumns+` FROM venues WHERE id = ?`, id); err != nil {
		if isNoRows(err) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("getting venue %d: %w", id, err)
	}
	return &v, nil
}

// CreateVenue inserts a venue.  On success the ID and timestamp fields
// are populated from the stored row.
func (q *queries) CreateVenue(ctx context.Context, v *model.Venue) error {
	const qInsert = `INSERT INTO venues
		(name, city, state, address, phone, image_link, genres, facebook_link, website_link, seeking_talent, seeking_description)
		VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), ?, NULLIF(?, ''), NULLIF(?, ''), ?, NULLIF(?, ''))`
	res, err := q.db.ExecContext(ctx, qInsert,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.Genres,
		v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription)
	if err != nil {
		return fmt.Errorf("inserting venue: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading venue id: %w", err)
	}

	// Follow-up SELECT to populate default timestamp fields.
	stored, err := q.GetVenue(ctx, uint64(id))
	if err != nil {
		return err
	}
	*v = *stored
	return nil
}

// UpdateVenue overwrites every column of the venue with the given id.
func (q *queries) UpdateVenue(ctx context.Context, v *model.Venue) error {
	const qUpdate = `UPDATE venues
		SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = NULLIF(?, ''), genres = ?,
		    facebook_link = NULLIF(?, ''), website_link = NULLIF(?, ''), seeking_talent = ?,
		    seeking_description = NULLIF(?, ''), updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	res, err := q.db.ExecContext(ctx, qUpdate,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.Genres,
		v.FacebookLink, v.WebsiteLink, v.SeekingTalent, v.SeekingDescription, v.ID)
	if err != nil {
		return fmt.Errorf("updating venue %d: %w", v.ID, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	// MySQL reports zero affected rows when nothing changed, so tell
	// "missing" apart from "identical".
	found, err := q.exists(ctx, `SELECT 1 FROM venues WHERE id = ? LIMIT 1`, v.ID)
	if err != nil {
		return fmt.Errorf("checking venue %d: %w", v.ID, err)
	}
	if !found {
		return ErrVenueNotFound
	}
	return nil
}

// DeleteVenue removes a venue and its shows.  The foreign key cascades as
// well; the explicit delete keeps the behaviour independent of the
// engine's constraint support.
func (q *queries) DeleteVenue(ctx context.Context, id uint64) error {
	if _, err := q.db.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return fmt.Errorf("deleting shows of venue %d: %w", id, err)
	}
	res, err := q.db.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting venue %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if n == 0 {
		return ErrVenueNotFound
	}
	return nil
}
