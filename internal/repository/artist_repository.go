package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres,
	COALESCE(image_link, '') AS image_link,
	COALESCE(facebook_link, '') AS facebook_link,
	COALESCE(website_link, '') AS website_link,
	seeking_venue,
	COALESCE(seeking_description, '') AS seeking_description,
	created_at, updated_at`

// ListArtists returns every artist ordered by id.
func (q *queries) ListArtists(ctx context.Context) ([]model.Artist, error) {
	out := []model.Artist{}
	if err := sqlx.SelectContext(ctx, q.db, &out, `SELECT `+artistColumns+` FROM artists ORDER BY id`); err != nil {
		return nil, fmt.Errorf("listing artists: %w", err)
	}
	return out, nil
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (q *queries) SearchArtists(ctx context.Context, term string) ([]model.Artist, error) {
	const query = `SELECT ` + artistColumns + ` FROM artists WHERE LOWER(name) LIKE ? ORDER BY id`
	out := []model.Artist{}
	if err := sqlx.SelectContext(ctx, q.db, &out, query, likePattern(term)); err != nil {
		return nil, fmt.Errorf("searching artists: %w", err)
	}
	return out, nil
}

// GetArtist fetches an artist by id or returns ErrArtistNotFound.
func (q *queries) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	var a model.Artist
	if err := sqlx.GetContext(ctx, q.db, &a, `SELECT `+artistColumns+` FROM artists WHERE id = ?`, id); err != nil {
		if isNoRows(err) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("getting artist %d: %w", id, err)
	}
	return &a, nil
}

// CreateArtist inserts an artist and reloads the stored row into a.
func (q *queries) CreateArtist(ctx context.Context, a *model.Artist) error {
	const qInsert = `INSERT INTO artists
		(name, city, state, phone, genres, image_link, facebook_link, website_link, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), ?, NULLIF(?, ''))`
	res, err := q.db.ExecContext(ctx, qInsert,
		a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
		a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return fmt.Errorf("inserting artist: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading artist id: %w", err)
	}
	stored, err := q.GetArtist(ctx, uint64(id))
	if err != nil {
		return err
	}
	*a = *stored
	return nil
}

// UpdateArtist overwrites every column of the artist with the given id.
func (q *queries) UpdateArtist(ctx context.Context, a *model.Artist) error {
	const qUpdate = `UPDATE artists
		SET name = ?, city = ?, state = ?, phone = ?, genres = ?, image_link = NULLIF(?, ''),
		    facebook_link = NULLIF(?, ''), website_link = NULLIF(?, ''), seeking_venue = ?,
		    seeking_description = NULLIF(?, ''), updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	res, err := q.db.ExecContext(ctx, qUpdate,
		a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
		a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription, a.ID)
	if err != nil {
		return fmt.Errorf("updating artist %d: %w", a.ID, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	found, err := q.exists(ctx, `SELECT 1 FROM artists WHERE id = ? LIMIT 1`, a.ID)
	if err != nil {
		return fmt.Errorf("checking artist %d: %w", a.ID, err)
	}
	if !found {
		return ErrArtistNotFound
	}
	return nil
}

// DeleteArtist removes an artist and its shows.
func (q *queries) DeleteArtist(ctx context.Context, id uint64) error {
	if _, err := q.db.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = ?`, id); err != nil {
		return fmt.Errorf("deleting shows of artist %d: %w", id, err)
	}
	res, err := q.db.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting artist %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if n == 0 {
		return ErrArtistNotFound
	}
	return nil
}
