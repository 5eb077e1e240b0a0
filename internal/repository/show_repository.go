package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/model"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

const showListingSelect = `SELECT
		s.venue_id,
		s.artist_id,
		s.start_time,
		v.name AS venue_name,
		COALESCE(v.image_link, '') AS venue_image_link,
		a.name AS artist_name,
		COALESCE(a.image_link, '') AS artist_image_link
	FROM shows s
	JOIN venues v  ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

func (q *queries) selectShows(ctx context.Context, query string, args ...any) ([]model.ShowListing, error) {
	out := []model.ShowListing{}
	if err := sqlx.SelectContext(ctx, q.db, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// ListShows returns every show joined with its venue and artist.
func (q *queries) ListShows(ctx context.Context) ([]model.ShowListing, error) {
	out, err := q.selectShows(ctx, showListingSelect+` ORDER BY s.start_time, s.venue_id, s.artist_id`)
	if err != nil {
		return nil, fmt.Errorf("listing shows: %w", err)
	}
	return out, nil
}

// ListShowsByVenue returns the shows booked at a venue.
func (q *queries) ListShowsByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error) {
	out, err := q.selectShows(ctx, showListingSelect+` WHERE s.venue_id = ? ORDER BY s.start_time, s.artist_id`, venueID)
	if err != nil {
		return nil, fmt.Errorf("listing shows of venue %d: %w", venueID, err)
	}
	return out, nil
}

// ListShowsByArtist returns the shows an artist plays.
func (q *queries) ListShowsByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error) {
	out, err := q.selectShows(ctx, showListingSelect+` WHERE s.artist_id = ? ORDER BY s.start_time, s.venue_id`, artistID)
	if err != nil {
		return nil, fmt.Errorf("listing shows of artist %d: %w", artistID, err)
	}
	return out, nil
}

// GetShow fetches one show by its composite key or returns
// ErrShowNotFound.
func (q *queries) GetShow(ctx context.Context, key model.ShowKey) (*model.ShowListing, error) {
	const where = ` WHERE s.venue_id = ? AND s.artist_id = ? AND s.start_time = ?`
	var s model.ShowListing
	err := sqlx.GetContext(ctx, q.db, &s, showListingSelect+where, key.VenueID, key.ArtistID, model.NormalizeStart(key.StartTime))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrShowNotFound
		}
		return nil, fmt.Errorf("getting show %s: %w", key, err)
	}
	return &s, nil
}

// CreateShow inserts a show.  A second booking with the same key fails
// with ErrShowExists.
func (q *queries) CreateShow(ctx context.Context, s *model.Show) error {
	s.StartTime = model.NormalizeStart(s.StartTime)
	_, err := q.db.ExecContext(ctx, `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`,
		s.VenueID, s.ArtistID, s.StartTime)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return ErrShowExists
		}
		return fmt.Errorf("inserting show %s: %w", s.ShowKey, err)
	}
	return nil
}

// DeleteShow removes one show by key.
func (q *queries) DeleteShow(ctx context.Context, key model.ShowKey) error {
	res, err := q.db.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ? AND artist_id = ? AND start_time = ?`,
		key.VenueID, key.ArtistID, model.NormalizeStart(key.StartTime))
	if err != nil {
		return fmt.Errorf("deleting show %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if n == 0 {
		return ErrShowNotFound
	}
	return nil
}
