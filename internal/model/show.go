package model

import (
	"fmt"
	"time"
)

// ShowKey is the natural identity of a show.  No two shows share the
// same venue, artist and start time; the triple is the primary key of
// the `shows` table.
type ShowKey struct {
	VenueID   uint64    `db:"venue_id" json:"venue_id"`
	ArtistID  uint64    `db:"artist_id" json:"artist_id"`
	StartTime time.Time `db:"start_time" json:"start_time"`
}

// String renders the key as venue/artist/start, the form used in URLs.
func (k ShowKey) String() string {
	return fmt.Sprintf("%d/%d/%s", k.VenueID, k.ArtistID, k.StartTime.UTC().Format(time.RFC3339))
}

// Show represents one scheduled performance linking a venue and an
// artist at a start time.  Shows are never updated in place.
type Show struct {
	ShowKey
	CreatedAt time.Time `db:"created_at" json:"-"` // shows.created_at
}

// NormalizeStart truncates t to the precision stored by the database
// (whole seconds, UTC) so keys compare equal after a round trip.
func NormalizeStart(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// Upcoming reports whether a show starting at start is still ahead of
// now.  A show starting exactly at now is already past.
func Upcoming(start, now time.Time) bool {
	return start.After(now)
}

// ShowListing is a show joined with the display fields of its venue
// and artist.  It is what listing and detail queries read.
type ShowListing struct {
	ShowKey
	VenueName       string `db:"venue_name" json:"venue_name"`
	VenueImageLink  string `db:"venue_image_link" json:"venue_image_link"`
	ArtistName      string `db:"artist_name" json:"artist_name"`
	ArtistImageLink string `db:"artist_image_link" json:"artist_image_link"`
}
