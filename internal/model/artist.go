package model

import "time"

// Artist represents a performer that can be booked at venues.  An
// artist owns zero or more shows; deleting the artist removes them.
// This struct corresponds to a row in the `artists` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – stage name.
//  City, State, Phone – home location and contact number.
//  Genres             – category labels, stored comma separated.
//  ImageLink          – optional picture URL.
//  FacebookLink       – optional Facebook page URL.
//  WebsiteLink        – optional website URL.
//  SeekingVenue       – whether the artist is looking for venues.
//  SeekingDescription – optional free text shown when seeking a venue.
type Artist struct {
	ID                 uint64    `db:"id" json:"id"`                                   // artists.id
	Name               string    `db:"name" json:"name"`                               // artists.name
	City               string    `db:"city" json:"city"`                               // artists.city
	State              string    `db:"state" json:"state"`                             // artists.state
	Phone              string    `db:"phone" json:"phone"`                             // artists.phone
	Genres             Genres    `db:"genres" json:"genres"`                           // artists.genres
	ImageLink          string    `db:"image_link" json:"image_link"`                   // artists.image_link (nullable)
	FacebookLink       string    `db:"facebook_link" json:"facebook_link"`             // artists.facebook_link (nullable)
	WebsiteLink        string    `db:"website_link" json:"website_link"`               // artists.website_link (nullable)
	SeekingVenue       bool      `db:"seeking_venue" json:"seeking_venue"`             // artists.seeking_venue
	SeekingDescription string    `db:"seeking_description" json:"seeking_description"` // artists.seeking_description (nullable)
	CreatedAt          time.Time `db:"created_at" json:"-"`                            // artists.created_at
	UpdatedAt          time.Time `db:"updated_at" json:"-"`                            // artists.updated_at
}
