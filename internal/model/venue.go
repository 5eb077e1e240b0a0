package model

import "time"

// Venue represents a physical location that can host shows.  A venue
// owns zero or more shows; deleting the venue removes its shows.
// This struct corresponds to a row in the `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the venue.
//  City, State        – location used to group venues in listings.
//  Address, Phone     – contact details.
//  ImageLink          – optional picture URL (empty when unset).
//  Genres             – category labels, stored comma separated.
//  FacebookLink       – optional Facebook page URL.
//  WebsiteLink        – optional website URL.
//  SeekingTalent      – whether the venue is looking for artists.
//  SeekingDescription – optional free text shown when seeking talent.
//  CreatedAt          – creation timestamp.
//  UpdatedAt          – last update timestamp.
type Venue struct {
	ID                 uint64    `db:"id" json:"id"`                                   // venues.id
	Name               string    `db:"name" json:"name"`                               // venues.name
	City               string    `db:"city" json:"city"`                               // venues.city
	State              string    `db:"state" json:"state"`                             // venues.state
	Address            string    `db:"address" json:"address"`                         // venues.address
	Phone              string    `db:"phone" json:"phone"`                             // venues.phone
	ImageLink          string    `db:"image_link" json:"image_link"`                   // venues.image_link (nullable)
	Genres             Genres    `db:"genres" json:"genres"`                           // venues.genres
	FacebookLink       string    `db:"facebook_link" json:"facebook_link"`             // venues.facebook_link (nullable)
	WebsiteLink        string    `db:"website_link" json:"website_link"`               // venues.website_link (nullable)
	SeekingTalent      bool      `db:"seeking_talent" json:"seeking_talent"`           // venues.seeking_talent
	SeekingDescription string    `db:"seeking_description" json:"seeking_description"` // venues.seeking_description (nullable)
	CreatedAt          time.Time `db:"created_at" json:"-"`                            // venues.created_at
	UpdatedAt          time.Time `db:"updated_at" json:"-"`                            // venues.updated_at
}

// Location is the (city, state) pair venues are grouped by.
type Location struct {
	City  string
	State string
}

// Location returns the grouping key of the venue.
func (v Venue) Location() Location {
	return Location{City: v.City, State: v.State}
}
