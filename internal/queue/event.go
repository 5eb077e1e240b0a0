// Package queue defines the directory events exchanged over the message
// broker together with the publisher and consumer that move them.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/fyyur/internal/model"
)

// EventsQueue is the durable queue every directory event is routed to.
const EventsQueue = "directory.events"

// Event types.
const (
	VenueCreated  = "venue.created"
	VenueUpdated  = "venue.updated"
	VenueDeleted  = "venue.deleted"
	ArtistCreated = "artist.created"
	ArtistUpdated = "artist.updated"
	ArtistDeleted = "artist.deleted"
	ShowBooked    = "show.booked"
	ShowCancelled = "show.cancelled"
)

// Event is published after a directory change has been committed.  It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.
type Event struct {
	ID         string       `json:"event_id"`
	Type       string       `json:"type"`
	EntityID   uint64       `json:"entity_id,omitempty"`
	Name       string       `json:"name,omitempty"`
	Show       *ShowPayload `json:"show,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// ShowPayload identifies the show a show event is about.
type ShowPayload struct {
	VenueID   uint64    `json:"venue_id"`
	ArtistID  uint64    `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// NewEntityEvent builds a venue or artist event.
func NewEntityEvent(typ string, id uint64, name string, at time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		EntityID:   id,
		Name:       name,
		OccurredAt: at.UTC(),
	}
}

// NewShowEvent builds a show event.
func NewShowEvent(typ string, key model.ShowKey, at time.Time) Event {
	return Event{
		ID:   uuid.NewString(),
		Type: typ,
		Show: &ShowPayload{
			VenueID:   key.VenueID,
			ArtistID:  key.ArtistID,
			StartTime: key.StartTime.UTC(),
		},
		OccurredAt: at.UTC(),
	}
}
