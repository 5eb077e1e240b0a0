package repository

import (
	"context"

	"github.com/iliyamo/fyyur/internal/model"
)

// Reader is the read side of the store.  Listings are returned in
// retrieval order (ascending id for venues and artists, ascending start
// time for shows).
type Reader interface {
	ListVenues(ctx context.Context) ([]model.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]model.Venue, error)
	GetVenue(ctx context.Context, id uint64) (*model.Venue, error)

	ListArtists(ctx context.Context) ([]model.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]model.Artist, error)
	GetArtist(ctx context.Context, id uint64) (*model.Artist, error)

	ListShows(ctx context.Context) ([]model.ShowListing, error)
	ListShowsByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error)
	ListShowsByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error)
	GetShow(ctx context.Context, key model.ShowKey) (*model.ShowListing, error)
}

// Writer is available only inside a unit of work.
type Writer interface {
	Reader

	CreateVenue(ctx context.Context, v *model.Venue) error
	UpdateVenue(ctx context.Context, v *model.Venue) error
	// DeleteVenue removes the venue and every show booked there.
	DeleteVenue(ctx context.Context, id uint64) error

	CreateArtist(ctx context.Context, a *model.Artist) error
	UpdateArtist(ctx context.Context, a *model.Artist) error
	// DeleteArtist removes the artist and every show they play.
	DeleteArtist(ctx context.Context, id uint64) error

	CreateShow(ctx context.Context, s *model.Show) error
	DeleteShow(ctx context.Context, key model.ShowKey) error
}

// Store reads outside of transactions and runs mutations as units of
// work.  WithTx commits when fn returns nil and rolls back otherwise;
// either way the underlying transaction is released before it returns.
type Store interface {
	Reader
	WithTx(ctx context.Context, fn func(w Writer) error) error
}
