package service

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/repository"
)

// ArtistShow is a show as listed on a venue page.
type ArtistShow struct {
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueShow is a show as listed on an artist page.
type VenueShow struct {
	VenueID        uint64    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// VenueDetail is the venue page.
type VenueDetail struct {
	ID                 uint64       `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingTalent      bool         `json:"seeking_talent"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ArtistDetail is the artist page.
type ArtistDetail struct {
	ID                 uint64      `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingVenue       bool        `json:"seeking_venue"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// partition splits shows into past (start <= now) and upcoming
// (start > now).  Every show lands in exactly one of the two.
func partition[T any](shows []model.ShowListing, now time.Time, conv func(model.ShowListing) T) (past, upcoming []T) {
	past, upcoming = []T{}, []T{}
	for _, s := range shows {
		if model.Upcoming(s.StartTime, now) {
			upcoming = append(upcoming, conv(s))
		} else {
			past = append(past, conv(s))
		}
	}
	return past, upcoming
}

// GetVenue loads the venue with the given id, e.g. to prefill an edit form.
func (d *Directory) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	v, err := d.store.GetVenue(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, notFound("venue", id)
		}
		return nil, d.fail("getting venue", err)
	}
	return v, nil
}

// GetArtist loads the artist with the given id.
func (d *Directory) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	a, err := d.store.GetArtist(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, notFound("artist", id)
		}
		return nil, d.fail("getting artist", err)
	}
	return a, nil
}

// GetVenueDetail returns the venue with its shows split around now.
func (d *Directory) GetVenueDetail(ctx context.Context, id uint64) (*VenueDetail, error) {
	v, err := d.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := d.store.ListShowsByVenue(ctx, id)
	if err != nil {
		return nil, d.fail("listing venue shows", err)
	}

	past, upcoming := partition(shows, d.now(), func(s model.ShowListing) ArtistShow {
		return ArtistShow{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime,
		}
	})
	return &VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             append([]string{}, v.Genres...),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// GetArtistDetail returns the artist with their shows split around now.
func (d *Directory) GetArtistDetail(ctx context.Context, id uint64) (*ArtistDetail, error) {
	a, err := d.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := d.store.ListShowsByArtist(ctx, id)
	if err != nil {
		return nil, d.fail("listing artist shows", err)
	}

	past, upcoming := partition(shows, d.now(), func(s model.ShowListing) VenueShow {
		return VenueShow{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      s.StartTime,
		}
	})
	return &ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             append([]string{}, a.Genres...),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.WebsiteLink,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// GetShow returns one show by its composite key.
func (d *Directory) GetShow(ctx context.Context, key model.ShowKey) (*ShowRow, error) {
	s, err := d.store.GetShow(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrShowNotFound) {
			return nil, notFound("show", key)
		}
		return nil, d.fail("getting show", err)
	}
	row := showRow(*s)
	return &row, nil
}
