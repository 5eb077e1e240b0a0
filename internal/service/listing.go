package service

import (
	"context"
	"strings"
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// Summary is the lightweight row used by grouped listings and search
// results.
type Summary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area is one (city, state) group of the venue listing.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// SearchResult is the answer to a name search.
type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// ArtistRef is the projection used by the artist listing.
type ArtistRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ShowRow is one entry of the show listing.
type ShowRow struct {
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

func showRow(s model.ShowListing) ShowRow {
	return ShowRow{
		VenueID:         s.VenueID,
		VenueName:       s.VenueName,
		ArtistID:        s.ArtistID,
		ArtistName:      s.ArtistName,
		ArtistImageLink: s.ArtistImageLink,
		StartTime:       s.StartTime,
	}
}

// upcomingCounts counts, per id picked by idOf, the shows starting after
// now.
func upcomingCounts(shows []model.ShowListing, now time.Time, idOf func(model.ShowListing) uint64) map[uint64]int {
	counts := make(map[uint64]int)
	for _, s := range shows {
		if model.Upcoming(s.StartTime, now) {
			counts[idOf(s)]++
		}
	}
	return counts
}

func byVenue(s model.ShowListing) uint64  { return s.VenueID }
func byArtist(s model.ShowListing) uint64 { return s.ArtistID }

// ListVenuesGrouped returns venues grouped by exact (city, state).  Groups
// appear in the order their first venue was retrieved and every venue of
// a location lands in the same group whatever the retrieval order.
func (d *Directory) ListVenuesGrouped(ctx context.Context) ([]Area, error) {
	venues, err := d.store.ListVenues(ctx)
	if err != nil {
		return nil, d.fail("listing venues", err)
	}
	shows, err := d.store.ListShows(ctx)
	if err != nil {
		return nil, d.fail("listing shows", err)
	}
	counts := upcomingCounts(shows, d.now(), byVenue)

	areas := []Area{}
	index := make(map[model.Location]int)
	for _, v := range venues {
		loc := v.Location()
		i, ok := index[loc]
		if !ok {
			i = len(areas)
			index[loc] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []Summary{}})
		}
		areas[i].Venues = append(areas[i].Venues, Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return areas, nil
}

// SearchVenues matches term case-insensitively anywhere in venue names.
// An empty term matches every venue.
func (d *Directory) SearchVenues(ctx context.Context, term string) (SearchResult, error) {
	venues, err := d.store.SearchVenues(ctx, strings.TrimSpace(term))
	if err != nil {
		return SearchResult{}, d.fail("searching venues", err)
	}
	shows, err := d.store.ListShows(ctx)
	if err != nil {
		return SearchResult{}, d.fail("listing shows", err)
	}
	counts := upcomingCounts(shows, d.now(), byVenue)

	res := SearchResult{Data: make([]Summary, 0, len(venues))}
	for _, v := range venues {
		res.Data = append(res.Data, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	res.Count = len(res.Data)
	return res, nil
}

// SearchArtists matches term case-insensitively anywhere in artist names.
func (d *Directory) SearchArtists(ctx context.Context, term string) (SearchResult, error) {
	artists, err := d.store.SearchArtists(ctx, strings.TrimSpace(term))
	if err != nil {
		return SearchResult{}, d.fail("searching artists", err)
	}
	shows, err := d.store.ListShows(ctx)
	if err != nil {
		return SearchResult{}, d.fail("listing shows", err)
	}
	counts := upcomingCounts(shows, d.now(), byArtist)

	res := SearchResult{Data: make([]Summary, 0, len(artists))}
	for _, a := range artists {
		res.Data = append(res.Data, Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	res.Count = len(res.Data)
	return res, nil
}

// ListArtists returns the id and name of every artist.
func (d *Directory) ListArtists(ctx context.Context) ([]ArtistRef, error) {
	artists, err := d.store.ListArtists(ctx)
	if err != nil {
		return nil, d.fail("listing artists", err)
	}
	out := make([]ArtistRef, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistRef{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

// ListShows returns every show with its venue and artist display fields.
func (d *Directory) ListShows(ctx context.Context) ([]ShowRow, error) {
	shows, err := d.store.ListShows(ctx)
	if err != nil {
		return nil, d.fail("listing shows", err)
	}
	out := make([]ShowRow, 0, len(shows))
	for _, s := range shows {
		out = append(out, showRow(s))
	}
	return out, nil
}
