package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVenuesGroupedIsKeyedNotAdjacent(t *testing.T) {
	d, _ := newDirectory(t)
	sf1 := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))
	ny := mustVenue(t, d, venueInput("The Dueling Pianos Bar", "New York", "NY"))
	sf2 := mustVenue(t, d, venueInput("Park Square Live Music & Coffee", "San Francisco", "CA"))
	// Same city name, different state, is a different area.
	sfNM := mustVenue(t, d, venueInput("Desert Hop", "San Francisco", "NM"))

	a := mustArtist(t, d, "Guns N Petals")
	mustShow(t, d, sf2.ID, a.ID, now.Add(time.Hour))
	mustShow(t, d, sf2.ID, a.ID, now.Add(-time.Hour))
	mustShow(t, d, sf2.ID, a.ID, now) // boundary: past

	areas, err := d.ListVenuesGrouped(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 3)

	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, "CA", areas[0].State)
	require.Len(t, areas[0].Venues, 2)
	assert.Equal(t, sf1.ID, areas[0].Venues[0].ID)
	assert.Equal(t, sf2.ID, areas[0].Venues[1].ID)
	assert.Equal(t, 0, areas[0].Venues[0].NumUpcomingShows)
	assert.Equal(t, 1, areas[0].Venues[1].NumUpcomingShows)

	assert.Equal(t, "New York", areas[1].City)
	require.Len(t, areas[1].Venues, 1)
	assert.Equal(t, ny.ID, areas[1].Venues[0].ID)

	assert.Equal(t, "NM", areas[2].State)
	require.Len(t, areas[2].Venues, 1)
	assert.Equal(t, sfNM.ID, areas[2].Venues[0].ID)
}

func TestListVenuesGroupedEmpty(t *testing.T) {
	d, _ := newDirectory(t)
	areas, err := d.ListVenuesGrouped(context.Background())
	require.NoError(t, err)
	assert.Empty(t, areas)
	assert.NotNil(t, areas)
}

func TestSearchVenues(t *testing.T) {
	d, _ := newDirectory(t)
	hop := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))
	mustVenue(t, d, venueInput("The Dueling Pianos Bar", "New York", "NY"))
	coffee := mustVenue(t, d, venueInput("Park Square Live Music & Coffee", "San Francisco", "CA"))
	a := mustArtist(t, d, "Guns N Petals")
	mustShow(t, d, hop.ID, a.ID, now.Add(24*time.Hour))

	ctx := context.Background()

	res, err := d.SearchVenues(ctx, "Hop")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, Summary{ID: hop.ID, Name: "The Musical Hop", NumUpcomingShows: 1}, res.Data[0])

	res, err = d.SearchVenues(ctx, "Music")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []uint64{hop.ID, coffee.ID}, []uint64{res.Data[0].ID, res.Data[1].ID})

	res, err = d.SearchVenues(ctx, "  mUsIc  ")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	res, err = d.SearchVenues(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)

	res, err = d.SearchVenues(ctx, "nothing like this")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Data)
}

func TestSearchArtists(t *testing.T) {
	d, _ := newDirectory(t)
	mustArtist(t, d, "Guns N Petals")
	mustArtist(t, d, "Matt Quevedo")
	mustArtist(t, d, "The Wild Sax Band")

	res, err := d.SearchArtists(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)

	res, err = d.SearchArtists(context.Background(), "band")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "The Wild Sax Band", res.Data[0].Name)
}

func TestListArtistsAndShows(t *testing.T) {
	d, _ := newDirectory(t)
	v := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))
	a := mustArtist(t, d, "Guns N Petals")
	b := mustArtist(t, d, "Matt Quevedo")
	start := now.Add(48 * time.Hour)
	mustShow(t, d, v.ID, b.ID, start)
	mustShow(t, d, v.ID, a.ID, start.Add(-time.Hour))

	artists, err := d.ListArtists(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ArtistRef{{ID: a.ID, Name: "Guns N Petals"}, {ID: b.ID, Name: "Matt Quevedo"}}, artists)

	shows, err := d.ListShows(context.Background())
	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.Equal(t, "The Musical Hop", shows[0].VenueName)
	assert.Equal(t, "Matt Quevedo", shows[1].ArtistName)
	assert.True(t, shows[1].StartTime.Equal(start))
}
