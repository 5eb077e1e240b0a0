package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatedVenueRoundTripsThroughDetail(t *testing.T) {
	d, _ := newDirectory(t)
	in := venueInput("The Musical Hop", "San Francisco", "CA")
	in.SeekingTalent = true
	in.WebsiteLink = "https://www.themusicalhop.com"

	v := mustVenue(t, d, in)

	detail, err := d.GetVenueDetail(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", detail.Name)
	assert.Equal(t, "San Francisco", detail.City)
	assert.Equal(t, "CA", detail.State)
	assert.Equal(t, "1015 Folsom St", detail.Address)
	assert.Equal(t, "123-123-1234", detail.Phone)
	assert.Equal(t, []string{"Jazz", "Reggae"}, detail.Genres)
	assert.Equal(t, "https://www.themusicalhop.com", detail.Website)
	assert.True(t, detail.SeekingTalent)
	assert.Equal(t, 0, detail.PastShowsCount)
	assert.Equal(t, 0, detail.UpcomingShowsCount)
	assert.Empty(t, detail.PastShows)
	assert.Empty(t, detail.UpcomingShows)
}

func TestUpcomingShowAppearsOnBothSides(t *testing.T) {
	d, _ := newDirectory(t)
	a := mustArtist(t, d, "Guns N Petals")
	v := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))
	start := now.Add(time.Hour)
	mustShow(t, d, v.ID, a.ID, start)

	vd, err := d.GetVenueDetail(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, vd.UpcomingShowsCount)
	assert.Equal(t, 0, vd.PastShowsCount)
	require.Len(t, vd.UpcomingShows, 1)
	assert.Equal(t, ArtistShow{ArtistID: a.ID, ArtistName: "Guns N Petals", StartTime: start}, vd.UpcomingShows[0])

	ad, err := d.GetArtistDetail(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, ad.UpcomingShowsCount)
	assert.Equal(t, 0, ad.PastShowsCount)
	require.Len(t, ad.UpcomingShows, 1)
	assert.Equal(t, VenueShow{VenueID: v.ID, VenueName: "The Musical Hop", StartTime: start}, ad.UpcomingShows[0])
}

func TestPartitionIsDisjointAndExhaustive(t *testing.T) {
	d, _ := newDirectory(t)
	a := mustArtist(t, d, "Guns N Petals")
	v := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))
	starts := []time.Time{
		now.Add(-72 * time.Hour),
		now.Add(-time.Second),
		now,
		now.Add(time.Second),
		now.Add(30 * 24 * time.Hour),
	}
	for _, s := range starts {
		mustShow(t, d, v.ID, a.ID, s)
	}

	vd, err := d.GetVenueDetail(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, vd.PastShowsCount, "start == now counts as past")
	assert.Equal(t, 2, vd.UpcomingShowsCount)
	assert.Equal(t, len(starts), vd.PastShowsCount+vd.UpcomingShowsCount)
	for _, s := range vd.PastShows {
		assert.False(t, s.StartTime.After(now))
	}
	for _, s := range vd.UpcomingShows {
		assert.True(t, s.StartTime.After(now))
	}
}

func TestPartitionFollowsTheClock(t *testing.T) {
	clock := now
	d, _ := newDirectory(t, WithClock(func() time.Time { return clock }))
	a := mustArtist(t, d, "Guns N Petals")
	v := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))
	mustShow(t, d, v.ID, a.ID, now.Add(time.Hour))

	ad, err := d.GetArtistDetail(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, ad.UpcomingShowsCount)

	clock = now.Add(2 * time.Hour)
	ad, err = d.GetArtistDetail(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, ad.UpcomingShowsCount)
	assert.Equal(t, 1, ad.PastShowsCount)
}

func TestDetailNotFound(t *testing.T) {
	d, _ := newDirectory(t)

	_, err := d.GetVenueDetail(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = d.GetArtistDetail(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = d.GetVenue(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
