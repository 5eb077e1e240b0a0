package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository/memory"
)

func TestCreateVenueValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*VenueInput)
		field  string
	}{
		{name: "missing name", mutate: func(in *VenueInput) { in.Name = "   " }, field: "name"},
		{name: "missing city", mutate: func(in *VenueInput) { in.City = "" }, field: "city"},
		{name: "no genres", mutate: func(in *VenueInput) { in.Genres = nil }, field: "genres"},
		{name: "only blank genres", mutate: func(in *VenueInput) { in.Genres = []string{" ", ""} }, field: "genres"},
		{name: "genre with comma", mutate: func(in *VenueInput) { in.Genres = []string{"Jazz,Blues"} }, field: "genres[0]"},
		{name: "bad website", mutate: func(in *VenueInput) { in.WebsiteLink = "not a url" }, field: "website_link"},
		{name: "long name", mutate: func(in *VenueInput) { in.Name = strings.Repeat("x", 256) }, field: "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, store := newDirectory(t)
			in := venueInput("The Musical Hop", "San Francisco", "CA")
			tt.mutate(&in)

			_, err := d.CreateVenue(context.Background(), in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)

			venues, err := store.ListVenues(context.Background())
			require.NoError(t, err)
			assert.Empty(t, venues)
		})
	}
}

func TestCreateVenueTrimsInput(t *testing.T) {
	d, _ := newDirectory(t)
	in := venueInput("  The Musical Hop ", " San Francisco", "CA ")
	in.Genres = []string{" Jazz ", "", "Reggae"}

	v := mustVenue(t, d, in)
	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, "San Francisco", v.City)
	assert.Equal(t, "CA", v.State)
	assert.Equal(t, model.Genres{"Jazz", "Reggae"}, v.Genres)
}

func TestCreateArtistJoinedGenresLimit(t *testing.T) {
	d, _ := newDirectory(t)
	in := artistInput("Guns N Petals")
	in.Genres = []string{strings.Repeat("a", 60), strings.Repeat("b", 60)}

	_, err := d.CreateArtist(context.Background(), in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "genres")
}

func TestUpdateVenue(t *testing.T) {
	d, _ := newDirectory(t)
	v := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))

	in := venueInput("The Musical Hop II", "Oakland", "CA")
	in.SeekingTalent = true
	in.SeekingDescription = "Looking for jazz trios"
	updated, err := d.UpdateVenue(context.Background(), v.ID, in)
	require.NoError(t, err)
	assert.Equal(t, v.ID, updated.ID)

	got, err := d.GetVenue(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop II", got.Name)
	assert.Equal(t, "Oakland", got.City)
	assert.True(t, got.SeekingTalent)
	assert.Equal(t, "Looking for jazz trios", got.SeekingDescription)
}

func TestUpdateNotFound(t *testing.T) {
	d, _ := newDirectory(t)

	_, err := d.UpdateVenue(context.Background(), 7, venueInput("X", "Y", "Z"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = d.UpdateArtist(context.Background(), 7, artistInput("X"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateArtistValidatesBeforeLoading(t *testing.T) {
	d, _ := newDirectory(t)
	a := mustArtist(t, d, "Guns N Petals")

	in := artistInput("")
	_, err := d.UpdateArtist(context.Background(), a.ID, in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	got, err := d.GetArtist(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", got.Name)
}

func TestCreateShowRejectsMissingArtist(t *testing.T) {
	d, store := newDirectory(t)
	v := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))

	_, err := d.CreateShow(context.Background(), ShowInput{VenueID: v.ID, ArtistID: 999, StartTime: now.Add(time.Hour)})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "artist_id")

	shows, err := store.ListShows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, shows)
}

func TestCreateShowRejectsMissingVenue(t *testing.T) {
	d, _ := newDirectory(t)
	a := mustArtist(t, d, "Guns N Petals")

	_, err := d.CreateShow(context.Background(), ShowInput{VenueID: 999, ArtistID: a.ID, StartTime: now})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "venue_id")
}

func TestCreateShowRequiresAllFields(t *testing.T) {
	d, _ := newDirectory(t)

	_, err := d.CreateShow(context.Background(), ShowInput{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "venue_id")
	assert.Contains(t, verr.Fields, "artist_id")
	assert.Contains(t, verr.Fields, "start_time")
}

func TestCreateShowDuplicateKey(t *testing.T) {
	d, _ := newDirectory(t)
	v := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))
	a := mustArtist(t, d, "Guns N Petals")
	start := now.Add(time.Hour)
	mustShow(t, d, v.ID, a.ID, start)

	_, err := d.CreateShow(context.Background(), ShowInput{VenueID: v.ID, ArtistID: a.ID, StartTime: start})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "start_time")

	// Same artist, same venue, another hour is a different show.
	mustShow(t, d, v.ID, a.ID, start.Add(time.Hour))
}

func TestDeleteVenueCascadesToShows(t *testing.T) {
	d, _ := newDirectory(t)
	v := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))
	a := mustArtist(t, d, "Guns N Petals")
	s := mustShow(t, d, v.ID, a.ID, now.Add(time.Hour))

	require.NoError(t, d.DeleteVenue(context.Background(), v.ID))

	_, err := d.GetShow(context.Background(), s.ShowKey)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = d.GetVenueDetail(context.Background(), v.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	ad, err := d.GetArtistDetail(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, ad.UpcomingShowsCount)

	assert.ErrorIs(t, d.DeleteVenue(context.Background(), v.ID), ErrNotFound)
}

func TestDeleteArtistCascadesToShows(t *testing.T) {
	d, _ := newDirectory(t)
	v := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))
	a := mustArtist(t, d, "Guns N Petals")
	s := mustShow(t, d, v.ID, a.ID, now.Add(-time.Hour))

	require.NoError(t, d.DeleteArtist(context.Background(), a.ID))

	_, err := d.GetShow(context.Background(), s.ShowKey)
	assert.ErrorIs(t, err, ErrNotFound)
	vd, err := d.GetVenueDetail(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, vd.PastShowsCount)
}

func TestDeleteShow(t *testing.T) {
	d, _ := newDirectory(t)
	v := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))
	a := mustArtist(t, d, "Guns N Petals")
	s := mustShow(t, d, v.ID, a.ID, now.Add(time.Hour))

	row, err := d.GetShow(context.Background(), s.ShowKey)
	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", row.ArtistName)

	require.NoError(t, d.DeleteShow(context.Background(), s.ShowKey))
	assert.ErrorIs(t, d.DeleteShow(context.Background(), s.ShowKey), ErrNotFound)
}

func TestFailedUnitOfWorkRollsBack(t *testing.T) {
	store := memory.NewStore(memory.WithClock(fixedClock))
	seed := New(store, WithClock(fixedClock))
	v := mustVenue(t, seed, venueInput("The Musical Hop", "San Francisco", "CA"))
	a := mustArtist(t, seed, "Guns N Petals")

	pub := &recordingPublisher{}
	d := New(failingStore{Store: store, err: errDiskFull}, WithClock(fixedClock), WithPublisher(pub))

	_, err := d.CreateShow(context.Background(), ShowInput{VenueID: v.ID, ArtistID: a.ID, StartTime: now.Add(time.Hour)})
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, "creating show", perr.Op)

	shows, err := store.ListShows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, shows)

	err = d.DeleteVenue(context.Background(), v.ID)
	require.ErrorAs(t, err, &perr)
	_, err = store.GetVenue(context.Background(), v.ID)
	assert.NoError(t, err, "venue must survive the failed delete")

	assert.Empty(t, pub.types(), "nothing is published for failed commands")
}

func TestCommandsPublishEvents(t *testing.T) {
	pub := &recordingPublisher{}
	d, _ := newDirectory(t, WithPublisher(pub))
	ctx := context.Background()

	v := mustVenue(t, d, venueInput("The Musical Hop", "San Francisco", "CA"))
	a := mustArtist(t, d, "Guns N Petals")
	s := mustShow(t, d, v.ID, a.ID, now.Add(time.Hour))
	_, err := d.UpdateVenue(ctx, v.ID, venueInput("The Musical Hop", "Oakland", "CA"))
	require.NoError(t, err)
	_, err = d.UpdateArtist(ctx, a.ID, artistInput("Guns N Roses"))
	require.NoError(t, err)
	require.NoError(t, d.DeleteShow(ctx, s.ShowKey))
	require.NoError(t, d.DeleteArtist(ctx, a.ID))
	require.NoError(t, d.DeleteVenue(ctx, v.ID))

	assert.Equal(t, []string{
		queue.VenueCreated,
		queue.ArtistCreated,
		queue.ShowBooked,
		queue.VenueUpdated,
		queue.ArtistUpdated,
		queue.ShowCancelled,
		queue.ArtistDeleted,
		queue.VenueDeleted,
	}, pub.types())

	booked := pub.events[2]
	require.NotNil(t, booked.Show)
	assert.Equal(t, v.ID, booked.Show.VenueID)
	assert.Equal(t, a.ID, booked.Show.ArtistID)
	assert.Equal(t, now, booked.OccurredAt)
	assert.Equal(t, "The Musical Hop", pub.events[0].Name)
}

func TestPublishFailureDoesNotFailCommand(t *testing.T) {
	pub := &recordingPublisher{err: errDiskFull}
	d, _ := newDirectory(t, WithPublisher(pub))

	v, err := d.CreateVenue(context.Background(), venueInput("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)
	assert.NotZero(t, v.ID)
	assert.Len(t, pub.types(), 1)
}

func TestNewPanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}
