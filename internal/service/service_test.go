package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/repository/memory"
)

var now = time.Date(2030, 6, 1, 18, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev queue.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

func newDirectory(t *testing.T, opts ...Option) (*Directory, *memory.Store) {
	t.Helper()
	store := memory.NewStore(memory.WithClock(fixedClock))
	return New(store, append([]Option{WithClock(fixedClock)}, opts...)...), store
}

func venueInput(name, city, state string) VenueInput {
	return VenueInput{
		Name:    name,
		City:    city,
		State:   state,
		Address: "1015 Folsom St",
		Phone:   "123-123-1234",
		Genres:  []string{"Jazz", "Reggae"},
	}
}

func artistInput(name string) ArtistInput {
	return ArtistInput{
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Phone:  "326-123-5000",
		Genres: []string{"Rock n Roll"},
	}
}

func mustVenue(t *testing.T, d *Directory, in VenueInput) *model.Venue {
	t.Helper()
	v, err := d.CreateVenue(context.Background(), in)
	require.NoError(t, err)
	return v
}

func mustArtist(t *testing.T, d *Directory, name string) *model.Artist {
	t.Helper()
	a, err := d.CreateArtist(context.Background(), artistInput(name))
	require.NoError(t, err)
	return a
}

func mustShow(t *testing.T, d *Directory, venueID, artistID uint64, start time.Time) *model.Show {
	t.Helper()
	s, err := d.CreateShow(context.Background(), ShowInput{VenueID: venueID, ArtistID: artistID, StartTime: start})
	require.NoError(t, err)
	return s
}

// failingStore hands out a Writer whose mutations fail after the wrapped
// call, so the unit of work has already changed the private state.
type failingStore struct {
	*memory.Store
	err error
}

func (s failingStore) WithTx(ctx context.Context, fn func(w repository.Writer) error) error {
	return s.Store.WithTx(ctx, func(w repository.Writer) error {
		return fn(failingWriter{Writer: w, err: s.err})
	})
}

type failingWriter struct {
	repository.Writer
	err error
}

func (w failingWriter) CreateShow(ctx context.Context, s *model.Show) error {
	if err := w.Writer.CreateShow(ctx, s); err != nil {
		return err
	}
	return w.err
}

func (w failingWriter) DeleteVenue(ctx context.Context, id uint64) error {
	if err := w.Writer.DeleteVenue(ctx, id); err != nil {
		return err
	}
	return w.err
}

var errDiskFull = errors.New("disk full")
