// Package memory provides an in-memory implementation of the directory
// store used for tests and ephemeral environments (STORE_DRIVER=memory).
// Units of work run against a private copy of the state which replaces
// the committed state only when the work succeeds.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/repository"
)

var _ repository.Store = (*Store)(nil)

type showID struct {
	venueID  uint64
	artistID uint64
	start    int64
}

func idOf(k model.ShowKey) showID {
	return showID{venueID: k.VenueID, artistID: k.ArtistID, start: model.NormalizeStart(k.StartTime).Unix()}
}

type state struct {
	venues       map[uint64]model.Venue
	artists      map[uint64]model.Artist
	shows        map[showID]model.Show
	nextVenueID  uint64
	nextArtistID uint64
}

func newState() *state {
	return &state{
		venues:       map[uint64]model.Venue{},
		artists:      map[uint64]model.Artist{},
		shows:        map[showID]model.Show{},
		nextVenueID:  1,
		nextArtistID: 1,
	}
}

func (s *state) clone() *state {
	c := &state{
		venues:       make(map[uint64]model.Venue, len(s.venues)),
		artists:      make(map[uint64]model.Artist, len(s.artists)),
		shows:        make(map[showID]model.Show, len(s.shows)),
		nextVenueID:  s.nextVenueID,
		nextArtistID: s.nextArtistID,
	}
	for k, v := range s.venues {
		v.Genres = append(model.Genres(nil), v.Genres...)
		c.venues[k] = v
	}
	for k, a := range s.artists {
		a.Genres = append(model.Genres(nil), a.Genres...)
		c.artists[k] = a
	}
	for k, sh := range s.shows {
		c.shows[k] = sh
	}
	return c
}

// Store is a concurrency-safe in-memory repository.Store.  Units of work
// are serialised; reads never observe uncommitted changes.
type Store struct {
	mu    sync.RWMutex
	state *state
	now   func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithClock sets the clock used for created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{state: newState(), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// WithTx runs fn against a copy of the committed state and publishes the
// copy only when fn returns nil.  fn must use w rather than the Store
// itself.
func (s *Store) WithTx(ctx context.Context, fn func(w repository.Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := &tx{view: view{st: s.state.clone()}, now: s.now}
	if err := fn(work); err != nil {
		return err
	}
	s.state = work.st
	return nil
}

func (s *Store) read() view {
	return view{st: s.state}
}

func (s *Store) ListVenues(ctx context.Context) ([]model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read().ListVenues(ctx)
}

func (s *Store) SearchVenues(ctx context.Context, term string) ([]model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read().SearchVenues(ctx, term)
}

func (s *Store) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read().GetVenue(ctx, id)
}

func (s *Store) ListArtists(ctx context.Context) ([]model.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read().ListArtists(ctx)
}

func (s *Store) SearchArtists(ctx context.Context, term string) ([]model.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read().SearchArtists(ctx, term)
}

func (s *Store) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read().GetArtist(ctx, id)
}

func (s *Store) ListShows(ctx context.Context) ([]model.ShowListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read().ListShows(ctx)
}

func (s *Store) ListShowsByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read().ListShowsByVenue(ctx, venueID)
}

func (s *Store) ListShowsByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read().ListShowsByArtist(ctx, artistID)
}

func (s *Store) GetShow(ctx context.Context, key model.ShowKey) (*model.ShowListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read().GetShow(ctx, key)
}

// view implements repository.Reader over one state snapshot.
type view struct {
	st *state
}

func (v view) ListVenues(_ context.Context) ([]model.Venue, error) {
	return v.venuesWhere(func(model.Venue) bool { return true }), nil
}

func (v view) SearchVenues(_ context.Context, term string) ([]model.Venue, error) {
	needle := strings.ToLower(term)
	return v.venuesWhere(func(ve model.Venue) bool {
		return strings.Contains(strings.ToLower(ve.Name), needle)
	}), nil
}

func (v view) venuesWhere(keep func(model.Venue) bool) []model.Venue {
	out := []model.Venue{}
	for _, ve := range v.st.venues {
		if keep(ve) {
			ve.Genres = append(model.Genres{}, ve.Genres...)
			out = append(out, ve)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (v view) GetVenue(_ context.Context, id uint64) (*model.Venue, error) {
	ve, ok := v.st.venues[id]
	if !ok {
		return nil, repository.ErrVenueNotFound
	}
	ve.Genres = append(model.Genres{}, ve.Genres...)
	return &ve, nil
}

func (v view) ListArtists(_ context.Context) ([]model.Artist, error) {
	return v.artistsWhere(func(model.Artist) bool { return true }), nil
}

func (v view) SearchArtists(_ context.Context, term string) ([]model.Artist, error) {
	needle := strings.ToLower(term)
	return v.artistsWhere(func(a model.Artist) bool {
		return strings.Contains(strings.ToLower(a.Name), needle)
	}), nil
}

func (v view) artistsWhere(keep func(model.Artist) bool) []model.Artist {
	out := []model.Artist{}
	for _, a := range v.st.artists {
		if keep(a) {
			a.Genres = append(model.Genres{}, a.Genres...)
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (v view) GetArtist(_ context.Context, id uint64) (*model.Artist, error) {
	a, ok := v.st.artists[id]
	if !ok {
		return nil, repository.ErrArtistNotFound
	}
	a.Genres = append(model.Genres{}, a.Genres...)
	return &a, nil
}

func (v view) ListShows(_ context.Context) ([]model.ShowListing, error) {
	return v.showsWhere(func(model.Show) bool { return true }), nil
}

func (v view) ListShowsByVenue(_ context.Context, venueID uint64) ([]model.ShowListing, error) {
	return v.showsWhere(func(s model.Show) bool { return s.VenueID == venueID }), nil
}

func (v view) ListShowsByArtist(_ context.Context, artistID uint64) ([]model.ShowListing, error) {
	return v.showsWhere(func(s model.Show) bool { return s.ArtistID == artistID }), nil
}

func (v view) GetShow(_ context.Context, key model.ShowKey) (*model.ShowListing, error) {
	s, ok := v.st.shows[idOf(key)]
	if !ok {
		return nil, repository.ErrShowNotFound
	}
	l := v.listing(s)
	return &l, nil
}

func (v view) showsWhere(keep func(model.Show) bool) []model.ShowListing {
	out := []model.ShowListing{}
	for _, s := range v.st.shows {
		if keep(s) {
			out = append(out, v.listing(s))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		if a.VenueID != b.VenueID {
			return a.VenueID < b.VenueID
		}
		return a.ArtistID < b.ArtistID
	})
	return out
}

func (v view) listing(s model.Show) model.ShowListing {
	ve := v.st.venues[s.VenueID]
	a := v.st.artists[s.ArtistID]
	return model.ShowListing{
		ShowKey:         s.ShowKey,
		VenueName:       ve.Name,
		VenueImageLink:  ve.ImageLink,
		ArtistName:      a.Name,
		ArtistImageLink: a.ImageLink,
	}
}

// tx implements repository.Writer over a private state copy.
type tx struct {
	view
	now func() time.Time
}

func (t *tx) stamp() time.Time {
	return t.now().UTC().Truncate(time.Second)
}

func (t *tx) CreateVenue(_ context.Context, v *model.Venue) error {
	v.ID = t.st.nextVenueID
	t.st.nextVenueID++
	v.CreatedAt = t.stamp()
	v.UpdatedAt = v.CreatedAt
	stored := *v
	stored.Genres = append(model.Genres{}, v.Genres...)
	t.st.venues[v.ID] = stored
	return nil
}

func (t *tx) UpdateVenue(_ context.Context, v *model.Venue) error {
	cur, ok := t.st.venues[v.ID]
	if !ok {
		return repository.ErrVenueNotFound
	}
	v.CreatedAt = cur.CreatedAt
	v.UpdatedAt = t.stamp()
	stored := *v
	stored.Genres = append(model.Genres{}, v.Genres...)
	t.st.venues[v.ID] = stored
	return nil
}

func (t *tx) DeleteVenue(_ context.Context, id uint64) error {
	if _, ok := t.st.venues[id]; !ok {
		return repository.ErrVenueNotFound
	}
	for k := range t.st.shows {
		if k.venueID == id {
			delete(t.st.shows, k)
		}
	}
	delete(t.st.venues, id)
	return nil
}

func (t *tx) CreateArtist(_ context.Context, a *model.Artist) error {
	a.ID = t.st.nextArtistID
	t.st.nextArtistID++
	a.CreatedAt = t.stamp()
	a.UpdatedAt = a.CreatedAt
	stored := *a
	stored.Genres = append(model.Genres{}, a.Genres...)
	t.st.artists[a.ID] = stored
	return nil
}

func (t *tx) UpdateArtist(_ context.Context, a *model.Artist) error {
	cur, ok := t.st.artists[a.ID]
	if !ok {
		return repository.ErrArtistNotFound
	}
	a.CreatedAt = cur.CreatedAt
	a.UpdatedAt = t.stamp()
	stored := *a
	stored.Genres = append(model.Genres{}, a.Genres...)
	t.st.artists[a.ID] = stored
	return nil
}

func (t *tx) DeleteArtist(_ context.Context, id uint64) error {
	if _, ok := t.st.artists[id]; !ok {
		return repository.ErrArtistNotFound
	}
	for k := range t.st.shows {
		if k.artistID == id {
			delete(t.st.shows, k)
		}
	}
	delete(t.st.artists, id)
	return nil
}

// CreateShow mirrors the foreign keys of the SQL schema: both parents
// must exist.
func (t *tx) CreateShow(_ context.Context, s *model.Show) error {
	if _, ok := t.st.venues[s.VenueID]; !ok {
		return repository.ErrVenueNotFound
	}
	if _, ok := t.st.artists[s.ArtistID]; !ok {
		return repository.ErrArtistNotFound
	}
	s.StartTime = model.NormalizeStart(s.StartTime)
	id := idOf(s.ShowKey)
	if _, dup := t.st.shows[id]; dup {
		return repository.ErrShowExists
	}
	s.CreatedAt = t.stamp()
	t.st.shows[id] = *s
	return nil
}

func (t *tx) DeleteShow(_ context.Context, key model.ShowKey) error {
	id := idOf(key)
	if _, ok := t.st.shows[id]; !ok {
		return repository.ErrShowNotFound
	}
	delete(t.st.shows, id)
	return nil
}
