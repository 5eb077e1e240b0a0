// Package service implements the booking directory: the query layer that
// builds listing and detail views from persisted venues, artists and
// shows, and the commands that validate input and mutate them one unit
// of work at a time.
package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// Publisher delivers directory events after a commit.
type Publisher interface {
	Publish(ctx context.Context, ev queue.Event) error
}

// Directory is the entry point of every query and command.  It holds no
// per-request state and is safe for concurrent use.
type Directory struct {
	store  repository.Store
	events Publisher
	log    logrus.FieldLogger
	now    func() time.Time
}

// Option customises a Directory.
type Option func(*Directory)

// WithClock replaces time.Now as the source of "now" used to split past
// from upcoming shows.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// WithPublisher sets where events go after a successful command.
func WithPublisher(p Publisher) Option {
	return func(d *Directory) { d.events = p }
}

// WithLogger sets the logger used for store and publishing failures.
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Directory) { d.log = l }
}

// New constructs a Directory and panics if store is nil.
func New(store repository.Store, opts ...Option) *Directory {
	if store == nil {
		panic("nil store passed to service.New")
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	d := &Directory{
		store:  store,
		events: queue.NopPublisher{},
		log:    discard,
		now:    time.Now,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// fail classifies an error coming out of the store.  Validation and
// not-found errors raised inside a unit of work pass through; anything
// else is a persistence failure.
func (d *Directory) fail(op string, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	d.log.WithError(err).WithField("op", op).Error("store operation failed")
	return &PersistenceError{Op: op, Err: err}
}

// publish never fails the caller; the change is already committed.
func (d *Directory) publish(ctx context.Context, ev queue.Event) {
	if err := d.events.Publish(ctx, ev); err != nil {
		d.log.WithError(err).WithFields(logrus.Fields{
			"event_id":   ev.ID,
			"event_type": ev.Type,
		}).Warn("failed to publish event")
	}
}
