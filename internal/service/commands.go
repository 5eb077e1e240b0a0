package service

import (
	"context"
	"errors"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// CreateVenue validates in and stores a new venue in one unit of work.
func (d *Directory) CreateVenue(ctx context.Context, in VenueInput) (*model.Venue, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	var v model.Venue
	in.applyTo(&v)
	if err := d.store.WithTx(ctx, func(w repository.Writer) error {
		return w.CreateVenue(ctx, &v)
	}); err != nil {
		return nil, d.fail("creating venue", err)
	}

	d.publish(ctx, queue.NewEntityEvent(queue.VenueCreated, v.ID, v.Name, d.now()))
	return &v, nil
}

// UpdateVenue applies in to the venue with the given id.
func (d *Directory) UpdateVenue(ctx context.Context, id uint64, in VenueInput) (*model.Venue, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	var v *model.Venue
	if err := d.store.WithTx(ctx, func(w repository.Writer) error {
		cur, err := w.GetVenue(ctx, id)
		if err != nil {
			return venueErr(id, err)
		}
		in.applyTo(cur)
		if err := w.UpdateVenue(ctx, cur); err != nil {
			return venueErr(id, err)
		}
		v = cur
		return nil
	}); err != nil {
		return nil, d.fail("updating venue", err)
	}

	d.publish(ctx, queue.NewEntityEvent(queue.VenueUpdated, v.ID, v.Name, d.now()))
	return v, nil
}

// DeleteVenue removes the venue and every show booked there.
func (d *Directory) DeleteVenue(ctx context.Context, id uint64) error {
	if err := d.store.WithTx(ctx, func(w repository.Writer) error {
		return venueErr(id, w.DeleteVenue(ctx, id))
	}); err != nil {
		return d.fail("deleting venue", err)
	}

	d.publish(ctx, queue.NewEntityEvent(queue.VenueDeleted, id, "", d.now()))
	return nil
}

// CreateArtist validates in and stores a new artist in one unit of work.
func (d *Directory) CreateArtist(ctx context.Context, in ArtistInput) (*model.Artist, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	var a model.Artist
	in.applyTo(&a)
	if err := d.store.WithTx(ctx, func(w repository.Writer) error {
		return w.CreateArtist(ctx, &a)
	}); err != nil {
		return nil, d.fail("creating artist", err)
	}

	d.publish(ctx, queue.NewEntityEvent(queue.ArtistCreated, a.ID, a.Name, d.now()))
	return &a, nil
}

// UpdateArtist applies in to the artist with the given id.
func (d *Directory) UpdateArtist(ctx context.Context, id uint64, in ArtistInput) (*model.Artist, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	var a *model.Artist
	if err := d.store.WithTx(ctx, func(w repository.Writer) error {
		cur, err := w.GetArtist(ctx, id)
		if err != nil {
			return artistErr(id, err)
		}
		in.applyTo(cur)
		if err := w.UpdateArtist(ctx, cur); err != nil {
			return artistErr(id, err)
		}
		a = cur
		return nil
	}); err != nil {
		return nil, d.fail("updating artist", err)
	}

	d.publish(ctx, queue.NewEntityEvent(queue.ArtistUpdated, a.ID, a.Name, d.now()))
	return a, nil
}

// DeleteArtist removes the artist and every show they play.
func (d *Directory) DeleteArtist(ctx context.Context, id uint64) error {
	if err := d.store.WithTx(ctx, func(w repository.Writer) error {
		return artistErr(id, w.DeleteArtist(ctx, id))
	}); err != nil {
		return d.fail("deleting artist", err)
	}

	d.publish(ctx, queue.NewEntityEvent(queue.ArtistDeleted, id, "", d.now()))
	return nil
}

// CreateShow books an artist at a venue.  Both must exist; that is
// checked explicitly inside the unit of work rather than left to the
// foreign keys, so the caller learns which reference is wrong.
func (d *Directory) CreateShow(ctx context.Context, in ShowInput) (*model.Show, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	s := model.Show{ShowKey: in.key()}
	if err := d.store.WithTx(ctx, func(w repository.Writer) error {
		if _, err := w.GetVenue(ctx, s.VenueID); err != nil {
			if errors.Is(err, repository.ErrVenueNotFound) {
				return invalid("venue_id", "does not reference an existing venue")
			}
			return err
		}
		if _, err := w.GetArtist(ctx, s.ArtistID); err != nil {
			if errors.Is(err, repository.ErrArtistNotFound) {
				return invalid("artist_id", "does not reference an existing artist")
			}
			return err
		}
		if err := w.CreateShow(ctx, &s); err != nil {
			if errors.Is(err, repository.ErrShowExists) {
				return invalid("start_time", "this artist is already booked at this venue at that time")
			}
			return err
		}
		return nil
	}); err != nil {
		return nil, d.fail("creating show", err)
	}

	d.publish(ctx, queue.NewShowEvent(queue.ShowBooked, s.ShowKey, d.now()))
	return &s, nil
}

// DeleteShow cancels one show.
func (d *Directory) DeleteShow(ctx context.Context, key model.ShowKey) error {
	key.StartTime = model.NormalizeStart(key.StartTime)
	if err := d.store.WithTx(ctx, func(w repository.Writer) error {
		if err := w.DeleteShow(ctx, key); err != nil {
			if errors.Is(err, repository.ErrShowNotFound) {
				return notFound("show", key)
			}
			return err
		}
		return nil
	}); err != nil {
		return d.fail("deleting show", err)
	}

	d.publish(ctx, queue.NewShowEvent(queue.ShowCancelled, key, d.now()))
	return nil
}

func venueErr(id uint64, err error) error {
	if errors.Is(err, repository.ErrVenueNotFound) {
		return notFound("venue", id)
	}
	return err
}

func artistErr(id uint64, err error) error {
	if errors.Is(err, repository.ErrArtistNotFound) {
		return notFound("artist", id)
	}
	return err
}
