// Package repository defines the persistence contract of the booking
// directory and its MySQL implementation.  The sentinel errors below are
// shared by every Store implementation so that higher layers can tell
// missing rows apart from storage failures.
package repository

import "errors"

// ErrVenueNotFound is returned when no venue has the requested id.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when no artist has the requested id.
var ErrArtistNotFound = errors.New("artist not found")

// ErrShowNotFound is returned when no show matches a composite key.
var ErrShowNotFound = errors.New("show not found")

// ErrShowExists is returned when a show with the same venue, artist and
// start time is already booked.
var ErrShowExists = errors.New("show already exists")
