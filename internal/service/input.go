package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/fyyur/internal/model"
)

// maxArtistGenres is the width of artists.genres.
const maxArtistGenres = 120

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// VenueInput carries the fields of a venue create or edit submission.
type VenueInput struct {
	Name               string   `json:"name" validate:"required,max=255"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,max=120"`
	Address            string   `json:"address" validate:"required,max=120"`
	Phone              string   `json:"phone" validate:"required,max=120"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,max=120,excludesall=0x2C"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

func (in *VenueInput) normalize() {
	trim(&in.Name, &in.City, &in.State, &in.Address, &in.Phone,
		&in.ImageLink, &in.FacebookLink, &in.WebsiteLink, &in.SeekingDescription)
	in.Genres = cleanGenres(in.Genres)
}

func (in VenueInput) validate() error {
	return validationError(validate.Struct(in))
}

// applyTo copies every submitted field onto v.
func (in VenueInput) applyTo(v *model.Venue) {
	v.Name = in.Name
	v.City = in.City
	v.State = in.State
	v.Address = in.Address
	v.Phone = in.Phone
	v.Genres = model.Genres(append([]string{}, in.Genres...))
	v.ImageLink = in.ImageLink
	v.FacebookLink = in.FacebookLink
	v.WebsiteLink = in.WebsiteLink
	v.SeekingTalent = in.SeekingTalent
	v.SeekingDescription = in.SeekingDescription
}

// ArtistInput carries the fields of an artist create or edit submission.
type ArtistInput struct {
	Name               string   `json:"name" validate:"required,max=255"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,max=120"`
	Phone              string   `json:"phone" validate:"required,max=120"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,max=120,excludesall=0x2C"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `json:"website_link" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

func (in *ArtistInput) normalize() {
	trim(&in.Name, &in.City, &in.State, &in.Phone,
		&in.ImageLink, &in.FacebookLink, &in.WebsiteLink, &in.SeekingDescription)
	in.Genres = cleanGenres(in.Genres)
}

func (in ArtistInput) validate() error {
	if err := validationError(validate.Struct(in)); err != nil {
		return err
	}
	if n := len(model.Genres(in.Genres).String()); n > maxArtistGenres {
		return invalid("genres", fmt.Sprintf("must be at most %d characters once joined", maxArtistGenres))
	}
	return nil
}

func (in ArtistInput) applyTo(a *model.Artist) {
	a.Name = in.Name
	a.City = in.City
	a.State = in.State
	a.Phone = in.Phone
	a.Genres = model.Genres(append([]string{}, in.Genres...))
	a.ImageLink = in.ImageLink
	a.FacebookLink = in.FacebookLink
	a.WebsiteLink = in.WebsiteLink
	a.SeekingVenue = in.SeekingVenue
	a.SeekingDescription = in.SeekingDescription
}

// ShowInput is a booking submission.
type ShowInput struct {
	VenueID   uint64    `json:"venue_id" validate:"required"`
	ArtistID  uint64    `json:"artist_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

func (in ShowInput) validate() error {
	return validationError(validate.Struct(in))
}

func (in ShowInput) key() model.ShowKey {
	return model.ShowKey{
		VenueID:   in.VenueID,
		ArtistID:  in.ArtistID,
		StartTime: model.NormalizeStart(in.StartTime),
	}
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// cleanGenres trims labels and drops empty ones.  A nil input stays nil
// so that "required" reports it.
func cleanGenres(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, g := range in {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// validationError converts validator output into a *ValidationError.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return invalid("input", err.Error())
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must have at most %s entries", fe.Param())
	case "url":
		return "must be a valid URL"
	case "excludesall":
		return "must not contain a comma"
	default:
		return "is invalid"
	}
}
