package handler

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/service"
)

// formBool accepts checkbox values ("y", "on") as well as the usual
// boolean spellings.
type formBool bool

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on", "true", "1":
		return true, nil
	case "", "n", "no", "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (b *formBool) UnmarshalParam(s string) error {
	v, err := parseBool(s)
	if err != nil {
		return err
	}
	*b = formBool(v)
	return nil
}

func (b *formBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = formBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid boolean %s", data)
	}
	return b.UnmarshalParam(s)
}

var startLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// parseStart parses a show start time.  Values without a zone are UTC.
func parseStart(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", s)
}

// formTime is a start time as submitted by the show form.
type formTime time.Time

func (t *formTime) UnmarshalParam(s string) error {
	if strings.TrimSpace(s) == "" {
		*t = formTime{}
		return nil
	}
	v, err := parseStart(s)
	if err != nil {
		return err
	}
	*t = formTime(v)
	return nil
}

func (t *formTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid start time %s", data)
	}
	return t.UnmarshalParam(s)
}

func (t formTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t))
}

// formGenres accepts genres as repeated form values, a comma separated
// string or a JSON array.  Every value is split the way the column is
// stored, so "Jazz,Reggae" and ["Jazz", "Reggae"] bind alike.
type formGenres []string

// UnmarshalParams receives every submitted "genres" value.
func (g *formGenres) UnmarshalParams(params []string) error {
	out := formGenres{}
	for _, p := range params {
		out = append(out, model.ParseGenres(p)...)
	}
	*g = out
	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (g *formGenres) UnmarshalParam(s string) error {
	return g.UnmarshalParams([]string{s})
}

func (g *formGenres) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*g = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		return g.UnmarshalParams(list)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid genres %s", data)
	}
	return g.UnmarshalParam(s)
}

type venueForm struct {
	Name               string     `form:"name" json:"name"`
	City               string     `form:"city" json:"city"`
	State              string     `form:"state" json:"state"`
	Address            string     `form:"address" json:"address"`
	Phone              string     `form:"phone" json:"phone"`
	ImageLink          string     `form:"image_link" json:"image_link"`
	Genres             formGenres `form:"genres" json:"genres"`
	FacebookLink       string     `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string     `form:"website_link" json:"website_link"`
	SeekingTalent      formBool   `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string     `form:"seeking_description" json:"seeking_description"`
}

func (f venueForm) input() service.VenueInput {
	return service.VenueInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Genres:             []string(f.Genres),
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      bool(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}

func venueFormOf(v *model.Venue) venueForm {
	return venueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             append(formGenres{}, v.Genres...),
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      formBool(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

type artistForm struct {
	Name               string     `form:"name" json:"name"`
	City               string     `form:"city" json:"city"`
	State              string     `form:"state" json:"state"`
	Phone              string     `form:"phone" json:"phone"`
	ImageLink          string     `form:"image_link" json:"image_link"`
	Genres             formGenres `form:"genres" json:"genres"`
	FacebookLink       string     `form:"facebook_link" json:"facebook_link"`
	WebsiteLink        string     `form:"website_link" json:"website_link"`
	SeekingVenue       formBool   `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string     `form:"seeking_description" json:"seeking_description"`
}

func (f artistForm) input() service.ArtistInput {
	return service.ArtistInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Genres:             []string(f.Genres),
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       bool(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}

func artistFormOf(a *model.Artist) artistForm {
	return artistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             append(formGenres{}, a.Genres...),
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       formBool(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

type showForm struct {
	VenueID   uint64   `form:"venue_id" json:"venue_id"`
	ArtistID  uint64   `form:"artist_id" json:"artist_id"`
	StartTime formTime `form:"start_time" json:"start_time"`
}

func (f showForm) input() service.ShowInput {
	return service.ShowInput{
		VenueID:   f.VenueID,
		ArtistID:  f.ArtistID,
		StartTime: time.Time(f.StartTime),
	}
}

type searchForm struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}
