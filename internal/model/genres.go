package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Genres is a list of category labels persisted as a single comma
// separated column.
type Genres []string

// ParseGenres splits a stored value into trimmed, non-empty labels.
func ParseGenres(s string) Genres {
	if strings.TrimSpace(s) == "" {
		return Genres{}
	}
	parts := strings.Split(s, ",")
	out := make(Genres, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String joins the labels the way they are stored.
func (g Genres) String() string {
	return strings.Join(g, ",")
}

// Value implements driver.Valuer.
func (g Genres) Value() (driver.Value, error) {
	return g.String(), nil
}

// Scan implements sql.Scanner.
func (g *Genres) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = Genres{}
	case string:
		*g = ParseGenres(v)
	case []byte:
		*g = ParseGenres(string(v))
	default:
		return fmt.Errorf("genres: unsupported source type %T", src)
	}
	return nil
}
