package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// env reads typed values from the environment.  Bad and missing values
// are collected rather than replaced by defaults so that Load can report
// all of them at once.
type env struct {
	missing []string
	invalid []string
}

func (e *env) str(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (e *env) must(key string) string {
	v := os.Getenv(key)
	if v == "" {
		e.missing = append(e.missing, key)
	}
	return v
}

func (e *env) bad(key, value, want string) {
	e.invalid = append(e.invalid, fmt.Sprintf("%s=%q (%s)", key, value, want))
}

func (e *env) boolean(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	e.bad(key, v, "want a boolean")
	return def
}

func (e *env) integer(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.bad(key, v, "want an integer")
		return def
	}
	return n
}

// positive reads an integer that must be at least 1 when set.
func (e *env) positive(key string, def int) int {
	n := e.integer(key, def)
	if n < 1 && os.Getenv(key) != "" {
		e.bad(key, os.Getenv(key), "want a positive integer")
		return def
	}
	return n
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		e.bad(key, v, "want a positive duration such as 1s")
		return def
	}
	return d
}

// oneOf reads a lower-cased value restricted to allowed.
func (e *env) oneOf(key, def string, allowed ...string) string {
	v := strings.ToLower(e.str(key, def))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	e.bad(key, os.Getenv(key), "want one of "+strings.Join(allowed, ", "))
	return def
}

func (e *env) err() error {
	var errs []error
	if len(e.missing) > 0 {
		errs = append(errs, errors.New("missing required env vars: "+strings.Join(e.missing, ", ")))
	}
	if len(e.invalid) > 0 {
		errs = append(errs, errors.New("invalid env vars: "+strings.Join(e.invalid, ", ")))
	}
	return errors.Join(errs...)
}
