// Package handler exposes the directory over HTTP.  Handlers bind form or
// JSON input, call the service and render its view models as JSON.
package handler

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/service"
)

// DirectoryHandler serves the venue, artist and show endpoints.
type DirectoryHandler struct {
	svc *service.Directory
	log logrus.FieldLogger
}

// NewDirectoryHandler panics if svc is nil.
func NewDirectoryHandler(svc *service.Directory, log logrus.FieldLogger) *DirectoryHandler {
	if svc == nil {
		panic("nil service passed to NewDirectoryHandler")
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &DirectoryHandler{svc: svc, log: log}
}

// fail writes the response for a service error.  msg is the user-facing
// text used for validation and internal failures.
func (h *DirectoryHandler) fail(c echo.Context, err error, msg string) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":   "validation_failed",
			"message": msg,
			"fields":  verr.Fields,
		})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error":   "not_found",
			"message": err.Error(),
		})
	default:
		h.log.WithError(err).WithField("path", c.Path()).Error("request failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "internal_error",
			"message": msg,
		})
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad_request", "message": msg})
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"message": msg})
}

func parseID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// parseShowKey reads :venue_id/:artist_id/:start_time.
func parseShowKey(c echo.Context) (model.ShowKey, error) {
	venueID, err := parseID(c, "venue_id")
	if err != nil {
		return model.ShowKey{}, errors.New("invalid venue_id")
	}
	artistID, err := parseID(c, "artist_id")
	if err != nil {
		return model.ShowKey{}, errors.New("invalid artist_id")
	}
	raw, err := url.PathUnescape(c.Param("start_time"))
	if err != nil {
		return model.ShowKey{}, errors.New("invalid start_time")
	}
	start, err := parseStart(raw)
	if err != nil {
		return model.ShowKey{}, errors.New("invalid start_time")
	}
	return model.ShowKey{VenueID: venueID, ArtistID: artistID, StartTime: model.NormalizeStart(start)}, nil
}
