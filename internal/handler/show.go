package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ListShows handles GET /shows.
func (h *DirectoryHandler) ListShows(c echo.Context) error {
	shows, err := h.svc.ListShows(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "could not list shows")
	}
	return c.JSON(http.StatusOK, map[string]any{"shows": shows})
}

// CreateShowForm handles GET /shows/create.  The start time defaults to the
// current time.
func (h *DirectoryHandler) CreateShowForm(c echo.Context) error {
	f := showForm{StartTime: formTime(time.Now().UTC().Truncate(time.Second))}
	return c.JSON(http.StatusOK, map[string]any{"form": f})
}

// CreateShow handles POST /shows/create.
func (h *DirectoryHandler) CreateShow(c echo.Context) error {
	var f showForm
	if err := c.Bind(&f); err != nil {
		return badRequest(c, "invalid request body")
	}
	s, err := h.svc.CreateShow(c.Request().Context(), f.input())
	if err != nil {
		return h.fail(c, err, "An error occurred. Show could not be listed.")
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Show was successfully listed!",
		"show":    s,
	})
}

// GetShow handles GET /shows/:venue_id/:artist_id/:start_time.
func (h *DirectoryHandler) GetShow(c echo.Context) error {
	key, err := parseShowKey(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	row, err := h.svc.GetShow(c.Request().Context(), key)
	if err != nil {
		return h.fail(c, err, "could not load show")
	}
	return c.JSON(http.StatusOK, row)
}

// DeleteShow handles DELETE /shows/:venue_id/:artist_id/:start_time.
func (h *DirectoryHandler) DeleteShow(c echo.Context) error {
	key, err := parseShowKey(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.DeleteShow(c.Request().Context(), key); err != nil {
		return h.fail(c, err, "An error occurred. Show could not be deleted.")
	}
	return message(c, http.StatusOK, "Show was successfully deleted!")
}
