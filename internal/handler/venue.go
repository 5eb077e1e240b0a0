package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListVenues handles GET /venues.
func (h *DirectoryHandler) ListVenues(c echo.Context) error {
	areas, err := h.svc.ListVenuesGrouped(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "could not list venues")
	}
	return c.JSON(http.StatusOK, map[string]any{"areas": areas})
}

// SearchVenues handles POST /venues/search.
func (h *DirectoryHandler) SearchVenues(c echo.Context) error {
	var f searchForm
	if err := c.Bind(&f); err != nil {
		return badRequest(c, "invalid request body")
	}
	res, err := h.svc.SearchVenues(c.Request().Context(), f.SearchTerm)
	if err != nil {
		return h.fail(c, err, "could not search venues")
	}
	return c.JSON(http.StatusOK, map[string]any{"results": res, "search_term": f.SearchTerm})
}

// ShowVenue handles GET /venues/:id.
func (h *DirectoryHandler) ShowVenue(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	detail, err := h.svc.GetVenueDetail(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "could not load venue")
	}
	return c.JSON(http.StatusOK, detail)
}

// CreateVenueForm handles GET /venues/create.
func (h *DirectoryHandler) CreateVenueForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"form": venueForm{Genres: []string{}}})
}

// CreateVenue handles POST /venues/create.
func (h *DirectoryHandler) CreateVenue(c echo.Context) error {
	var f venueForm
	if err := c.Bind(&f); err != nil {
		return badRequest(c, "invalid request body")
	}
	v, err := h.svc.CreateVenue(c.Request().Context(), f.input())
	if err != nil {
		return h.fail(c, err, "An error occurred. Venue "+f.Name+" could not be listed.")
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Venue " + v.Name + " was successfully listed!",
		"venue":   v,
	})
}

// EditVenueForm handles GET /venues/:id/edit.
func (h *DirectoryHandler) EditVenueForm(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	v, err := h.svc.GetVenue(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "could not load venue")
	}
	return c.JSON(http.StatusOK, map[string]any{"id": v.ID, "form": venueFormOf(v)})
}

// EditVenue handles POST /venues/:id/edit.
func (h *DirectoryHandler) EditVenue(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var f venueForm
	if err := c.Bind(&f); err != nil {
		return badRequest(c, "invalid request body")
	}
	v, err := h.svc.UpdateVenue(c.Request().Context(), id, f.input())
	if err != nil {
		return h.fail(c, err, "An error occurred. Venue "+f.Name+" could not be updated.")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Venue " + v.Name + " was successfully updated!",
		"venue":   v,
	})
}

// DeleteVenue handles DELETE /venues/:id.
func (h *DirectoryHandler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := h.svc.DeleteVenue(c.Request().Context(), id); err != nil {
		return h.fail(c, err, "An error occurred. Venue could not be deleted.")
	}
	return message(c, http.StatusOK, "Venue was successfully deleted!")
}
