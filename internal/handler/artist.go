package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListArtists handles GET /artists.
func (h *DirectoryHandler) ListArtists(c echo.Context) error {
	artists, err := h.svc.ListArtists(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "could not list artists")
	}
	return c.JSON(http.StatusOK, map[string]any{"artists": artists})
}

// SearchArtists handles POST /artists/search.
func (h *DirectoryHandler) SearchArtists(c echo.Context) error {
	var f searchForm
	if err := c.Bind(&f); err != nil {
		return badRequest(c, "invalid request body")
	}
	res, err := h.svc.SearchArtists(c.Request().Context(), f.SearchTerm)
	if err != nil {
		return h.fail(c, err, "could not search artists")
	}
	return c.JSON(http.StatusOK, map[string]any{"results": res, "search_term": f.SearchTerm})
}

// ShowArtist handles GET /artists/:id.
func (h *DirectoryHandler) ShowArtist(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	detail, err := h.svc.GetArtistDetail(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "could not load artist")
	}
	return c.JSON(http.StatusOK, detail)
}

// CreateArtistForm handles GET /artists/create.
func (h *DirectoryHandler) CreateArtistForm(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"form": artistForm{Genres: []string{}}})
}

// CreateArtist handles POST /artists/create.
func (h *DirectoryHandler) CreateArtist(c echo.Context) error {
	var f artistForm
	if err := c.Bind(&f); err != nil {
		return badRequest(c, "invalid request body")
	}
	v, err := h.svc.CreateArtist(c.Request().Context(), f.input())
	if err != nil {
		return h.fail(c, err, "An error occurred. Artist "+f.Name+" could not be listed.")
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Artist " + v.Name + " was successfully listed!",
		"artist":  v,
	})
}

// EditArtistForm handles GET /artists/:id/edit.
func (h *DirectoryHandler) EditArtistForm(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	v, err := h.svc.GetArtist(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "could not load artist")
	}
	return c.JSON(http.StatusOK, map[string]any{"id": v.ID, "form": artistFormOf(v)})
}

// EditArtist handles POST /artists/:id/edit.
func (h *DirectoryHandler) EditArtist(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var f artistForm
	if err := c.Bind(&f); err != nil {
		return badRequest(c, "invalid request body")
	}
	v, err := h.svc.UpdateArtist(c.Request().Context(), id, f.input())
	if err != nil {
		return h.fail(c, err, "An error occurred. Artist "+f.Name+" could not be updated.")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Artist " + v.Name + " was successfully updated!",
		"artist":  v,
	})
}

// DeleteArtist handles DELETE /artists/:id.
func (h *DirectoryHandler) DeleteArtist(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := h.svc.DeleteArtist(c.Request().Context(), id); err != nil {
		return h.fail(c, err, "An error occurred. Artist could not be deleted.")
	}
	return message(c, http.StatusOK, "Artist was successfully deleted!")
}
