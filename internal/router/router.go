// Package router registers HTTP routes on an echo instance.
package router

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/handler"
)

// RegisterRoutes registers the routes that sit outside the directory,
// currently only the health check.
func RegisterRoutes(e *echo.Echo, ping func(context.Context) error) {
	e.GET("/healthz", handler.Health(ping))
}

// RegisterDirectory registers the venue, artist and show endpoints.
// Static segments such as /create take precedence over :id in echo's
// router, so registration order does not matter.
func RegisterDirectory(e *echo.Echo, h *handler.DirectoryHandler) {
	venues := e.Group("/venues")
	venues.GET("", h.ListVenues)
	venues.POST("/search", h.SearchVenues)
	venues.GET("/create", h.CreateVenueForm)
	venues.POST("/create", h.CreateVenue)
	venues.GET("/:id", h.ShowVenue)
	venues.DELETE("/:id", h.DeleteVenue)
	venues.GET("/:id/edit", h.EditVenueForm)
	venues.POST("/:id/edit", h.EditVenue)

	artists := e.Group("/artists")
	artists.GET("", h.ListArtists)
	artists.POST("/search", h.SearchArtists)
	artists.GET("/create", h.CreateArtistForm)
	artists.POST("/create", h.CreateArtist)
	artists.GET("/:id", h.ShowArtist)
	artists.DELETE("/:id", h.DeleteArtist)
	artists.GET("/:id/edit", h.EditArtistForm)
	artists.POST("/:id/edit", h.EditArtist)

	shows := e.Group("/shows")
	shows.GET("", h.ListShows)
	shows.GET("/create", h.CreateShowForm)
	shows.POST("/create", h.CreateShow)
	shows.GET("/:venue_id/:artist_id/:start_time", h.GetShow)
	shows.DELETE("/:venue_id/:artist_id/:start_time", h.DeleteShow)
}
