package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// listHandler serves a catalog listing as {success, data}.
func listHandler[T any](kind string, load func(context.Context) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := load(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch "+kind+".", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
	}
}

// GET /api/movies
func GetMovies(c *gin.Context) {
	listHandler("movies", catalogService().Movies)(c)
}

// GET /api/sports
func GetSports(c *gin.Context) {
	listHandler("sports", catalogService().Sports)(c)
}

// GET /api/events
func GetEvents(c *gin.Context) {
	listHandler("events", catalogService().Events)(c)
}

// GET /api/venues
func GetVenues(c *gin.Context) {
	listHandler("venues", catalogService().Venues)(c)
}

// detailHandler serves one catalog item; an unparsable id is reported as
// not found, like a missing row.
func detailHandler[T any](notFoundMsg, failMsg string, load func(context.Context, int64) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			respondError(c, http.StatusNotFound, notFoundMsg, "")
			return
		}
		data, err := load(c.Request.Context(), id)
		if err != nil {
			RespondDomainError(c, err, failMsg)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
	}
}

// GET /api/movie-details/:id
func GetMovieDetails(c *gin.Context) {
	detailHandler("Movie not found.", "Failed to fetch movie details.", catalogService().MovieDetail)(c)
}

// GET /api/sport-details/:id
func GetSportDetails(c *gin.Context) {
	detailHandler("Match not found.", "Failed to fetch sport details.", catalogService().SportDetail)(c)
}

// GET /api/event-details/:id
func GetEventDetails(c *gin.Context) {
	detailHandler("Event not found.", "Failed to fetch event details.", catalogService().EventDetail)(c)
}
