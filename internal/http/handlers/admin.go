package handlers

import (
	"net/http"

	"flicktickets/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type moviePayload struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Language string `json:"language"`
	ImageURL string `json:"imageUrl"`
}

func (p moviePayload) input() models.MovieInput {
	return models.MovieInput{Title: p.Title, Summary: p.Summary, Language: p.Language, ImageURL: p.ImageURL}
}

type sportPayload struct {
	Team1    string    `json:"team1"`
	Team2    string    `json:"team2"`
	Price    Stringish `json:"price"`
	ImageURL string    `json:"imageUrl"`
	Category string    `json:"category"`
	VenueID  Stringish `json:"venueId"`
}

func (p sportPayload) input() models.SportInput {
	return models.SportInput{
		Team1:    p.Team1,
		Team2:    p.Team2,
		Price:    p.Price.Float64Ptr(),
		ImageURL: p.ImageURL,
		Category: p.Category,
		VenueID:  p.VenueID.Int64Ptr(),
	}
}

type eventPayload struct {
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Price    Stringish `json:"price"`
	ImageURL string    `json:"imageUrl"`
	VenueID  Stringish `json:"venueId"`
}

func (p eventPayload) input() models.EventInput {
	return models.EventInput{
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price.Float64Ptr(),
		ImageURL: p.ImageURL,
		VenueID:  p.VenueID.Int64Ptr(),
	}
}

func respondAdminOK(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

// POST /api/add/movie
func AddMovie(c *gin.Context) {
	var p moviePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := adminService(c).AddMovie(c.Request.Context(), p.input()); err != nil {
		RespondDomainError(c, err, "Failed to add movie.")
		return
	}
	respondAdminOK(c, http.StatusCreated, "Movie added successfully!")
}

// PUT /api/update/movie/:id
func UpdateMovie(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid movie id.", "")
		return
	}
	var p moviePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := adminService(c).UpdateMovie(c.Request.Context(), id, p.input()); err != nil {
		RespondDomainError(c, err, "Failed to update movie.")
		return
	}
	respondAdminOK(c, http.StatusOK, "Movie updated successfully!")
}

// DELETE /api/delete/movie/:id
func DeleteMovie(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid movie id.", "")
		return
	}
	if err := adminService(c).DeleteMovie(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err, "Failed to delete movie.")
		return
	}
	respondAdminOK(c, http.StatusOK, "Movie deleted.")
}

// POST /api/add/sport
func AddSport(c *gin.Context) {
	var p sportPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := adminService(c).AddSport(c.Request.Context(), p.input()); err != nil {
		RespondDomainError(c, err, "Failed to add sport.")
		return
	}
	respondAdminOK(c, http.StatusCreated, "Sport added successfully!")
}

// PUT /api/update/sport/:id
func UpdateSport(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid sport id.", "")
		return
	}
	var p sportPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := adminService(c).UpdateSport(c.Request.Context(), id, p.input()); err != nil {
		RespondDomainError(c, err, "Failed to update sport.")
		return
	}
	respondAdminOK(c, http.StatusOK, "Sport updated successfully!")
}

// DELETE /api/delete/sport/:id
func DeleteSport(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid sport id.", "")
		return
	}
	if err := adminService(c).DeleteSport(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err, "Failed to delete sport.")
		return
	}
	respondAdminOK(c, http.StatusOK, "Sport deleted.")
}

// POST /api/add/event
func AddEvent(c *gin.Context) {
	var p eventPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := adminService(c).AddEvent(c.Request.Context(), p.input()); err != nil {
		RespondDomainError(c, err, "Failed to add event.")
		return
	}
	respondAdminOK(c, http.StatusCreated, "Event added successfully!")
}

// PUT /api/update/event/:id
func UpdateEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid event id.", "")
		return
	}
	var p eventPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := adminService(c).UpdateEvent(c.Request.Context(), id, p.input()); err != nil {
		RespondDomainError(c, err, "Failed to update event.")
		return
	}
	respondAdminOK(c, http.StatusOK, "Event updated successfully!")
}

// DELETE /api/delete/event/:id
func DeleteEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid event id.", "")
		return
	}
	if err := adminService(c).DeleteEvent(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err, "Failed to delete event.")
		return
	}
	respondAdminOK(c, http.StatusOK, "Event deleted.")
}
