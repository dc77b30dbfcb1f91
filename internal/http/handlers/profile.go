package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"flicktickets/internal/domain"
	"flicktickets/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// profileUsername prefers the authenticated user and falls back to ?username=.
func profileUsername(c *gin.Context) string {
	if u := strings.TrimSpace(c.GetString(middleware.UsernameKey)); u != "" {
		return u
	}
	return strings.TrimSpace(c.Query("username"))
}

// GET /api/my-profile?username=
func GetMyProfile(c *gin.Context) {
	profile, err := profileService().Get(c.Request.Context(), profileUsername(c))
	if err != nil {
		RespondDomainError(c, err, "An error occurred fetching profile data.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}

// GET /api/bookings/:id/ticket?username=
func GetBookingTicketPDF(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid booking id.", "")
		return
	}

	pdf, filename, err := ticketService(c).Generate(c.Request.Context(), id, profileUsername(c))
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "Booking not found.", "")
			return
		}
		RespondDomainError(c, err, "Failed to generate ticket.")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
