package handlers

import (
	"flicktickets/internal/domain"

	"github.com/gin-gonic/gin"
)

type bookingDetailsPayload struct {
	Type       Stringish `json:"type"`
	ID         Stringish `json:"id"`
	Tickets    Stringish `json:"tickets"`
	TotalPrice Stringish `json:"totalPrice"`
}

type bookingPayload struct {
	Username       Stringish              `json:"username"`
	BookingDetails *bookingDetailsPayload `json:"bookingDetails"`
}

func (p bookingPayload) toRequest() domain.BookingRequest {
	req := domain.BookingRequest{Username: p.Username.String()}
	if p.BookingDetails != nil {
		req.Details = &domain.BookingDetails{
			Type:       p.BookingDetails.Type.String(),
			ID:         p.BookingDetails.ID.String(),
			Tickets:    p.BookingDetails.Tickets.String(),
			TotalPrice: p.BookingDetails.TotalPrice.String(),
		}
	}
	return req
}

// POST /api/book
func CreateBooking(c *gin.Context) {
	var p bookingPayload
	if c.Request.Body == nil || c.ShouldBindJSON(&p) != nil {
		// An unreadable body carries no booking information at all.
		p = bookingPayload{}
	}

	_, err := bookingService(c).Create(c.Request.Context(), p.toRequest())
	writeBookingReport(c, reportBooking(err))
}
