package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"flicktickets/internal/domain"

	"github.com/gin-gonic/gin"
)

// bookingReport is the client facing outcome of one booking attempt.
type bookingReport struct {
	Status  int
	Success bool
	Message string
	Detail  string
}

// reportBooking maps the result of BookingService.Create to a status and
// message.
func reportBooking(err error) bookingReport {
	if err == nil {
		return bookingReport{Status: http.StatusCreated, Success: true, Message: "Booking successful!"}
	}

	var unsupported domain.UnsupportedCategoryError
	var persist domain.PersistenceError
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return badBooking("Missing booking information.")
	case errors.As(err, &unsupported):
		return badBooking(fmt.Sprintf("Unsupported booking type \"%s\". Use: %s.", unsupported.Input, domain.AcceptedCategoryHint))
	case errors.Is(err, domain.ErrInvalidItemID):
		return badBooking("Invalid item id.")
	case errors.Is(err, domain.ErrInvalidTicketCount):
		return badBooking("Invalid ticket count.")
	case errors.Is(err, domain.ErrInvalidTotalPrice):
		return badBooking("Invalid total price.")
	case errors.As(err, &persist):
		detail := persist.Detail
		if detail == "" {
			detail = "Unknown error"
		}
		return bookingReport{Status: http.StatusInternalServerError, Message: "Booking failed on the server.", Detail: detail}
	default:
		return bookingReport{Status: http.StatusInternalServerError, Message: "Booking failed on the server.", Detail: err.Error()}
	}
}

func badBooking(msg string) bookingReport {
	return bookingReport{Status: http.StatusBadRequest, Message: msg}
}

func writeBookingReport(c *gin.Context, r bookingReport) {
	body := gin.H{"success": r.Success, "message": r.Message}
	if r.Detail != "" {
		body["detail"] = r.Detail
	}
	if rid := requestID(c); rid != "" {
		body["request_id"] = rid
	}
	c.JSON(r.Status, body)
}
