package domain

import (
	"math"
	"strconv"
	"strings"
)

// maxExactInt is the largest integer a float64 holds without rounding.
const maxExactInt = 1 << 53

// BookingDetails is the raw bookingDetails object. Numeric fields keep the
// client's text so that "5" and 5 are treated alike.
type BookingDetails struct {
	Type       string
	ID         string
	Tickets    string
	TotalPrice string
}

// BookingRequest is one POST /api/book call. Details is nil when the client
// omitted bookingDetails.
type BookingRequest struct {
	Username string
	Details  *BookingDetails
}

// BookingFields holds the numeric part of a booking after validation.
type BookingFields struct {
	ItemID      int64
	TicketCount int64
	TotalPrice  float64
}

// ValidatedBooking is the only shape handed to sp_CreateBooking.
type ValidatedBooking struct {
	Username    string
	Category    Category
	ItemID      int64
	TicketCount int64
	TotalPrice  float64
}

// Args returns the stored procedure arguments in positional order.
func (b ValidatedBooking) Args() []any {
	return []any{b.Username, string(b.Category), b.ItemID, b.TicketCount, b.TotalPrice}
}

// ParseBookingRequest turns a raw request into a ValidatedBooking, stopping
// at the first problem found.
func ParseBookingRequest(req BookingRequest) (ValidatedBooking, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return ValidatedBooking{}, ValidationError{Field: "username", Msg: "required", Err: ErrMissingField}
	}
	if req.Details == nil {
		return ValidatedBooking{}, ValidationError{Field: "bookingDetails", Msg: "required", Err: ErrMissingField}
	}

	category, err := NormalizeCategory(req.Details.Type)
	if err != nil {
		return ValidatedBooking{}, ValidationError{Field: "type", Msg: err.Error(), Err: err}
	}

	fields, err := ValidateBookingFields(*req.Details)
	if err != nil {
		return ValidatedBooking{}, err
	}

	return AssembleBooking(username, category, fields), nil
}

// ValidateBookingFields coerces and checks id, tickets and totalPrice in that order.
func ValidateBookingFields(d BookingDetails) (BookingFields, error) {
	id, ok := parsePositiveInt(d.ID)
	if !ok {
		return BookingFields{}, ValidationError{Field: "id", Msg: "must be a positive integer", Err: ErrInvalidItemID}
	}
	tickets, ok := parsePositiveInt(d.Tickets)
	if !ok {
		return BookingFields{}, ValidationError{Field: "tickets", Msg: "must be a positive integer", Err: ErrInvalidTicketCount}
	}
	total, ok := parseNumber(d.TotalPrice)
	if !ok || total < 0 {
		return BookingFields{}, ValidationError{Field: "totalPrice", Msg: "must be zero or more", Err: ErrInvalidTotalPrice}
	}
	return BookingFields{ItemID: id, TicketCount: tickets, TotalPrice: total}, nil
}

func AssembleBooking(username string, category Category, f BookingFields) ValidatedBooking {
	return ValidatedBooking{
		Username:    username,
		Category:    category,
		ItemID:      f.ItemID,
		TicketCount: f.TicketCount,
		TotalPrice:  f.TotalPrice,
	}
}

// parseNumber accepts finite decimal text. Blank input is not a number.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parsePositiveInt(raw string) (int64, bool) {
	v, ok := parseNumber(raw)
	if !ok || v <= 0 || v != math.Trunc(v) || v > maxExactInt {
		return 0, false
	}
	return int64(v), true
}
