package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"flicktickets/internal/domain"
	"flicktickets/internal/domain/models"
	"flicktickets/internal/repositories"
	"flicktickets/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a PDF ticket for one booking.
type TicketService struct {
	Bookings  repositories.BookingRepository
	RequestID string
	Loader    func(ctx context.Context, bookingID int64, username string) (models.BookingTicket, error)
}

func (s TicketService) Generate(ctx context.Context, bookingID int64, username string) ([]byte, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, "", domain.ValidationError{Msg: "Username is required.", Err: domain.ErrMissingField}
	}
	if bookingID <= 0 {
		return nil, "", domain.ValidationError{Field: "id", Msg: "Invalid booking id."}
	}

	t, err := s.load(ctx, bookingID, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.NotFoundError{Resource: "booking", Err: err}
		}
		return nil, "", domain.InternalError{Msg: "load booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "tickets", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildTicketPDF(t)
}

func (s TicketService) load(ctx context.Context, bookingID int64, username string) (models.BookingTicket, error) {
	if s.Loader != nil {
		return s.Loader(ctx, bookingID, username)
	}
	return s.Bookings.GetForUser(ctx, bookingID, username)
}

func buildTicketPDF(t models.BookingTicket) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("FlickTickets Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FLICKTICKETS")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking No   : #%d", t.BookingID),
		fmt.Sprintf("Booked by    : %s (%s)", safe(t.Name, "-"), safe(t.Username, "-")),
		fmt.Sprintf("Category     : %s", domain.Category(t.Category).Label()),
		fmt.Sprintf("Item         : %s", safe(t.ItemName, fmt.Sprintf("#%d", t.ItemID))),
		fmt.Sprintf("Tickets      : %d", t.NoOfTickets),
		fmt.Sprintf("Total paid   : %s", utils.FormatRupees(t.TotalPrice)),
		fmt.Sprintf("Booked at    : %s", utils.FormatDateTime(t.BookingTime)),
		fmt.Sprintf("Ticket code  : FT-%d-%s-%d", t.BookingID, strings.ToUpper(safe(t.Category, "x")), t.ItemID),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Show this ticket at the venue entrance. Valid for the number of tickets listed above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TICKET_%d_%s.pdf", t.BookingID, safeFilenamePart(t.Username))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
