package services

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"flicktickets/internal/domain"
	"flicktickets/internal/domain/models"
	"flicktickets/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTicketServiceGenerate(t *testing.T) {
	loader := func(_ context.Context, id int64, username string) (models.BookingTicket, error) {
		return models.BookingTicket{
			BookingID:   id,
			Username:    username,
			Name:        "Alice",
			Category:    "m",
			ItemID:      9001,
			ItemName:    "Dune: Part Two",
			NoOfTickets: 2,
			TotalPrice:  900,
			BookingTime: time.Now(),
		}, nil
	}

	pdf, filename, err := TicketService{Loader: loader}.Generate(context.Background(), 12, "alice")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "TICKET_12_alice.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestTicketServiceGenerateNotOwned(t *testing.T) {
	loader := func(context.Context, int64, string) (models.BookingTicket, error) {
		return models.BookingTicket{}, sql.ErrNoRows
	}
	_, _, err := TicketService{Loader: loader}.Generate(context.Background(), 3, "mallory")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := (TicketService{Loader: loader}).Generate(context.Background(), 3, " "); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for blank username, got %v", err)
	}
}

func TestProfileServiceGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM Users").WithArgs("alice").WillReturnRows(
		sqlmock.NewRows([]string{"UserID", "Name", "Username", "Email", "PasswordHash", "Phone"}).
			AddRow(int64(1), "Alice", "alice", "alice@example.com", "hash", "98450"),
	)
	mock.ExpectQuery("FROM Booking b").WithArgs("alice").WillReturnRows(
		sqlmock.NewRows([]string{"BookingID", "NoOfTickets", "TotalPrice", "BookingTime", "ItemName"}).
			AddRow(int64(4), int64(1), 350.0, time.Now(), "Dune: Part Two"),
	)
	mock.ExpectQuery("FROM Users").WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"UserID"}))

	svc := ProfileService{Users: repositories.UserRepository{DB: db}, Bookings: repositories.BookingRepository{DB: db}}
	p, err := svc.Get(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if p.UserDetails.Email != "alice@example.com" || len(p.BookingHistory) != 1 {
		t.Fatalf("unexpected profile %+v", p)
	}

	if _, err := svc.Get(context.Background(), "ghost"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Get(context.Background(), ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
