package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"flicktickets/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestBookingRepositoryCreateBookingCallsProcedure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CALL sp_CreateBooking(?, ?, ?, ?, ?)")).
		WithArgs("alice", "m", int64(5), int64(2), float64(900)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := BookingRepository{DB: db}
	b := domain.ValidatedBooking{Username: "alice", Category: domain.CategoryMovie, ItemID: 5, TicketCount: 2, TotalPrice: 900}
	if err := repo.CreateBooking(context.Background(), b); err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryCreateBookingPassesEngineError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	engineErr := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}
	mock.ExpectExec("CALL sp_CreateBooking").WillReturnError(engineErr)

	repo := BookingRepository{DB: db}
	err = repo.CreateBooking(context.Background(), domain.ValidatedBooking{Username: "x", Category: domain.CategoryEvent, ItemID: 1, TicketCount: 1})
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != 1452 {
		t.Fatalf("expected mysql error 1452, got %v", err)
	}
}

func TestBookingRepositoryListByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	newer := time.Date(2025, 12, 2, 18, 0, 0, 0, time.UTC)
	older := time.Date(2025, 11, 20, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("FROM Booking b").WithArgs("alice").WillReturnRows(
		sqlmock.NewRows([]string{"BookingID", "NoOfTickets", "TotalPrice", "BookingTime", "ItemName"}).
			AddRow(int64(12), int64(2), 900.0, newer, "Dune: Part Two").
			AddRow(int64(7), int64(1), 1200.0, older, "RCB vs CSK"),
	)

	items, err := BookingRepository{DB: db}.ListByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByUsername error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].BookingID != 12 || items[0].ItemName != "Dune: Part Two" || !items[0].BookingTime.Equal(newer) {
		t.Fatalf("unexpected first item %+v", items[0])
	}
}

func TestBookingRepositoryGetForUserNotOwned(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("WHERE b.BookingID = \\? AND u.Username = \\?").WithArgs(int64(3), "mallory").
		WillReturnRows(sqlmock.NewRows([]string{"BookingID"}))

	_, err = BookingRepository{DB: db}.GetForUser(context.Background(), 3, "mallory")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestBookingRepositoryGetForUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	at := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM Booking b").WithArgs(int64(3), "alice").WillReturnRows(
		sqlmock.NewRows([]string{"BookingID", "Username", "Name", "category", "catId", "ItemName", "NoOfTickets", "TotalPrice", "BookingTime"}).
			AddRow(int64(3), "alice", "Alice", "S ", int64(4), "RCB vs CSK", int64(2), 2400.0, at),
	)

	got, err := BookingRepository{DB: db}.GetForUser(context.Background(), 3, "alice")
	if err != nil {
		t.Fatalf("GetForUser error: %v", err)
	}
	if got.Category != "s" || got.ItemID != 4 || got.TotalPrice != 2400 {
		t.Fatalf("unexpected ticket %+v", got)
	}
}

func TestBookingRepositoryWithoutDB(t *testing.T) {
	err := BookingRepository{}.CreateBooking(context.Background(), domain.ValidatedBooking{})
	if !errors.Is(err, errDBUnavailable) {
		t.Fatalf("expected errDBUnavailable, got %v", err)
	}
}
