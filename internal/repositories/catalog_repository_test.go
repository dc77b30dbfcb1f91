package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"flicktickets/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestCatalogRepositoryListVenues(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM Venue v").WillReturnRows(
		sqlmock.NewRows([]string{"VenueID", "Name", "CityName"}).
			AddRow(int64(1), "PVR Orion Mall", "Bengaluru").
			AddRow(int64(6), "Chinnaswamy Stadium", ""),
	)

	venues, err := CatalogRepository{DB: db}.ListVenues(context.Background())
	if err != nil {
		t.Fatalf("ListVenues error: %v", err)
	}
	if len(venues) != 2 || venues[1].Name != "Chinnaswamy Stadium" {
		t.Fatalf("unexpected venues %+v", venues)
	}
}

func TestCatalogRepositoryListSportsNullColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	start := time.Date(2025, 11, 10, 19, 30, 0, 0, time.UTC)
	mock.ExpectQuery("FROM SportsMatch").WillReturnRows(
		sqlmock.NewRows([]string{"MatchID", "Team1ID", "Team2ID", "Price", "StartTime", "ImageURL", "Category", "VenueID"}).
			AddRow(int64(1), "RCB", "CSK", 1200.0, start, "", "Cricket", int64(6)).
			AddRow(int64(2), "India", "", nil, nil, "", "", nil),
	)

	matches, err := CatalogRepository{DB: db}.ListSports(context.Background())
	if err != nil {
		t.Fatalf("ListSports error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Price == nil || *matches[0].Price != 1200 || matches[0].VenueID == nil || *matches[0].VenueID != 6 {
		t.Fatalf("unexpected first match %+v", matches[0])
	}
	if matches[1].Price != nil || matches[1].StartTime != nil || matches[1].VenueID != nil {
		t.Fatalf("NULL columns should stay nil: %+v", matches[1])
	}
}

func TestCatalogRepositoryGetMovieMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM Movie WHERE MovieID = \\?").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"MovieID"}))

	_, err = CatalogRepository{DB: db}.GetMovie(context.Background(), 99)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestCatalogRepositoryGetEventDetail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM Events e").WithArgs(int64(1)).WillReturnRows(
		sqlmock.NewRows([]string{"EventID", "EventName", "Category", "Price", "StartTime", "ImageURL", "VenueName", "CityName"}).
			AddRow(int64(1), "Anuv Jain - Live Concert", "Music", 800.0, nil, "", "Palace Grounds", "Bengaluru"),
	)

	d, err := CatalogRepository{DB: db}.GetEventDetail(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetEventDetail error: %v", err)
	}
	if d.EventName != "Anuv Jain - Live Concert" || d.CityName != "Bengaluru" || d.StartTime != nil {
		t.Fatalf("unexpected detail %+v", d)
	}
}

func TestCatalogRepositoryVenueExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	q := regexp.QuoteMeta("SELECT VenueID FROM Venue WHERE VenueID = ?")
	mock.ExpectQuery(q).WithArgs(int64(3)).WillReturnRows(sqlmock.NewRows([]string{"VenueID"}).AddRow(int64(3)))
	mock.ExpectQuery(q).WithArgs(int64(42)).WillReturnRows(sqlmock.NewRows([]string{"VenueID"}))

	repo := CatalogRepository{DB: db}
	if ok, err := repo.VenueExists(context.Background(), 3); err != nil || !ok {
		t.Fatalf("venue 3 should exist: %v %v", ok, err)
	}
	if ok, err := repo.VenueExists(context.Background(), 42); err != nil || ok {
		t.Fatalf("venue 42 should not exist: %v %v", ok, err)
	}
}

func TestAdminRepositoryDeleteReferencedMovie(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Movie WHERE MovieID = ?")).WithArgs(int64(4)).
		WillReturnError(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"})

	err = AdminRepository{DB: db}.DeleteMovie(context.Background(), 4)
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != 1451 {
		t.Fatalf("expected mysql error 1451, got %v", err)
	}
}

func TestAdminRepositoryInsertSportStoresNulls(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO SportsMatch").
		WithArgs("India", nil, nil, nil, "Cricket", nil).
		WillReturnResult(sqlmock.NewResult(10, 1))

	err = AdminRepository{DB: db}.InsertSport(context.Background(), models.SportInput{Team1: "India", Category: "Cricket"})
	if err != nil {
		t.Fatalf("InsertSport error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
