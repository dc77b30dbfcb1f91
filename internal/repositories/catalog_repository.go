package repositories

import (
	"context"
	"database/sql"

	intconfig "flicktickets/internal/config"
	intdb "flicktickets/internal/db"
	"flicktickets/internal/domain/models"
)

// CatalogRepository serves the read side of Movie, SportsMatch, Events and Venue.
type CatalogRepository struct {
	DB *sql.DB
}

func (r CatalogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const (
	movieColumns = `MovieID, COALESCE(Title, ''), COALESCE(Summary, ''), COALESCE(Language, ''), COALESCE(ImageURL, '')`
	sportColumns = `MatchID, COALESCE(Team1ID, ''), COALESCE(Team2ID, ''), Price, StartTime, COALESCE(ImageURL, ''), COALESCE(Category, ''), VenueID`
	eventColumns = `EventID, COALESCE(Name, ''), COALESCE(Category, ''), Price, StartTime, COALESCE(ImageURL, ''), VenueID`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(s rowScanner) (models.Movie, error) {
	var m models.Movie
	err := s.Scan(&m.MovieID, &m.Title, &m.Summary, &m.Language, &m.ImageURL)
	return m, err
}

func scanSport(s rowScanner) (models.SportsMatch, error) {
	var (
		m       models.SportsMatch
		price   sql.NullFloat64
		start   sql.NullTime
		venueID sql.NullInt64
	)
	if err := s.Scan(&m.MatchID, &m.Team1ID, &m.Team2ID, &price, &start, &m.ImageURL, &m.Category, &venueID); err != nil {
		return m, err
	}
	m.Price = intdb.FloatPtr(price)
	m.StartTime = intdb.TimePtr(start)
	m.VenueID = intdb.Int64Ptr(venueID)
	return m, nil
}

func scanEvent(s rowScanner) (models.Event, error) {
	var (
		e       models.Event
		price   sql.NullFloat64
		start   sql.NullTime
		venueID sql.NullInt64
	)
	if err := s.Scan(&e.EventID, &e.Name, &e.Category, &price, &start, &e.ImageURL, &venueID); err != nil {
		return e, err
	}
	e.Price = intdb.FloatPtr(price)
	e.StartTime = intdb.TimePtr(start)
	e.VenueID = intdb.Int64Ptr(venueID)
	return e, nil
}

// listRows runs query and scans every row with scan.
func listRows[T any](ctx context.Context, db *sql.DB, query string, scan func(rowScanner) (T, error), args ...any) ([]T, error) {
	if db == nil {
		return nil, errDBUnavailable
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r CatalogRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return listRows(ctx, r.db(), `SELECT `+movieColumns+` FROM Movie ORDER BY MovieID`, scanMovie)
}

func (r CatalogRepository) ListSports(ctx context.Context) ([]models.SportsMatch, error) {
	return listRows(ctx, r.db(), `SELECT `+sportColumns+` FROM SportsMatch ORDER BY MatchID`, scanSport)
}

func (r CatalogRepository) ListEvents(ctx context.Context) ([]models.Event, error) {
	return listRows(ctx, r.db(), `SELECT `+eventColumns+` FROM Events ORDER BY EventID`, scanEvent)
}

func (r CatalogRepository) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return listRows(ctx, r.db(), `
		SELECT v.VenueID, COALESCE(v.Name, ''), COALESCE(c.Name, '')
		FROM Venue v
		LEFT JOIN City c ON v.CityID = c.CityID
		ORDER BY v.VenueID
	`, func(s rowScanner) (models.Venue, error) {
		var v models.Venue
		err := s.Scan(&v.VenueID, &v.Name, &v.CityName)
		return v, err
	})
}

// GetMovie returns sql.ErrNoRows when the movie does not exist.
func (r CatalogRepository) GetMovie(ctx context.Context, id int64) (models.Movie, error) {
	db := r.db()
	if db == nil {
		return models.Movie{}, errDBUnavailable
	}
	return scanMovie(db.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM Movie WHERE MovieID = ?`, id))
}

func (r CatalogRepository) GetSportDetail(ctx context.Context, id int64) (models.SportDetail, error) {
	db := r.db()
	if db == nil {
		return models.SportDetail{}, errDBUnavailable
	}
	var (
		d     models.SportDetail
		price sql.NullFloat64
		start sql.NullTime
	)
	err := db.QueryRowContext(ctx, `
		SELECT
			sm.MatchID, COALESCE(sm.Team1ID, ''), COALESCE(sm.Team2ID, ''), sm.Price, sm.StartTime,
			COALESCE(sm.ImageURL, ''), COALESCE(sm.Category, ''),
			COALESCE(v.Name, '') AS VenueName,
			COALESCE(c.Name, '') AS CityName
		FROM SportsMatch sm
		LEFT JOIN Venue v ON sm.VenueID = v.VenueID
		LEFT JOIN City c ON v.CityID = c.CityID
		WHERE sm.MatchID = ?
	`, id).Scan(&d.MatchID, &d.Team1ID, &d.Team2ID, &price, &start, &d.ImageURL, &d.Category, &d.VenueName, &d.CityName)
	if err != nil {
		return models.SportDetail{}, err
	}
	d.Price = intdb.FloatPtr(price)
	d.StartTime = intdb.TimePtr(start)
	return d, nil
}

func (r CatalogRepository) GetEventDetail(ctx context.Context, id int64) (models.EventDetail, error) {
	db := r.db()
	if db == nil {
		return models.EventDetail{}, errDBUnavailable
	}
	var (
		d     models.EventDetail
		price sql.NullFloat64
		start sql.NullTime
	)
	err := db.QueryRowContext(ctx, `
		SELECT
			e.EventID, COALESCE(e.Name, '') AS EventName, COALESCE(e.Category, ''), e.Price, e.StartTime,
			COALESCE(e.ImageURL, ''),
			COALESCE(v.Name, '') AS VenueName,
			COALESCE(c.Name, '') AS CityName
		FROM Events e
		LEFT JOIN Venue v ON e.VenueID = v.VenueID
		LEFT JOIN City c ON v.CityID = c.CityID
		WHERE e.EventID = ?
	`, id).Scan(&d.EventID, &d.EventName, &d.Category, &price, &start, &d.ImageURL, &d.VenueName, &d.CityName)
	if err != nil {
		return models.EventDetail{}, err
	}
	d.Price = intdb.FloatPtr(price)
	d.StartTime = intdb.TimePtr(start)
	return d, nil
}

func (r CatalogRepository) VenueExists(ctx context.Context, id int64) (bool, error) {
	db := r.db()
	if db == nil {
		return false, errDBUnavailable
	}
	var found int64
	err := db.QueryRowContext(ctx, `SELECT VenueID FROM Venue WHERE VenueID = ?`, id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
