package repositories

import (
	"context"
	"database/sql"

	intconfig "flicktickets/internal/config"
	intdb "flicktickets/internal/db"
	"flicktickets/internal/domain/models"
)

// AdminRepository holds the catalog write statements.
type AdminRepository struct {
	DB *sql.DB
}

func (r AdminRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AdminRepository) exec(ctx context.Context, query string, args ...any) error {
	db := r.db()
	if db == nil {
		return errDBUnavailable
	}
	_, err := db.ExecContext(ctx, query, args...)
	return err
}

func (r AdminRepository) InsertMovie(ctx context.Context, in models.MovieInput) error {
	err := r.exec(ctx,
		`INSERT INTO Movie (Title, Summary, Language, ImageURL) VALUES (?, ?, ?, ?)`,
		in.Title, intdb.NullIfEmpty(in.Summary), in.Language, intdb.NullIfEmpty(in.ImageURL),
	)
	return err
}

func (r AdminRepository) UpdateMovie(ctx context.Context, id int64, in models.MovieInput) error {
	err := r.exec(ctx,
		`UPDATE Movie SET Title = ?, Summary = ?, Language = ?, ImageURL = ? WHERE MovieID = ?`,
		in.Title, intdb.NullIfEmpty(in.Summary), in.Language, intdb.NullIfEmpty(in.ImageURL), id,
	)
	return err
}

func (r AdminRepository) DeleteMovie(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM Movie WHERE MovieID = ?`, id)
}

func (r AdminRepository) InsertSport(ctx context.Context, in models.SportInput) error {
	err := r.exec(ctx, `
		INSERT INTO SportsMatch (Team1ID, Team2ID, Price, ImageURL, Category, VenueID)
		VALUES (?, ?, ?, ?, ?, ?)
	`, in.Team1, intdb.NullIfEmpty(in.Team2), intdb.NullIfNil(in.Price), intdb.NullIfEmpty(in.ImageURL),
		intdb.NullIfEmpty(in.Category), intdb.NullIfNil(in.VenueID))
	return err
}

func (r AdminRepository) UpdateSport(ctx context.Context, id int64, in models.SportInput) error {
	err := r.exec(ctx, `
		UPDATE SportsMatch
		SET Team1ID = ?, Team2ID = ?, Price = ?, ImageURL = ?, Category = ?, VenueID = ?
		WHERE MatchID = ?
	`, in.Team1, intdb.NullIfEmpty(in.Team2), intdb.NullIfNil(in.Price), intdb.NullIfEmpty(in.ImageURL),
		intdb.NullIfEmpty(in.Category), intdb.NullIfNil(in.VenueID), id)
	return err
}

func (r AdminRepository) DeleteSport(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM SportsMatch WHERE MatchID = ?`, id)
}

func (r AdminRepository) InsertEvent(ctx context.Context, in models.EventInput) error {
	err := r.exec(ctx,
		`INSERT INTO Events (Name, Category, Price, ImageURL, VenueID) VALUES (?, ?, ?, ?, ?)`,
		in.Name, in.Category, intdb.NullIfNil(in.Price), intdb.NullIfEmpty(in.ImageURL), intdb.NullIfNil(in.VenueID),
	)
	return err
}

func (r AdminRepository) UpdateEvent(ctx context.Context, id int64, in models.EventInput) error {
	err := r.exec(ctx,
		`UPDATE Events SET Name = ?, Category = ?, Price = ?, ImageURL = ?, VenueID = ? WHERE EventID = ?`,
		in.Name, in.Category, intdb.NullIfNil(in.Price), intdb.NullIfEmpty(in.ImageURL), intdb.NullIfNil(in.VenueID), id,
	)
	return err
}

func (r AdminRepository) DeleteEvent(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM Events WHERE EventID = ?`, id)
}
