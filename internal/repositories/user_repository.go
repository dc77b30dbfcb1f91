package repositories

import (
	"context"
	"database/sql"

	intconfig "flicktickets/internal/config"
	intdb "flicktickets/internal/db"
	"flicktickets/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts a user and returns its UserID. Duplicate usernames or
// emails surface as MySQL error 1062.
func (r UserRepository) Create(ctx context.Context, u models.NewUser) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, errDBUnavailable
	}
	res, err := db.ExecContext(ctx,
		`INSERT INTO Users (Name, Username, Email, PasswordHash, Phone) VALUES (?, ?, ?, ?, ?)`,
		u.Name, u.Username, u.Email, u.PasswordHash, intdb.NullIfEmpty(u.Phone),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByUsername returns sql.ErrNoRows when the user does not exist.
func (r UserRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	db := r.db()
	if db == nil {
		return models.User{}, errDBUnavailable
	}
	var (
		u     models.User
		phone sql.NullString
	)
	err := db.QueryRowContext(ctx, `
		SELECT UserID, Name, Username, Email, PasswordHash, Phone
		FROM Users
		WHERE Username = ?
		LIMIT 1
	`, username).Scan(&u.UserID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &phone)
	if err != nil {
		return models.User{}, err
	}
	u.Phone = phone.String
	return u, nil
}

// CountUsers backs the db-check endpoint.
func (r UserRepository) CountUsers(ctx context.Context) (int, error) {
	db := r.db()
	if db == nil {
		return 0, errDBUnavailable
	}
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Users`).Scan(&n)
	return n, err
}
