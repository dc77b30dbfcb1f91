package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "flicktickets/internal/config"
	"flicktickets/internal/domain"
	"flicktickets/internal/domain/models"
)

var errDBUnavailable = errors.New("database not connected")

// BookingRepository reads and writes the Booking table. Writes go through
// sp_CreateBooking, which owns stock and referential checks.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// CreateBooking calls sp_CreateBooking(username, category, catId, tickets, total).
func (r BookingRepository) CreateBooking(ctx context.Context, b domain.ValidatedBooking) error {
	db := r.db()
	if db == nil {
		return errDBUnavailable
	}
	_, err := db.ExecContext(ctx, `CALL sp_CreateBooking(?, ?, ?, ?, ?)`, b.Args()...)
	return err
}

// ListByUsername returns a user's bookings, newest first. Item names are
// resolved by fn_GetItemName from the lowercase category and catId columns.
func (r BookingRepository) ListByUsername(ctx context.Context, username string) ([]models.BookingHistoryItem, error) {
	db := r.db()
	if db == nil {
		return nil, errDBUnavailable
	}
	rows, err := db.QueryContext(ctx, `
		SELECT
			b.BookingID,
			b.NoOfTickets,
			b.TotalPrice,
			b.BookingTime,
			COALESCE(fn_GetItemName(b.category, b.catId), '') AS ItemName
		FROM Booking b
		INNER JOIN Users u ON b.UserID = u.UserID
		WHERE u.Username = ?
		ORDER BY b.BookingTime DESC
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingHistoryItem{}
	for rows.Next() {
		var item models.BookingHistoryItem
		if err := rows.Scan(&item.BookingID, &item.NoOfTickets, &item.TotalPrice, &item.BookingTime, &item.ItemName); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// GetForUser loads one booking, but only when it belongs to username.
func (r BookingRepository) GetForUser(ctx context.Context, bookingID int64, username string) (models.BookingTicket, error) {
	if bookingID <= 0 {
		return models.BookingTicket{}, fmt.Errorf("invalid booking id %d", bookingID)
	}
	db := r.db()
	if db == nil {
		return models.BookingTicket{}, errDBUnavailable
	}

	var t models.BookingTicket
	err := db.QueryRowContext(ctx, `
		SELECT
			b.BookingID,
			u.Username,
			u.Name,
			b.category,
			b.catId,
			COALESCE(fn_GetItemName(b.category, b.catId), ''),
			b.NoOfTickets,
			b.TotalPrice,
			b.BookingTime
		FROM Booking b
		INNER JOIN Users u ON b.UserID = u.UserID
		WHERE b.BookingID = ? AND u.Username = ?
		LIMIT 1
	`, bookingID, username).Scan(
		&t.BookingID,
		&t.Username,
		&t.Name,
		&t.Category,
		&t.ItemID,
		&t.ItemName,
		&t.NoOfTickets,
		&t.TotalPrice,
		&t.BookingTime,
	)
	if err != nil {
		return models.BookingTicket{}, err
	}
	t.Category = strings.ToLower(strings.TrimSpace(t.Category))
	return t, nil
}
