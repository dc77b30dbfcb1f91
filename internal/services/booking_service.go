package services

import (
	"context"
	"fmt"

	intdb "flicktickets/internal/db"
	"flicktickets/internal/domain"
	"flicktickets/internal/repositories"
	"flicktickets/internal/utils"

	"go.uber.org/zap"
)

// BookingStore durably records a validated booking.
type BookingStore interface {
	CreateBooking(ctx context.Context, b domain.ValidatedBooking) error
}

type BookingService struct {
	Store     BookingStore
	RequestID string
}

func (s BookingService) store() BookingStore {
	if s.Store != nil {
		return s.Store
	}
	return repositories.BookingRepository{}
}

// Create validates req and, only when it is well formed, hands it to the
// store. Nothing is retried.
func (s BookingService) Create(ctx context.Context, req domain.BookingRequest) (domain.ValidatedBooking, error) {
	booking, err := domain.ParseBookingRequest(req)
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "reject", err.Error(), zap.String("username", req.Username))
		return domain.ValidatedBooking{}, err
	}

	if err := s.store().CreateBooking(ctx, booking); err != nil {
		perr := domain.PersistenceError{Op: "sp_CreateBooking", Detail: intdb.ErrorDetail(err), Err: err}
		utils.LogError(s.RequestID, "booking", "create", err, zap.String("username", booking.Username))
		return booking, perr
	}

	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("user=%s category=%s catId=%d tickets=%d total=%s",
		booking.Username, booking.Category, booking.ItemID, booking.TicketCount, utils.FormatMoney(booking.TotalPrice)))
	return booking, nil
}
