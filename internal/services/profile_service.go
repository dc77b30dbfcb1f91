package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"flicktickets/internal/domain"
	"flicktickets/internal/domain/models"
	"flicktickets/internal/repositories"
)

type ProfileService struct {
	Users    repositories.UserRepository
	Bookings repositories.BookingRepository
}

// Get returns the user's public details and booking history.
func (s ProfileService) Get(ctx context.Context, username string) (models.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.Profile{}, domain.ValidationError{Msg: "Username is required.", Err: domain.ErrMissingField}
	}

	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.Profile{}, domain.InternalError{Msg: "load user", Err: err}
	}

	history, err := s.Bookings.ListByUsername(ctx, username)
	if err != nil {
		return models.Profile{}, domain.InternalError{Msg: "load booking history", Err: err}
	}

	return models.Profile{
		UserDetails: models.UserDetails{
			Name:     user.Name,
			Email:    user.Email,
			Phone:    user.Phone,
			Username: user.Username,
		},
		BookingHistory: history,
	}, nil
}
