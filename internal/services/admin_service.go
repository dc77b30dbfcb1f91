package services

import (
	"context"
	"fmt"
	"strings"

	intdb "flicktickets/internal/db"
	"flicktickets/internal/domain"
	"flicktickets/internal/domain/models"
	"flicktickets/internal/repositories"
	"flicktickets/internal/utils"
)

// AdminService backs the catalog maintenance endpoints.
type AdminService struct {
	Repo      repositories.AdminRepository
	Catalog   CatalogService
	RequestID string
}

func (s AdminService) AddMovie(ctx context.Context, in models.MovieInput) error {
	if err := validateMovie(&in); err != nil {
		return err
	}
	if err := s.Repo.InsertMovie(ctx, in); err != nil {
		return domain.InternalError{Msg: "insert movie", Err: err}
	}
	s.Catalog.Invalidate(ctx, CacheKeyMovies)
	utils.LogEvent(s.RequestID, "admin", "add_movie", "new movie added: "+in.Title)
	return nil
}

func (s AdminService) UpdateMovie(ctx context.Context, id int64, in models.MovieInput) error {
	if err := validateMovie(&in); err != nil {
		return err
	}
	if err := s.Repo.UpdateMovie(ctx, id, in); err != nil {
		return domain.InternalError{Msg: "update movie", Err: err}
	}
	s.Catalog.Invalidate(ctx, CacheKeyMovies)
	utils.LogEvent(s.RequestID, "admin", "update_movie", fmt.Sprintf("updated MovieID: %d", id))
	return nil
}

func (s AdminService) DeleteMovie(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteMovie(ctx, id); err != nil {
		return deleteError(err, "Cannot delete. This movie is referenced by shows or bookings.", "delete movie")
	}
	s.Catalog.Invalidate(ctx, CacheKeyMovies)
	utils.LogEvent(s.RequestID, "admin", "delete_movie", fmt.Sprintf("deleted MovieID: %d", id))
	return nil
}

// AddSport rejects a venueId that does not exist instead of letting the
// foreign key fail.
func (s AdminService) AddSport(ctx context.Context, in models.SportInput) error {
	if err := validateSport(&in); err != nil {
		return err
	}
	if in.VenueID != nil {
		ok, err := s.Catalog.Repo.VenueExists(ctx, *in.VenueID)
		if err != nil {
			return domain.InternalError{Msg: "check venue", Err: err}
		}
		if !ok {
			return domain.ValidationError{
				Field: "venueId",
				Msg:   fmt.Sprintf("VenueID %d does not exist. Create the venue first or choose another.", *in.VenueID),
			}
		}
	}
	if err := s.Repo.InsertSport(ctx, in); err != nil {
		return domain.InternalError{Msg: "insert sport", Err: err}
	}
	s.Catalog.Invalidate(ctx, CacheKeySports)
	utils.LogEvent(s.RequestID, "admin", "add_sport", fmt.Sprintf("sport added: %s vs %s", in.Team1, in.Team2))
	return nil
}

func (s AdminService) UpdateSport(ctx context.Context, id int64, in models.SportInput) error {
	if err := validateSport(&in); err != nil {
		return err
	}
	if err := s.Repo.UpdateSport(ctx, id, in); err != nil {
		return domain.InternalError{Msg: "update sport", Err: err}
	}
	s.Catalog.Invalidate(ctx, CacheKeySports)
	utils.LogEvent(s.RequestID, "admin", "update_sport", fmt.Sprintf("updated MatchID: %d", id))
	return nil
}

func (s AdminService) DeleteSport(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteSport(ctx, id); err != nil {
		return deleteError(err, "Cannot delete. This match is referenced by bookings.", "delete sport")
	}
	s.Catalog.Invalidate(ctx, CacheKeySports)
	utils.LogEvent(s.RequestID, "admin", "delete_sport", fmt.Sprintf("deleted MatchID: %d", id))
	return nil
}

func (s AdminService) AddEvent(ctx context.Context, in models.EventInput) error {
	if err := validateEvent(&in); err != nil {
		return err
	}
	if err := s.Repo.InsertEvent(ctx, in); err != nil {
		return domain.InternalError{Msg: "insert event", Err: err}
	}
	s.Catalog.Invalidate(ctx, CacheKeyEvents)
	utils.LogEvent(s.RequestID, "admin", "add_event", "new event added: "+in.Name)
	return nil
}

func (s AdminService) UpdateEvent(ctx context.Context, id int64, in models.EventInput) error {
	if err := validateEvent(&in); err != nil {
		return err
	}
	if err := s.Repo.UpdateEvent(ctx, id, in); err != nil {
		return domain.InternalError{Msg: "update event", Err: err}
	}
	s.Catalog.Invalidate(ctx, CacheKeyEvents)
	utils.LogEvent(s.RequestID, "admin", "update_event", fmt.Sprintf("updated EventID: %d", id))
	return nil
}

func (s AdminService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteEvent(ctx, id); err != nil {
		return deleteError(err, "Cannot delete. This event is referenced by bookings.", "delete event")
	}
	s.Catalog.Invalidate(ctx, CacheKeyEvents)
	utils.LogEvent(s.RequestID, "admin", "delete_event", fmt.Sprintf("deleted EventID: %d", id))
	return nil
}

func validateMovie(in *models.MovieInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Language = strings.TrimSpace(in.Language)
	if in.Title == "" || in.Language == "" {
		return domain.ValidationError{Msg: "Title and Language are required.", Err: domain.ErrMissingField}
	}
	return nil
}

func validateSport(in *models.SportInput) error {
	in.Team1 = strings.TrimSpace(in.Team1)
	in.Team2 = strings.TrimSpace(in.Team2)
	if in.Team1 == "" {
		return domain.ValidationError{Msg: "Team 1 is required.", Err: domain.ErrMissingField}
	}
	if in.VenueID != nil && *in.VenueID <= 0 {
		in.VenueID = nil
	}
	return nil
}

func validateEvent(in *models.EventInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Category == "" {
		return domain.ValidationError{Msg: "Name and Category are required.", Err: domain.ErrMissingField}
	}
	if in.VenueID != nil && *in.VenueID <= 0 {
		in.VenueID = nil
	}
	return nil
}

func deleteError(err error, referencedMsg, op string) error {
	if intdb.IsRowReferenced(err) {
		return domain.ValidationError{Msg: referencedMsg, Err: domain.ErrRowReferenced}
	}
	return domain.InternalError{Msg: op, Err: err}
}
