package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"flicktickets/internal/domain"
	"flicktickets/internal/domain/models"
	"flicktickets/internal/repositories"

	"go.uber.org/zap"
)

// Cache keys for the listing endpoints.
const (
	CacheKeyMovies = "catalog:movies"
	CacheKeySports = "catalog:sports"
	CacheKeyEvents = "catalog:events"
	CacheKeyVenues = "catalog:venues"
)

// CatalogCache stores serialized listings. Get reports found=false on a miss.
type CatalogCache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type CatalogService struct {
	Repo     repositories.CatalogRepository
	Cache    CatalogCache
	CacheTTL time.Duration
}

// cached serves key from the cache, loading and storing it on a miss.
// Cache failures only cost a database round trip.
func cached[T any](ctx context.Context, s CatalogService, key string, load func(context.Context) (T, error)) (T, error) {
	if s.Cache != nil {
		raw, found, err := s.Cache.Get(ctx, key)
		if err != nil {
			zap.L().Warn("catalog cache get failed", zap.String("key", key), zap.Error(err))
		} else if found {
			var out T
			if err := json.Unmarshal(raw, &out); err == nil {
				return out, nil
			}
		}
	}

	out, err := load(ctx)
	if err != nil {
		return out, err
	}

	if s.Cache != nil && s.CacheTTL > 0 {
		if raw, err := json.Marshal(out); err == nil {
			if err := s.Cache.Set(ctx, key, raw, s.CacheTTL); err != nil {
				zap.L().Warn("catalog cache set failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return out, nil
}

func (s CatalogService) Movies(ctx context.Context) ([]models.Movie, error) {
	return cached(ctx, s, CacheKeyMovies, s.Repo.ListMovies)
}

func (s CatalogService) Sports(ctx context.Context) ([]models.SportsMatch, error) {
	return cached(ctx, s, CacheKeySports, s.Repo.ListSports)
}

func (s CatalogService) Events(ctx context.Context) ([]models.Event, error) {
	return cached(ctx, s, CacheKeyEvents, s.Repo.ListEvents)
}

// Venues falls back to the sample venue list while the table is empty.
func (s CatalogService) Venues(ctx context.Context) ([]models.Venue, error) {
	venues, err := cached(ctx, s, CacheKeyVenues, s.Repo.ListVenues)
	if err != nil {
		return nil, err
	}
	if len(venues) == 0 {
		return sampleVenues(), nil
	}
	return venues, nil
}

func (s CatalogService) MovieDetail(ctx context.Context, id int64) (models.MovieDetail, error) {
	movie, err := s.Repo.GetMovie(ctx, id)
	if err != nil {
		return models.MovieDetail{}, notFoundOr(err, "movie")
	}
	return models.MovieDetail{Movie: movie, Shows: sampleShows()}, nil
}

func (s CatalogService) SportDetail(ctx context.Context, id int64) (models.SportDetail, error) {
	d, err := s.Repo.GetSportDetail(ctx, id)
	if err != nil {
		return models.SportDetail{}, notFoundOr(err, "match")
	}
	return d, nil
}

func (s CatalogService) EventDetail(ctx context.Context, id int64) (models.EventDetail, error) {
	d, err := s.Repo.GetEventDetail(ctx, id)
	if err != nil {
		return models.EventDetail{}, notFoundOr(err, "event")
	}
	return d, nil
}

// Invalidate drops cached listings after an admin write.
func (s CatalogService) Invalidate(ctx context.Context, keys ...string) {
	if s.Cache == nil || len(keys) == 0 {
		return
	}
	if err := s.Cache.Delete(ctx, keys...); err != nil {
		zap.L().Warn("catalog cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func notFoundOr(err error, resource string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	return domain.InternalError{Msg: "load " + resource, Err: err}
}
