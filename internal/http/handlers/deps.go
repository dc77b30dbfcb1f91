package handlers

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"flicktickets/internal/auth"
	"flicktickets/internal/domain/models"
	"flicktickets/internal/repositories"
	"flicktickets/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators shared by every handler. A nil DB means the
// repositories fall back to config.DB.
type Deps struct {
	DB             *sql.DB
	BookingStore   services.BookingStore
	Cache          services.CatalogCache
	CacheTTL       time.Duration
	Tokens         *auth.Tokens
	AdminUsernames []string
	TicketLoader   func(ctx context.Context, bookingID int64, username string) (models.BookingTicket, error)
}

var (
	depsMu sync.RWMutex
	deps   Deps

	routerMu sync.RWMutex
	router   *gin.Engine
)

// Configure installs the handler dependencies. Call once before serving.
func Configure(d Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	deps = d
}

// SetRouter stores the active gin engine for /api/routes.
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func currentDeps() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

func bookingService(c *gin.Context) services.BookingService {
	d := currentDeps()
	store := d.BookingStore
	if store == nil {
		store = repositories.BookingRepository{DB: d.DB}
	}
	return services.BookingService{Store: store, RequestID: requestID(c)}
}

func authService(c *gin.Context) services.AuthService {
	d := currentDeps()
	return services.AuthService{
		Users:          repositories.UserRepository{DB: d.DB},
		Tokens:         d.Tokens,
		AdminUsernames: d.AdminUsernames,
		RequestID:      requestID(c),
	}
}

func catalogService() services.CatalogService {
	d := currentDeps()
	return services.CatalogService{
		Repo:     repositories.CatalogRepository{DB: d.DB},
		Cache:    d.Cache,
		CacheTTL: d.CacheTTL,
	}
}

func adminService(c *gin.Context) services.AdminService {
	d := currentDeps()
	return services.AdminService{
		Repo:      repositories.AdminRepository{DB: d.DB},
		Catalog:   catalogService(),
		RequestID: requestID(c),
	}
}

func profileService() services.ProfileService {
	d := currentDeps()
	return services.ProfileService{
		Users:    repositories.UserRepository{DB: d.DB},
		Bookings: repositories.BookingRepository{DB: d.DB},
	}
}

func ticketService(c *gin.Context) services.TicketService {
	d := currentDeps()
	return services.TicketService{
		Bookings:  repositories.BookingRepository{DB: d.DB},
		Loader:    d.TicketLoader,
		RequestID: requestID(c),
	}
}
