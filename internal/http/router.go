package api

import (
	stdhttp "net/http"

	intconfig "flicktickets/internal/config"
	h "flicktickets/internal/http/handlers"
	"flicktickets/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine and installs deps for the handlers.
func NewRouter(env intconfig.Env, deps h.Deps) *gin.Engine {
	h.Configure(deps)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		zap.L().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found.",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	limiter := middleware.NewIPRateLimiter(env.RateLimitPerMin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		api.POST("/signup", middleware.RateLimit(limiter), h.Signup)
		api.POST("/login", middleware.RateLimit(limiter), h.Login)

		// Catalog
		api.GET("/movies", h.GetMovies)
		api.GET("/sports", h.GetSports)
		api.GET("/events", h.GetEvents)
		api.GET("/venues", h.GetVenues)
		api.GET("/movie-details/:id", h.GetMovieDetails)
		api.GET("/sport-details/:id", h.GetSportDetails)
		api.GET("/event-details/:id", h.GetEventDetails)

		// Booking & profile
		api.POST("/book", h.CreateBooking)
		api.GET("/my-profile", middleware.AuthOptional(deps.Tokens), h.GetMyProfile)
		api.GET("/bookings/:id/ticket", middleware.AuthOptional(deps.Tokens), h.GetBookingTicketPDF)

		// Admin
		admin := api.Group("")
		if env.AdminAuth {
			admin.Use(middleware.JWTAuth(deps.Tokens), middleware.RequireRoles("admin"))
		}
		mountAdmin(admin)
	}

	h.SetRouter(r)
	return r
}

func mountAdmin(g *gin.RouterGroup) {
	g.POST("/add/movie", h.AddMovie)
	g.POST("/add/sport", h.AddSport)
	g.POST("/add/event", h.AddEvent)

	g.PUT("/update/movie/:id", h.UpdateMovie)
	g.PUT("/update/sport/:id", h.UpdateSport)
	g.PUT("/update/event/:id", h.UpdateEvent)

	g.DELETE("/delete/movie/:id", h.DeleteMovie)
	g.DELETE("/delete/sport/:id", h.DeleteSport)
	g.DELETE("/delete/event/:id", h.DeleteEvent)
}
