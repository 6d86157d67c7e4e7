package routes

import (
	"github.com/dancedispatch/server/internal/container"
	"github.com/dancedispatch/server/internal/handlers"
	"github.com/dancedispatch/server/internal/middleware"
	"github.com/dancedispatch/server/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "dispatch-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.Signup(container.UserService))
		v1.POST("/login", handlers.Login(container.UserService))
		v1.POST("/logout", handlers.Logout())

		v1.GET("/events", handlers.ListEvents(container.EventService))
		v1.GET("/events/:id", handlers.GetEventByID(container.EventService))
		v1.GET("/events/:id/reviews", handlers.ListEventReviews(container.ReviewService))

		v1.GET("/venues", handlers.ListVenues(container.VenueService))
		v1.GET("/venues/:id", handlers.GetVenueByID(container.VenueService))

		v1.GET("/hosts", handlers.ListHosts(container.HostService))
		v1.GET("/hosts/:id", handlers.GetHostByID(container.HostService))

		v1.GET("/tags", handlers.ListTags(container.TagService))

		v1.GET("/profiles/:id", handlers.GetUser(container.UserService))
	}

	// Saved-state checks are public but user-aware: anonymous callers get
	// false rather than 401.
	optional := v1.Group("/users")
	optional.Use(middleware.OptionalAuth(container.UserService, container.Logger))
	{
		optional.GET("/saved-events/:id", handlers.CheckSaved(container.SavedService, models.SavedEvents))
		optional.GET("/saved-venues/:id", handlers.CheckSaved(container.SavedService, models.SavedVenues))
		optional.GET("/saved-hosts/:id", handlers.CheckSaved(container.SavedService, models.SavedHosts))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.UserService, container.Logger))
	{
		protected.GET("/profile", handlers.Profile())

		protected.PATCH("/events/:id", handlers.UpdateEvent(container.EventService))
		protected.POST("/reviews/:eventId", handlers.SubmitReviews(container.ReviewService))

		userRoutes := protected.Group("/users")
		{
			userRoutes.GET("/saved-events", handlers.ListSaved(container.SavedService, models.SavedEvents))
			userRoutes.POST("/saved-events/:id", handlers.ToggleSaved(container.SavedService, models.SavedEvents))
			userRoutes.GET("/saved-venues", handlers.ListSaved(container.SavedService, models.SavedVenues))
			userRoutes.POST("/saved-venues/:id", handlers.ToggleSaved(container.SavedService, models.SavedVenues))
			userRoutes.GET("/saved-hosts", handlers.ListSaved(container.SavedService, models.SavedHosts))
			userRoutes.POST("/saved-hosts/:id", handlers.ToggleSaved(container.SavedService, models.SavedHosts))
		}
	}

	return r
}
