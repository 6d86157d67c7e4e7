package container

import (
	"log/slog"
	"time"

	"github.com/dancedispatch/server/internal/models"
	"github.com/dancedispatch/server/internal/services"
	"github.com/supabase-community/supabase-go"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	SupabaseClient *supabase.Client
	CsvRepo        *models.CsvRepo

	UserService   *services.UserService
	EventService  *services.EventService
	VenueService  *services.VenueService
	HostService   *services.HostService
	TagService    *services.TagService
	SavedService  *services.SavedService
	ReviewService *services.ReviewService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	supabaseClient *supabase.Client,
	supaUrl, supaKey string,
	dataDir string,
	eventsCacheTTL time.Duration,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey)
	csv := models.CsvNewRepo(dataDir, eventsCacheTTL, logger)

	userService := services.NewUserService(supa)
	eventService := services.NewEventService(csv)
	venueService := services.NewVenueService(csv)
	hostService := services.NewHostService(csv)
	tagService := services.NewTagService(csv)
	savedService := services.NewSavedService(csv)
	reviewService := services.NewReviewService(csv, supa, logger)

	return &Container{
		Logger:         logger,
		SupabaseClient: supabaseClient,
		CsvRepo:        csv,
		UserService:    userService,
		EventService:   eventService,
		VenueService:   venueService,
		HostService:    hostService,
		TagService:     tagService,
		SavedService:   savedService,
		ReviewService:  reviewService,
	}
}
