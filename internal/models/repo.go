package models

import (
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/supabase-community/supabase-go"
)

var Validate = validator.New()

// ErrNotFound is returned by write operations when no row matches the
// requested id. Read paths return nil instead of an error.
var ErrNotFound = errors.New("record not found")

const (
	EventsFile  = "events.csv"
	VenuesFile  = "venues.csv"
	HostsFile   = "hosts.csv"
	TagsFile    = "tags.csv"
	ReviewsFile = "reviews.csv"

	ProfileTable = "profiles"
)

// CsvRepo is the flat-file record store. It owns the data directory, the
// events/venues caches and the clock used for cache expiry and review
// timestamps, so tests can control time.
type CsvRepo struct {
	dataDir string
	logger  *slog.Logger
	now     func() time.Time

	events eventsCache
	venues venuesCache
}

func CsvNewRepo(dataDir string, eventsTTL time.Duration, logger *slog.Logger) *CsvRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &CsvRepo{
		dataDir: dataDir,
		logger:  logger,
		now:     time.Now,
		events:  eventsCache{ttl: eventsTTL},
	}
}

// SetClock replaces the repo clock. Intended for tests.
func (cr *CsvRepo) SetClock(now func() time.Time) {
	cr.now = now
}

type SupabaseRepo struct {
	supabaseClient *supabase.Client
	url            string
	key            string
}

func SupabaseNewRepo(supabaseClient *supabase.Client, url, key string) *SupabaseRepo {
	return &SupabaseRepo{
		supabaseClient: supabaseClient,
		url:            url,
		key:            key,
	}
}

// GetAuthenticatedClient returns a Supabase client acting under the given
// access token, so postgrest row-level security applies to the caller.
func (su *SupabaseRepo) GetAuthenticatedClient(accessToken string) (*supabase.Client, error) {
	if su.url == "" || su.key == "" {
		return su.supabaseClient, nil
	}

	options := &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + accessToken,
		},
	}

	return supabase.NewClient(su.url, su.key, options)
}
