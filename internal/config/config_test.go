package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_URL_ANON_KEY", "anon-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/csv_files", cfg.DataDir)
	assert.Equal(t, 5*time.Minute, cfg.EventsCacheTTL)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_RequiresSupabase(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_URL_ANON_KEY", "anon-key")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_CacheTTLOverride(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_URL_ANON_KEY", "anon-key")
	t.Setenv("EVENTS_CACHE_TTL", "90s")
	t.Setenv("CSV_DATA_DIR", "/srv/data")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.EventsCacheTTL)
	assert.Equal(t, "/srv/data", cfg.DataDir)

	t.Setenv("EVENTS_CACHE_TTL", "bogus")
	_, err = LoadConfig()
	assert.Error(t, err)
}
