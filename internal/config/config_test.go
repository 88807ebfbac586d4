package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Len(t, cfg.Team, 3)
	assert.Equal(t, "2026-01-05", cfg.ReferenceMonday)
	assert.Equal(t, "Asia/Dhaka", cfg.Timezone)
	assert.Equal(t, "30 22 * * 6", cfg.Notify.Cron)
	assert.Equal(t, []string{"Europe/Oslo"}, cfg.Shifts.DisplayTimezones)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "./roster.db", cfg.Store.Path)
	assert.Equal(t, ":3000", cfg.HTTP.Listen)

	loc, err := cfg.Location()
	require.NoError(t, err)
	ref, err := cfg.Reference(loc)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, ref.Weekday())
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `
team:
  - {id: 10, name: "Ada", short: "AD"}
  - {id: 20, name: "Grace", short: "GR"}
  - {id: 30, name: "Linus", short: "LI"}
reference_monday: "2026-02-02"
timezone: "Europe/Oslo"
store:
  driver: file
notify:
  discord_webhook_url: "https://discord.com/api/webhooks/1/abc"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("PORT", "8081")
	t.Setenv("API_KEY", "secret")
	t.Setenv("CLOCK_24H", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Team[1].ID)
	assert.Equal(t, "GR", cfg.Team[1].ShortCode)
	assert.Equal(t, "2026-02-02", cfg.ReferenceMonday)
	assert.Equal(t, "file", cfg.Store.Driver)
	assert.Equal(t, "./overrides.json", cfg.Store.Path)
	assert.Equal(t, ":8081", cfg.HTTP.Listen)
	assert.Equal(t, "secret", cfg.HTTP.APIKey)
	assert.True(t, cfg.Shifts.Clock24h)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "Should reject duplicate ids", mutate: func(c *Config) { c.Team[1].ID = c.Team[0].ID }},
		{name: "Should reject duplicate short codes", mutate: func(c *Config) { c.Team[2].ShortCode = "jh" }},
		{name: "Should reject a nameless person", mutate: func(c *Config) { c.Team[0].Name = " " }},
		{name: "Should reject a reference that is not a Monday", mutate: func(c *Config) { c.ReferenceMonday = "2026-01-06" }},
		{name: "Should reject a malformed reference", mutate: func(c *Config) { c.ReferenceMonday = "05/01/2026" }},
		{name: "Should reject an unknown timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{name: "Should reject a bad shift time", mutate: func(c *Config) { c.Shifts.Morning.Start = "8am" }},
		{name: "Should reject an unknown store driver", mutate: func(c *Config) { c.Store.Driver = "mongo" }},
		{name: "Should require a redis address", mutate: func(c *Config) { c.Store.Driver = "redis" }},
		{name: "Should reject a non-Discord webhook", mutate: func(c *Config) { c.Notify.DiscordWebhookURL = "https://example.com/hook" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
