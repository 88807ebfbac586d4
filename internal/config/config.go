package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jhrahman/shiftmate/internal/domain"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

const discordWebhookPrefix = "https://discord.com/api/webhooks/"

type ShiftWindow struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type ShiftsConfig struct {
	Morning          ShiftWindow `yaml:"morning"`
	Evening          ShiftWindow `yaml:"evening"`
	DisplayTimezones []string    `yaml:"display_timezones"`
	// Clock24h renders shift times as 15:04 instead of 03:04 PM.
	Clock24h bool `yaml:"clock_24h"`
}

type StoreConfig struct {
	// Driver is one of memory, file, sqlite, redis.
	Driver    string `yaml:"driver"`
	Path      string `yaml:"path"`
	RedisAddr string `yaml:"redis_addr"`
	RedisKey  string `yaml:"redis_key"`
}

type NotifyConfig struct {
	DiscordWebhookURL string        `yaml:"discord_webhook_url"`
	SlackWebhookURL   string        `yaml:"slack_webhook_url"`
	SlackChannel      string        `yaml:"slack_channel"`
	Cron              string        `yaml:"cron"`
	RatePerMinute     int           `yaml:"rate_per_minute"`
	Timeout           time.Duration `yaml:"timeout"`
}

type HTTPConfig struct {
	Listen string `yaml:"listen"`
	APIKey string `yaml:"api_key"`
}

type SlackConfig struct {
	BotToken      string `yaml:"bot_token"`
	SigningSecret string `yaml:"signing_secret"`
}

type Config struct {
	Team            entity.Team  `yaml:"team"`
	ReferenceMonday string       `yaml:"reference_monday"`
	Timezone        string       `yaml:"timezone"`
	Shifts          ShiftsConfig `yaml:"shifts"`
	Store           StoreConfig  `yaml:"store"`
	Notify          NotifyConfig `yaml:"notify"`
	HTTP            HTTPConfig   `yaml:"http"`
	Slack           SlackConfig  `yaml:"slack"`
}

func DefaultTeam() entity.Team {
	return entity.Team{
		{ID: 1, Name: "Jahidur Rahman", ShortCode: "JH"},
		{ID: 2, Name: "Mahmudur Rahman Protic", ShortCode: "PR"},
		{ID: 3, Name: "Alamin Abu Zaman", ShortCode: "AL"},
	}
}

func DefaultConfig() *Config {
	cfg := &Config{Team: DefaultTeam()}
	cfg.Normalize()
	return cfg
}

// Normalize fills zero values with defaults.
func (c *Config) Normalize() {
	if len(c.Team) == 0 {
		c.Team = DefaultTeam()
	}
	if c.ReferenceMonday == "" {
		c.ReferenceMonday = domain.DefaultReferenceMonday
	}
	if c.Timezone == "" {
		c.Timezone = domain.DefaultTimezone
	}
	if c.Shifts.Morning == (ShiftWindow{}) {
		c.Shifts.Morning = ShiftWindow{Start: domain.DefaultMorningStart, End: domain.DefaultMorningEnd}
	}
	if c.Shifts.Evening == (ShiftWindow{}) {
		c.Shifts.Evening = ShiftWindow{Start: domain.DefaultEveningStart, End: domain.DefaultEveningEnd}
	}
	if c.Shifts.DisplayTimezones == nil {
		c.Shifts.DisplayTimezones = append([]string(nil), domain.DefaultDisplayTimezones...)
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "sqlite"
	}
	if c.Store.Path == "" {
		switch c.Store.Driver {
		case "file":
			c.Store.Path = "./overrides.json"
		default:
			c.Store.Path = "./roster.db"
		}
	}
	if c.Store.RedisKey == "" {
		c.Store.RedisKey = "roster:overrides"
	}
	if c.Notify.Cron == "" {
		c.Notify.Cron = domain.DefaultNotifyCron
	}
	if c.Notify.RatePerMinute <= 0 {
		c.Notify.RatePerMinute = 30
	}
	if c.Notify.Timeout <= 0 {
		c.Notify.Timeout = 10 * time.Second
	}
	if c.HTTP.Listen == "" {
		c.HTTP.Listen = ":3000"
	}
}

// Load reads the roster file (if it exists), applies .env style environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// no roster file, defaults and environment only
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Timezone = getEnv("TIMEZONE", c.Timezone)
	c.Store.Driver = getEnv("STORE_DRIVER", c.Store.Driver)
	c.Store.Path = getEnv("DATABASE_PATH", c.Store.Path)
	c.Store.RedisAddr = getEnv("REDIS_ADDR", c.Store.RedisAddr)
	c.Notify.DiscordWebhookURL = getEnv("DISCORD_WEBHOOK_URL", c.Notify.DiscordWebhookURL)
	c.Notify.SlackWebhookURL = getEnv("SLACK_WEBHOOK_URL", c.Notify.SlackWebhookURL)
	c.Notify.SlackChannel = getEnv("SLACK_CHANNEL", c.Notify.SlackChannel)
	c.Notify.Cron = getEnv("NOTIFY_CRON", c.Notify.Cron)
	c.HTTP.APIKey = getEnv("API_KEY", c.HTTP.APIKey)
	c.Slack.BotToken = getEnv("SLACK_BOT_TOKEN", c.Slack.BotToken)
	c.Slack.SigningSecret = getEnv("SLACK_SIGNING_SECRET", c.Slack.SigningSecret)

	if port := getEnv("PORT", ""); port != "" {
		c.HTTP.Listen = ":" + port
	}
	if clock, err := strconv.ParseBool(getEnv("CLOCK_24H", "")); err == nil {
		c.Shifts.Clock24h = clock
	}
	if rate, err := strconv.Atoi(getEnv("NOTIFY_RATE_PER_MINUTE", "")); err == nil {
		c.Notify.RatePerMinute = rate
	}
}

func (c *Config) Validate() error {
	if len(c.Team) == 0 {
		return errors.New("team cannot be empty")
	}

	ids := make(map[int]bool, len(c.Team))
	codes := make(map[string]bool, len(c.Team))
	for _, p := range c.Team {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("person %d has no name", p.ID)
		}
		if ids[p.ID] {
			return fmt.Errorf("duplicate person id %d", p.ID)
		}
		code := strings.ToUpper(p.ShortCode)
		if code != "" && codes[code] {
			return fmt.Errorf("duplicate short code %s", p.ShortCode)
		}
		ids[p.ID] = true
		codes[code] = true
	}

	loc, err := c.Location()
	if err != nil {
		return err
	}
	if _, err := c.Reference(loc); err != nil {
		return err
	}
	for _, tz := range c.Shifts.DisplayTimezones {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("invalid display timezone %q: %w", tz, err)
		}
	}
	for _, w := range []ShiftWindow{c.Shifts.Morning, c.Shifts.Evening} {
		if _, err := time.Parse("15:04", w.Start); err != nil {
			return fmt.Errorf("invalid shift start %q. Use HH:MM (24-hour format)", w.Start)
		}
		if _, err := time.Parse("15:04", w.End); err != nil {
			return fmt.Errorf("invalid shift end %q. Use HH:MM (24-hour format)", w.End)
		}
	}

	switch c.Store.Driver {
	case "memory", "file", "sqlite":
	case "redis":
		if c.Store.RedisAddr == "" {
			return errors.New("redis store needs redis_addr")
		}
	default:
		return fmt.Errorf("invalid store driver %q. Use memory, file, sqlite or redis", c.Store.Driver)
	}

	if u := c.Notify.DiscordWebhookURL; u != "" && !strings.HasPrefix(u, discordWebhookPrefix) {
		return fmt.Errorf("invalid Discord webhook URL, it must start with %s", discordWebhookPrefix)
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Reference parses the reference Monday as local midnight in loc.
func (c *Config) Reference(loc *time.Location) (time.Time, error) {
	ref, err := time.ParseInLocation(domain.WeekKeyLayout, c.ReferenceMonday, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference_monday %q. Use YYYY-MM-DD", c.ReferenceMonday)
	}
	if ref.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("reference_monday %s is a %s, not a Monday", c.ReferenceMonday, ref.Weekday())
	}
	return ref, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
