package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/jhrahman/shiftmate/internal/config"
	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/roster"
	"github.com/jhrahman/shiftmate/internal/domain/service"
	"github.com/jhrahman/shiftmate/internal/metrics"
	"github.com/jhrahman/shiftmate/internal/notifier"
	"github.com/jhrahman/shiftmate/internal/store"
)

// app is everything a command needs, built from configuration.
type app struct {
	cfg      *config.Config
	loc      *time.Location
	store    contract.OverrideStore
	closer   io.Closer
	metrics  *metrics.Registry
	instance *service.Instance
}

func newApp(ctx context.Context, log *zap.Logger) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	reference, err := cfg.Reference(loc)
	if err != nil {
		return nil, err
	}

	overrides, closer, err := store.Open(ctx, cfg.Store, log)
	if err != nil {
		return nil, err
	}

	engine, err := roster.NewEngine(cfg.Team, reference, loc, overrides, roster.WithLogger(log))
	if err != nil {
		closer.Close()
		return nil, err
	}

	notifiers, err := buildNotifiers(cfg, loc)
	if err != nil {
		closer.Close()
		return nil, err
	}

	registry := metrics.NewRegistry()
	instance, err := service.NewInstance(engine, overrides, notifiers, cfg.Notify.Cron,
		service.WithLogger(log),
		service.WithMetrics(registry),
	)
	if err != nil {
		closer.Close()
		return nil, err
	}

	log.Debug("Roster ready",
		zap.Int("team_size", len(cfg.Team)),
		zap.String("reference_monday", roster.KeyOf(engine.Reference()).String()),
		zap.String("timezone", loc.String()),
		zap.Int("notifiers", len(notifiers)),
	)

	return &app{
		cfg:      cfg,
		loc:      loc,
		store:    overrides,
		closer:   closer,
		metrics:  registry,
		instance: instance,
	}, nil
}

func (a *app) roster() contract.RosterService {
	return a.instance.Roster
}

func (a *app) Close() error {
	return a.closer.Close()
}

func buildNotifiers(cfg *config.Config, loc *time.Location) ([]contract.Notifier, error) {
	shifts, err := notifier.NewShifts(cfg.Shifts, loc)
	if err != nil {
		return nil, err
	}

	var notifiers []contract.Notifier
	n := cfg.Notify
	if n.DiscordWebhookURL != "" {
		notifiers = append(notifiers, notifier.NewDiscord(n.DiscordWebhookURL, shifts, n.Timeout, n.RatePerMinute))
	}
	if n.SlackWebhookURL != "" {
		notifiers = append(notifiers, notifier.NewSlackWebhook(n.SlackWebhookURL, shifts, n.Timeout, n.RatePerMinute))
	}
	if cfg.Slack.BotToken != "" && n.SlackChannel != "" {
		client := slack.New(cfg.Slack.BotToken)
		notifiers = append(notifiers, notifier.NewSlackChannel(client, n.SlackChannel, shifts, n.RatePerMinute))
	}
	return notifiers, nil
}

// withApp builds the app for a command and releases it afterwards.
func withApp(ctx context.Context, fn func(a *app) error) (err error) {
	a, err := newApp(ctx, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close store: %w", cerr))
		}
	}()
	return fn(a)
}
