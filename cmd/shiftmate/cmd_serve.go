package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jhrahman/shiftmate/internal/handlers"
	"github.com/jhrahman/shiftmate/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, Slack command endpoint and weekly notifier",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return withApp(ctx, func(a *app) error {
		var slackHandler *handlers.SlackHandler
		if a.cfg.Slack.SigningSecret != "" {
			slackHandler = handlers.New(a.roster(), a.cfg.Slack.SigningSecret, logger)
		} else {
			logger.Info("SLACK_SIGNING_SECRET not set, /slack/commands disabled")
		}

		srv := server.New(server.Config{
			Listen:   a.cfg.HTTP.Listen,
			APIKey:   a.cfg.HTTP.APIKey,
			Location: a.loc,
		}, a.roster(), slackHandler, a.metrics, logger)

		if !a.roster().NotifiersConfigured() {
			logger.Warn("No notification webhook configured, weekly announcements will be skipped")
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return srv.Run(gctx)
		})
		g.Go(func() error {
			a.instance.Scheduler.Start()
			<-gctx.Done()
			a.instance.Scheduler.Stop()
			return nil
		})

		err := g.Wait()
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Info("Shut down cleanly", zap.String("listen", a.cfg.HTTP.Listen))
		return nil
	})
}
