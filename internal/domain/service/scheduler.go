package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

const notifyTimeout = 30 * time.Second

// weeklyNotifier is the part of the roster service the scheduler drives.
type weeklyNotifier interface {
	NotifyUpcoming(ctx context.Context) (entity.Assignment, error)
	NotifiersConfigured() bool
}

type scheduler struct {
	roster  weeklyNotifier
	cron    *cron.Cron
	spec    string
	log     *zap.Logger
	mu      sync.Mutex
	running bool
}

func newScheduler(roster weeklyNotifier, spec string, loc *time.Location, log *zap.Logger) (*scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}

	s := &scheduler{
		roster: roster,
		cron:   cron.New(cron.WithLocation(loc)),
		spec:   spec,
		log:    log,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid notify cron %q: %w", spec, err)
	}
	return s, nil
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.cron.Start()

	entries := s.cron.Entries()
	if len(entries) > 0 {
		s.log.Info("Scheduler started", zap.String("cron", s.spec), zap.Time("next", entries[0].Next))
	}
}

// Stop halts the cron and waits for a running notification to finish.
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.log.Info("Scheduler stopping...")
	<-s.cron.Stop().Done()
	s.running = false
}

// RunNow sends the upcoming week notification immediately.
func (s *scheduler) RunNow(ctx context.Context) (entity.Assignment, error) {
	return s.roster.NotifyUpcoming(ctx)
}

func (s *scheduler) run() {
	if !s.roster.NotifiersConfigured() {
		s.log.Warn("Skipping weekly notification, no webhook configured")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	a, err := s.roster.NotifyUpcoming(ctx)
	if err != nil {
		s.log.Error("Weekly notification failed", zap.String("week", a.Week.String()), zap.Error(err))
		return
	}
	s.log.Info("Weekly notification sent", zap.String("week", a.Week.String()))
}
