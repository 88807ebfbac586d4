package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jhrahman/shiftmate/internal/domain"
	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
	"github.com/jhrahman/shiftmate/internal/domain/roster"
	"github.com/jhrahman/shiftmate/internal/metrics"
)

type Option func(*rosterService)

func WithLogger(log *zap.Logger) Option {
	return func(s *rosterService) {
		if log != nil {
			s.log = log
		}
	}
}

func WithMetrics(m *metrics.Registry) Option {
	return func(s *rosterService) {
		s.metrics = m
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *rosterService) {
		if now != nil {
			s.now = now
		}
	}
}

type rosterService struct {
	engine    *roster.Engine
	editor    *roster.Editor
	notifiers []contract.Notifier
	metrics   *metrics.Registry
	log       *zap.Logger
	now       func() time.Time
}

func newRoster(engine *roster.Engine, store contract.OverrideStore, notifiers []contract.Notifier, opts ...Option) *rosterService {
	if store == nil {
		store = roster.NewMemoryStore()
	}

	s := &rosterService{
		engine:    engine,
		editor:    roster.NewEditor(engine.Team(), store),
		notifiers: notifiers,
		log:       zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *rosterService) Team() entity.Team {
	return s.engine.Team()
}

func (s *rosterService) Resolve(ctx context.Context, date time.Time) entity.Assignment {
	a := s.engine.Resolve(ctx, date)
	s.metrics.ObserveResolution(a.Overridden)
	return a
}

// Week resolves the week offset weeks away from the current one.
func (s *rosterService) Week(ctx context.Context, offset int) entity.Assignment {
	nav := roster.Navigator{Offset: offset}
	return s.Resolve(ctx, nav.TargetDate(s.now()))
}

func (s *rosterService) WeekOf(ctx context.Context, week entity.WeekKey) (entity.Assignment, error) {
	monday, err := roster.ParseWeekKey(week, s.engine.Location())
	if err != nil {
		return entity.Assignment{}, err
	}
	return s.Resolve(ctx, monday), nil
}

// Upcoming resolves weeks assignments starting with the current week.
func (s *rosterService) Upcoming(ctx context.Context, weeks int) ([]entity.Assignment, error) {
	mondays, err := roster.UpcomingMondays(s.now(), s.engine.Location(), weeks)
	if err != nil {
		return nil, err
	}

	assignments := make([]entity.Assignment, 0, len(mondays))
	for _, monday := range mondays {
		assignments = append(assignments, s.Resolve(ctx, monday))
	}
	return assignments, nil
}

func (s *rosterService) Label(weekMonday time.Time) string {
	return roster.Label(weekMonday, s.now(), s.engine.Location())
}

func (s *rosterService) CurrentWeekKey(offset int) entity.WeekKey {
	nav := roster.Navigator{Offset: offset}
	return nav.ViewedWeek(s.now(), s.engine.Location())
}

func (s *rosterService) SetMorning(ctx context.Context, week entity.WeekKey, personID int) error {
	if err := s.editor.CommitMorning(ctx, week, personID); err != nil {
		return s.editError(err)
	}

	s.metrics.ObserveOverrideWrite("morning")
	s.log.Info("Morning override saved", zap.String("week", week.String()), zap.Int("person_id", personID))
	return nil
}

func (s *rosterService) SetEvening(ctx context.Context, week entity.WeekKey, personIDs []int) error {
	morning, err := s.editor.CommitEvening(ctx, week, personIDs)
	if err != nil {
		return s.editError(err)
	}

	s.metrics.ObserveOverrideWrite("evening")
	s.log.Info("Evening override saved",
		zap.String("week", week.String()),
		zap.Ints("evening_ids", personIDs),
		zap.Int("morning_id", morning.ID),
	)
	return nil
}

func (s *rosterService) ClearOverride(ctx context.Context, week entity.WeekKey) error {
	if err := s.editor.Reset(ctx, week); err != nil {
		return s.editError(err)
	}

	s.metrics.ObserveOverrideWrite("clear")
	s.log.Info("Override cleared", zap.String("week", week.String()))
	return nil
}

func (s *rosterService) HasOverride(ctx context.Context, week entity.WeekKey) (bool, error) {
	if err := roster.ValidateWeekKey(week); err != nil {
		return false, err
	}

	ok, err := s.engine.HasOverride(ctx, week)
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return ok, nil
}

func (s *rosterService) NotifyWeek(ctx context.Context, offset int) (entity.Assignment, error) {
	a := s.Week(ctx, offset)
	return a, s.notify(ctx, a)
}

// NotifyUpcoming announces the next week that has not started yet.
func (s *rosterService) NotifyUpcoming(ctx context.Context) (entity.Assignment, error) {
	monday := roster.UpcomingMonday(s.now(), s.engine.Location())
	a := s.Resolve(ctx, monday)
	return a, s.notify(ctx, a)
}

func (s *rosterService) NotifiersConfigured() bool {
	return len(s.notifiers) > 0
}

// notify makes one attempt per notifier and joins the failures.
func (s *rosterService) notify(ctx context.Context, a entity.Assignment) error {
	if len(s.notifiers) == 0 {
		return domain.ErrWebhookNotConfigured
	}

	var errs []error
	for _, n := range s.notifiers {
		err := n.Notify(ctx, a)
		s.metrics.ObserveNotification(n.Name(), err)

		if err != nil {
			s.log.Error("Notification failed",
				zap.String("notifier", n.Name()),
				zap.String("week", a.Week.String()),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", n.Name(), err))
			continue
		}

		s.log.Info("Notification sent",
			zap.String("notifier", n.Name()),
			zap.String("week", a.Week.String()),
			zap.String("morning", a.Morning.ShortCode),
		)
	}

	return errors.Join(errs...)
}

// editError keeps validation errors as they are and marks everything else
// as a storage failure.
func (s *rosterService) editError(err error) error {
	if errors.Is(err, roster.ErrInvalidOverrideSelection) || errors.Is(err, roster.ErrInvalidWeekKey) {
		return err
	}
	s.log.Error("Override store write failed", zap.Error(err))
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}
