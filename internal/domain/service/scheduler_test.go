package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

type fakeWeeklyNotifier struct {
	configured bool
	err        error
	calls      int32
}

func (f *fakeWeeklyNotifier) NotifyUpcoming(context.Context) (entity.Assignment, error) {
	atomic.AddInt32(&f.calls, 1)
	return entity.Assignment{Week: "2026-01-19"}, f.err
}

func (f *fakeWeeklyNotifier) NotifiersConfigured() bool {
	return f.configured
}

func Test_newScheduler(t *testing.T) {
	f := &fakeWeeklyNotifier{}

	s, err := newScheduler(f, "30 22 * * 6", time.UTC, nil)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.False(t, s.running)
	assert.Len(t, s.cron.Entries(), 1)

	_, err = newScheduler(f, "every saturday", time.UTC, zap.NewNop())
	assert.Error(t, err)
}

func Test_scheduler_NextRun(t *testing.T) {
	loc := dhaka(t)
	s, err := newScheduler(&fakeWeeklyNotifier{}, "30 22 * * 6", loc, nil)
	require.NoError(t, err)

	schedule := s.cron.Entries()[0].Schedule
	next := schedule.Next(testNow(t))

	assert.True(t, next.Equal(time.Date(2026, 1, 17, 22, 30, 0, 0, loc)), "next run %s", next)
	assert.Equal(t, time.Saturday, next.Weekday())
}

func Test_scheduler_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	s, err := newScheduler(&fakeWeeklyNotifier{}, "30 22 * * 6", time.UTC, nil)
	require.NoError(t, err)

	s.Start()
	s.Start()
	assert.True(t, s.running)

	s.Stop()
	s.Stop()
	assert.False(t, s.running)
}

func Test_scheduler_run(t *testing.T) {
	tests := []struct {
		name      string
		notifier  *fakeWeeklyNotifier
		wantCalls int32
	}{
		{
			name:      "Should skip when nothing is configured",
			notifier:  &fakeWeeklyNotifier{configured: false},
			wantCalls: 0,
		},
		{
			name:      "Should notify upcoming week",
			notifier:  &fakeWeeklyNotifier{configured: true},
			wantCalls: 1,
		},
		{
			name:      "Should swallow notifier failure",
			notifier:  &fakeWeeklyNotifier{configured: true, err: errors.New("boom")},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newScheduler(tt.notifier, "30 22 * * 6", time.UTC, nil)
			require.NoError(t, err)

			s.run()
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&tt.notifier.calls))
		})
	}
}

func Test_scheduler_RunNow(t *testing.T) {
	f := &fakeWeeklyNotifier{configured: true}
	s, err := newScheduler(f, "30 22 * * 6", time.UTC, nil)
	require.NoError(t, err)

	a, err := s.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.WeekKey("2026-01-19"), a.Week)
}
