package service

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
	"github.com/jhrahman/shiftmate/internal/domain/roster"
	"github.com/jhrahman/shiftmate/internal/metrics"
	"github.com/jhrahman/shiftmate/mocks"
)

var testTeam = entity.Team{
	{ID: 1, Name: "Jahidur Rahman", ShortCode: "JH"},
	{ID: 2, Name: "Mahmudur Rahman Protic", ShortCode: "PR"},
	{ID: 3, Name: "Alamin Abu Zaman", ShortCode: "AL"},
}

type allMocks struct {
	mockStore    *mocks.MockOverrideStore
	mockNotifier *mocks.MockNotifier
	metrics      *metrics.Registry
}

func dhaka(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)
	return loc
}

// testNow is Wednesday of week 2026-01-12, the second rotation week.
func testNow(t *testing.T) time.Time {
	return time.Date(2026, 1, 14, 10, 0, 0, 0, dhaka(t))
}

func newServiceTestMock(t *testing.T, withNotifier bool) (m allMocks, svc *rosterService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	loc := dhaka(t)

	m = allMocks{
		mockStore:    mocks.NewMockOverrideStore(ctrl),
		mockNotifier: mocks.NewMockNotifier(ctrl),
		metrics:      metrics.NewRegistry(),
	}
	m.mockNotifier.EXPECT().Name().Return("discord").AnyTimes()

	engine, err := roster.NewEngine(testTeam, time.Date(2026, 1, 5, 0, 0, 0, 0, loc), loc, m.mockStore)
	require.NoError(t, err)

	var notifiers []contract.Notifier
	if withNotifier {
		notifiers = append(notifiers, m.mockNotifier)
	}

	now := testNow(t)
	svc = newRoster(engine, m.mockStore, notifiers,
		WithClock(func() time.Time { return now }),
		WithMetrics(m.metrics),
	)
	require.NotNil(t, svc)

	return
}
