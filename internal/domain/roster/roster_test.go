package roster

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

var testTeam = entity.Team{
	{ID: 1, Name: "Jahidur Rahman", ShortCode: "JH"},
	{ID: 2, Name: "Mahmudur Rahman Protic", ShortCode: "PR"},
	{ID: 3, Name: "Alamin Abu Zaman", ShortCode: "AL"},
}

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func date(loc *time.Location, y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, loc)
}
