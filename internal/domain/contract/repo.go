package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

// OverrideStore persists manual morning picks keyed by canonical Monday.
// Get reports ok=false when no usable override exists; implementations must
// treat unparseable stored values as absent rather than failing.
type OverrideStore interface {
	Get(ctx context.Context, week entity.WeekKey) (personID int, ok bool, err error)
	Set(ctx context.Context, week entity.WeekKey, personID int) error
	Remove(ctx context.Context, week entity.WeekKey) error
	List(ctx context.Context) (map[entity.WeekKey]int, error)
}

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Override() OverrideRepo
}

// OverrideRepo is the SQL repository behind the sqlite OverrideStore
type OverrideRepo interface {
	OverrideStore
}

// BulkOverrideStore is implemented by stores that can write a batch of
// overrides atomically.
type BulkOverrideStore interface {
	SetMany(ctx context.Context, overrides map[entity.WeekKey]int) error
}
