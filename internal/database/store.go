package database

import (
	"context"

	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

// OverrideStore is the sqlite backed contract.OverrideStore.
type OverrideStore struct {
	contract.OverrideRepo
	dm contract.DataManager
}

func NewOverrideStore(db *DB) *OverrideStore {
	dm := NewInstance(db)
	return &OverrideStore{
		OverrideRepo: dm.Override(),
		dm:           dm,
	}
}

// SetMany writes a batch of overrides in one transaction.
func (s *OverrideStore) SetMany(ctx context.Context, overrides map[entity.WeekKey]int) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for week, personID := range overrides {
			if err := tx.Override().Set(ctx, week, personID); err != nil {
				return err
			}
		}
		return nil
	})
}
