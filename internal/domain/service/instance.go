package service

import (
	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/roster"
)

type Instance struct {
	Roster    *rosterService
	Scheduler *scheduler
}

// NewInstance wires the roster service and the weekly notification
// scheduler. cronSpec uses the standard five field syntax and runs in the
// engine's zone.
func NewInstance(engine *roster.Engine, store contract.OverrideStore, notifiers []contract.Notifier, cronSpec string, opts ...Option) (*Instance, error) {
	rosterService := newRoster(engine, store, notifiers, opts...)

	scheduler, err := newScheduler(rosterService, cronSpec, engine.Location(), rosterService.log)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Roster:    rosterService,
		Scheduler: scheduler,
	}, nil
}
