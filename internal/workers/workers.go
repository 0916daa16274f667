package workers

import (
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker the server runs alongside the
// transport: currently the expired-token sweeper.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newTokenSweeper(storages.UserRepository, cfg.SweepInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop signals every worker to finish. Safe to call more than once.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
