package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-cred-pool/internal/config"
	"github.com/MKhiriev/go-cred-pool/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background workers. reporter may be nil when
// no gRPC health endpoint is configured; store health is still logged.
func NewWorkers(pinger Pinger, reporter HealthReporter, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewHealthProbe(pinger, reporter, cfg.HealthProbeInterval, logger),
		},
	}
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
