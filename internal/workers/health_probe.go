// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cred-pool/internal/config"
	"github.com/MKhiriev/go-cred-pool/internal/logger"
)

// HealthProbe pings the credential store on a fixed interval and forwards
// each result to a [HealthReporter].
type HealthProbe struct {
	pinger   Pinger
	reporter HealthReporter
	interval time.Duration
	logger   *logger.Logger

	serving bool
}

// NewHealthProbe returns a probe that starts out assuming the store is up.
// A non-positive interval falls back to [config.DefaultHealthProbeInterval].
func NewHealthProbe(pinger Pinger, reporter HealthReporter, interval time.Duration, logger *logger.Logger) *HealthProbe {
	if interval <= 0 {
		interval = config.DefaultHealthProbeInterval
	}

	return &HealthProbe{
		pinger:   pinger,
		reporter: reporter,
		interval: interval,
		logger:   logger,
		serving:  true,
	}
}

// Run probes once immediately and then on every tick until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("health probe started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("health probe stopped")
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *HealthProbe) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.pinger.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}

	serving := err == nil
	if serving != p.serving {
		if serving {
			p.logger.Info().Msg("credential store is reachable again")
		} else {
			p.logger.Warn().Err(err).Msg("credential store is unreachable")
		}
	}
	p.serving = serving

	if p.reporter != nil {
		p.reporter.SetServing(serving)
	}
}
