package main

import (
	"context"
	"sync"
	"time"

	ezo "github.com/robertof/go-ezo-rtd"
	"github.com/robertof/go-ezo-rtd/metrics"
	"github.com/robertof/go-ezo-rtd/utils"
	"github.com/rs/zerolog/log"
)

// sampler periodically reads the chip and keeps the latest successful
// sample for the Prometheus collector. The chip handle is only ever
// touched from the Start goroutine; only the stored sample is shared.
type sampler struct {
	dev      *ezo.Device
	interval time.Duration

	mu         sync.Mutex
	latest     metrics.Sample
	sampleTime time.Time
	hasSample  bool
}

func newSampler(dev *ezo.Device, interval time.Duration) *sampler {
	return &sampler{
		dev:      dev,
		interval: interval,
	}
}

// Latest implements metrics.CollectFunc.
func (s *sampler) Latest() (metrics.Sample, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest, s.sampleTime, s.hasSample
}

func (s *sampler) update(sample metrics.Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = sample
	s.sampleTime = time.Now()
	s.hasSample = true
}

// collect runs one full collection: a temperature reading in the
// chip's configured scale, then the chip status. The status is
// best-effort; a reading without it is still a usable sample.
func (s *sampler) collect() error {
	temperature, err := s.dev.ReadTemperature()
	if err != nil {
		return err
	}

	sample := metrics.Sample{Temperature: temperature}

	status, err := s.dev.Status()

	if err != nil {
		log.Warn().Err(err).Msg("Failed to read chip status")
	} else {
		sample.Status = status
		sample.HasStatus = true
	}

	log.Debug().
		Stringer("Temperature", temperature).
		Bool("HasStatus", sample.HasStatus).
		Msg("Collected sample")

	s.update(sample)

	return nil
}

func (s *sampler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := s.collect(); err != nil {
			metrics.ReadFailures.Inc()

			// the chip answers pending/no-data while busy with its own
			// datalogger; that's a skipped cycle, not a failure.
			if utils.ErrorIsAnyOf(err, ezo.ErrPendingResponse, ezo.ErrNoDataExpectedResponse) {
				log.Debug().Err(err).Msg("Chip busy - skipping this collection")
				continue
			}

			log.Error().Err(err).Msg("Failed to collect reading")
		}
	}
}
