package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	ezo "github.com/robertof/go-ezo-rtd"
	"github.com/robertof/go-ezo-rtd/bus"
	"github.com/robertof/go-ezo-rtd/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	zerolog.DurationFieldUnit = time.Second
	zerolog.TimeFieldFormat = time.RFC3339Nano

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05.000",
	})

	cfg := ParseArgs()

	if cfg.Trace || os.Getenv("TRACE") != "" {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	} else if cfg.Debug || os.Getenv("DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Info().
		Str("BindAddr", cfg.BindAddress).
		Str("Device", cfg.DevicePath).
		Int("Address", cfg.DeviceAddress).
		Dur("Interval", cfg.Interval).
		Msg("Starting with the specified configuration")

	handle, err := bus.Open(cfg.DevicePath, cfg.DeviceAddress)

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open the I2C device")
	}

	defer handle.Close()

	dev := ezo.New(handle)

	info, err := dev.Info()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to identify the chip, refusing to start")
	}

	log.Info().
		Str("Device", info.Device).
		Str("Firmware", info.Firmware).
		Msg("Identified chip")

	s := newSampler(dev, cfg.Interval)

	if err := s.collect(); err != nil {
		log.Fatal().Err(err).Msg("Initial reading failed, refusing to start")
	}

	registry := prometheus.NewRegistry()
	metrics.RegisterCollector(s.Latest, registry)

	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		return s.Start(ctx)
	})

	g.Go(func() error {
		log.Info().
			Str("ListenAddress", cfg.BindAddress).
			Msg("Starting Prometheus server")

		return http.ListenAndServe(cfg.BindAddress, nil)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Exporter terminated")
	}
}
