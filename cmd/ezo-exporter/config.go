package main

import (
	"flag"
	"time"
)

type config struct {
	Debug, Trace  bool
	BindAddress   string
	DevicePath    string
	DeviceAddress int
	Interval      time.Duration
}

func ParseArgs() config {
	var cfg config

	flag.StringVar(&cfg.BindAddress, "bind", "localhost:9103", "Where the exporter will bind to")
	flag.StringVar(&cfg.DevicePath, "device", "/dev/i2c-1", "Path to the I2C bus device")
	flag.IntVar(&cfg.DeviceAddress, "address", 102,
		"I2C address of the EZO RTD chip (102 is the factory default)")
	flag.DurationVar(&cfg.Interval, "interval", 10*time.Second,
		"How frequently readings are taken")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logs")
	flag.BoolVar(&cfg.Trace, "trace", false, "Enable trace logs")
	flag.Parse()

	return cfg
}
