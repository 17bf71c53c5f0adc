// ezo-info dumps the current settings of an EZO RTD chip: device
// information, status, calibration, datalogger, LED, protocol lock and
// the exported calibration string. The chip is put to sleep when done.
package main

import (
	"flag"
	"os"

	ezo "github.com/robertof/go-ezo-rtd"
	"github.com/robertof/go-ezo-rtd/bus"
	"github.com/robertof/go-ezo-rtd/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	devicePath := flag.String("device", "/dev/i2c-1", "Path to the I2C bus device")
	address := flag.Int("address", 102, "I2C address of the EZO RTD chip")
	debug := flag.Bool("debug", false, "Enable debug logs")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05.000",
	})

	if *debug || os.Getenv("DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	handle, err := bus.Open(*devicePath, *address)

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open the I2C device")
	}

	defer handle.Close()

	dev := ezo.New(handle)

	info, err := dev.Info()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read device information")
	}

	log.Info().
		Str("Device", info.Device).
		Str("Firmware", info.Firmware).
		Msg("Device information")

	status, err := dev.Status()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read device status")
	}

	log.Info().
		Stringer("RestartReason", status.RestartReason).
		Float64("VccVoltage", status.VccVoltage).
		Msg("Device status")

	scale, err := dev.Scale()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read temperature scale")
	}

	log.Info().Str("Scale", scale.Unit()).Msg("Temperature scale")

	calibration, err := dev.CalibrationState()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read calibration state")
	}

	log.Info().
		Bool("Calibrated", calibration == response.Calibrated).
		Msg("Calibration state")

	interval, err := dev.DataloggerInterval()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read datalogger interval")
	}

	log.Info().
		Uint32("Seconds", uint32(interval)).
		Bool("Enabled", interval != 0).
		Msg("Datalogger interval")

	led, err := dev.LedState()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read LED state")
	}

	log.Info().Bool("On", led == response.LedOn).Msg("LED state")

	plock, err := dev.ProtocolLockState()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read protocol lock state")
	}

	log.Info().Bool("Locked", plock == response.ProtocolLockOn).Msg("Protocol lock")

	fragments, err := dev.ExportCalibration()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to export the calibration string")
	}

	log.Info().
		Strs("Fragments", fragments).
		Msg("Exported calibration string")

	if err := dev.Sleep(); err != nil {
		log.Fatal().Err(err).Msg("Failed to put the chip to sleep")
	}

	log.Info().Msg("Chip put to sleep")
}
