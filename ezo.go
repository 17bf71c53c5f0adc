// Package ezo drives the Atlas Scientific EZO RTD temperature chip
// over its ASCII-over-I2C protocol: it encodes typed commands into
// nul-terminated wire strings, performs the write / settle / read
// exchange against a borrowed bus handle, and decodes the fixed-size
// response buffers into typed values or typed errors.
package ezo

import (
	"bytes"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/robertof/go-ezo-rtd/command"
	"github.com/robertof/go-ezo-rtd/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ResponseBufferSize is the fixed size of every chip response: one
// status byte plus up to 15 ASCII payload bytes.
const ResponseBufferSize = 16

// Transport is the byte-oriented bus capability the engine drives,
// addressed to a single device. The engine never opens, reconfigures
// or closes the handle; it only borrows it for the duration of one
// Execute call.
type Transport interface {
	Write(p []byte) error
	Read(p []byte) error
}

// Device executes commands against one chip over a borrowed
// Transport. It keeps no state between calls - every Execute is an
// independent write / settle / read exchange - and it must not be
// shared: at most one command may be in flight per Transport.
type Device struct {
	tr    Transport
	log   zerolog.Logger
	sleep func(time.Duration)
}

// New wraps an exclusively owned Transport.
func New(tr Transport) *Device {
	return &Device{
		tr:    tr,
		log:   log.Logger,
		sleep: time.Sleep,
	}
}

// Execute runs a single command: it writes the wire string (retrying
// once after a fixed backoff), blocks for the command's settle delay,
// and - when the command answers at all - reads the 16-byte response
// buffer (same retry policy), classifies its status byte and parses
// the payload with the command's parser.
//
// Commands the chip doesn't answer (sleep, factory reset, baud and
// address changes, find) return (nil, nil). Acknowledged writes return
// response.Ack.
func (d *Device) Execute(cmd command.Command) (response.Response, error) {
	spec := cmd.Spec()

	d.log.Debug().
		Stringer("Command", cmd).
		Dur("SettleDelay", spec.Delay).
		Msg("Executing command")

	if err := d.withRetry(func() error { return d.tr.Write(spec.Wire) }); err != nil {
		return nil, errors.Wrapf(ErrCommandWrite, "command %q: %v", cmd, err)
	}

	if spec.Delay > 0 {
		d.sleep(spec.Delay)
	}

	if spec.Response == command.ResponseNone {
		return nil, nil
	}

	buf := make([]byte, ResponseBufferSize)

	if err := d.withRetry(func() error { return d.tr.Read(buf) }); err != nil {
		return nil, errors.Wrapf(ErrResponseRead, "command %q: %v", cmd, err)
	}

	payload, err := decodePayload(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "command %q", cmd)
	}

	d.log.Trace().
		Stringer("Command", cmd).
		Str("Payload", payload).
		Msg("Decoded response payload")

	return parsePayload(spec.Response, payload)
}

// decodePayload classifies the status byte and extracts the ASCII
// payload between it and the first nul terminator. Some firmware
// revisions omit the terminator when the payload fills the buffer, so
// a missing nul falls back to decoding the whole remainder.
func decodePayload(buf []byte) (string, error) {
	switch response.Classify(buf[0]) {
	case response.CodeSuccess:
		rest := buf[1:]

		if i := bytes.IndexByte(rest, 0); i >= 0 {
			rest = rest[:i]
		}

		if !utf8.Valid(rest) {
			return "", errors.Wrapf(ErrMalformedResponse, "payload % x", rest)
		}

		return string(rest), nil
	case response.CodePending:
		return "", ErrPendingResponse
	case response.CodeDeviceError:
		return "", ErrDeviceErrorResponse
	case response.CodeNoDataExpected:
		return "", ErrNoDataExpectedResponse
	default:
		return "", errors.Wrapf(ErrUnknownStatusResponse, "status byte 0x%02X", buf[0])
	}
}

// parsePayload dispatches a successfully decoded payload to the parser
// matching the command's response kind.
func parsePayload(kind command.ResponseKind, payload string) (response.Response, error) {
	switch kind {
	case command.ResponseAck:
		// Acknowledged writes carry no payload worth parsing.
		return response.Ack{}, nil
	case command.ResponseCalibrationStatus:
		r, err := response.ParseCalibrationStatus(payload)
		if err != nil {
			return nil, err
		}
		return r, nil
	case command.ResponseDataLoggerInterval:
		r, err := response.ParseDataLoggerInterval(payload)
		if err != nil {
			return nil, err
		}
		return r, nil
	case command.ResponseDeviceInfo:
		r, err := response.ParseDeviceInfo(payload)
		if err != nil {
			return nil, err
		}
		return r, nil
	case command.ResponseDeviceStatus:
		r, err := response.ParseDeviceStatus(payload)
		if err != nil {
			return nil, err
		}
		return r, nil
	case command.ResponseExported:
		r, err := response.ParseExported(payload)
		if err != nil {
			return nil, err
		}
		return r, nil
	case command.ResponseExportedInfo:
		r, err := response.ParseExportedInfo(payload)
		if err != nil {
			return nil, err
		}
		return r, nil
	case command.ResponseLedStatus:
		r, err := response.ParseLedStatus(payload)
		if err != nil {
			return nil, err
		}
		return r, nil
	case command.ResponseMemoryReading:
		r, err := response.ParseMemoryReading(payload)
		if err != nil {
			return nil, err
		}
		return r, nil
	case command.ResponseProtocolLockStatus:
		r, err := response.ParseProtocolLockStatus(payload)
		if err != nil {
			return nil, err
		}
		return r, nil
	case command.ResponseSensorReading:
		r, err := response.ParseSensorReading(payload)
		if err != nil {
			return nil, err
		}
		return r, nil
	case command.ResponseTemperatureScale:
		r, err := response.ParseTemperatureScale(payload)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		panic(fmt.Sprintf("no parser for response kind %d", kind))
	}
}
