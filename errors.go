package ezo

import "github.com/pkg/errors"

// Protocol-level failures. Each one is terminal for the Execute call
// that produced it: the engine returns it to the caller and never
// substitutes a default value.
var (
	// ErrCommandWrite means the bus write failed twice (the initial
	// attempt plus the single retry).
	ErrCommandWrite = errors.New("command write failed")

	// ErrResponseRead means the bus read failed twice.
	ErrResponseRead = errors.New("response read failed")

	// ErrMalformedResponse means the response payload is not valid
	// nul-terminated ASCII/UTF-8 text.
	ErrMalformedResponse = errors.New("malformed response payload")

	// ErrPendingResponse means the chip is still processing the
	// command; reading again after the settle delay usually succeeds.
	ErrPendingResponse = errors.New("chip is still processing the command")

	// ErrDeviceErrorResponse means the chip rejected the command.
	ErrDeviceErrorResponse = errors.New("chip reported a command error")

	// ErrNoDataExpectedResponse means the chip had nothing to send for
	// the last command.
	ErrNoDataExpectedResponse = errors.New("chip has no data to send")

	// ErrUnknownStatusResponse means the status byte is outside the
	// documented set, typically a sign of bus corruption.
	ErrUnknownStatusResponse = errors.New("unknown response status byte")
)
