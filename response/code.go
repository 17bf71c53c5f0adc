// Package response interprets EZO RTD response buffers: it classifies
// the leading status byte and parses ASCII payloads into typed values,
// one strict parser per response family.
package response

import "strconv"

// Code classifies the leading status byte of a response buffer.
type Code uint8

const (
	CodeUnknown Code = iota
	CodeSuccess
	CodePending
	CodeDeviceError
	CodeNoDataExpected
)

// Classify maps a raw status byte to its Code. Any byte outside the
// four documented values is CodeUnknown; the classifier is the first
// line of interpretation of possibly garbled bus data and must never
// itself fail.
func Classify(b byte) Code {
	switch b {
	case 0x01:
		return CodeSuccess
	case 0xFE:
		return CodePending
	case 0x02:
		return CodeDeviceError
	case 0xFF:
		return CodeNoDataExpected
	default:
		return CodeUnknown
	}
}

func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodePending:
		return "pending"
	case CodeDeviceError:
		return "device error"
	case CodeNoDataExpected:
		return "no data expected"
	case CodeUnknown:
		return "unknown"
	default:
		panic("unknown response code: " + strconv.Itoa(int(c)))
	}
}
