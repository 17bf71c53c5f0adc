package response

import (
	"fmt"
	"strconv"
)

// Response is implemented by every typed chip response.
type Response interface {
	fmt.Stringer
}

// Ack is the response to commands the chip acknowledges with a bare
// success status byte and no payload.
type Ack struct{}

func (Ack) String() string {
	return "ACK"
}

// TemperatureScale is the scale the chip reports readings in.
type TemperatureScale uint8

const (
	Celsius TemperatureScale = iota
	Kelvin
	Fahrenheit
)

// String renders the scale in the wire grammar of the "S,?" response.
func (s TemperatureScale) String() string {
	switch s {
	case Celsius:
		return "?S,C"
	case Kelvin:
		return "?S,K"
	case Fahrenheit:
		return "?S,F"
	default:
		panic("unknown temperature scale: " + strconv.Itoa(int(s)))
	}
}

// Unit is the lowercase scale name, suitable for metric labels.
func (s TemperatureScale) Unit() string {
	switch s {
	case Celsius:
		return "celsius"
	case Kelvin:
		return "kelvin"
	case Fahrenheit:
		return "fahrenheit"
	default:
		panic("unknown temperature scale: " + strconv.Itoa(int(s)))
	}
}

// Symbol is the display unit for the scale.
func (s TemperatureScale) Symbol() string {
	switch s {
	case Celsius:
		return "°C"
	case Kelvin:
		return "K"
	case Fahrenheit:
		return "°F"
	default:
		panic("unknown temperature scale: " + strconv.Itoa(int(s)))
	}
}

// SensorReading is a bare temperature value as returned by the "R"
// command, with no scale attached.
type SensorReading float64

func (r SensorReading) String() string {
	return strconv.FormatFloat(float64(r), 'f', -1, 64)
}

// Temperature is a scale-tagged reading. The tag mirrors whatever
// scale was active on the chip when the reading was taken; the wire
// payload itself carries no scale, so establishing the tag is the
// caller's job (see ezo.Device.ReadTemperature).
type Temperature struct {
	Scale TemperatureScale
	Value float64
}

func (t Temperature) String() string {
	return fmt.Sprintf("%.3f %s", t.Value, t.Scale.Symbol())
}

// RestartReason says why the chip last restarted (datasheet p. 58).
type RestartReason uint8

const (
	RestartPoweredOff RestartReason = iota
	RestartSoftwareReset
	RestartBrownOut
	RestartWatchdog
	RestartUnknown
)

// code is the single-letter reason code used on the wire.
func (r RestartReason) code() byte {
	switch r {
	case RestartPoweredOff:
		return 'P'
	case RestartSoftwareReset:
		return 'S'
	case RestartBrownOut:
		return 'B'
	case RestartWatchdog:
		return 'W'
	case RestartUnknown:
		return 'U'
	default:
		panic("unknown restart reason: " + strconv.Itoa(int(r)))
	}
}

func (r RestartReason) String() string {
	switch r {
	case RestartPoweredOff:
		return "powered-off"
	case RestartSoftwareReset:
		return "software-reset"
	case RestartBrownOut:
		return "brownout"
	case RestartWatchdog:
		return "watchdog"
	case RestartUnknown:
		return "unknown"
	default:
		panic("unknown restart reason: " + strconv.Itoa(int(r)))
	}
}

// DeviceStatus is the response to the "STATUS" command.
type DeviceStatus struct {
	RestartReason RestartReason
	VccVoltage    float64
}

func (d DeviceStatus) String() string {
	return fmt.Sprintf("?STATUS,%c,%s",
		d.RestartReason.code(), strconv.FormatFloat(d.VccVoltage, 'f', -1, 64))
}

// CalibrationStatus is the response to the "CAL,?" command.
type CalibrationStatus uint8

const (
	NotCalibrated CalibrationStatus = iota
	Calibrated
)

func (c CalibrationStatus) String() string {
	switch c {
	case Calibrated:
		return "?CAL,1"
	case NotCalibrated:
		return "?CAL,0"
	default:
		panic("unknown calibration status: " + strconv.Itoa(int(c)))
	}
}

// DataLoggerInterval is the automatic-logging period in seconds; 0
// means the datalogger is off. The chip only ever reports 0 or values
// in 10..320000.
type DataLoggerInterval uint32

func (d DataLoggerInterval) String() string {
	return "?D," + strconv.FormatUint(uint64(d), 10)
}

// Exported is one step of a calibration-string export: either a
// fragment of the exported string, or the final "*DONE" marker.
type Exported struct {
	Done bool
	Text string
}

func (e Exported) String() string {
	if e.Done {
		return "*DONE"
	}
	return e.Text
}

// ExportedInfo is the response to the "EXPORT,?" command: how many
// fragments and how many bytes a full export will produce.
type ExportedInfo struct {
	Lines uint32
	Bytes uint32
}

func (e ExportedInfo) String() string {
	return fmt.Sprintf("%d,%d", e.Lines, e.Bytes)
}

// DeviceInfo is the response to the "I" command.
type DeviceInfo struct {
	Device   string
	Firmware string
}

func (d DeviceInfo) String() string {
	return "?I," + d.Device + "," + d.Firmware
}

// LedStatus is the response to the "L,?" command.
type LedStatus uint8

const (
	LedOff LedStatus = iota
	LedOn
)

func (l LedStatus) String() string {
	switch l {
	case LedOn:
		return "?L,1"
	case LedOff:
		return "?L,0"
	default:
		panic("unknown led status: " + strconv.Itoa(int(l)))
	}
}

// ProtocolLockStatus is the response to the "PLOCK,?" command.
type ProtocolLockStatus uint8

const (
	ProtocolLockOff ProtocolLockStatus = iota
	ProtocolLockOn
)

func (p ProtocolLockStatus) String() string {
	switch p {
	case ProtocolLockOn:
		return "?PLOCK,1"
	case ProtocolLockOff:
		return "?PLOCK,0"
	default:
		panic("unknown protocol lock status: " + strconv.Itoa(int(p)))
	}
}

// MemoryReading is a stored datalogger reading recalled with "M" or
// "M,?".
type MemoryReading struct {
	Location uint32
	Reading  float64
}

func (m MemoryReading) String() string {
	return fmt.Sprintf("%d,%s", m.Location, strconv.FormatFloat(m.Reading, 'f', -1, 64))
}
