package response

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrParse is the cause of every parser failure: the payload was
// readable text but did not match the grammar expected for the
// command that produced it.
var ErrParse = errors.New("response does not match the expected format")

// ParseTemperatureScale parses the payload of the "S,?" scale query.
// Only the exact literals ?S,C / ?S,K / ?S,F are accepted; no partial
// or case-insensitive matching happens at this layer.
func ParseTemperatureScale(s string) (TemperatureScale, error) {
	switch s {
	case "?S,C":
		return Celsius, nil
	case "?S,K":
		return Kelvin, nil
	case "?S,F":
		return Fahrenheit, nil
	default:
		return 0, errors.Wrapf(ErrParse, "invalid scale response %q", s)
	}
}

// ParseSensorReading parses the payload of the "R" command: the whole
// payload must be a floating-point number.
func ParseSensorReading(s string) (SensorReading, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "invalid reading %q", s)
	}

	return SensorReading(v), nil
}

// ParseTemperature parses a bare reading and tags it with the scale
// the caller knows to be active on the chip.
func ParseTemperature(s string, scale TemperatureScale) (Temperature, error) {
	r, err := ParseSensorReading(s)
	if err != nil {
		return Temperature{}, err
	}

	return Temperature{Scale: scale, Value: float64(r)}, nil
}

// ParseDeviceStatus parses the payload of the "STATUS" command:
// "?STATUS,<reason>,<voltage>" with exactly two fields after the
// prefix. Reason letters outside P/S/B/W/U are rejected; there is no
// catch-all default.
func ParseDeviceStatus(s string) (DeviceStatus, error) {
	rest, ok := strings.CutPrefix(s, "?STATUS,")
	if !ok {
		return DeviceStatus{}, errors.Wrapf(ErrParse, "invalid status response %q", s)
	}

	parts := strings.Split(rest, ",")
	if len(parts) != 2 {
		return DeviceStatus{}, errors.Wrapf(ErrParse,
			"status response %q has %d fields, want 2", s, len(parts))
	}

	var reason RestartReason

	switch parts[0] {
	case "P":
		reason = RestartPoweredOff
	case "S":
		reason = RestartSoftwareReset
	case "B":
		reason = RestartBrownOut
	case "W":
		reason = RestartWatchdog
	case "U":
		reason = RestartUnknown
	default:
		return DeviceStatus{}, errors.Wrapf(ErrParse, "unknown restart reason %q", parts[0])
	}

	voltage, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return DeviceStatus{}, errors.Wrapf(ErrParse, "invalid VCC voltage %q", parts[1])
	}

	return DeviceStatus{RestartReason: reason, VccVoltage: voltage}, nil
}

// ParseCalibrationStatus parses the payload of the "CAL,?" command.
func ParseCalibrationStatus(s string) (CalibrationStatus, error) {
	switch s {
	case "?CAL,1":
		return Calibrated, nil
	case "?CAL,0":
		return NotCalibrated, nil
	default:
		return 0, errors.Wrapf(ErrParse, "invalid calibration response %q", s)
	}
}

// ParseDataLoggerInterval parses the payload of the "D,?" command.
// The chip only stores 0 (off) or 10..320000 seconds, so integers
// outside that set are rejected even though they parse.
func ParseDataLoggerInterval(s string) (DataLoggerInterval, error) {
	rest, ok := strings.CutPrefix(s, "?D,")
	if !ok {
		return 0, errors.Wrapf(ErrParse, "invalid datalogger response %q", s)
	}

	n, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "invalid datalogger interval %q", rest)
	}

	if n != 0 && (n < 10 || n > 320000) {
		return 0, errors.Wrapf(ErrParse,
			"datalogger interval %d outside the accepted 0 or 10..320000", n)
	}

	return DataLoggerInterval(n), nil
}

// ParseExported parses the payload of the "EXPORT" command: either the
// literal "*DONE" end marker, or an export fragment of 1 to 12
// characters. Any other "*"-prefixed text is an error.
func ParseExported(s string) (Exported, error) {
	if strings.HasPrefix(s, "*") {
		if s == "*DONE" {
			return Exported{Done: true}, nil
		}
		return Exported{}, errors.Wrapf(ErrParse, "unknown export marker %q", s)
	}

	if len(s) < 1 || len(s) > 12 {
		return Exported{}, errors.Wrapf(ErrParse,
			"export fragment %q must be 1 to 12 characters", s)
	}

	return Exported{Text: s}, nil
}

// ParseExportedInfo parses the payload of the "EXPORT,?" command: two
// comma-separated unsigned integers, line count then total bytes.
func ParseExportedInfo(s string) (ExportedInfo, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return ExportedInfo{}, errors.Wrapf(ErrParse,
			"export info %q has %d fields, want 2", s, len(parts))
	}

	lines, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return ExportedInfo{}, errors.Wrapf(ErrParse, "invalid export line count %q", parts[0])
	}

	bytes, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return ExportedInfo{}, errors.Wrapf(ErrParse, "invalid export byte count %q", parts[1])
	}

	return ExportedInfo{Lines: uint32(lines), Bytes: uint32(bytes)}, nil
}

// ParseDeviceInfo parses the payload of the "I" command:
// "?I,<device>,<firmware>" with both fields non-empty.
func ParseDeviceInfo(s string) (DeviceInfo, error) {
	rest, ok := strings.CutPrefix(s, "?I,")
	if !ok {
		return DeviceInfo{}, errors.Wrapf(ErrParse, "invalid device info response %q", s)
	}

	parts := strings.Split(rest, ",")
	if len(parts) != 2 {
		return DeviceInfo{}, errors.Wrapf(ErrParse,
			"device info %q has %d fields, want 2", s, len(parts))
	}

	if parts[0] == "" || parts[1] == "" {
		return DeviceInfo{}, errors.Wrapf(ErrParse, "device info %q has empty fields", s)
	}

	return DeviceInfo{Device: parts[0], Firmware: parts[1]}, nil
}

// ParseLedStatus parses the payload of the "L,?" command.
func ParseLedStatus(s string) (LedStatus, error) {
	switch s {
	case "?L,1":
		return LedOn, nil
	case "?L,0":
		return LedOff, nil
	default:
		return 0, errors.Wrapf(ErrParse, "invalid LED response %q", s)
	}
}

// ParseProtocolLockStatus parses the payload of the "PLOCK,?" command.
func ParseProtocolLockStatus(s string) (ProtocolLockStatus, error) {
	switch s {
	case "?PLOCK,1":
		return ProtocolLockOn, nil
	case "?PLOCK,0":
		return ProtocolLockOff, nil
	default:
		return 0, errors.Wrapf(ErrParse, "invalid protocol lock response %q", s)
	}
}

// ParseMemoryReading parses the payload of the "M" and "M,?" commands:
// an unsigned memory location and a floating-point value.
func ParseMemoryReading(s string) (MemoryReading, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return MemoryReading{}, errors.Wrapf(ErrParse,
			"memory reading %q has %d fields, want 2", s, len(parts))
	}

	location, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return MemoryReading{}, errors.Wrapf(ErrParse, "invalid memory location %q", parts[0])
	}

	value, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return MemoryReading{}, errors.Wrapf(ErrParse, "invalid memory value %q", parts[1])
	}

	return MemoryReading{Location: uint32(location), Reading: value}, nil
}
