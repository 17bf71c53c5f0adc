// Package command models the closed set of commands understood by the
// EZO RTD chip and encodes each one into its wire-level shape: the
// nul-terminated ASCII string, the settle delay the chip needs before
// its response may be read, and the kind of response to expect.
package command

// BaudRate is one of the fixed UART rates the chip accepts for its
// serial mode. The numeric value is the literal bps figure that goes
// on the wire.
type BaudRate uint32

const (
	Baud300    BaudRate = 300
	Baud1200   BaudRate = 1200
	Baud2400   BaudRate = 2400
	Baud9600   BaudRate = 9600
	Baud19200  BaudRate = 19200
	Baud38400  BaudRate = 38400
	Baud57600  BaudRate = 57600
	Baud115200 BaudRate = 115200
)

type op uint8

const (
	opInvalid op = iota
	opBaud
	opCalibrationTemperature
	opCalibrationClear
	opCalibrationState
	opDataloggerPeriod
	opDataloggerDisable
	opDataloggerInterval
	opDeviceAddress
	opDeviceInformation
	opExport
	opExportInfo
	opFactory
	opFind
	opImport
	opLedOn
	opLedOff
	opLedState
	opMemoryClear
	opMemoryRecall
	opMemoryRecallLast
	opProtocolLockEnable
	opProtocolLockDisable
	opProtocolLockState
	opReading
	opScaleCelsius
	opScaleKelvin
	opScaleFahrenheit
	opScaleState
	opSleep
	opStatus
)

// Command is a single issuable chip command, optionally carrying a
// parameter. The zero value is not a valid command; use the
// constructors below.
type Command struct {
	op   op
	baud BaudRate
	temp float64
	num  uint32
	text string
}

// Baud switches the chip to UART mode at the given rate ("BAUD,n").
func Baud(rate BaudRate) Command {
	return Command{op: opBaud, baud: rate}
}

// CalibrationTemperature calibrates the sensor against the known
// temperature t ("CAL,t"). t is rendered with exactly two decimal
// digits on the wire.
func CalibrationTemperature(t float64) Command {
	return Command{op: opCalibrationTemperature, temp: t}
}

// CalibrationClear erases the stored calibration ("CAL,CLEAR").
func CalibrationClear() Command {
	return Command{op: opCalibrationClear}
}

// CalibrationState queries whether the sensor is calibrated ("CAL,?").
func CalibrationState() Command {
	return Command{op: opCalibrationState}
}

// DataloggerPeriod enables the datalogger with a period of the given
// number of seconds ("D,n"). The chip accepts 1..320000.
func DataloggerPeriod(seconds uint32) Command {
	return Command{op: opDataloggerPeriod, num: seconds}
}

// DataloggerDisable turns the datalogger off ("D,0").
func DataloggerDisable() Command {
	return Command{op: opDataloggerDisable}
}

// DataloggerInterval queries the datalogger period ("D,?").
func DataloggerInterval() Command {
	return Command{op: opDataloggerInterval}
}

// DeviceAddress moves the chip to a new I2C address ("I2C,n"). The
// chip reboots afterwards and stops answering on the old address.
func DeviceAddress(addr uint16) Command {
	return Command{op: opDeviceAddress, num: uint32(addr)}
}

// DeviceInformation queries the device name and firmware version ("I").
func DeviceInformation() Command {
	return Command{op: opDeviceInformation}
}

// Export reads the next fragment of the exportable calibration string
// ("EXPORT"). The chip answers "*DONE" once the stream is drained.
func Export() Command {
	return Command{op: opExport}
}

// ExportInfo queries how many fragments and bytes a full export will
// produce ("EXPORT,?").
func ExportInfo() Command {
	return Command{op: opExportInfo}
}

// Factory resets the chip to factory defaults ("FACTORY").
func Factory() Command {
	return Command{op: opFactory}
}

// Find makes the chip blink its LED so it can be located ("F").
func Find() Command {
	return Command{op: opFind}
}

// Import writes back one fragment of a previously exported calibration
// string ("IMPORT,s"). Fragments are 1 to 12 ASCII characters.
func Import(fragment string) Command {
	return Command{op: opImport, text: fragment}
}

// LedOn enables the status LED ("L,1").
func LedOn() Command {
	return Command{op: opLedOn}
}

// LedOff disables the status LED ("L,0").
func LedOff() Command {
	return Command{op: opLedOff}
}

// LedState queries the status LED ("L,?").
func LedState() Command {
	return Command{op: opLedState}
}

// MemoryClear erases the reading stored by the datalogger ("M,CLEAR").
func MemoryClear() Command {
	return Command{op: opMemoryClear}
}

// MemoryRecall reads the next stored reading ("M").
func MemoryRecall() Command {
	return Command{op: opMemoryRecall}
}

// MemoryRecallLast queries the location of the last stored reading
// ("M,?").
func MemoryRecallLast() Command {
	return Command{op: opMemoryRecallLast}
}

// ProtocolLockEnable locks the chip to its current protocol ("PLOCK,1").
func ProtocolLockEnable() Command {
	return Command{op: opProtocolLockEnable}
}

// ProtocolLockDisable unlocks the chip's protocol ("PLOCK,0").
func ProtocolLockDisable() Command {
	return Command{op: opProtocolLockDisable}
}

// ProtocolLockState queries the protocol lock ("PLOCK,?").
func ProtocolLockState() Command {
	return Command{op: opProtocolLockState}
}

// Reading takes a single temperature reading ("R"). The returned value
// is in whatever scale is currently configured on the chip.
func Reading() Command {
	return Command{op: opReading}
}

// ScaleCelsius switches readings to Celsius ("S,C").
func ScaleCelsius() Command {
	return Command{op: opScaleCelsius}
}

// ScaleKelvin switches readings to Kelvin ("S,K").
func ScaleKelvin() Command {
	return Command{op: opScaleKelvin}
}

// ScaleFahrenheit switches readings to Fahrenheit ("S,F").
func ScaleFahrenheit() Command {
	return Command{op: opScaleFahrenheit}
}

// ScaleState queries the configured temperature scale ("S,?").
func ScaleState() Command {
	return Command{op: opScaleState}
}

// Sleep puts the chip into low-power sleep ("SLEEP"). Any subsequent
// command wakes it up.
func Sleep() Command {
	return Command{op: opSleep}
}

// Status queries the restart reason and VCC voltage ("STATUS").
func Status() Command {
	return Command{op: opStatus}
}

// String returns the wire text of the command without the trailing
// nul terminator.
func (c Command) String() string {
	wire := c.Spec().Wire
	return string(wire[:len(wire)-1])
}
