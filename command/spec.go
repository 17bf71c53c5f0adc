package command

import (
	"fmt"
	"strconv"
	"time"
)

// ResponseKind tells the protocol engine whether a command answers at
// all and, when it does, which parser its payload belongs to.
type ResponseKind uint8

const (
	// ResponseNone means the chip sends nothing back and no read must
	// be performed.
	ResponseNone ResponseKind = iota
	// ResponseAck means the chip answers with a bare status byte and
	// no payload worth parsing.
	ResponseAck
	ResponseCalibrationStatus
	ResponseDataLoggerInterval
	ResponseDeviceInfo
	ResponseDeviceStatus
	ResponseExported
	ResponseExportedInfo
	ResponseLedStatus
	ResponseMemoryReading
	ResponseProtocolLockStatus
	ResponseSensorReading
	ResponseTemperatureScale
)

// Spec is the wire-level shape of one command: the nul-terminated
// ASCII bytes to write, how long the chip needs to settle before the
// response may be read, and what kind of response to expect. The
// terminator is structural; the chip truncates at the first nul it
// sees.
type Spec struct {
	Wire     []byte
	Delay    time.Duration
	Response ResponseKind
}

// settleQuery is the delay the datasheet mandates for most queries and
// register writes.
const settleQuery = 300 * time.Millisecond

func spec(text string, delay time.Duration, kind ResponseKind) Spec {
	return Spec{
		Wire:     append([]byte(text), 0),
		Delay:    delay,
		Response: kind,
	}
}

// Spec encodes the command. It is deterministic and total over every
// value built through the package constructors; it panics on the zero
// Command, which no constructor produces.
func (c Command) Spec() Spec {
	switch c.op {
	case opBaud:
		return spec(fmt.Sprintf("BAUD,%d", uint32(c.baud)), 0, ResponseNone)
	case opCalibrationTemperature:
		return spec(fmt.Sprintf("CAL,%.2f", c.temp), 1000*time.Millisecond, ResponseAck)
	case opCalibrationClear:
		return spec("CAL,CLEAR", settleQuery, ResponseAck)
	case opCalibrationState:
		return spec("CAL,?", settleQuery, ResponseCalibrationStatus)
	case opDataloggerPeriod:
		return spec(fmt.Sprintf("D,%d", c.num), settleQuery, ResponseAck)
	case opDataloggerDisable:
		return spec("D,0", settleQuery, ResponseAck)
	case opDataloggerInterval:
		return spec("D,?", settleQuery, ResponseDataLoggerInterval)
	case opDeviceAddress:
		return spec(fmt.Sprintf("I2C,%d", c.num), settleQuery, ResponseNone)
	case opDeviceInformation:
		return spec("I", settleQuery, ResponseDeviceInfo)
	case opExport:
		return spec("EXPORT", settleQuery, ResponseExported)
	case opExportInfo:
		return spec("EXPORT,?", settleQuery, ResponseExportedInfo)
	case opFactory:
		return spec("FACTORY", 0, ResponseNone)
	case opFind:
		return spec("F", settleQuery, ResponseNone)
	case opImport:
		return spec("IMPORT,"+c.text, settleQuery, ResponseAck)
	case opLedOn:
		return spec("L,1", settleQuery, ResponseAck)
	case opLedOff:
		return spec("L,0", settleQuery, ResponseAck)
	case opLedState:
		return spec("L,?", settleQuery, ResponseLedStatus)
	case opMemoryClear:
		return spec("M,CLEAR", settleQuery, ResponseAck)
	case opMemoryRecall:
		return spec("M", settleQuery, ResponseMemoryReading)
	case opMemoryRecallLast:
		return spec("M,?", settleQuery, ResponseMemoryReading)
	case opProtocolLockEnable:
		return spec("PLOCK,1", settleQuery, ResponseAck)
	case opProtocolLockDisable:
		return spec("PLOCK,0", settleQuery, ResponseAck)
	case opProtocolLockState:
		return spec("PLOCK,?", settleQuery, ResponseProtocolLockStatus)
	case opReading:
		return spec("R", 600*time.Millisecond, ResponseSensorReading)
	case opScaleCelsius:
		return spec("S,C", settleQuery, ResponseAck)
	case opScaleKelvin:
		return spec("S,K", settleQuery, ResponseAck)
	case opScaleFahrenheit:
		return spec("S,F", settleQuery, ResponseAck)
	case opScaleState:
		return spec("S,?", settleQuery, ResponseTemperatureScale)
	case opSleep:
		return spec("SLEEP", 0, ResponseNone)
	case opStatus:
		return spec("STATUS", settleQuery, ResponseDeviceStatus)
	default:
		panic("command: Spec called on a zero Command: " + strconv.Itoa(int(c.op)))
	}
}
