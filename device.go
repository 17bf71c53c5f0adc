package ezo

import (
	"github.com/pkg/errors"
	"github.com/robertof/go-ezo-rtd/command"
	"github.com/robertof/go-ezo-rtd/response"
)

// Typed wrappers over Execute, one per chip command, so callers never
// have to type-assert the generic response.

// ack discards the typed response of an acknowledged write.
func (d *Device) ack(cmd command.Command) error {
	_, err := d.Execute(cmd)
	return err
}

// ReadTemperature reads the sensor using whatever scale is currently
// configured on the chip: it queries the scale first, then takes a
// bare reading and tags it. The steps are sequential; a failure in
// either aborts the whole operation and discards any partial result.
func (d *Device) ReadTemperature() (response.Temperature, error) {
	scale, err := d.Scale()
	if err != nil {
		return response.Temperature{}, err
	}

	reading, err := d.Reading()
	if err != nil {
		return response.Temperature{}, err
	}

	return response.Temperature{Scale: scale, Value: float64(reading)}, nil
}

// Reading takes a bare temperature reading in the chip's current
// scale.
func (d *Device) Reading() (response.SensorReading, error) {
	res, err := d.Execute(command.Reading())
	if err != nil {
		return 0, err
	}
	return res.(response.SensorReading), nil
}

// Status reports the chip's restart reason and VCC voltage.
func (d *Device) Status() (response.DeviceStatus, error) {
	res, err := d.Execute(command.Status())
	if err != nil {
		return response.DeviceStatus{}, err
	}
	return res.(response.DeviceStatus), nil
}

// Info reports the device name and firmware version.
func (d *Device) Info() (response.DeviceInfo, error) {
	res, err := d.Execute(command.DeviceInformation())
	if err != nil {
		return response.DeviceInfo{}, err
	}
	return res.(response.DeviceInfo), nil
}

// Scale queries the configured temperature scale.
func (d *Device) Scale() (response.TemperatureScale, error) {
	res, err := d.Execute(command.ScaleState())
	if err != nil {
		return 0, err
	}
	return res.(response.TemperatureScale), nil
}

// SetScale switches the chip to the given temperature scale.
func (d *Device) SetScale(scale response.TemperatureScale) error {
	switch scale {
	case response.Celsius:
		return d.ack(command.ScaleCelsius())
	case response.Kelvin:
		return d.ack(command.ScaleKelvin())
	case response.Fahrenheit:
		return d.ack(command.ScaleFahrenheit())
	default:
		return errors.Errorf("invalid temperature scale %d", scale)
	}
}

// Calibrate calibrates the sensor against the known temperature t.
func (d *Device) Calibrate(t float64) error {
	return d.ack(command.CalibrationTemperature(t))
}

// CalibrationClear erases the stored calibration.
func (d *Device) CalibrationClear() error {
	return d.ack(command.CalibrationClear())
}

// CalibrationState queries whether the sensor is calibrated.
func (d *Device) CalibrationState() (response.CalibrationStatus, error) {
	res, err := d.Execute(command.CalibrationState())
	if err != nil {
		return 0, err
	}
	return res.(response.CalibrationStatus), nil
}

// SetDataloggerPeriod enables the datalogger with the given period in
// seconds (1..320000).
func (d *Device) SetDataloggerPeriod(seconds uint32) error {
	return d.ack(command.DataloggerPeriod(seconds))
}

// DataloggerDisable turns the datalogger off.
func (d *Device) DataloggerDisable() error {
	return d.ack(command.DataloggerDisable())
}

// DataloggerInterval queries the datalogger period.
func (d *Device) DataloggerInterval() (response.DataLoggerInterval, error) {
	res, err := d.Execute(command.DataloggerInterval())
	if err != nil {
		return 0, err
	}
	return res.(response.DataLoggerInterval), nil
}

// Export reads the next fragment of the exportable calibration string.
func (d *Device) Export() (response.Exported, error) {
	res, err := d.Execute(command.Export())
	if err != nil {
		return response.Exported{}, err
	}
	return res.(response.Exported), nil
}

// ExportInfo queries how many fragments and bytes a full export will
// produce.
func (d *Device) ExportInfo() (response.ExportedInfo, error) {
	res, err := d.Execute(command.ExportInfo())
	if err != nil {
		return response.ExportedInfo{}, err
	}
	return res.(response.ExportedInfo), nil
}

// ExportCalibration drains the export stream: it asks the chip how
// many fragments to expect, then issues EXPORT until the chip reports
// "*DONE" and returns the fragments in order.
func (d *Device) ExportCalibration() ([]string, error) {
	info, err := d.ExportInfo()
	if err != nil {
		return nil, err
	}

	fragments := make([]string, 0, info.Lines)

	// the chip should terminate the stream right after the advertised
	// number of fragments; treat anything longer as a broken stream.
	for i := uint32(0); i <= info.Lines; i++ {
		exported, err := d.Export()
		if err != nil {
			return nil, err
		}

		if exported.Done {
			return fragments, nil
		}

		fragments = append(fragments, exported.Text)
	}

	return nil, errors.Wrapf(response.ErrParse,
		"export stream did not finish after %d fragments", info.Lines)
}

// ImportCalibration writes back one fragment of a previously exported
// calibration string.
func (d *Device) ImportCalibration(fragment string) error {
	return d.ack(command.Import(fragment))
}

// LedOn enables the status LED.
func (d *Device) LedOn() error {
	return d.ack(command.LedOn())
}

// LedOff disables the status LED.
func (d *Device) LedOff() error {
	return d.ack(command.LedOff())
}

// LedState queries the status LED.
func (d *Device) LedState() (response.LedStatus, error) {
	res, err := d.Execute(command.LedState())
	if err != nil {
		return 0, err
	}
	return res.(response.LedStatus), nil
}

// MemoryClear erases the reading stored by the datalogger.
func (d *Device) MemoryClear() error {
	return d.ack(command.MemoryClear())
}

// MemoryRecall reads the next stored datalogger reading.
func (d *Device) MemoryRecall() (response.MemoryReading, error) {
	res, err := d.Execute(command.MemoryRecall())
	if err != nil {
		return response.MemoryReading{}, err
	}
	return res.(response.MemoryReading), nil
}

// MemoryRecallLast queries the location of the last stored reading.
func (d *Device) MemoryRecallLast() (response.MemoryReading, error) {
	res, err := d.Execute(command.MemoryRecallLast())
	if err != nil {
		return response.MemoryReading{}, err
	}
	return res.(response.MemoryReading), nil
}

// ProtocolLockEnable locks the chip to its current protocol.
func (d *Device) ProtocolLockEnable() error {
	return d.ack(command.ProtocolLockEnable())
}

// ProtocolLockDisable unlocks the chip's protocol.
func (d *Device) ProtocolLockDisable() error {
	return d.ack(command.ProtocolLockDisable())
}

// ProtocolLockState queries the protocol lock.
func (d *Device) ProtocolLockState() (response.ProtocolLockStatus, error) {
	res, err := d.Execute(command.ProtocolLockState())
	if err != nil {
		return 0, err
	}
	return res.(response.ProtocolLockStatus), nil
}

// Sleep puts the chip into low-power sleep. The chip sends nothing
// back; any subsequent command wakes it up.
func (d *Device) Sleep() error {
	_, err := d.Execute(command.Sleep())
	return err
}

// Find makes the chip blink its LED so it can be located.
func (d *Device) Find() error {
	_, err := d.Execute(command.Find())
	return err
}

// FactoryReset restores factory defaults.
func (d *Device) FactoryReset() error {
	_, err := d.Execute(command.Factory())
	return err
}

// SetAddress moves the chip to a new I2C address. The chip reboots and
// stops answering on the address this Device's transport points to.
func (d *Device) SetAddress(addr uint16) error {
	_, err := d.Execute(command.DeviceAddress(addr))
	return err
}

// SetBaud switches the chip to UART mode at the given rate.
func (d *Device) SetBaud(rate command.BaudRate) error {
	_, err := d.Execute(command.Baud(rate))
	return err
}
