package response_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/robertof/go-ezo-rtd/response"
)

func TestParseTemperatureScale(t *testing.T) {
	tests := []struct {
		in   string
		want response.TemperatureScale
	}{
		{"?S,C", response.Celsius},
		{"?S,K", response.Kelvin},
		{"?S,F", response.Fahrenheit},
	}

	for _, tt := range tests {
		got, err := response.ParseTemperatureScale(tt.in)

		if err != nil {
			t.Fatalf("ParseTemperatureScale(%q) got error: %v", tt.in, err)
		}

		if got != tt.want {
			t.Errorf("ParseTemperatureScale(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseTemperatureScale_Invalid(t *testing.T) {
	for _, in := range []string{"", "?S,", "?S,c", "?s,C", "?S,C,", "S,C"} {
		if _, err := response.ParseTemperatureScale(in); !errors.Is(err, response.ErrParse) {
			t.Errorf("ParseTemperatureScale(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseSensorReading(t *testing.T) {
	tests := []struct {
		in   string
		want response.SensorReading
	}{
		{"0", 0},
		{"1234.5", 1234.5},
		{"-10.5", -10.5},
	}

	for _, tt := range tests {
		got, err := response.ParseSensorReading(tt.in)

		if err != nil {
			t.Fatalf("ParseSensorReading(%q) got error: %v", tt.in, err)
		}

		if got != tt.want {
			t.Errorf("ParseSensorReading(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "-x", "12,5"} {
		if _, err := response.ParseSensorReading(in); !errors.Is(err, response.ErrParse) {
			t.Errorf("ParseSensorReading(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseTemperature_TagsCallerScale(t *testing.T) {
	got, err := response.ParseTemperature("14.125", response.Kelvin)

	if err != nil {
		t.Fatalf("ParseTemperature got error: %v", err)
	}

	want := response.Temperature{Scale: response.Kelvin, Value: 14.125}

	if got != want {
		t.Errorf("ParseTemperature = %+v, want %+v", got, want)
	}
}

func TestParseDeviceStatus(t *testing.T) {
	tests := []struct {
		in   string
		want response.DeviceStatus
	}{
		{"?STATUS,P,1.5", response.DeviceStatus{RestartReason: response.RestartPoweredOff, VccVoltage: 1.5}},
		{"?STATUS,S,1.5", response.DeviceStatus{RestartReason: response.RestartSoftwareReset, VccVoltage: 1.5}},
		{"?STATUS,B,1.5", response.DeviceStatus{RestartReason: response.RestartBrownOut, VccVoltage: 1.5}},
		{"?STATUS,W,1.5", response.DeviceStatus{RestartReason: response.RestartWatchdog, VccVoltage: 1.5}},
		{"?STATUS,U,1.5", response.DeviceStatus{RestartReason: response.RestartUnknown, VccVoltage: 1.5}},
		{"?STATUS,P,3.3", response.DeviceStatus{RestartReason: response.RestartPoweredOff, VccVoltage: 3.3}},
	}

	for _, tt := range tests {
		got, err := response.ParseDeviceStatus(tt.in)

		if err != nil {
			t.Fatalf("ParseDeviceStatus(%q) got error: %v", tt.in, err)
		}

		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseDeviceStatus(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseDeviceStatus_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"?STATUS,",
		"?STATUS,X,1.5", // no catch-all reason
		"?STATUS,P",
		"?STATUS,P,",
		"?STATUS,P,1.5,",  // trailing third field
		"?STATUS,P,1.5,1", // third field
		"STATUS,P,1.5",
	}

	for _, in := range invalid {
		if _, err := response.ParseDeviceStatus(in); !errors.Is(err, response.ErrParse) {
			t.Errorf("ParseDeviceStatus(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseCalibrationStatus(t *testing.T) {
	if got, err := response.ParseCalibrationStatus("?CAL,1"); err != nil || got != response.Calibrated {
		t.Errorf("ParseCalibrationStatus(?CAL,1) = %v, %v", got, err)
	}

	if got, err := response.ParseCalibrationStatus("?CAL,0"); err != nil || got != response.NotCalibrated {
		t.Errorf("ParseCalibrationStatus(?CAL,0) = %v, %v", got, err)
	}

	for _, in := range []string{"", "?CAL,", "?CAL,2", "?CAL,1,1"} {
		if _, err := response.ParseCalibrationStatus(in); !errors.Is(err, response.ErrParse) {
			t.Errorf("ParseCalibrationStatus(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseDataLoggerInterval_Boundaries(t *testing.T) {
	valid := map[string]response.DataLoggerInterval{
		"?D,0":      0,
		"?D,10":     10,
		"?D,42":     42,
		"?D,320000": 320000,
	}

	for in, want := range valid {
		got, err := response.ParseDataLoggerInterval(in)

		if err != nil {
			t.Fatalf("ParseDataLoggerInterval(%q) got error: %v", in, err)
		}

		if got != want {
			t.Errorf("ParseDataLoggerInterval(%q) = %v, want %v", in, got, want)
		}
	}

	// 1..9 and >320000 parse as integers but are outside the chip's
	// accepted range.
	invalid := []string{"?D,1", "?D,9", "?D,320001", "?D,", "?D,-1", "?D,foo", "?D,10,1", "10"}

	for _, in := range invalid {
		if _, err := response.ParseDataLoggerInterval(in); !errors.Is(err, response.ErrParse) {
			t.Errorf("ParseDataLoggerInterval(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseExported(t *testing.T) {
	got, err := response.ParseExported("*DONE")

	if err != nil {
		t.Fatalf("ParseExported(*DONE) got error: %v", err)
	}

	if !got.Done {
		t.Errorf("ParseExported(*DONE) = %+v, want Done", got)
	}

	got, err = response.ParseExported("ABCDEF")

	if err != nil {
		t.Fatalf("ParseExported(ABCDEF) got error: %v", err)
	}

	if got.Done || got.Text != "ABCDEF" {
		t.Errorf("ParseExported(ABCDEF) = %+v, want fragment", got)
	}

	// 12 characters is the longest accepted fragment.
	if _, err := response.ParseExported(strings.Repeat("A", 12)); err != nil {
		t.Errorf("ParseExported(12 chars) got error: %v", err)
	}

	invalid := []string{"*DNE", "*done", "*", "", strings.Repeat("A", 13)}

	for _, in := range invalid {
		if _, err := response.ParseExported(in); !errors.Is(err, response.ErrParse) {
			t.Errorf("ParseExported(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseExportedInfo(t *testing.T) {
	got, err := response.ParseExportedInfo("3,36")

	if err != nil {
		t.Fatalf("ParseExportedInfo(3,36) got error: %v", err)
	}

	want := response.ExportedInfo{Lines: 3, Bytes: 36}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseExportedInfo(3,36) = %+v, want %+v", got, want)
	}

	for _, in := range []string{"", "3", "3,36,1", "3,-1", "a,36"} {
		if _, err := response.ParseExportedInfo(in); !errors.Is(err, response.ErrParse) {
			t.Errorf("ParseExportedInfo(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseDeviceInfo(t *testing.T) {
	got, err := response.ParseDeviceInfo("?I,RTD,2.01")

	if err != nil {
		t.Fatalf("ParseDeviceInfo got error: %v", err)
	}

	want := response.DeviceInfo{Device: "RTD", Firmware: "2.01"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseDeviceInfo = %+v, want %+v", got, want)
	}

	for _, in := range []string{"", "?I,RTD", "?I,RTD,2.01,x", "?I,,2.01", "?I,RTD,"} {
		if _, err := response.ParseDeviceInfo(in); !errors.Is(err, response.ErrParse) {
			t.Errorf("ParseDeviceInfo(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseLedStatus(t *testing.T) {
	if got, err := response.ParseLedStatus("?L,1"); err != nil || got != response.LedOn {
		t.Errorf("ParseLedStatus(?L,1) = %v, %v", got, err)
	}

	if got, err := response.ParseLedStatus("?L,0"); err != nil || got != response.LedOff {
		t.Errorf("ParseLedStatus(?L,0) = %v, %v", got, err)
	}

	for _, in := range []string{"", "?L,2", "?L,1,1", "?PLOCK,1"} {
		if _, err := response.ParseLedStatus(in); !errors.Is(err, response.ErrParse) {
			t.Errorf("ParseLedStatus(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseProtocolLockStatus(t *testing.T) {
	if got, err := response.ParseProtocolLockStatus("?PLOCK,1"); err != nil || got != response.ProtocolLockOn {
		t.Errorf("ParseProtocolLockStatus(?PLOCK,1) = %v, %v", got, err)
	}

	if got, err := response.ParseProtocolLockStatus("?PLOCK,0"); err != nil || got != response.ProtocolLockOff {
		t.Errorf("ParseProtocolLockStatus(?PLOCK,0) = %v, %v", got, err)
	}

	for _, in := range []string{"", "?PLOCK,2", "?L,1"} {
		if _, err := response.ParseProtocolLockStatus(in); !errors.Is(err, response.ErrParse) {
			t.Errorf("ParseProtocolLockStatus(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseMemoryReading(t *testing.T) {
	got, err := response.ParseMemoryReading("17,-10.5")

	if err != nil {
		t.Fatalf("ParseMemoryReading got error: %v", err)
	}

	want := response.MemoryReading{Location: 17, Reading: -10.5}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseMemoryReading = %+v, want %+v", got, want)
	}

	for _, in := range []string{"", "17", "17,-10.5,1", "-1,10.5", "x,10.5", "17,x"} {
		if _, err := response.ParseMemoryReading(in); !errors.Is(err, response.ErrParse) {
			t.Errorf("ParseMemoryReading(%q) = %v, want ErrParse", in, err)
		}
	}
}

// Every self-describing response renders its own wire grammar, so
// rendering and re-parsing must be the identity.
func TestRoundTrips(t *testing.T) {
	scale, err := response.ParseTemperatureScale(response.Fahrenheit.String())
	if err != nil || scale != response.Fahrenheit {
		t.Errorf("scale round trip = %v, %v", scale, err)
	}

	statusWant := response.DeviceStatus{RestartReason: response.RestartPoweredOff, VccVoltage: 1.5}
	status, err := response.ParseDeviceStatus(statusWant.String())
	if err != nil || status != statusWant {
		t.Errorf("status round trip = %+v, %v", status, err)
	}

	cal, err := response.ParseCalibrationStatus(response.Calibrated.String())
	if err != nil || cal != response.Calibrated {
		t.Errorf("calibration round trip = %v, %v", cal, err)
	}

	interval, err := response.ParseDataLoggerInterval(response.DataLoggerInterval(320000).String())
	if err != nil || interval != 320000 {
		t.Errorf("interval round trip = %v, %v", interval, err)
	}

	exported, err := response.ParseExported(response.Exported{Done: true}.String())
	if err != nil || !exported.Done {
		t.Errorf("exported round trip = %+v, %v", exported, err)
	}

	infoWant := response.ExportedInfo{Lines: 4, Bytes: 48}
	info, err := response.ParseExportedInfo(infoWant.String())
	if err != nil || info != infoWant {
		t.Errorf("export info round trip = %+v, %v", info, err)
	}

	devWant := response.DeviceInfo{Device: "RTD", Firmware: "2.01"}
	dev, err := response.ParseDeviceInfo(devWant.String())
	if err != nil || dev != devWant {
		t.Errorf("device info round trip = %+v, %v", dev, err)
	}

	led, err := response.ParseLedStatus(response.LedOn.String())
	if err != nil || led != response.LedOn {
		t.Errorf("led round trip = %v, %v", led, err)
	}

	plock, err := response.ParseProtocolLockStatus(response.ProtocolLockOff.String())
	if err != nil || plock != response.ProtocolLockOff {
		t.Errorf("plock round trip = %v, %v", plock, err)
	}

	memWant := response.MemoryReading{Location: 17, Reading: -10.5}
	mem, err := response.ParseMemoryReading(memWant.String())
	if err != nil || mem != memWant {
		t.Errorf("memory round trip = %+v, %v", mem, err)
	}

	reading, err := response.ParseSensorReading(response.SensorReading(25.104).String())
	if err != nil || reading != 25.104 {
		t.Errorf("reading round trip = %v, %v", reading, err)
	}
}
