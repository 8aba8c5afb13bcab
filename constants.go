// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package usbpt104

import (
	"encoding/json"
	"fmt"
)

// Channel identifies one of the PT-104's input channels. Channels 1–4
// are the measurement channels; channels 5–8 exist in the vendor header
// for the differential inputs that share the same terminals.
type Channel int

// Available channels.
const (
	Channel1 Channel = iota + 1
	Channel2
	Channel3
	Channel4
	Channel5
	Channel6
	Channel7
	Channel8
)

// NumChannels is the number of measurement channels on a PT-104.
const NumChannels = 4

// String implements the Stringer interface for Channel.
func (ch Channel) String() string {
	return fmt.Sprintf("channel %d", int(ch))
}

// DataType identifies the sensor or input range connected to a channel.
type DataType int

// Available data types.
const (
	Off DataType = iota
	PT100
	PT1000
	Resistance375R
	Resistance10K
	Differential115MV
	Differential2500MV
	SingleEnded115MV
	SingleEnded2500MV
)

// DataTypes maps a string to the actual DataType.
var DataTypes = map[string]DataType{
	"off":          Off,
	"pt100":        PT100,
	"pt1000":       PT1000,
	"375R":         Resistance375R,
	"10K":          Resistance10K,
	"diff115mv":    Differential115MV,
	"diff2500mv":   Differential2500MV,
	"single115mv":  SingleEnded115MV,
	"single2500mv": SingleEnded2500MV,
}

// DataTypeStrings maps a DataType to a string representation for use by
// Stringer.
var DataTypeStrings = map[DataType]string{
	Off:                "off",
	PT100:              "pt100",
	PT1000:             "pt1000",
	Resistance375R:     "375R",
	Resistance10K:      "10K",
	Differential115MV:  "diff115mv",
	Differential2500MV: "diff2500mv",
	SingleEnded115MV:   "single115mv",
	SingleEnded2500MV:  "single2500mv",
}

// String implements the Stringer interface for DataType.
func (t DataType) String() string {
	return DataTypeStrings[t]
}

// Unit returns the unit symbol for values measured with this data type.
func (t DataType) Unit() string {
	switch t {
	case PT100, PT1000:
		return "°C"
	case Resistance375R, Resistance10K:
		return "mΩ"
	case Differential115MV, Differential2500MV, SingleEnded115MV, SingleEnded2500MV:
		return "mV"
	}
	return ""
}

// UnmarshalJSON implements the Unmarshaler interface for DataType by
// taking a string that matches a key in the DataTypes map and finding
// the appropriate DataType value.
func (t *DataType) UnmarshalJSON(data []byte) error {
	// Extract the string from data.
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("type should be a string, got %s", data)
	}
	return t.Set(s)
}

// MarshalJSON implements the Marshaler interface for DataType.
func (t *DataType) MarshalJSON() ([]byte, error) {
	return json.Marshal(DataTypeStrings[*t])
}

// Set sets the data type using a string.
func (t *DataType) Set(s string) error {
	got, ok := DataTypes[s]
	if !ok {
		return fmt.Errorf("invalid data type %q", s)
	}
	*t = got
	return nil
}

// Wires is the number of physical wires connecting the RTD sensor. The
// wire count determines the lead-resistance compensation performed by
// the driver.
type Wires int

// Available wire counts.
const (
	Wires2 Wires = iota + 2
	Wires3
	Wires4
)

// String implements the Stringer interface for Wires.
func (w Wires) String() string {
	return fmt.Sprintf("%d-wire", int(w))
}

// UnmarshalJSON implements the Unmarshaler interface for Wires.
func (w *Wires) UnmarshalJSON(data []byte) error {
	// Extract the integer from data.
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("wires should be a number, got %s", data)
	}
	if Wires(n) < Wires2 || Wires(n) > Wires4 {
		return fmt.Errorf("invalid wire count %d", n)
	}
	*w = Wires(n)
	return nil
}

// MarshalJSON implements the Marshaler interface for Wires.
func (w *Wires) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(*w))
}

// CommunicationType selects the transport used to reach a unit.
type CommunicationType uint32

// Available communication types. Only USB is supported; the Ethernet
// transport exists in the vendor header but is not implemented here.
const (
	CommUSB      CommunicationType = 0x00000001
	CommEthernet CommunicationType = 0x00000002
	CommAll      CommunicationType = 0xffffffff
)

// InfoField selects one line of unit information from the driver.
type InfoField uint32

// Available unit information fields.
const (
	DriverVersion InfoField = iota
	USBVersion
	HardwareVersion
	VariantInfo
	BatchAndSerial
	CalibrationDate
	KernelDriverVersion
)

var infoFieldStrings = map[InfoField]string{
	DriverVersion:       "driver version",
	USBVersion:          "USB version",
	HardwareVersion:     "hardware version",
	VariantInfo:         "variant",
	BatchAndSerial:      "batch and serial",
	CalibrationDate:     "calibration date",
	KernelDriverVersion: "kernel driver version",
}

// String implements the Stringer interface for InfoField.
func (f InfoField) String() string {
	return infoFieldStrings[f]
}

func validMeasurementChannel(ch Channel) bool {
	return ch >= Channel1 && ch <= Channel4
}

func validDataType(t DataType) bool {
	_, ok := DataTypeStrings[t]
	return ok
}

func validWires(w Wires) bool {
	return w >= Wires2 && w <= Wires4
}
