// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package usbpt104

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Reading is one conversion result for a channel. Raw holds the count
// reported by the driver; the scale of the count depends on the data
// type the channel was configured with.
type Reading struct {
	Channel Channel
	Type    DataType
	Raw     int32
}

// Value returns the scaled measurement: degrees Celsius for PT100 and
// PT1000, milliohms for the resistance ranges, and millivolts for the
// voltage ranges.
func (r Reading) Value() float64 {
	switch r.Type {
	case PT100, PT1000:
		// Raw count is in milli-degrees Celsius.
		return float64(r.Raw) / 1e3
	case Resistance375R:
		// Raw count is in microohms.
		return float64(r.Raw) / 1e3
	case Resistance10K:
		// Raw count is already in milliohms.
		return float64(r.Raw)
	case Differential115MV, SingleEnded115MV:
		return float64(r.Raw) / 1e9
	case Differential2500MV, SingleEnded2500MV:
		return float64(r.Raw) / 1e8
	}
	return 0
}

// Temperature returns the reading as a temperature. The second return
// value is false when the channel's data type is not an RTD type.
func (r Reading) Temperature() (physic.Temperature, bool) {
	if r.Type != PT100 && r.Type != PT1000 {
		return 0, false
	}
	return physic.ZeroCelsius + physic.Temperature(r.Raw)*physic.MilliKelvin, true
}

// Resistance returns the reading as a resistance. The second return
// value is false when the channel's data type is not a resistance
// range.
func (r Reading) Resistance() (physic.ElectricResistance, bool) {
	switch r.Type {
	case Resistance375R:
		return physic.ElectricResistance(r.Raw) * physic.MicroOhm, true
	case Resistance10K:
		return physic.ElectricResistance(r.Raw) * physic.MilliOhm, true
	}
	return 0, false
}

// Voltage returns the reading as a voltage. The second return value is
// false when the channel's data type is not a voltage range.
func (r Reading) Voltage() (physic.ElectricPotential, bool) {
	switch r.Type {
	case Differential115MV, SingleEnded115MV:
		// Raw count is in picovolts.
		return physic.ElectricPotential(r.Raw/1000) * physic.NanoVolt, true
	case Differential2500MV, SingleEnded2500MV:
		// Raw count is in tens of picovolts.
		return physic.ElectricPotential(r.Raw/100) * physic.NanoVolt, true
	}
	return 0, false
}

// String implements the Stringer interface for Reading.
func (r Reading) String() string {
	if r.Type == Off {
		return fmt.Sprintf("%s: off", r.Channel)
	}
	return fmt.Sprintf("%s: %g %s", r.Channel, r.Value(), r.Type.Unit())
}
