// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package usbpt104

// Handle is the opaque unit identifier issued by the driver when a unit
// is opened. It is only meaningful to the Driver that issued it.
type Handle int16

// Driver defines the vendor library entry points required to operate a
// PT-104. The real implementation returned by OpenDriver forwards each
// call into the usbpt104 shared library; pt104test provides an
// in-memory substitute for testing without hardware.
//
// Errors returned by a Driver are the raw picostatus.Status codes
// reported by the vendor library.
type Driver interface {
	// Enumerate returns the driver's enumeration string, a
	// comma-separated list of the serial numbers of all attached units
	// reachable over the given transport.
	Enumerate(ct CommunicationType) (string, error)

	// OpenUnit opens the unit with the given serial number and returns
	// its handle. An empty serial opens the first unit found.
	OpenUnit(serial string) (Handle, error)

	// CloseUnit releases the handle.
	CloseUnit(h Handle) error

	// SetChannel configures the sensor type and wiring scheme for a
	// channel. The configuration is stored by the driver and the device.
	SetChannel(h Handle, ch Channel, t DataType, w Wires) error

	// GetValue returns the most recent conversion for a channel,
	// optionally with the driver's low-pass filter applied.
	GetValue(h Handle, ch Channel, filtered bool) (int32, error)

	// SetMains informs the driver of the local mains frequency so it
	// can reject mains noise. Pass true for 60 Hz, false for 50 Hz.
	SetMains(h Handle, sixtyHertz bool) error

	// UnitInfo returns one line of information about an open unit.
	UnitInfo(h Handle, field InfoField) (string, error)
}
