// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package usbpt104

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by this package.
var (
	// ErrLibraryNotFound indicates the usbpt104 shared library could
	// not be located. The library ships with Pico's driver packages and
	// must be installed before this package can talk to hardware.
	ErrLibraryNotFound = errors.New("usbpt104 shared library not found")

	// ErrNotConnected indicates the session has no open unit. The
	// driver is not invoked.
	ErrNotConnected = errors.New("not connected")

	// ErrNoReading indicates the channel has no conversion available
	// yet, either because it is disabled or because the device has not
	// completed a conversion cycle since the channel was configured.
	ErrNoReading = errors.New("no reading available")

	// ErrEthernetUnsupported indicates the Ethernet transport was
	// requested. The vendor header defines it but this binding does not
	// implement it.
	ErrEthernetUnsupported = errors.New("ethernet transport not supported")
)

// DiscoveryError reports a driver fault while enumerating units.
type DiscoveryError struct {
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("enumerating units: %s", e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// ConnectionError reports a failure to open or close a unit.
type ConnectionError struct {
	Serial string
	Err    error
}

func (e *ConnectionError) Error() string {
	if e.Serial == "" {
		return fmt.Sprintf("opening unit: %s", e.Err)
	}
	return fmt.Sprintf("opening unit %s: %s", e.Serial, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ConfigError reports an invalid channel configuration or a driver
// rejection of one.
type ConfigError struct {
	Channel Channel
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuring %s: %s", e.Channel, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ReadError reports a driver fault while reading a channel value.
type ReadError struct {
	Channel Channel
	Err     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %s", e.Channel, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
