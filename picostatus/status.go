// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

// Package picostatus provides the PICO_STATUS codes returned by Pico
// Technology driver libraries. Every entry point in the usbpt104 driver
// returns one of these codes; anything other than OK indicates the call
// failed.
package picostatus

import "fmt"

// Status is a PICO_STATUS code as returned by the vendor driver.
type Status uint32

// Status codes the usbpt104 driver can return.
const (
	OK                      Status = 0x00
	MaxUnitsOpened          Status = 0x01
	MemoryFail              Status = 0x02
	NotFound                Status = 0x03
	FirmwareFail            Status = 0x04
	OpenOperationInProgress Status = 0x05
	OperationFailed         Status = 0x06
	NotResponding           Status = 0x07
	ConfigFail              Status = 0x08
	KernelDriverTooOld      Status = 0x09
	EEPROMCorrupt           Status = 0x0a
	OSNotSupported          Status = 0x0b
	InvalidHandle           Status = 0x0c
	InvalidParameter        Status = 0x0d
	InvalidTimebase         Status = 0x0e
	InvalidVoltageRange     Status = 0x0f
	InvalidChannel          Status = 0x10
	InvalidTriggerChannel   Status = 0x11
	InvalidConditionChannel Status = 0x12
	NoSignalGenerator       Status = 0x13
	StreamingFailed         Status = 0x14
	BlockModeFailed         Status = 0x15
	NullParameter           Status = 0x16
	ETSModeSet              Status = 0x17
	DataNotAvailable        Status = 0x18
	StringBufferTooSmall    Status = 0x19
	ETSNotSupported         Status = 0x1a
	AutoTriggerTimeTooShort Status = 0x1b
	BufferStall             Status = 0x1c
	TooManySamples          Status = 0x1d
	TooManySegments         Status = 0x1e
	PulseWidthQualifier     Status = 0x1f
	Delay                   Status = 0x20
	SourceDetails           Status = 0x21
	Conditions              Status = 0x22
	UserCallback            Status = 0x23
	DeviceSampling          Status = 0x24
	NoSamplesAvailable      Status = 0x25
	SegmentOutOfRange       Status = 0x26
	Busy                    Status = 0x27
	StartIndexInvalid       Status = 0x28
	InvalidInfo             Status = 0x29
	InfoUnavailable         Status = 0x2a
	InvalidSampleInterval   Status = 0x2b
	TriggerError            Status = 0x2c
	Memory                  Status = 0x2d
)

var descriptions = map[Status]string{
	OK:                      "no error",
	MaxUnitsOpened:          "maximum number of units already open",
	MemoryFail:              "not enough memory on the host machine",
	NotFound:                "unit not found",
	FirmwareFail:            "unable to download firmware",
	OpenOperationInProgress: "open operation already in progress",
	OperationFailed:         "operation failed",
	NotResponding:           "unit not responding",
	ConfigFail:              "unable to configure the unit",
	KernelDriverTooOld:      "kernel driver too old",
	EEPROMCorrupt:           "EEPROM corrupt",
	OSNotSupported:          "operating system not supported",
	InvalidHandle:           "invalid handle",
	InvalidParameter:        "invalid parameter",
	InvalidTimebase:         "invalid timebase",
	InvalidVoltageRange:     "invalid voltage range",
	InvalidChannel:          "invalid channel",
	InvalidTriggerChannel:   "invalid trigger channel",
	InvalidConditionChannel: "invalid condition channel",
	NoSignalGenerator:       "unit has no signal generator",
	StreamingFailed:         "streaming failed",
	BlockModeFailed:         "block mode failed",
	NullParameter:           "null parameter",
	ETSModeSet:              "ETS mode set",
	DataNotAvailable:        "no data available",
	StringBufferTooSmall:    "string buffer too small",
	ETSNotSupported:         "ETS not supported",
	AutoTriggerTimeTooShort: "auto trigger time too short",
	BufferStall:             "buffer stall",
	TooManySamples:          "too many samples requested",
	TooManySegments:         "too many segments requested",
	PulseWidthQualifier:     "pulse width qualifier error",
	Delay:                   "delay error",
	SourceDetails:           "source details error",
	Conditions:              "conditions error",
	UserCallback:            "user callback error",
	DeviceSampling:          "device is sampling",
	NoSamplesAvailable:      "no samples available",
	SegmentOutOfRange:       "segment out of range",
	Busy:                    "device busy",
	StartIndexInvalid:       "start index invalid",
	InvalidInfo:             "invalid info line",
	InfoUnavailable:         "info unavailable",
	InvalidSampleInterval:   "invalid sample interval",
	TriggerError:            "trigger error",
	Memory:                  "memory error",
}

// String implements the Stringer interface for Status.
func (s Status) String() string {
	if desc, ok := descriptions[s]; ok {
		return desc
	}
	return fmt.Sprintf("unknown status 0x%08x", uint32(s))
}

// Error implements the error interface so a non-OK Status can be
// returned directly from a driver call.
func (s Status) Error() string {
	return fmt.Sprintf("pico status 0x%02x: %s", uint32(s), s.String())
}

// Err returns nil for OK and the Status itself for anything else.
func (s Status) Err() error {
	if s == OK {
		return nil
	}
	return s
}
