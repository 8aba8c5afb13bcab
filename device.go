// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package usbpt104

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gotmc/usbpt104/picostatus"
)

// conversionPeriod is the time the PT-104's ADC spends on each active
// channel. The device cycles through the active channels, so a full
// cycle takes conversionPeriod times the number of active channels.
const conversionPeriod = 750 * time.Millisecond

// Device models an open session to one PT-104 unit. The zero value is a
// disconnected session; use Open to obtain a connected one.
//
// A Device is not safe for concurrent use. The vendor driver gives no
// thread-safety guarantee for a handle and the wrapper adds no locking,
// so callers sharing one Device across goroutines must serialize access
// themselves.
type Device struct {
	driver   Driver
	handle   Handle
	open     bool
	serial   string
	channels map[Channel]ChannelConfig
}

// Enumerate lists the serial numbers of all attached PT-104 units
// reachable over the given transport. Only CommUSB is supported;
// requesting the Ethernet transport fails with ErrEthernetUnsupported.
func Enumerate(drv Driver, ct CommunicationType) ([]string, error) {
	switch ct {
	case CommUSB:
	case CommEthernet, CommAll:
		return nil, ErrEthernetUnsupported
	default:
		return nil, fmt.Errorf("invalid communication type 0x%x", uint32(ct))
	}
	details, err := drv.Enumerate(ct)
	if err != nil {
		return nil, &DiscoveryError{Err: err}
	}
	var serials []string
	for _, s := range strings.Split(details, ",") {
		if s = strings.TrimSpace(s); s != "" {
			serials = append(serials, s)
		}
	}
	sort.Strings(serials)
	return serials, nil
}

// Open opens a session to the unit with the given serial number via
// USB. An empty serial opens the first unit found. All channels start
// disabled.
func Open(drv Driver, serial string) (*Device, error) {
	handle, err := drv.OpenUnit(serial)
	if err != nil {
		return nil, &ConnectionError{Serial: serial, Err: err}
	}
	d := &Device{
		driver:   drv,
		handle:   handle,
		open:     true,
		serial:   serial,
		channels: make(map[Channel]ChannelConfig, NumChannels),
	}
	for ch := Channel1; ch <= Channel4; ch++ {
		d.channels[ch] = ChannelConfig{Type: Off, Wires: Wires4}
	}
	return d, nil
}

// Connected reports whether the session holds an open unit.
func (d *Device) Connected() bool {
	return d.open
}

// Serial returns the serial number the session was opened with, which
// is empty when the first available unit was requested.
func (d *Device) Serial() string {
	return d.serial
}

// Close releases the unit. It is idempotent: closing an already closed
// session is a no-op. If the driver rejects the close, the session is
// left open and the failure is reported as a *ConnectionError.
func (d *Device) Close() error {
	if !d.open {
		return nil
	}
	if err := d.driver.CloseUnit(d.handle); err != nil {
		return &ConnectionError{Serial: d.serial, Err: err}
	}
	d.open = false
	d.handle = 0
	return nil
}

// SetChannel configures the sensor type and wiring scheme for a
// measurement channel. The combination is validated before anything is
// forwarded to the driver; invalid input and driver rejections are both
// reported as a *ConfigError.
func (d *Device) SetChannel(ch Channel, t DataType, w Wires) error {
	return d.SetChannelConfig(ch, ChannelConfig{Type: t, Wires: w})
}

// SetChannelConfig configures a measurement channel, including the
// driver's low-pass filter flag applied on reads.
func (d *Device) SetChannelConfig(ch Channel, cfg ChannelConfig) error {
	if !d.open {
		return ErrNotConnected
	}
	if err := validateChannelConfig(ch, cfg); err != nil {
		return &ConfigError{Channel: ch, Err: err}
	}
	if err := d.driver.SetChannel(d.handle, ch, cfg.Type, cfg.Wires); err != nil {
		return &ConfigError{Channel: ch, Err: err}
	}
	d.channels[ch] = cfg
	return nil
}

func validateChannelConfig(ch Channel, cfg ChannelConfig) error {
	if !validMeasurementChannel(ch) {
		return fmt.Errorf("channel must be 1 through %d, got %d", NumChannels, int(ch))
	}
	if !validDataType(cfg.Type) {
		return fmt.Errorf("invalid data type %d", int(cfg.Type))
	}
	if !validWires(cfg.Wires) {
		return fmt.Errorf("wire count must be 2, 3, or 4, got %d", int(cfg.Wires))
	}
	return nil
}

// ChannelConfig returns the configuration last applied to a channel.
func (d *Device) ChannelConfig(ch Channel) (ChannelConfig, error) {
	if !d.open {
		return ChannelConfig{}, ErrNotConnected
	}
	cfg, ok := d.channels[ch]
	if !ok {
		return ChannelConfig{}, &ConfigError{
			Channel: ch,
			Err:     fmt.Errorf("channel must be 1 through %d, got %d", NumChannels, int(ch)),
		}
	}
	return cfg, nil
}

// Value polls the most recent conversion for a channel. A channel that
// is disabled or has not completed a conversion yet reports an error
// wrapping ErrNoReading; any other driver fault is a *ReadError. The
// call returns immediately either way: the device needs a full
// conversion cycle (see ConversionTime) between fresh readings, and
// pacing the polls is the caller's responsibility.
func (d *Device) Value(ch Channel) (Reading, error) {
	if !d.open {
		return Reading{}, ErrNotConnected
	}
	cfg, ok := d.channels[ch]
	if !ok {
		return Reading{}, &ReadError{
			Channel: ch,
			Err:     fmt.Errorf("channel must be 1 through %d, got %d", NumChannels, int(ch)),
		}
	}
	raw, err := d.driver.GetValue(d.handle, ch, cfg.LowPassFilter)
	if err != nil {
		if errors.Is(err, picostatus.NoSamplesAvailable) || errors.Is(err, picostatus.DataNotAvailable) {
			return Reading{}, fmt.Errorf("%s: %w", ch, ErrNoReading)
		}
		return Reading{}, &ReadError{Channel: ch, Err: err}
	}
	return Reading{Channel: ch, Type: cfg.Type, Raw: raw}, nil
}

// SetMains informs the driver of the local mains frequency so it can
// filter out electrical noise. Pass true for 60 Hz mains, false for
// 50 Hz.
func (d *Device) SetMains(sixtyHertz bool) error {
	if !d.open {
		return ErrNotConnected
	}
	if err := d.driver.SetMains(d.handle, sixtyHertz); err != nil {
		return fmt.Errorf("setting mains rejection: %w", err)
	}
	return nil
}

// ActiveChannels returns the number of channels not configured Off.
func (d *Device) ActiveChannels() int {
	n := 0
	for _, cfg := range d.channels {
		if cfg.Type != Off {
			n++
		}
	}
	return n
}

// ConversionTime returns the length of one full conversion cycle for
// the current channel configuration. Polling a channel faster than this
// yields stale readings or ErrNoReading.
func (d *Device) ConversionTime() time.Duration {
	return conversionPeriod * time.Duration(d.ActiveChannels())
}
