// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package usbpt104

// ChannelConfig is the configuration for one measurement channel. The
// zero value means the channel is off; Wires defaults to 4-wire when
// applied through Configure.
type ChannelConfig struct {
	Type          DataType `json:"type"`
	Wires         Wires    `json:"wires"`
	LowPassFilter bool     `json:"low_pass_filter"`
	Description   string   `json:"desc"`
}

// Config is the configuration for all four measurement channels. Index
// 0 holds channel 1. It can be unmarshalled directly from JSON, e.g.
//
//	[
//	  {"type": "pt100", "wires": 4, "low_pass_filter": true, "desc": "inlet"},
//	  {"type": "off"}
//	]
type Config [NumChannels]ChannelConfig

// Configure applies a full channel set to the device. Entries with a
// zero wire count are normalized to 4-wire before validation, so a
// blank entry disables its channel.
func (d *Device) Configure(cfg Config) error {
	for i, c := range cfg {
		if c.Wires == 0 {
			c.Wires = Wires4
		}
		if err := d.SetChannelConfig(Channel(i+1), c); err != nil {
			return err
		}
	}
	return nil
}
