// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

// Package pt104test provides an in-memory implementation of
// usbpt104.Driver so the binding can be exercised without hardware or
// the vendor shared library.
package pt104test

import (
	"fmt"
	"strings"

	"github.com/gotmc/usbpt104"
	"github.com/gotmc/usbpt104/picostatus"
)

// Unit describes one simulated PT-104.
type Unit struct {
	Serial string
	// Values holds the raw conversion count reported for each channel.
	// A configured channel without an entry reports no samples
	// available, like a real channel mid-conversion.
	Values map[usbpt104.Channel]int32
	// Info holds the unit information strings by field.
	Info map[usbpt104.InfoField]string
}

type channelSetting struct {
	dataType usbpt104.DataType
	wires    usbpt104.Wires
}

// Driver is a scripted usbpt104.Driver. Attach Units before use; force
// failures per vendor call via Fail. Calls records every call that
// reached the driver, in order, with its arguments rendered.
type Driver struct {
	Units []*Unit
	// Fail maps a call name (Enumerate, OpenUnit, CloseUnit,
	// SetChannel, GetValue, SetMains, UnitInfo) to the status it should
	// fail with.
	Fail  map[string]picostatus.Status
	Calls []string

	next     usbpt104.Handle
	open     map[usbpt104.Handle]*Unit
	settings map[usbpt104.Handle]map[usbpt104.Channel]channelSetting
}

var _ usbpt104.Driver = (*Driver)(nil)

// record logs the call and returns the forced failure for the call
// name, if any.
func (d *Driver) record(name, args string) error {
	d.Calls = append(d.Calls, name+"("+args+")")
	if st, ok := d.Fail[name]; ok {
		return st
	}
	return nil
}

// CallCount returns how many recorded calls were to the named vendor
// call.
func (d *Driver) CallCount(name string) int {
	n := 0
	for _, c := range d.Calls {
		if strings.HasPrefix(c, name+"(") {
			n++
		}
	}
	return n
}

// OpenHandles returns the number of handles currently open.
func (d *Driver) OpenHandles() int {
	return len(d.open)
}

func (d *Driver) Enumerate(ct usbpt104.CommunicationType) (string, error) {
	if err := d.record("Enumerate", fmt.Sprintf("0x%x", uint32(ct))); err != nil {
		return "", err
	}
	serials := make([]string, 0, len(d.Units))
	for _, u := range d.Units {
		serials = append(serials, u.Serial)
	}
	return strings.Join(serials, ","), nil
}

func (d *Driver) OpenUnit(serial string) (usbpt104.Handle, error) {
	if err := d.record("OpenUnit", serial); err != nil {
		return 0, err
	}
	for _, u := range d.Units {
		if serial == "" || u.Serial == serial {
			if d.open == nil {
				d.open = make(map[usbpt104.Handle]*Unit)
				d.settings = make(map[usbpt104.Handle]map[usbpt104.Channel]channelSetting)
			}
			d.next++
			d.open[d.next] = u
			d.settings[d.next] = make(map[usbpt104.Channel]channelSetting)
			return d.next, nil
		}
	}
	return 0, picostatus.NotFound
}

func (d *Driver) CloseUnit(h usbpt104.Handle) error {
	if err := d.record("CloseUnit", fmt.Sprintf("%d", h)); err != nil {
		return err
	}
	if _, ok := d.open[h]; !ok {
		return picostatus.InvalidHandle
	}
	delete(d.open, h)
	delete(d.settings, h)
	return nil
}

func (d *Driver) SetChannel(h usbpt104.Handle, ch usbpt104.Channel, t usbpt104.DataType, w usbpt104.Wires) error {
	if err := d.record("SetChannel", fmt.Sprintf("%d, %d, %s, %s", h, ch, t, w)); err != nil {
		return err
	}
	if _, ok := d.open[h]; !ok {
		return picostatus.InvalidHandle
	}
	d.settings[h][ch] = channelSetting{dataType: t, wires: w}
	return nil
}

func (d *Driver) GetValue(h usbpt104.Handle, ch usbpt104.Channel, filtered bool) (int32, error) {
	if err := d.record("GetValue", fmt.Sprintf("%d, %d, %t", h, ch, filtered)); err != nil {
		return 0, err
	}
	u, ok := d.open[h]
	if !ok {
		return 0, picostatus.InvalidHandle
	}
	setting, ok := d.settings[h][ch]
	if !ok || setting.dataType == usbpt104.Off {
		return 0, picostatus.NoSamplesAvailable
	}
	v, ok := u.Values[ch]
	if !ok {
		return 0, picostatus.NoSamplesAvailable
	}
	return v, nil
}

func (d *Driver) SetMains(h usbpt104.Handle, sixtyHertz bool) error {
	if err := d.record("SetMains", fmt.Sprintf("%d, %t", h, sixtyHertz)); err != nil {
		return err
	}
	if _, ok := d.open[h]; !ok {
		return picostatus.InvalidHandle
	}
	return nil
}

func (d *Driver) UnitInfo(h usbpt104.Handle, field usbpt104.InfoField) (string, error) {
	if err := d.record("UnitInfo", fmt.Sprintf("%d, %s", h, field)); err != nil {
		return "", err
	}
	u, ok := d.open[h]
	if !ok {
		return "", picostatus.InvalidHandle
	}
	return u.Info[field], nil
}
