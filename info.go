// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package usbpt104

import "fmt"

// UnitInfo collects the information strings the driver reports about an
// open unit.
type UnitInfo struct {
	DriverVersion       string
	USBVersion          string
	HardwareVersion     string
	Variant             string
	BatchAndSerial      string
	CalibrationDate     string
	KernelDriverVersion string
}

// UnitInfo returns one line of information about the open unit.
func (d *Device) UnitInfo(field InfoField) (string, error) {
	if !d.open {
		return "", ErrNotConnected
	}
	s, err := d.driver.UnitInfo(d.handle, field)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", field, err)
	}
	return s, nil
}

// Info returns all the unit information fields in one struct.
func (d *Device) Info() (UnitInfo, error) {
	var info UnitInfo
	fields := []struct {
		field InfoField
		dst   *string
	}{
		{DriverVersion, &info.DriverVersion},
		{USBVersion, &info.USBVersion},
		{HardwareVersion, &info.HardwareVersion},
		{VariantInfo, &info.Variant},
		{BatchAndSerial, &info.BatchAndSerial},
		{CalibrationDate, &info.CalibrationDate},
		{KernelDriverVersion, &info.KernelDriverVersion},
	}
	for _, f := range fields {
		s, err := d.UnitInfo(f.field)
		if err != nil {
			return UnitInfo{}, err
		}
		*f.dst = s
	}
	return info, nil
}

// String implements the Stringer interface for UnitInfo.
func (i UnitInfo) String() string {
	return fmt.Sprintf("%s s/n %s (hw %s, driver %s, cal %s)",
		i.Variant, i.BatchAndSerial, i.HardwareVersion, i.DriverVersion, i.CalibrationDate)
}
