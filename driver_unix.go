// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

//go:build linux || darwin

package usbpt104

import (
	"os"
	"runtime"
	"strings"

	"github.com/ebitengine/purego"

	"github.com/gotmc/usbpt104/picostatus"
)

const (
	enumBufferSize = 256
	infoBufferSize = 256
)

// vendorDriver binds the entry points of the usbpt104 shared library.
// The library owns the USB transport, unit enumeration, calibration,
// and RTD linearization; this type only marshals arguments and
// translates status codes.
type vendorDriver struct {
	enumerate   func(details *byte, length *uint32, ct uint32) uint32
	openUnit    func(handle *int16, serial string) uint32
	closeUnit   func(handle int16) uint32
	setChannel  func(handle int16, ch uint32, t uint32, wires int16) uint32
	getValue    func(handle int16, ch uint32, value *int32, filtered int16) uint32
	setMains    func(handle int16, sixtyHertz uint16) uint32
	getUnitInfo func(handle int16, s *byte, strLen int16, reqSize *int16, info uint32) uint32
}

// OpenDriver loads the vendor usbpt104 shared library and resolves the
// entry points used by this package. A missing library reports
// ErrLibraryNotFound; there is no fallback.
//
// The USBPT104_LIB environment variable overrides the library search.
func OpenDriver() (Driver, error) {
	lib, err := loadLibrary()
	if err != nil {
		return nil, err
	}
	d := &vendorDriver{}
	purego.RegisterLibFunc(&d.enumerate, lib, "UsbPt104Enumerate")
	purego.RegisterLibFunc(&d.openUnit, lib, "UsbPt104OpenUnit")
	purego.RegisterLibFunc(&d.closeUnit, lib, "UsbPt104CloseUnit")
	purego.RegisterLibFunc(&d.setChannel, lib, "UsbPt104SetChannel")
	purego.RegisterLibFunc(&d.getValue, lib, "UsbPt104GetValue")
	purego.RegisterLibFunc(&d.setMains, lib, "UsbPt104SetMains")
	purego.RegisterLibFunc(&d.getUnitInfo, lib, "UsbPt104GetUnitInfo")
	return d, nil
}

// libraryNames returns the candidate names for the vendor library in
// search order, covering both the dynamic linker path and Pico's
// default install locations.
func libraryNames() []string {
	if name := os.Getenv("USBPT104_LIB"); name != "" {
		return []string{name}
	}
	if runtime.GOOS == "darwin" {
		return []string{
			"libusbpt104.dylib",
			"/Applications/PicoScope 6.app/Contents/Resources/lib/libusbpt104.dylib",
		}
	}
	return []string{
		"libusbpt104.so.2",
		"libusbpt104.so",
		"/opt/picoscope/lib/libusbpt104.so.2",
		"/opt/picoscope/lib/libusbpt104.so",
	}
}

func loadLibrary() (uintptr, error) {
	for _, name := range libraryNames() {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return lib, nil
		}
	}
	return 0, ErrLibraryNotFound
}

func (d *vendorDriver) Enumerate(ct CommunicationType) (string, error) {
	buf := make([]byte, enumBufferSize)
	length := uint32(len(buf))
	st := picostatus.Status(d.enumerate(&buf[0], &length, uint32(ct)))
	if err := st.Err(); err != nil {
		return "", err
	}
	if length > uint32(len(buf)) {
		length = uint32(len(buf))
	}
	return strings.TrimRight(string(buf[:length]), "\x00"), nil
}

func (d *vendorDriver) OpenUnit(serial string) (Handle, error) {
	var handle int16
	st := picostatus.Status(d.openUnit(&handle, serial))
	if err := st.Err(); err != nil {
		return 0, err
	}
	return Handle(handle), nil
}

func (d *vendorDriver) CloseUnit(h Handle) error {
	return picostatus.Status(d.closeUnit(int16(h))).Err()
}

func (d *vendorDriver) SetChannel(h Handle, ch Channel, t DataType, w Wires) error {
	return picostatus.Status(d.setChannel(int16(h), uint32(ch), uint32(t), int16(w))).Err()
}

func (d *vendorDriver) GetValue(h Handle, ch Channel, filtered bool) (int32, error) {
	var value int32
	filt := int16(0)
	if filtered {
		filt = 1
	}
	st := picostatus.Status(d.getValue(int16(h), uint32(ch), &value, filt))
	if err := st.Err(); err != nil {
		return 0, err
	}
	return value, nil
}

func (d *vendorDriver) SetMains(h Handle, sixtyHertz bool) error {
	sixty := uint16(0)
	if sixtyHertz {
		sixty = 1
	}
	return picostatus.Status(d.setMains(int16(h), sixty)).Err()
}

func (d *vendorDriver) UnitInfo(h Handle, field InfoField) (string, error) {
	buf := make([]byte, infoBufferSize)
	var required int16
	st := picostatus.Status(d.getUnitInfo(int16(h), &buf[0], int16(len(buf)), &required, uint32(field)))
	if err := st.Err(); err != nil {
		return "", err
	}
	n := int(required)
	if n < 0 || n > len(buf) {
		n = len(buf)
	}
	return strings.TrimRight(string(buf[:n]), "\x00"), nil
}
