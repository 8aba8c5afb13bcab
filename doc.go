// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

/*
Package usbpt104 controls the Pico Technology PT-104 four-channel RTD
data-acquisition unit (and the rebadged Omega PT-104A) through Pico's
usbpt104 driver library.

All device knowledge lives in the closed vendor library: the USB
protocol, the ADC calibration, and the RTD linearization. This package
enumerates units, opens a session, configures channels, and polls
values, translating the driver's status codes into Go errors. It adds
no retry logic and no buffering on top of the driver.

The usbpt104 shared library must be installed (it ships with Pico's
Linux and macOS driver packages); if it cannot be found, OpenDriver
fails with ErrLibraryNotFound. Only the USB transport is supported.

	drv, err := usbpt104.OpenDriver()
	if err != nil {
		log.Fatal(err)
	}
	dev, err := usbpt104.Open(drv, "AY429/026")
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	if err := dev.SetChannel(usbpt104.Channel1, usbpt104.PT100, usbpt104.Wires4); err != nil {
		log.Fatal(err)
	}
	time.Sleep(dev.ConversionTime())
	r, err := dev.Value(usbpt104.Channel1)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("CH1: %.3f °C", r.Value())

The device converts one active channel every 750 ms, so a full cycle
takes ConversionTime; polling faster returns stale readings or
ErrNoReading. A Device is not safe for concurrent use; callers must
serialize access to a session themselves.
*/
package usbpt104
