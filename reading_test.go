// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package usbpt104

import (
	"fmt"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestReadingValue(t *testing.T) {
	testCases := []struct {
		dataType DataType
		raw      int32
		expected float64
	}{
		{PT100, 25456, 25.456},
		{PT100, -5000, -5.0},
		{PT1000, 100000, 100.0},
		{Resistance375R, 123456, 123.456},
		{Resistance10K, 5000, 5000.0},
		{SingleEnded115MV, 1000000000, 1.0},
		{Differential115MV, 500000000, 0.5},
		{SingleEnded2500MV, 250000000, 2.5},
		{Differential2500MV, 100000000, 1.0},
		{Off, 123, 0.0},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s raw %d", tc.dataType, tc.raw), func(t *testing.T) {
			r := Reading{Channel: Channel1, Type: tc.dataType, Raw: tc.raw}
			if computed := r.Value(); computed != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, computed)
			}
		})
	}
}

func TestReadingTemperature(t *testing.T) {
	r := Reading{Channel: Channel1, Type: PT100, Raw: 25000}
	temp, ok := r.Temperature()
	if !ok {
		t.Fatal("Expected a temperature for a PT100 reading")
	}
	if expected := physic.ZeroCelsius + 25*physic.Kelvin; temp != expected {
		t.Errorf("Expected %s, got %s", expected, temp)
	}
	r = Reading{Channel: Channel1, Type: Resistance10K, Raw: 25000}
	if _, ok := r.Temperature(); ok {
		t.Error("Expected no temperature for a resistance reading")
	}
}

func TestReadingResistance(t *testing.T) {
	testCases := []struct {
		dataType DataType
		raw      int32
		expected physic.ElectricResistance
		ok       bool
	}{
		{Resistance375R, 2000000, 2 * physic.Ohm, true},
		{Resistance10K, 1500, 1500 * physic.MilliOhm, true},
		{PT100, 1500, 0, false},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s raw %d", tc.dataType, tc.raw), func(t *testing.T) {
			r := Reading{Channel: Channel2, Type: tc.dataType, Raw: tc.raw}
			res, ok := r.Resistance()
			if ok != tc.ok {
				t.Fatalf("Expected ok=%t, got %t", tc.ok, ok)
			}
			if res != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, res)
			}
		})
	}
}

func TestReadingVoltage(t *testing.T) {
	testCases := []struct {
		dataType DataType
		raw      int32
		expected physic.ElectricPotential
		ok       bool
	}{
		{SingleEnded115MV, 1000000, physic.MicroVolt, true},
		{Differential2500MV, 100, physic.NanoVolt, true},
		{PT1000, 100, 0, false},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s raw %d", tc.dataType, tc.raw), func(t *testing.T) {
			r := Reading{Channel: Channel3, Type: tc.dataType, Raw: tc.raw}
			v, ok := r.Voltage()
			if ok != tc.ok {
				t.Fatalf("Expected ok=%t, got %t", tc.ok, ok)
			}
			if v != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, v)
			}
		})
	}
}

func TestReadingString(t *testing.T) {
	r := Reading{Channel: Channel1, Type: PT100, Raw: 25456}
	if expected := "channel 1: 25.456 °C"; r.String() != expected {
		t.Errorf("Expected %q, got %q", expected, r.String())
	}
	r = Reading{Channel: Channel2, Type: Off}
	if expected := "channel 2: off"; r.String() != expected {
		t.Errorf("Expected %q, got %q", expected, r.String())
	}
}
