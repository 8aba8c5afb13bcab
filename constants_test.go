// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package usbpt104

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestDataTypeJSON(t *testing.T) {
	testCases := []struct {
		given    string
		expected DataType
		valid    bool
	}{
		{`"off"`, Off, true},
		{`"pt100"`, PT100, true},
		{`"pt1000"`, PT1000, true},
		{`"375R"`, Resistance375R, true},
		{`"10K"`, Resistance10K, true},
		{`"single2500mv"`, SingleEnded2500MV, true},
		{`"bogus"`, Off, false},
		{`42`, Off, false},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("unmarshal %s", tc.given), func(t *testing.T) {
			var dt DataType
			err := json.Unmarshal([]byte(tc.given), &dt)
			if tc.valid && err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatal("Expected an error")
			}
			if tc.valid && dt != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, dt)
			}
		})
	}
	cfg := ChannelConfig{Type: PT100, Wires: Wires4}
	b, err := json.Marshal(&cfg)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	expected := `{"type":"pt100","wires":4,"low_pass_filter":false,"desc":""}`
	if string(b) != expected {
		t.Errorf("Expected %s, got %s", expected, b)
	}
}

func TestWiresJSON(t *testing.T) {
	testCases := []struct {
		given    string
		expected Wires
		valid    bool
	}{
		{`2`, Wires2, true},
		{`3`, Wires3, true},
		{`4`, Wires4, true},
		{`1`, 0, false},
		{`5`, 0, false},
		{`"four"`, 0, false},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("unmarshal %s", tc.given), func(t *testing.T) {
			var w Wires
			err := json.Unmarshal([]byte(tc.given), &w)
			if tc.valid && err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatal("Expected an error")
			}
			if tc.valid && w != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, w)
			}
		})
	}
}

func TestDataTypeUnit(t *testing.T) {
	testCases := []struct {
		dataType DataType
		unit     string
	}{
		{PT100, "°C"},
		{PT1000, "°C"},
		{Resistance375R, "mΩ"},
		{Resistance10K, "mΩ"},
		{SingleEnded115MV, "mV"},
		{Differential2500MV, "mV"},
		{Off, ""},
	}
	for _, tc := range testCases {
		if unit := tc.dataType.Unit(); unit != tc.unit {
			t.Errorf("Expected %q for %s, got %q", tc.unit, tc.dataType, unit)
		}
	}
}

func TestChannelString(t *testing.T) {
	if s := Channel3.String(); s != "channel 3" {
		t.Errorf("Expected %q, got %q", "channel 3", s)
	}
	if s := Wires3.String(); s != "3-wire" {
		t.Errorf("Expected %q, got %q", "3-wire", s)
	}
}
