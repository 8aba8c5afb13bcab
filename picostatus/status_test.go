// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package picostatus

import (
	"errors"
	"strings"
	"testing"
)

func TestErr(t *testing.T) {
	if err := OK.Err(); err != nil {
		t.Errorf("Expected nil for OK, got %v", err)
	}
	err := NotFound.Err()
	if err == nil {
		t.Fatal("Expected an error for NotFound")
	}
	if !errors.Is(err, NotFound) {
		t.Error("Expected the error to match NotFound")
	}
	if !strings.Contains(err.Error(), "unit not found") {
		t.Errorf("Expected the description in the message, got %q", err.Error())
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		status   Status
		expected string
	}{
		{OK, "no error"},
		{NoSamplesAvailable, "no samples available"},
		{InvalidHandle, "invalid handle"},
		{Status(0x9999), "unknown status 0x00009999"},
	}
	for _, tc := range testCases {
		if s := tc.status.String(); s != tc.expected {
			t.Errorf("Expected %q for 0x%02x, got %q", tc.expected, uint32(tc.status), s)
		}
	}
}
