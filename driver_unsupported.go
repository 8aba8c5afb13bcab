// Copyright (c) 2018-2026 The usbpt104 developers. All rights reserved.
// Project site: https://github.com/gotmc/usbpt104
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

//go:build !linux && !darwin

package usbpt104

import (
	"fmt"
	"runtime"
)

// OpenDriver fails on platforms where the vendor library backend is not
// implemented.
func OpenDriver() (Driver, error) {
	return nil, fmt.Errorf("vendor driver not supported on %s: %w",
		runtime.GOOS, ErrLibraryNotFound)
}
