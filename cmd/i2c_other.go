// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 The OpenPMC Authors

//go:build !linux

package cmd

import "fmt"

func openI2C(path string) (BusConn, error) {
	return nil, fmt.Errorf("--i2c requires Linux i2c-dev support; use --port or --url instead")
}
