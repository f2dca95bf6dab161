// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 The OpenPMC Authors

//go:build linux

package cmd

import "github.com/openpmc/pmbusmon/pkg/smbus"

func openI2C(path string) (BusConn, error) {
	return smbus.OpenI2CDev(path)
}
