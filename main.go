// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 The OpenPMC Authors
//
// Pmbusmon - PMBus Power Device Monitor
//
// A CLI tool for reading, decoding and configuring PMBus power
// conversion devices over i2c-dev, a serial bridge or a WebSocket.

package main

import (
	"os"

	"github.com/openpmc/pmbusmon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
