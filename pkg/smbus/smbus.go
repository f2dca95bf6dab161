// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

// Package smbus provides SMBus transaction executors: a Linux i2c-dev
// adapter, a UART-to-I2C bridge and a WebSocket tunnel to a remote bus.
// All of them implement the pmbus.Bus contract.
package smbus

import "github.com/openpmc/pmbusmon/pkg/pmbus"

// Longest payload an SMBus block transfer can carry.
const blockMax = 32

var (
	_ pmbus.Bus = (*SerialBridge)(nil)
	_ pmbus.Bus = (*WSBridge)(nil)
)
