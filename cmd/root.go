// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 The OpenPMC Authors

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Device address flag (shared by every command)
	devAddr string

	// Linux i2c-dev flags
	i2cPath string

	// Serial bridge flags
	portName string
	baudRate int

	// WebSocket bridge flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool
)

var rootCmd = &cobra.Command{
	Use:   "pmbusmon",
	Short: "PMBus Power Device Monitor",
	Long: `Pmbusmon - A CLI tool for reading, decoding and configuring PMBus
power conversion devices.

Provides commands for telemetry dumps, status decoding, output voltage
control and live monitoring.

Connection modes:
  i2c-dev:   --i2c /dev/i2c-1 (Linux only)
  Serial:    --port /dev/ttyUSB0 [--baud 115200] (SC18IM704 bridge)
  WebSocket: --url ws://host/path [--username user]

Every command targets a single device selected with --addr (7-bit hex
address, e.g. 0x40).

For WebSocket authentication, the password is read from the PMBUSMON_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell history.`,
	Version: "1.2.0",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&devAddr, "addr", "a", "", "Device address (7-bit hex, e.g. 0x40)")

	rootCmd.PersistentFlags().StringVar(&i2cPath, "i2c", "", "Linux i2c-dev adapter path")

	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port of the UART-to-I2C bridge")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (serial only)")

	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
