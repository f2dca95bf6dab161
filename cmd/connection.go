// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 The OpenPMC Authors

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/openpmc/pmbusmon/pkg/pmbus"
	"github.com/openpmc/pmbusmon/pkg/smbus"
)

// BusConn is a bus executor the CLI can close when done.
type BusConn interface {
	pmbus.Bus
	Close() error
}

// GetPassword retrieves the WebSocket password from the PMBUSMON_PASSWORD
// environment variable, or prompts the user interactively.
func GetPassword() (string, error) {
	if password := os.Getenv("PMBUSMON_PASSWORD"); password != "" {
		return password, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		// Not a terminal, fall back to reading a line from stdin
		reader := bufio.NewReader(os.Stdin)
		line, readErr := reader.ReadString('\n')
		if readErr != nil {
			return "", fmt.Errorf("failed to read password: %w", readErr)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	return string(passwordBytes), nil
}

// OpenBus opens the bus executor selected by the connection flags.
// Returns the executor, a human-readable description, and any error.
func OpenBus() (BusConn, string, error) {
	switch {
	case i2cPath != "":
		dev, err := openI2C(i2cPath)
		if err != nil {
			return nil, "", err
		}
		return dev, fmt.Sprintf("i2c-dev %s", i2cPath), nil

	case portName != "":
		bridge, err := smbus.OpenSerialBridge(portName, baudRate)
		if err != nil {
			return nil, "", err
		}
		return bridge, fmt.Sprintf("serial %s @ %d baud", portName, baudRate), nil

	case wsURL != "":
		password := ""
		if wsUsername != "" {
			var err error
			password, err = GetPassword()
			if err != nil {
				return nil, "", err
			}
		}
		bridge, err := smbus.OpenWSBridge(wsURL, wsUsername, password, wsNoSSLVerify)
		if err != nil {
			return nil, "", err
		}
		return bridge, fmt.Sprintf("WebSocket %s", wsURL), nil

	default:
		return nil, "", fmt.Errorf("no connection specified: use --i2c, --port or --url")
	}
}

// parseAddr parses the --addr flag as a 7-bit device address. A bare hex
// value is accepted with or without the 0x prefix.
func parseAddr(s string) (uint8, error) {
	if s == "" {
		return 0, fmt.Errorf("no device address specified: use --addr (e.g. --addr 0x40)")
	}
	raw := strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(raw, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid device address %q: %w", s, err)
	}
	addr := uint8(v)
	if err := pmbus.ValidateAddress(addr); err != nil {
		return 0, err
	}
	return addr, nil
}

// openTarget resolves the connection and address flags into a ready adapter.
// The caller must Close the returned BusConn.
func openTarget() (*pmbus.Adapter, uint8, BusConn, string, error) {
	addr, err := parseAddr(devAddr)
	if err != nil {
		return nil, 0, nil, "", err
	}
	bus, connInfo, err := OpenBus()
	if err != nil {
		return nil, 0, nil, "", err
	}
	return pmbus.New(bus), addr, bus, connInfo, nil
}
