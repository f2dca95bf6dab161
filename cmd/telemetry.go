// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 The OpenPMC Authors

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/openpmc/pmbusmon/pkg/pmbus"
	"github.com/spf13/cobra"
)

var telemetryTimeout int

// telemetryCommands are the READ_* registers polled for a dump, in
// command code order. Unsupported registers are skipped: PMBus devices
// NACK commands they do not implement.
var telemetryCommands = []pmbus.CommandCode{
	pmbus.CmdReadVin,
	pmbus.CmdReadIin,
	pmbus.CmdReadVcap,
	pmbus.CmdReadVout,
	pmbus.CmdReadIout,
	pmbus.CmdReadTemperature1,
	pmbus.CmdReadTemperature2,
	pmbus.CmdReadTemperature3,
	pmbus.CmdReadFanSpeed1,
	pmbus.CmdReadFanSpeed2,
	pmbus.CmdReadFanSpeed3,
	pmbus.CmdReadFanSpeed4,
	pmbus.CmdReadDutyCycle,
	pmbus.CmdReadFrequency,
	pmbus.CmdReadPout,
	pmbus.CmdReadPin,
}

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Dump all telemetry registers the device supports",
	Long: `Read every READ_* telemetry register once and print the decoded values.

VOUT_MODE is read first so output voltage registers can be decoded with
the device's reported format. Registers the device NACKs are skipped.`,
	RunE: runTelemetry,
}

func init() {
	rootCmd.AddCommand(telemetryCmd)
	telemetryCmd.Flags().IntVar(&telemetryTimeout, "timeout", 10, "Timeout in seconds for the whole dump")
}

func runTelemetry(cmd *cobra.Command, args []string) error {
	adapter, addr, conn, connInfo, err := openTarget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(telemetryTimeout)*time.Second)
	defer cancel()

	fmt.Printf("Pmbusmon - Telemetry Dump\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Device: 0x%02X\n", addr)

	mode, modeErr := adapter.GetVoutMode(ctx, addr)
	if modeErr != nil {
		fmt.Printf("VOUT_MODE: unavailable (%v), voltage registers skipped\n\n", modeErr)
	} else {
		fmt.Printf("VOUT_MODE: %s\n\n", mode)
	}

	shown := 0
	for _, code := range telemetryCommands {
		info, _ := pmbus.Lookup(code)

		var v float64
		var readErr error
		switch info.Codec {
		case pmbus.CodecVoltage:
			if modeErr != nil {
				continue
			}
			v, readErr = adapter.ReadValueWith(ctx, addr, code, mode)
		default:
			v, readErr = adapter.ReadValue(ctx, addr, code)
		}
		if readErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		fmt.Printf("%-20s %s\n", code.Name(), pmbus.FormatValue(code, v))
		shown++
	}

	// Energy counters are raw blocks, shown undecoded.
	for _, code := range []pmbus.CommandCode{pmbus.CmdReadEin, pmbus.CmdReadEout} {
		data, readErr := adapter.RawBlockRead(ctx, addr, uint8(code))
		if readErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		fmt.Printf("%-20s %s\n", code.Name(), pmbus.FormatBlock(data))
		shown++
	}

	if shown == 0 {
		return fmt.Errorf("device 0x%02X answered no telemetry registers", addr)
	}
	return nil
}
