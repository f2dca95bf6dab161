// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 The OpenPMC Authors

package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/openpmc/pmbusmon/pkg/pmbus"
	"github.com/spf13/cobra"
)

var voltageCmd = &cobra.Command{
	Use:   "voltage",
	Short: "Show the output voltage setpoint, limits and live reading",
	RunE:  runVoltage,
}

var voltageSetCmd = &cobra.Command{
	Use:   "set <volts>",
	Short: "Set VOUT_COMMAND to the given voltage",
	Long: `Write a new output voltage setpoint.

The value is encoded with the device's reported VOUT_MODE. Values the
format cannot represent are rejected before anything is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runVoltageSet,
}

func init() {
	rootCmd.AddCommand(voltageCmd)
	voltageCmd.AddCommand(voltageSetCmd)
}

func runVoltage(cmd *cobra.Command, args []string) error {
	adapter, addr, conn, connInfo, err := openTarget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mode, err := adapter.GetVoutMode(ctx, addr)
	if err != nil {
		return fmt.Errorf("VOUT_MODE: %w", err)
	}

	fmt.Printf("Pmbusmon - Output Voltage\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Device: 0x%02X\n", addr)
	fmt.Printf("VOUT_MODE: %s\n\n", mode)

	rows := []struct {
		code pmbus.CommandCode
		read func() (float64, error)
	}{
		{pmbus.CmdReadVout, func() (float64, error) { return adapter.ReadVoutWith(ctx, addr, mode) }},
		{pmbus.CmdVoutCommand, func() (float64, error) { return adapter.GetVoutCommandWith(ctx, addr, mode) }},
		{pmbus.CmdVoutMax, func() (float64, error) { return adapter.ReadValueWith(ctx, addr, pmbus.CmdVoutMax, mode) }},
		{pmbus.CmdVoutMin, func() (float64, error) { return adapter.ReadValueWith(ctx, addr, pmbus.CmdVoutMin, mode) }},
		{pmbus.CmdVoutMarginHigh, func() (float64, error) { return adapter.ReadValueWith(ctx, addr, pmbus.CmdVoutMarginHigh, mode) }},
		{pmbus.CmdVoutMarginLow, func() (float64, error) { return adapter.ReadValueWith(ctx, addr, pmbus.CmdVoutMarginLow, mode) }},
		{pmbus.CmdVoutOvFaultLimit, func() (float64, error) { return adapter.ReadValueWith(ctx, addr, pmbus.CmdVoutOvFaultLimit, mode) }},
		{pmbus.CmdVoutOvWarnLimit, func() (float64, error) { return adapter.ReadValueWith(ctx, addr, pmbus.CmdVoutOvWarnLimit, mode) }},
		{pmbus.CmdVoutUvWarnLimit, func() (float64, error) { return adapter.ReadValueWith(ctx, addr, pmbus.CmdVoutUvWarnLimit, mode) }},
		{pmbus.CmdVoutUvFaultLimit, func() (float64, error) { return adapter.ReadValueWith(ctx, addr, pmbus.CmdVoutUvFaultLimit, mode) }},
	}

	for _, row := range rows {
		v, err := row.read()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		fmt.Printf("%-20s %s\n", row.code.Name(), pmbus.FormatValue(row.code, v))
	}
	return nil
}

func runVoltageSet(cmd *cobra.Command, args []string) error {
	volts, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid voltage %q: %w", args[0], err)
	}

	adapter, addr, conn, _, err := openTarget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := adapter.SetVoutCommand(ctx, addr, volts); err != nil {
		return fmt.Errorf("VOUT_COMMAND: %w", err)
	}

	// Read back through the same mode the device reports.
	readback, err := adapter.GetVoutCommand(ctx, addr)
	if err != nil {
		return fmt.Errorf("VOUT_COMMAND readback: %w", err)
	}
	fmt.Printf("Device 0x%02X VOUT_COMMAND set to %s\n", addr, pmbus.FormatValue(pmbus.CmdVoutCommand, readback))
	return nil
}
