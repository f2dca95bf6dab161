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

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Decode the device's status registers",
	Long: `Read STATUS_WORD and every detail status register the device supports
and print the decoded fault and warning bits.

Registers the device NACKs are skipped. Use "status clear" to issue
CLEAR_FAULTS.`,
	RunE: runStatus,
}

var statusClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Issue CLEAR_FAULTS to reset all latched status bits",
	RunE:  runStatusClear,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.AddCommand(statusClearCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	adapter, addr, conn, connInfo, err := openTarget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fmt.Printf("Pmbusmon - Status\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Device: 0x%02X\n\n", addr)

	word, err := adapter.GetStatusWord(ctx, addr)
	if err != nil {
		return fmt.Errorf("STATUS_WORD: %w", err)
	}
	fmt.Printf("%-20s 0x%04X  %s\n", "STATUS_WORD", uint16(word), word)

	// Detail registers, each guarded by its summary bit where one exists.
	type detail struct {
		code pmbus.CommandCode
		read func() (fmt.Stringer, uint8, error)
	}
	details := []detail{
		{pmbus.CmdStatusVout, func() (fmt.Stringer, uint8, error) {
			s, err := adapter.GetStatusVout(ctx, addr)
			return s, uint8(s), err
		}},
		{pmbus.CmdStatusIout, func() (fmt.Stringer, uint8, error) {
			s, err := adapter.GetStatusIout(ctx, addr)
			return s, uint8(s), err
		}},
		{pmbus.CmdStatusInput, func() (fmt.Stringer, uint8, error) {
			s, err := adapter.GetStatusInput(ctx, addr)
			return s, uint8(s), err
		}},
		{pmbus.CmdStatusTemperature, func() (fmt.Stringer, uint8, error) {
			s, err := adapter.GetStatusTemperature(ctx, addr)
			return s, uint8(s), err
		}},
		{pmbus.CmdStatusCml, func() (fmt.Stringer, uint8, error) {
			s, err := adapter.GetStatusCML(ctx, addr)
			return s, uint8(s), err
		}},
		{pmbus.CmdStatusOther, func() (fmt.Stringer, uint8, error) {
			s, err := adapter.GetStatusOther(ctx, addr)
			return s, uint8(s), err
		}},
		{pmbus.CmdStatusFans12, func() (fmt.Stringer, uint8, error) {
			s, err := adapter.GetStatusFans12(ctx, addr)
			return s, uint8(s), err
		}},
		{pmbus.CmdStatusFans34, func() (fmt.Stringer, uint8, error) {
			s, err := adapter.GetStatusFans34(ctx, addr)
			return s, uint8(s), err
		}},
	}

	for _, d := range details {
		s, raw, err := d.read()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		fmt.Printf("%-20s 0x%02X    %s\n", d.code.Name(), raw, s)
	}

	if raw, err := adapter.GetStatusMfrSpecific(ctx, addr); err == nil {
		fmt.Printf("%-20s 0x%02X\n", pmbus.CmdStatusMfrSpecific.Name(), raw)
	}
	return nil
}

func runStatusClear(cmd *cobra.Command, args []string) error {
	adapter, addr, conn, _, err := openTarget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := adapter.ClearFaults(ctx, addr); err != nil {
		return fmt.Errorf("CLEAR_FAULTS: %w", err)
	}
	fmt.Printf("Cleared faults on device 0x%02X\n", addr)
	return nil
}
