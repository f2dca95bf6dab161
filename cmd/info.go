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

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show device identification and capabilities",
	Long: `Read the manufacturer identification blocks, the PMBus revision and
the CAPABILITY register. Blocks the device NACKs are skipped.`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	adapter, addr, conn, connInfo, err := openTarget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fmt.Printf("Pmbusmon - Device Info\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Device: 0x%02X\n\n", addr)

	blocks := []struct {
		code pmbus.CommandCode
		read func() ([]byte, error)
	}{
		{pmbus.CmdMfrId, func() ([]byte, error) { return adapter.GetMfrID(ctx, addr) }},
		{pmbus.CmdMfrModel, func() ([]byte, error) { return adapter.GetMfrModel(ctx, addr) }},
		{pmbus.CmdMfrRevision, func() ([]byte, error) { return adapter.GetMfrRevision(ctx, addr) }},
		{pmbus.CmdMfrLocation, func() ([]byte, error) { return adapter.GetMfrLocation(ctx, addr) }},
		{pmbus.CmdMfrDate, func() ([]byte, error) { return adapter.GetMfrDate(ctx, addr) }},
		{pmbus.CmdMfrSerial, func() ([]byte, error) { return adapter.GetMfrSerial(ctx, addr) }},
		{pmbus.CmdIcDeviceId, func() ([]byte, error) { return adapter.GetICDeviceID(ctx, addr) }},
		{pmbus.CmdIcDeviceRev, func() ([]byte, error) { return adapter.GetICDeviceRev(ctx, addr) }},
	}

	for _, b := range blocks {
		data, err := b.read()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		fmt.Printf("%-20s %s\n", b.code.Name(), pmbus.FormatBlock(data))
	}

	if rev, err := adapter.GetPmbusRevision(ctx, addr); err == nil {
		// Part I revision in the high nibble, Part II in the low.
		fmt.Printf("%-20s Part I 1.%d, Part II 1.%d\n", pmbus.CmdPmbusRevision.Name(), rev>>4, rev&0x0F)
	}
	if caps, err := adapter.GetCapability(ctx, addr); err == nil {
		fmt.Printf("%-20s 0x%02X%s%s%s\n", pmbus.CmdCapability.Name(), caps,
			flagIf(caps&0x80 != 0, " PEC"),
			flagIf(caps&0x10 != 0, " SMBALERT"),
			speedFlag(caps))
	}
	if mode, err := adapter.GetVoutMode(ctx, addr); err == nil {
		fmt.Printf("%-20s %s\n", pmbus.CmdVoutMode.Name(), mode)
	}
	return nil
}

func flagIf(set bool, label string) string {
	if set {
		return label
	}
	return ""
}

func speedFlag(caps uint8) string {
	switch (caps >> 5) & 0x03 {
	case 0:
		return " 100kHz"
	case 1:
		return " 400kHz"
	case 2:
		return " 1MHz"
	}
	return ""
}
