// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 The OpenPMC Authors

package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/openpmc/pmbusmon/pkg/pmbus"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <COMMAND>",
	Short: "Read any command register by name or code",
	Long: `Read a single command register and decode it per the command catalog.

The command may be given by PMBus name (e.g. READ_VOUT, IOUT_OC_FAULT_LIMIT)
or by hex code (e.g. 0x8B). Numeric registers are decoded; raw registers
are printed in hex, blocks as text or a hex dump.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

var setCmd = &cobra.Command{
	Use:   "set <COMMAND> <value>",
	Short: "Write any command register by name or code",
	Long: `Write a single command register.

Numeric registers take a decimal value and are encoded per the catalog
(LINEAR11, or the device's VOUT_MODE format). Raw byte and word registers
take an integer (0x prefix for hex). Block registers take the value as text.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var sendCmd = &cobra.Command{
	Use:   "send <COMMAND>",
	Short: "Issue a send-byte command (e.g. CLEAR_FAULTS)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSend,
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(sendCmd)
}

// findCommand resolves a command argument to a catalog entry. Names are
// matched case-insensitively; a hex code is accepted as well.
func findCommand(arg string) (pmbus.CommandCode, pmbus.CommandInfo, error) {
	if raw := strings.TrimPrefix(strings.ToLower(arg), "0x"); raw != strings.ToLower(arg) {
		v, err := strconv.ParseUint(raw, 16, 8)
		if err != nil {
			return 0, pmbus.CommandInfo{}, fmt.Errorf("invalid command code %q: %w", arg, err)
		}
		code := pmbus.CommandCode(v)
		info, ok := pmbus.Lookup(code)
		if !ok {
			return 0, pmbus.CommandInfo{}, fmt.Errorf("command code 0x%02X is not in the catalog", v)
		}
		return code, info, nil
	}

	name := strings.ToUpper(arg)
	for c := 0; c < 256; c++ {
		code := pmbus.CommandCode(c)
		if info, ok := pmbus.Lookup(code); ok && info.Name == name {
			return code, info, nil
		}
	}
	return 0, pmbus.CommandInfo{}, fmt.Errorf("unknown command %q", arg)
}

func runGet(cmd *cobra.Command, args []string) error {
	code, info, err := findCommand(args[0])
	if err != nil {
		return err
	}
	if info.Dir == pmbus.WriteOnly || info.Width == pmbus.WidthNone {
		return fmt.Errorf("%s is not readable", info.Name)
	}

	adapter, addr, conn, _, err := openTarget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch {
	case info.Codec == pmbus.CodecLinear11 || info.Codec == pmbus.CodecVoltage:
		v, err := adapter.ReadValue(ctx, addr, code)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", info.Name, pmbus.FormatValue(code, v))

	case info.Width == pmbus.WidthByte:
		v, err := adapter.RawReadByte(ctx, addr, uint8(code))
		if err != nil {
			return err
		}
		fmt.Printf("%s = 0x%02X\n", info.Name, v)

	case info.Width == pmbus.WidthWord:
		v, err := adapter.RawReadWord(ctx, addr, uint8(code))
		if err != nil {
			return err
		}
		fmt.Printf("%s = 0x%04X\n", info.Name, v)

	case info.Width == pmbus.WidthBlock:
		data, err := adapter.RawBlockRead(ctx, addr, uint8(code))
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", info.Name, pmbus.FormatBlock(data))

	default:
		return fmt.Errorf("%s: unsupported width", info.Name)
	}
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	code, info, err := findCommand(args[0])
	if err != nil {
		return err
	}
	if info.Dir == pmbus.ReadOnly {
		return fmt.Errorf("%s is read-only", info.Name)
	}

	adapter, addr, conn, _, err := openTarget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch {
	case info.Codec == pmbus.CodecLinear11 || info.Codec == pmbus.CodecVoltage:
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}
		if err := adapter.WriteValue(ctx, addr, code, v); err != nil {
			return err
		}
		fmt.Printf("%s set to %s\n", info.Name, pmbus.FormatValue(code, v))

	case info.Width == pmbus.WidthByte:
		v, err := strconv.ParseUint(args[1], 0, 8)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}
		if err := adapter.RawWriteByte(ctx, addr, uint8(code), uint8(v)); err != nil {
			return err
		}
		fmt.Printf("%s set to 0x%02X\n", info.Name, v)

	case info.Width == pmbus.WidthWord:
		v, err := strconv.ParseUint(args[1], 0, 16)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}
		if err := adapter.RawWriteWord(ctx, addr, uint8(code), uint16(v)); err != nil {
			return err
		}
		fmt.Printf("%s set to 0x%04X\n", info.Name, v)

	case info.Width == pmbus.WidthBlock:
		if err := adapter.RawBlockWrite(ctx, addr, uint8(code), []byte(args[1])); err != nil {
			return err
		}
		fmt.Printf("%s set to %q\n", info.Name, args[1])

	default:
		return fmt.Errorf("%s takes no data; use \"send\"", info.Name)
	}
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	code, info, err := findCommand(args[0])
	if err != nil {
		return err
	}
	if info.Width != pmbus.WidthNone {
		return fmt.Errorf("%s carries data; use \"get\" or \"set\"", info.Name)
	}

	adapter, addr, conn, _, err := openTarget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := adapter.RawSendByte(ctx, addr, uint8(code)); err != nil {
		return err
	}
	fmt.Printf("Sent %s to device 0x%02X\n", info.Name, addr)
	return nil
}
