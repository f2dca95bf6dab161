// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import "fmt"

// Failure taxonomy. Transport errors from the Bus executor are never wrapped
// or interpreted here; they propagate to the caller unmodified. Everything
// this package detects itself is one of the types below.

// RangeError reports a value that cannot be represented in the target
// numeric format. Out-of-range encode targets are never clamped.
type RangeError struct {
	Format string  // "LINEAR11", "ULINEAR16", "DIRECT", "IEEE754_HALF"
	Value  float64 // the value that could not be encoded
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("pmbus: value %g not representable in %s", e.Value, e.Format)
}

// InvalidModeError reports a VOUT_MODE byte with a reserved mode selector.
type InvalidModeError struct {
	Raw uint8
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("pmbus: VOUT_MODE byte 0x%02X selects a reserved mode", e.Raw)
}

// ModeMismatchError reports use of an accessor that is not valid for the
// active VOUT_MODE, instead of silently returning a stale or wrong value.
type ModeMismatchError struct {
	Accessor string
	Mode     VoutModeKind
}

func (e *ModeMismatchError) Error() string {
	return fmt.Sprintf("pmbus: %s not valid in VOUT_MODE %s", e.Accessor, e.Mode)
}

// UnexpectedLengthError reports a response whose width does not match the
// command's transaction shape.
type UnexpectedLengthError struct {
	Cmd  CommandCode
	Want int
	Got  int
}

func (e *UnexpectedLengthError) Error() string {
	return fmt.Sprintf("pmbus: %s (0x%02X): expected %d byte response, got %d",
		e.Cmd.Name(), uint8(e.Cmd), e.Want, e.Got)
}

// AddressError reports a device address outside the usable 7-bit range.
type AddressError struct {
	Addr uint8
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("pmbus: invalid device address 0x%02X (7-bit, reserved ranges excluded)", e.Addr)
}

// CommandError reports misuse of the generic catalog-driven accessors:
// unknown command code, wrong direction, or wrong width for the operation.
type CommandError struct {
	Cmd    CommandCode
	Reason string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("pmbus: %s (0x%02X): %s", e.Cmd.Name(), uint8(e.Cmd), e.Reason)
}
