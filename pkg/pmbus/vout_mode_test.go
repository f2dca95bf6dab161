// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import (
	"errors"
	"testing"
)

func TestDecodeVoutMode(t *testing.T) {
	tests := []struct {
		name string
		raw  uint8
		kind VoutModeKind
		exp  int8
	}{
		{"linear exp -12", 0x14, ModeLinear, -12},
		{"linear exp -9", 0x17, ModeLinear, -9},
		{"linear exp 0", 0x00, ModeLinear, 0},
		{"linear exp 15", 0x0F, ModeLinear, 15},
		{"linear exp -16", 0x10, ModeLinear, -16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := DecodeVoutMode(tt.raw)
			if err != nil {
				t.Fatalf("DecodeVoutMode(0x%02X) error: %v", tt.raw, err)
			}
			if mode.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", mode.Kind(), tt.kind)
			}
			exp, err := mode.Exponent()
			if err != nil {
				t.Fatalf("Exponent() error: %v", err)
			}
			if exp != tt.exp {
				t.Errorf("Exponent() = %d, want %d", exp, tt.exp)
			}
		})
	}
}

func TestDecodeVoutModeSelectors(t *testing.T) {
	mode, err := DecodeVoutMode(0x20 | 0x05)
	if err != nil {
		t.Fatalf("VID decode error: %v", err)
	}
	if mode.Kind() != ModeVID {
		t.Errorf("Kind() = %v, want VID", mode.Kind())
	}
	code, err := mode.VIDCode()
	if err != nil {
		t.Fatalf("VIDCode() error: %v", err)
	}
	if code != 5 {
		t.Errorf("VIDCode() = %d, want 5", code)
	}

	mode, err = DecodeVoutMode(0x40)
	if err != nil || mode.Kind() != ModeDirect {
		t.Errorf("DecodeVoutMode(0x40) = %v, %v, want Direct", mode.Kind(), err)
	}

	mode, err = DecodeVoutMode(0x60)
	if err != nil || mode.Kind() != ModeIEEEHalf {
		t.Errorf("DecodeVoutMode(0x60) = %v, %v, want IEEE half", mode.Kind(), err)
	}
}

func TestDecodeVoutModeReserved(t *testing.T) {
	// Every byte with a reserved selector must fail, regardless of the
	// parameter bits.
	for raw := 0x80; raw <= 0xFF; raw++ {
		_, err := DecodeVoutMode(uint8(raw))
		var ime *InvalidModeError
		if !errors.As(err, &ime) {
			t.Fatalf("DecodeVoutMode(0x%02X) error = %v, want InvalidModeError", raw, err)
		}
		if ime.Raw != uint8(raw) {
			t.Fatalf("InvalidModeError.Raw = 0x%02X, want 0x%02X", ime.Raw, raw)
		}
	}
}

func TestVoutModeEncodeRoundTrip(t *testing.T) {
	// All non-reserved bytes survive a decode/encode round trip.
	for raw := 0x00; raw <= 0x7F; raw++ {
		mode, err := DecodeVoutMode(uint8(raw))
		if err != nil {
			t.Fatalf("DecodeVoutMode(0x%02X) error: %v", raw, err)
		}
		if got := mode.Encode(); got != uint8(raw) {
			t.Fatalf("round trip 0x%02X -> 0x%02X", raw, got)
		}
	}
}

func TestVoutModeConstructors(t *testing.T) {
	if got := LinearMode(-9).Encode(); got != 0x17 {
		t.Errorf("LinearMode(-9).Encode() = 0x%02X, want 0x17", got)
	}
	if got := VIDMode(3).Encode(); got != 0x23 {
		t.Errorf("VIDMode(3).Encode() = 0x%02X, want 0x23", got)
	}
	if got := DirectMode().Encode(); got != 0x40 {
		t.Errorf("DirectMode().Encode() = 0x%02X, want 0x40", got)
	}
	if got := IEEEHalfMode().Encode(); got != 0x60 {
		t.Errorf("IEEEHalfMode().Encode() = 0x%02X, want 0x60", got)
	}
}

func TestVoutModeAccessorMismatch(t *testing.T) {
	var mme *ModeMismatchError

	_, err := DirectMode().Exponent()
	if !errors.As(err, &mme) {
		t.Errorf("Exponent() on Direct mode error = %v, want ModeMismatchError", err)
	}
	if mme.Mode != ModeDirect {
		t.Errorf("ModeMismatchError.Mode = %v, want Direct", mme.Mode)
	}

	_, err = LinearMode(-9).VIDCode()
	if !errors.As(err, &mme) {
		t.Errorf("VIDCode() on Linear mode error = %v, want ModeMismatchError", err)
	}
}
