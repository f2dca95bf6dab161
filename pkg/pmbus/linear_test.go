// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import (
	"errors"
	"math"
	"testing"
)

func TestDecodeLinear11(t *testing.T) {
	tests := []struct {
		name string
		raw  uint16
		want float64
	}{
		{"zero", 0x0000, 0},
		{"tps546 52V margin", 0xF0D0, 52.0},
		{"tps546 52V alt exponent", 0xE340, 52.0},
		{"tps546 0.5A", 0xC840, 0.5},
		{"exp -6 mant 28", 0xD01C, 0.4375},
		{"exp -5 mant 540", 0xDA1C, 16.875},
		{"max positive", 0x7BFF, 1023 * 32768.0},
		{"min negative", 0x7C00, -1024 * 32768.0},
		{"negative mantissa", 0x07FF, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeLinear11(tt.raw)
			if got != tt.want {
				t.Errorf("DecodeLinear11(0x%04X) = %g, want %g", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEncodeLinear11(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want uint16
	}{
		{"zero", 0, 0x0000},
		{"tps546 52V", 52.0, 0xE340},
		{"half amp", 0.5, 0xB200},
		{"max positive", 1023 * 32768.0, 0x7BFF},
		{"min negative", -1024 * 32768.0, 0x7C00},
		{"one", 1.0, 0xBA00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeLinear11(tt.v)
			if err != nil {
				t.Fatalf("EncodeLinear11(%g) error: %v", tt.v, err)
			}
			if got != tt.want {
				t.Errorf("EncodeLinear11(%g) = 0x%04X, want 0x%04X", tt.v, got, tt.want)
			}
		})
	}
}

func TestEncodeLinear11OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"beyond max", 1024 * 32768.0},
		{"beyond min", -1025 * 32768.0},
		{"nan", math.NaN()},
		{"pos inf", math.Inf(1)},
		{"neg inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeLinear11(tt.v)
			var re *RangeError
			if !errors.As(err, &re) {
				t.Errorf("EncodeLinear11(%g) error = %v, want RangeError", tt.v, err)
			}
		})
	}
}

func TestLinear11RoundTripPrecision(t *testing.T) {
	// Encoding picks the exponent with the least rounding error, so a
	// round trip must land within half an LSB of the chosen exponent.
	values := []float64{0.001, 0.0625, 1.5, 3.3, 12.0, 48.5, 240.0, 1000.25, -7.25, -300.0}
	for _, v := range values {
		raw, err := EncodeLinear11(v)
		if err != nil {
			t.Fatalf("EncodeLinear11(%g) error: %v", v, err)
		}
		got := DecodeLinear11(raw)
		exp := float64(int8(raw>>11) << 3 >> 3)
		lsb := math.Exp2(exp)
		if math.Abs(got-v) > lsb/2 {
			t.Errorf("round trip %g -> 0x%04X -> %g, off by more than half LSB %g", v, raw, got, lsb)
		}
	}
}

func TestULinear16(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		exp  int8
		want uint16
	}{
		{"0.3V at -12", 0.300, -12, 1229},
		{"0.2V at -12", 0.200, -12, 0x333},
		{"0.294V at -12", 0.294, -12, 0x4B4},
		{"0.7V at -12", 0.700, -12, 2867},
		{"1V at -13", 1.0, -13, 0x2000},
		{"zero", 0, -9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeULinear16(tt.v, tt.exp)
			if err != nil {
				t.Fatalf("EncodeULinear16(%g, %d) error: %v", tt.v, tt.exp, err)
			}
			if got != tt.want {
				t.Errorf("EncodeULinear16(%g, %d) = %d, want %d", tt.v, tt.exp, got, tt.want)
			}
		})
	}
}

func TestDecodeULinear16(t *testing.T) {
	if got := DecodeULinear16(0x1234, -9); got != 4660*math.Exp2(-9) {
		t.Errorf("DecodeULinear16(0x1234, -9) = %g", got)
	}
	if got := DecodeULinear16(0x2000, -13); got != 1.0 {
		t.Errorf("DecodeULinear16(0x2000, -13) = %g, want 1", got)
	}
}

func TestEncodeULinear16OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		exp  int8
	}{
		{"negative", -0.1, -12},
		{"overflow", 17.0, -12},
		{"nan", math.NaN(), -12},
		{"inf", math.Inf(1), -12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeULinear16(tt.v, tt.exp)
			var re *RangeError
			if !errors.As(err, &re) {
				t.Errorf("EncodeULinear16(%g, %d) error = %v, want RangeError", tt.v, tt.exp, err)
			}
		})
	}
}

func TestDirectCoefficients(t *testing.T) {
	c := DirectCoefficients{M: 1, B: 0, R: 2}

	raw, err := c.Encode(1.234)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if raw != 123 {
		t.Errorf("Encode(1.234) = %d, want 123", raw)
	}
	if got := c.Decode(123); got != 1.23 {
		t.Errorf("Decode(123) = %g, want 1.23", got)
	}

	// Negative values take the signed interpretation of the raw word.
	neg := DirectCoefficients{M: 2, B: -10, R: 0}
	raw, err = neg.Encode(-20)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if int16(raw) != -50 {
		t.Errorf("Encode(-20) = %d, want -50", int16(raw))
	}
	if got := neg.Decode(raw); got != -20 {
		t.Errorf("Decode(%d) = %g, want -20", int16(raw), got)
	}
}

func TestDirectEncodeRounding(t *testing.T) {
	// Halfway cases round away from zero.
	c := DirectCoefficients{M: 1, B: 0, R: 1}
	raw, err := c.Encode(1.25)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if raw != 13 {
		t.Errorf("Encode(1.25) = %d, want 13", raw)
	}
	raw, err = c.Encode(-1.25)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if int16(raw) != -13 {
		t.Errorf("Encode(-1.25) = %d, want -13", int16(raw))
	}
}

func TestDirectEncodeOutOfRange(t *testing.T) {
	c := DirectCoefficients{M: 1, B: 0, R: 3}
	if _, err := c.Encode(40); err == nil {
		t.Error("Encode(40) with R=3 expected RangeError, got nil")
	}
	var re *RangeError
	_, err := c.Encode(math.NaN())
	if !errors.As(err, &re) {
		t.Errorf("Encode(NaN) error = %v, want RangeError", err)
	}
}

func TestParseCoefficients(t *testing.T) {
	c, err := ParseCoefficients([]byte{0x10, 0x00, 0xFE, 0xFF, 0x02})
	if err != nil {
		t.Fatalf("ParseCoefficients error: %v", err)
	}
	if c.M != 16 || c.B != -2 || c.R != 2 {
		t.Errorf("ParseCoefficients = %+v, want M=16 B=-2 R=2", c)
	}

	_, err = ParseCoefficients([]byte{0x10, 0x00, 0xFE})
	var le *UnexpectedLengthError
	if !errors.As(err, &le) {
		t.Errorf("short input error = %v, want UnexpectedLengthError", err)
	}
}

func TestIEEEHalf(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		raw  uint16
	}{
		{"one", 1.0, 0x3C00},
		{"zero", 0.0, 0x0000},
		{"half", 0.5, 0x3800},
		{"twelve", 12.0, 0x4A00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := EncodeIEEEHalf(tt.v)
			if err != nil {
				t.Fatalf("EncodeIEEEHalf(%g) error: %v", tt.v, err)
			}
			if raw != tt.raw {
				t.Errorf("EncodeIEEEHalf(%g) = 0x%04X, want 0x%04X", tt.v, raw, tt.raw)
			}
			if got := DecodeIEEEHalf(tt.raw); got != tt.v {
				t.Errorf("DecodeIEEEHalf(0x%04X) = %g, want %g", tt.raw, got, tt.v)
			}
		})
	}
}

func TestEncodeIEEEHalfOutOfRange(t *testing.T) {
	for _, v := range []float64{70000, -70000, math.NaN(), math.Inf(1)} {
		var re *RangeError
		_, err := EncodeIEEEHalf(v)
		if !errors.As(err, &re) {
			t.Errorf("EncodeIEEEHalf(%g) error = %v, want RangeError", v, err)
		}
	}
	if _, err := EncodeIEEEHalf(65504); err != nil {
		t.Errorf("EncodeIEEEHalf(65504) error: %v, want nil", err)
	}
}
