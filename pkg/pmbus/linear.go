// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import (
	"math"

	"github.com/x448/float16"
)

// LINEAR11: 16-bit word holding a 5-bit signed exponent (bits 15:11) and an
// 11-bit signed mantissa (bits 10:0); value = mantissa * 2^exponent. Used by
// most telemetry and limit commands (current, power, temperature, time).

// DecodeLinear11 decodes a raw LINEAR11 word to its real value.
func DecodeLinear11(raw uint16) float64 {
	exp := int8(raw>>11) << 3 >> 3          // sign-extend 5 bits
	mant := int16(raw&0x07FF) << 5 >> 5     // sign-extend 11 bits
	return float64(mant) * math.Exp2(float64(exp))
}

// EncodeLinear11 encodes a real value as a LINEAR11 word, choosing the
// exponent that minimizes rounding error while keeping the mantissa within
// [-1024, 1023]. Returns a RangeError if no exponent in [-16, 15] can
// represent the value.
func EncodeLinear11(v float64) (uint16, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &RangeError{Format: "LINEAR11", Value: v}
	}
	if v == 0 {
		return 0, nil
	}

	found := false
	bestErr := math.MaxFloat64
	var bestExp int8
	var bestMant int16

	for exp := int8(-16); exp <= 15; exp++ {
		scaled := v / math.Exp2(float64(exp))
		mant := math.Round(scaled)
		if mant < -1024 || mant > 1023 {
			continue
		}
		err := math.Abs(v - mant*math.Exp2(float64(exp)))
		if err < bestErr {
			found = true
			bestErr = err
			bestExp = exp
			bestMant = int16(mant)
		}
	}

	if !found {
		return 0, &RangeError{Format: "LINEAR11", Value: v}
	}
	return uint16(bestExp&0x1F)<<11 | uint16(bestMant)&0x07FF, nil
}

// ULINEAR16: 16-bit unsigned mantissa; value = mantissa * 2^exponent. The
// exponent is never embedded in the word. It comes from VOUT_MODE and is
// supplied by the caller.

// DecodeULinear16 decodes a raw ULINEAR16 word using the given exponent.
func DecodeULinear16(raw uint16, exp int8) float64 {
	return float64(raw) * math.Exp2(float64(exp))
}

// EncodeULinear16 encodes a real value as a ULINEAR16 word at the given
// exponent. Returns a RangeError if the rounded mantissa does not fit in
// 16 unsigned bits, or the value is negative or not finite.
func EncodeULinear16(v float64, exp int8) (uint16, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, &RangeError{Format: "ULINEAR16", Value: v}
	}
	mant := math.Round(v / math.Exp2(float64(exp)))
	if mant > 0xFFFF {
		return 0, &RangeError{Format: "ULINEAR16", Value: v}
	}
	return uint16(mant), nil
}

// DIRECT: per-command affine transform with decimal scaling. The m, b and R
// constants are catalog data for a specific device; the wire format has no
// way to self-describe them, so the caller supplies them with every call
// (or reads them once via the COEFFICIENTS command).
type DirectCoefficients struct {
	M int16 // slope
	B int16 // offset
	R int8  // decimal exponent
}

// Decode converts a raw register word (interpreted as signed 16-bit) to its
// real value: X = (Y*10^-R - b) / m.
func (c DirectCoefficients) Decode(raw uint16) float64 {
	y := float64(int16(raw))
	return (y*math.Pow(10, float64(-c.R)) - float64(c.B)) / float64(c.M)
}

// Encode converts a real value to a raw register word: Y = (m*X + b)*10^R,
// rounded to the nearest integer. Returns a RangeError if Y exceeds the
// signed 16-bit range.
func (c DirectCoefficients) Encode(v float64) (uint16, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &RangeError{Format: "DIRECT", Value: v}
	}
	y := math.Round((float64(c.M)*v + float64(c.B)) * math.Pow(10, float64(c.R)))
	if y < math.MinInt16 || y > math.MaxInt16 {
		return 0, &RangeError{Format: "DIRECT", Value: v}
	}
	return uint16(int16(y)), nil
}

// ParseCoefficients parses the 5-byte COEFFICIENTS response
// [m_low, m_high, b_low, b_high, r].
func ParseCoefficients(data []byte) (DirectCoefficients, error) {
	if len(data) != 5 {
		return DirectCoefficients{}, &UnexpectedLengthError{Cmd: CmdCoefficients, Want: 5, Got: len(data)}
	}
	return DirectCoefficients{
		M: int16(uint16(data[0]) | uint16(data[1])<<8),
		B: int16(uint16(data[2]) | uint16(data[3])<<8),
		R: int8(data[4]),
	}, nil
}

// IEEE 754 half precision, used for voltage data when VOUT_MODE selects the
// IEEE-half format.

// DecodeIEEEHalf decodes a raw half-precision word to its real value.
func DecodeIEEEHalf(raw uint16) float64 {
	return float64(float16.Frombits(raw).Float32())
}

// EncodeIEEEHalf encodes a real value as a half-precision word. Returns a
// RangeError if the magnitude exceeds the largest finite half-precision
// value (65504) or the value is not finite.
func EncodeIEEEHalf(v float64) (uint16, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 65504 {
		return 0, &RangeError{Format: "IEEE754_HALF", Value: v}
	}
	return float16.Fromfloat32(float32(v)).Bits(), nil
}
