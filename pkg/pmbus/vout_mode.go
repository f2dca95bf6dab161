// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import "fmt"

// VoutModeKind is the data format selector carried in the top three bits of
// the VOUT_MODE register. It governs how every voltage-domain register on
// the device is interpreted.
type VoutModeKind uint8

const (
	ModeLinear   VoutModeKind = 0b000 // ULINEAR16 with a shared exponent
	ModeVID      VoutModeKind = 0b001 // device-specific VID code table
	ModeDirect   VoutModeKind = 0b010 // per-command DIRECT coefficients
	ModeIEEEHalf VoutModeKind = 0b011 // IEEE 754 half precision
)

func (k VoutModeKind) String() string {
	switch k {
	case ModeLinear:
		return "Linear"
	case ModeVID:
		return "VID"
	case ModeDirect:
		return "Direct"
	case ModeIEEEHalf:
		return "IEEE754_HALF"
	}
	return fmt.Sprintf("VoutModeKind(0b%03b)", uint8(k))
}

// VoutMode is a decoded VOUT_MODE register. The five parameter bits hold a
// signed exponent in Linear mode and a VID code set identifier in VID mode;
// they carry no information in the other modes.
type VoutMode struct {
	kind  VoutModeKind
	param uint8 // raw low 5 bits
}

// DecodeVoutMode decodes a raw VOUT_MODE byte. Reserved mode selectors
// (0b100 through 0b111) are rejected with an InvalidModeError rather than
// mapped to a default; a device reporting one cannot be interpreted safely.
func DecodeVoutMode(raw uint8) (VoutMode, error) {
	kind := VoutModeKind(raw >> 5)
	if kind > ModeIEEEHalf {
		return VoutMode{}, &InvalidModeError{Raw: raw}
	}
	return VoutMode{kind: kind, param: raw & 0x1F}, nil
}

// Encode returns the wire byte for this mode. Encoding is total: every
// VoutMode constructed by this package has a valid representation.
func (m VoutMode) Encode() uint8 {
	return uint8(m.kind)<<5 | m.param&0x1F
}

// Kind returns the mode selector.
func (m VoutMode) Kind() VoutModeKind { return m.kind }

// LinearMode returns a Linear VOUT_MODE with the given exponent. Only the
// low five bits of the exponent are representable; exponents outside
// [-16, 15] are truncated to them.
func LinearMode(exp int8) VoutMode {
	return VoutMode{kind: ModeLinear, param: uint8(exp) & 0x1F}
}

// VIDMode returns a VID VOUT_MODE with the given code set identifier.
func VIDMode(code uint8) VoutMode {
	return VoutMode{kind: ModeVID, param: code & 0x1F}
}

// DirectMode returns a Direct VOUT_MODE.
func DirectMode() VoutMode { return VoutMode{kind: ModeDirect} }

// IEEEHalfMode returns an IEEE half precision VOUT_MODE.
func IEEEHalfMode() VoutMode { return VoutMode{kind: ModeIEEEHalf} }

// Exponent returns the sign-extended 5-bit exponent. Valid only in Linear
// mode; any other mode returns a ModeMismatchError.
func (m VoutMode) Exponent() (int8, error) {
	if m.kind != ModeLinear {
		return 0, &ModeMismatchError{Accessor: "Exponent", Mode: m.kind}
	}
	return int8(m.param) << 3 >> 3, nil
}

// VIDCode returns the VID code set identifier. Valid only in VID mode; any
// other mode returns a ModeMismatchError.
func (m VoutMode) VIDCode() (uint8, error) {
	if m.kind != ModeVID {
		return 0, &ModeMismatchError{Accessor: "VIDCode", Mode: m.kind}
	}
	return m.param, nil
}

func (m VoutMode) String() string {
	switch m.kind {
	case ModeLinear:
		exp, _ := m.Exponent()
		return fmt.Sprintf("Linear(exp=%d)", exp)
	case ModeVID:
		return fmt.Sprintf("VID(code=%d)", m.param)
	default:
		return m.kind.String()
	}
}
