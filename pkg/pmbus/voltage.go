// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import "context"

// Voltage-domain accessors. Every register in this group is encoded per the
// device's VOUT_MODE. The plain accessors read VOUT_MODE fresh on each call;
// the With variants take a pre-fetched mode and cost one transaction. VID
// code tables are device-specific, so VID mode (and Direct mode, which needs
// per-command coefficients) returns a ModeMismatchError here; use
// ReadValueDirect/WriteValueDirect for Direct-mode devices.

func decodeVoltage(raw uint16, mode VoutMode, accessor string) (float64, error) {
	switch mode.Kind() {
	case ModeLinear:
		exp, err := mode.Exponent()
		if err != nil {
			return 0, err
		}
		return DecodeULinear16(raw, exp), nil
	case ModeIEEEHalf:
		return DecodeIEEEHalf(raw), nil
	default:
		return 0, &ModeMismatchError{Accessor: accessor, Mode: mode.Kind()}
	}
}

func encodeVoltage(v float64, mode VoutMode, accessor string) (uint16, error) {
	switch mode.Kind() {
	case ModeLinear:
		exp, err := mode.Exponent()
		if err != nil {
			return 0, err
		}
		return EncodeULinear16(v, exp)
	case ModeIEEEHalf:
		return EncodeIEEEHalf(v)
	default:
		return 0, &ModeMismatchError{Accessor: accessor, Mode: mode.Kind()}
	}
}

// GetVoutMode reads and decodes VOUT_MODE (0x20).
func (a *Adapter) GetVoutMode(ctx context.Context, addr uint8) (VoutMode, error) {
	raw, err := a.readByteRaw(ctx, addr, CmdVoutMode)
	if err != nil {
		return VoutMode{}, err
	}
	return DecodeVoutMode(raw)
}

// SetVoutMode writes VOUT_MODE (0x20).
func (a *Adapter) SetVoutMode(ctx context.Context, addr uint8, mode VoutMode) error {
	return a.writeByteRaw(ctx, addr, CmdVoutMode, mode.Encode())
}

func (a *Adapter) readVoltage(ctx context.Context, addr uint8, cmd CommandCode) (float64, error) {
	mode, err := a.GetVoutMode(ctx, addr)
	if err != nil {
		return 0, err
	}
	return a.readVoltageWith(ctx, addr, cmd, mode)
}

func (a *Adapter) readVoltageWith(ctx context.Context, addr uint8, cmd CommandCode, mode VoutMode) (float64, error) {
	raw, err := a.readWordRaw(ctx, addr, cmd)
	if err != nil {
		return 0, err
	}
	return decodeVoltage(raw, mode, cmd.Name())
}

func (a *Adapter) writeVoltage(ctx context.Context, addr uint8, cmd CommandCode, v float64) error {
	mode, err := a.GetVoutMode(ctx, addr)
	if err != nil {
		return err
	}
	return a.writeVoltageWith(ctx, addr, cmd, v, mode)
}

func (a *Adapter) writeVoltageWith(ctx context.Context, addr uint8, cmd CommandCode, v float64, mode VoutMode) error {
	raw, err := encodeVoltage(v, mode, cmd.Name())
	if err != nil {
		return err
	}
	return a.writeWordRaw(ctx, addr, cmd, raw)
}

// READ_VOUT (0x8B).
func (a *Adapter) ReadVout(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdReadVout)
}

func (a *Adapter) ReadVoutWith(ctx context.Context, addr uint8, mode VoutMode) (float64, error) {
	return a.readVoltageWith(ctx, addr, CmdReadVout, mode)
}

// READ_VCAP (0x8A).
func (a *Adapter) ReadVcap(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdReadVcap)
}

func (a *Adapter) ReadVcapWith(ctx context.Context, addr uint8, mode VoutMode) (float64, error) {
	return a.readVoltageWith(ctx, addr, CmdReadVcap, mode)
}

// VOUT_COMMAND (0x21).
func (a *Adapter) GetVoutCommand(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdVoutCommand)
}

func (a *Adapter) GetVoutCommandWith(ctx context.Context, addr uint8, mode VoutMode) (float64, error) {
	return a.readVoltageWith(ctx, addr, CmdVoutCommand, mode)
}

func (a *Adapter) SetVoutCommand(ctx context.Context, addr uint8, v float64) error {
	return a.writeVoltage(ctx, addr, CmdVoutCommand, v)
}

func (a *Adapter) SetVoutCommandWith(ctx context.Context, addr uint8, v float64, mode VoutMode) error {
	return a.writeVoltageWith(ctx, addr, CmdVoutCommand, v, mode)
}

// VOUT_MAX (0x24).
func (a *Adapter) GetVoutMax(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdVoutMax)
}

func (a *Adapter) SetVoutMax(ctx context.Context, addr uint8, v float64) error {
	return a.writeVoltage(ctx, addr, CmdVoutMax, v)
}

// VOUT_MIN (0x2B).
func (a *Adapter) GetVoutMin(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdVoutMin)
}

func (a *Adapter) SetVoutMin(ctx context.Context, addr uint8, v float64) error {
	return a.writeVoltage(ctx, addr, CmdVoutMin, v)
}

// VOUT_MARGIN_HIGH (0x25) / VOUT_MARGIN_LOW (0x26).
func (a *Adapter) GetVoutMarginHigh(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdVoutMarginHigh)
}

func (a *Adapter) SetVoutMarginHigh(ctx context.Context, addr uint8, v float64) error {
	return a.writeVoltage(ctx, addr, CmdVoutMarginHigh, v)
}

func (a *Adapter) GetVoutMarginLow(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdVoutMarginLow)
}

func (a *Adapter) SetVoutMarginLow(ctx context.Context, addr uint8, v float64) error {
	return a.writeVoltage(ctx, addr, CmdVoutMarginLow, v)
}

// VOUT fault and warn limits (0x40, 0x42-0x44).
func (a *Adapter) GetVoutOvFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdVoutOvFaultLimit)
}

func (a *Adapter) SetVoutOvFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeVoltage(ctx, addr, CmdVoutOvFaultLimit, v)
}

func (a *Adapter) GetVoutOvWarnLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdVoutOvWarnLimit)
}

func (a *Adapter) SetVoutOvWarnLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeVoltage(ctx, addr, CmdVoutOvWarnLimit, v)
}

func (a *Adapter) GetVoutUvWarnLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdVoutUvWarnLimit)
}

func (a *Adapter) SetVoutUvWarnLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeVoltage(ctx, addr, CmdVoutUvWarnLimit, v)
}

func (a *Adapter) GetVoutUvFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdVoutUvFaultLimit)
}

func (a *Adapter) SetVoutUvFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeVoltage(ctx, addr, CmdVoutUvFaultLimit, v)
}

// POWER_GOOD_ON (0x5E) / POWER_GOOD_OFF (0x5F).
func (a *Adapter) GetPowerGoodOn(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdPowerGoodOn)
}

func (a *Adapter) SetPowerGoodOn(ctx context.Context, addr uint8, v float64) error {
	return a.writeVoltage(ctx, addr, CmdPowerGoodOn, v)
}

func (a *Adapter) GetPowerGoodOff(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdPowerGoodOff)
}

func (a *Adapter) SetPowerGoodOff(ctx context.Context, addr uint8, v float64) error {
	return a.writeVoltage(ctx, addr, CmdPowerGoodOff, v)
}

// MFR_VOUT_MIN (0xA4) / MFR_VOUT_MAX (0xA5).
func (a *Adapter) GetMfrVoutMin(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdMfrVoutMin)
}

func (a *Adapter) GetMfrVoutMax(ctx context.Context, addr uint8) (float64, error) {
	return a.readVoltage(ctx, addr, CmdMfrVoutMax)
}

// VOUT_TRIM (0x22) and VOUT_CAL_OFFSET (0x23) are device-relative offsets
// with no mode-independent interpretation, so they stay raw.
func (a *Adapter) GetVoutTrim(ctx context.Context, addr uint8) (uint16, error) {
	return a.readWordRaw(ctx, addr, CmdVoutTrim)
}

func (a *Adapter) SetVoutTrim(ctx context.Context, addr uint8, v uint16) error {
	return a.writeWordRaw(ctx, addr, CmdVoutTrim, v)
}

func (a *Adapter) GetVoutCalOffset(ctx context.Context, addr uint8) (uint16, error) {
	return a.readWordRaw(ctx, addr, CmdVoutCalOffset)
}

func (a *Adapter) SetVoutCalOffset(ctx context.Context, addr uint8, v uint16) error {
	return a.writeWordRaw(ctx, addr, CmdVoutCalOffset, v)
}
