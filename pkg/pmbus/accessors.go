// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import "context"

// Typed accessors for the standard command set, one pair per register.
// Linear11-coded words take and return real values; configuration bytes and
// device-specific words stay raw. Voltage-domain registers live in
// voltage.go.

// Send-byte commands.

func (a *Adapter) ClearFaults(ctx context.Context, addr uint8) error {
	return a.sendByte(ctx, addr, CmdClearFaults)
}

func (a *Adapter) StoreDefaultAll(ctx context.Context, addr uint8) error {
	return a.sendByte(ctx, addr, CmdStoreDefaultAll)
}

func (a *Adapter) RestoreDefaultAll(ctx context.Context, addr uint8) error {
	return a.sendByte(ctx, addr, CmdRestoreDefaultAll)
}

func (a *Adapter) StoreUserAll(ctx context.Context, addr uint8) error {
	return a.sendByte(ctx, addr, CmdStoreUserAll)
}

func (a *Adapter) RestoreUserAll(ctx context.Context, addr uint8) error {
	return a.sendByte(ctx, addr, CmdRestoreUserAll)
}

// Byte read/write registers.

func (a *Adapter) GetPage(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdPage)
}

func (a *Adapter) SetPage(ctx context.Context, addr uint8, page uint8) error {
	return a.writeByteRaw(ctx, addr, CmdPage, page)
}

func (a *Adapter) GetOperation(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdOperation)
}

func (a *Adapter) SetOperation(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdOperation, v)
}

func (a *Adapter) GetOnOffConfig(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdOnOffConfig)
}

func (a *Adapter) SetOnOffConfig(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdOnOffConfig, v)
}

func (a *Adapter) GetPhase(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdPhase)
}

func (a *Adapter) SetPhase(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdPhase, v)
}

func (a *Adapter) GetWriteProtect(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdWriteProtect)
}

func (a *Adapter) SetWriteProtect(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdWriteProtect, v)
}

func (a *Adapter) GetPowerMode(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdPowerMode)
}

func (a *Adapter) SetPowerMode(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdPowerMode, v)
}

func (a *Adapter) GetFanConfig12(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdFanConfig12)
}

func (a *Adapter) SetFanConfig12(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdFanConfig12, v)
}

func (a *Adapter) GetFanConfig34(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdFanConfig34)
}

func (a *Adapter) SetFanConfig34(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdFanConfig34, v)
}

// Fault response registers, one byte each.

func (a *Adapter) GetVoutOvFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdVoutOvFaultResponse)
}

func (a *Adapter) SetVoutOvFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdVoutOvFaultResponse, v)
}

func (a *Adapter) GetVoutUvFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdVoutUvFaultResponse)
}

func (a *Adapter) SetVoutUvFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdVoutUvFaultResponse, v)
}

func (a *Adapter) GetIoutOcFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdIoutOcFaultResponse)
}

func (a *Adapter) SetIoutOcFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdIoutOcFaultResponse, v)
}

func (a *Adapter) GetIoutOcLvFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdIoutOcLvFaultResponse)
}

func (a *Adapter) SetIoutOcLvFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdIoutOcLvFaultResponse, v)
}

func (a *Adapter) GetIoutUcFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdIoutUcFaultResponse)
}

func (a *Adapter) SetIoutUcFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdIoutUcFaultResponse, v)
}

func (a *Adapter) GetOtFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdOtFaultResponse)
}

func (a *Adapter) SetOtFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdOtFaultResponse, v)
}

func (a *Adapter) GetUtFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdUtFaultResponse)
}

func (a *Adapter) SetUtFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdUtFaultResponse, v)
}

func (a *Adapter) GetVinOvFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdVinOvFaultResponse)
}

func (a *Adapter) SetVinOvFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdVinOvFaultResponse, v)
}

func (a *Adapter) GetVinUvFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdVinUvFaultResponse)
}

func (a *Adapter) SetVinUvFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdVinUvFaultResponse, v)
}

func (a *Adapter) GetIinOcFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdIinOcFaultResponse)
}

func (a *Adapter) SetIinOcFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdIinOcFaultResponse, v)
}

func (a *Adapter) GetTonMaxFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdTonMaxFaultResponse)
}

func (a *Adapter) SetTonMaxFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdTonMaxFaultResponse, v)
}

func (a *Adapter) GetPoutOpFaultResponse(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdPoutOpFaultResponse)
}

func (a *Adapter) SetPoutOpFaultResponse(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdPoutOpFaultResponse, v)
}

// Write-only byte commands.

func (a *Adapter) StoreDefaultCode(ctx context.Context, addr uint8, code uint8) error {
	return a.writeByteRaw(ctx, addr, CmdStoreDefaultCode, code)
}

func (a *Adapter) RestoreDefaultCode(ctx context.Context, addr uint8, code uint8) error {
	return a.writeByteRaw(ctx, addr, CmdRestoreDefaultCode, code)
}

func (a *Adapter) StoreUserCode(ctx context.Context, addr uint8, code uint8) error {
	return a.writeByteRaw(ctx, addr, CmdStoreUserCode, code)
}

func (a *Adapter) RestoreUserCode(ctx context.Context, addr uint8, code uint8) error {
	return a.writeByteRaw(ctx, addr, CmdRestoreUserCode, code)
}

// Read-only byte registers.

func (a *Adapter) GetCapability(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdCapability)
}

func (a *Adapter) GetPmbusRevision(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdPmbusRevision)
}

func (a *Adapter) GetMfrPinAccuracy(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdMfrPinAccuracy)
}

// Linear11 read/write limits and settings.

func (a *Adapter) GetVoutTransitionRate(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdVoutTransitionRate)
}

func (a *Adapter) SetVoutTransitionRate(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdVoutTransitionRate, v)
}

func (a *Adapter) GetVoutDroop(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdVoutDroop)
}

func (a *Adapter) SetVoutDroop(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdVoutDroop, v)
}

func (a *Adapter) GetVoutScaleLoop(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdVoutScaleLoop)
}

func (a *Adapter) SetVoutScaleLoop(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdVoutScaleLoop, v)
}

func (a *Adapter) GetVoutScaleMonitor(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdVoutScaleMonitor)
}

func (a *Adapter) SetVoutScaleMonitor(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdVoutScaleMonitor, v)
}

func (a *Adapter) GetPoutMax(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdPoutMax)
}

func (a *Adapter) SetPoutMax(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdPoutMax, v)
}

func (a *Adapter) GetMaxDuty(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMaxDuty)
}

func (a *Adapter) SetMaxDuty(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdMaxDuty, v)
}

func (a *Adapter) GetFrequencySwitch(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdFrequencySwitch)
}

func (a *Adapter) SetFrequencySwitch(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdFrequencySwitch, v)
}

func (a *Adapter) GetVinOn(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdVinOn)
}

func (a *Adapter) SetVinOn(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdVinOn, v)
}

func (a *Adapter) GetVinOff(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdVinOff)
}

func (a *Adapter) SetVinOff(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdVinOff, v)
}

func (a *Adapter) GetIoutCalGain(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdIoutCalGain)
}

func (a *Adapter) SetIoutCalGain(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdIoutCalGain, v)
}

func (a *Adapter) GetIoutCalOffset(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdIoutCalOffset)
}

func (a *Adapter) SetIoutCalOffset(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdIoutCalOffset, v)
}

func (a *Adapter) GetFanCommand1(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdFanCommand1)
}

func (a *Adapter) SetFanCommand1(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdFanCommand1, v)
}

func (a *Adapter) GetFanCommand2(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdFanCommand2)
}

func (a *Adapter) SetFanCommand2(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdFanCommand2, v)
}

func (a *Adapter) GetFanCommand3(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdFanCommand3)
}

func (a *Adapter) SetFanCommand3(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdFanCommand3, v)
}

func (a *Adapter) GetFanCommand4(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdFanCommand4)
}

func (a *Adapter) SetFanCommand4(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdFanCommand4, v)
}

func (a *Adapter) GetIoutOcFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdIoutOcFaultLimit)
}

func (a *Adapter) SetIoutOcFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdIoutOcFaultLimit, v)
}

func (a *Adapter) GetIoutOcLvFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdIoutOcLvFaultLimit)
}

func (a *Adapter) SetIoutOcLvFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdIoutOcLvFaultLimit, v)
}

func (a *Adapter) GetIoutOcWarnLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdIoutOcWarnLimit)
}

func (a *Adapter) SetIoutOcWarnLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdIoutOcWarnLimit, v)
}

func (a *Adapter) GetIoutUcFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdIoutUcFaultLimit)
}

func (a *Adapter) SetIoutUcFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdIoutUcFaultLimit, v)
}

func (a *Adapter) GetOtFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdOtFaultLimit)
}

func (a *Adapter) SetOtFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdOtFaultLimit, v)
}

func (a *Adapter) GetOtWarnLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdOtWarnLimit)
}

func (a *Adapter) SetOtWarnLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdOtWarnLimit, v)
}

func (a *Adapter) GetUtWarnLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdUtWarnLimit)
}

func (a *Adapter) SetUtWarnLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdUtWarnLimit, v)
}

func (a *Adapter) GetUtFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdUtFaultLimit)
}

func (a *Adapter) SetUtFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdUtFaultLimit, v)
}

func (a *Adapter) GetVinOvFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdVinOvFaultLimit)
}

func (a *Adapter) SetVinOvFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdVinOvFaultLimit, v)
}

func (a *Adapter) GetVinOvWarnLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdVinOvWarnLimit)
}

func (a *Adapter) SetVinOvWarnLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdVinOvWarnLimit, v)
}

func (a *Adapter) GetVinUvWarnLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdVinUvWarnLimit)
}

func (a *Adapter) SetVinUvWarnLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdVinUvWarnLimit, v)
}

func (a *Adapter) GetVinUvFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdVinUvFaultLimit)
}

func (a *Adapter) SetVinUvFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdVinUvFaultLimit, v)
}

func (a *Adapter) GetIinOcFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdIinOcFaultLimit)
}

func (a *Adapter) SetIinOcFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdIinOcFaultLimit, v)
}

func (a *Adapter) GetIinOcWarnLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdIinOcWarnLimit)
}

func (a *Adapter) SetIinOcWarnLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdIinOcWarnLimit, v)
}

func (a *Adapter) GetTonDelay(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdTonDelay)
}

func (a *Adapter) SetTonDelay(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdTonDelay, v)
}

func (a *Adapter) GetTonRise(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdTonRise)
}

func (a *Adapter) SetTonRise(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdTonRise, v)
}

func (a *Adapter) GetTonMaxFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdTonMaxFaultLimit)
}

func (a *Adapter) SetTonMaxFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdTonMaxFaultLimit, v)
}

func (a *Adapter) GetToffDelay(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdToffDelay)
}

func (a *Adapter) SetToffDelay(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdToffDelay, v)
}

func (a *Adapter) GetToffFall(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdToffFall)
}

func (a *Adapter) SetToffFall(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdToffFall, v)
}

func (a *Adapter) GetToffMaxWarnLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdToffMaxWarnLimit)
}

func (a *Adapter) SetToffMaxWarnLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdToffMaxWarnLimit, v)
}

func (a *Adapter) GetPoutOpFaultLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdPoutOpFaultLimit)
}

func (a *Adapter) SetPoutOpFaultLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdPoutOpFaultLimit, v)
}

func (a *Adapter) GetPoutOpWarnLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdPoutOpWarnLimit)
}

func (a *Adapter) SetPoutOpWarnLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdPoutOpWarnLimit, v)
}

func (a *Adapter) GetPinOpWarnLimit(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdPinOpWarnLimit)
}

func (a *Adapter) SetPinOpWarnLimit(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdPinOpWarnLimit, v)
}

// Manufacturer rating words (Linear11).

func (a *Adapter) GetMfrVinMin(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMfrVinMin)
}

func (a *Adapter) GetMfrVinMax(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMfrVinMax)
}

func (a *Adapter) GetMfrIinMax(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMfrIinMax)
}

func (a *Adapter) GetMfrPinMax(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMfrPinMax)
}

func (a *Adapter) GetMfrIoutMax(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMfrIoutMax)
}

func (a *Adapter) GetMfrPoutMax(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMfrPoutMax)
}

func (a *Adapter) GetMfrTambientMax(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMfrTambientMax)
}

func (a *Adapter) GetMfrTambientMin(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMfrTambientMin)
}

func (a *Adapter) GetMfrMaxTemp1(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMfrMaxTemp1)
}

func (a *Adapter) SetMfrMaxTemp1(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdMfrMaxTemp1, v)
}

func (a *Adapter) GetMfrMaxTemp2(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMfrMaxTemp2)
}

func (a *Adapter) SetMfrMaxTemp2(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdMfrMaxTemp2, v)
}

func (a *Adapter) GetMfrMaxTemp3(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdMfrMaxTemp3)
}

func (a *Adapter) SetMfrMaxTemp3(ctx context.Context, addr uint8, v float64) error {
	return a.writeLinear11(ctx, addr, CmdMfrMaxTemp3, v)
}

// Raw word registers with device-specific layouts.

func (a *Adapter) GetInterleave(ctx context.Context, addr uint8) (uint16, error) {
	return a.readWordRaw(ctx, addr, CmdInterleave)
}

func (a *Adapter) SetInterleave(ctx context.Context, addr uint8, v uint16) error {
	return a.writeWordRaw(ctx, addr, CmdInterleave, v)
}

func (a *Adapter) GetZoneConfig(ctx context.Context, addr uint8) (uint16, error) {
	return a.readWordRaw(ctx, addr, CmdZoneConfig)
}

func (a *Adapter) SetZoneConfig(ctx context.Context, addr uint8, v uint16) error {
	return a.writeWordRaw(ctx, addr, CmdZoneConfig, v)
}

func (a *Adapter) GetZoneActive(ctx context.Context, addr uint8) (uint16, error) {
	return a.readWordRaw(ctx, addr, CmdZoneActive)
}

func (a *Adapter) SetZoneActive(ctx context.Context, addr uint8, v uint16) error {
	return a.writeWordRaw(ctx, addr, CmdZoneActive, v)
}

func (a *Adapter) GetReadKwhConfig(ctx context.Context, addr uint8) (uint16, error) {
	return a.readWordRaw(ctx, addr, CmdReadKwhConfig)
}

func (a *Adapter) SetReadKwhConfig(ctx context.Context, addr uint8, v uint16) error {
	return a.writeWordRaw(ctx, addr, CmdReadKwhConfig, v)
}

// Telemetry reads (Linear11).

func (a *Adapter) ReadVin(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadVin)
}

func (a *Adapter) ReadIin(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadIin)
}

func (a *Adapter) ReadIout(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadIout)
}

func (a *Adapter) ReadTemperature1(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadTemperature1)
}

func (a *Adapter) ReadTemperature2(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadTemperature2)
}

func (a *Adapter) ReadTemperature3(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadTemperature3)
}

func (a *Adapter) ReadFanSpeed1(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadFanSpeed1)
}

func (a *Adapter) ReadFanSpeed2(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadFanSpeed2)
}

func (a *Adapter) ReadFanSpeed3(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadFanSpeed3)
}

func (a *Adapter) ReadFanSpeed4(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadFanSpeed4)
}

func (a *Adapter) ReadDutyCycle(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadDutyCycle)
}

func (a *Adapter) ReadFrequency(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadFrequency)
}

func (a *Adapter) ReadPout(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadPout)
}

func (a *Adapter) ReadPin(ctx context.Context, addr uint8) (float64, error) {
	return a.readLinear11(ctx, addr, CmdReadPin)
}

// Identification blocks.

func (a *Adapter) GetMfrID(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdMfrId)
}

func (a *Adapter) SetMfrID(ctx context.Context, addr uint8, data []byte) error {
	return a.writeBlockRaw(ctx, addr, CmdMfrId, data)
}

func (a *Adapter) GetMfrModel(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdMfrModel)
}

func (a *Adapter) SetMfrModel(ctx context.Context, addr uint8, data []byte) error {
	return a.writeBlockRaw(ctx, addr, CmdMfrModel, data)
}

func (a *Adapter) GetMfrRevision(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdMfrRevision)
}

func (a *Adapter) SetMfrRevision(ctx context.Context, addr uint8, data []byte) error {
	return a.writeBlockRaw(ctx, addr, CmdMfrRevision, data)
}

func (a *Adapter) GetMfrLocation(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdMfrLocation)
}

func (a *Adapter) SetMfrLocation(ctx context.Context, addr uint8, data []byte) error {
	return a.writeBlockRaw(ctx, addr, CmdMfrLocation, data)
}

func (a *Adapter) GetMfrDate(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdMfrDate)
}

func (a *Adapter) SetMfrDate(ctx context.Context, addr uint8, data []byte) error {
	return a.writeBlockRaw(ctx, addr, CmdMfrDate, data)
}

func (a *Adapter) GetMfrSerial(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdMfrSerial)
}

func (a *Adapter) SetMfrSerial(ctx context.Context, addr uint8, data []byte) error {
	return a.writeBlockRaw(ctx, addr, CmdMfrSerial, data)
}

func (a *Adapter) GetAppProfileSupport(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdAppProfileSupport)
}

func (a *Adapter) GetICDeviceID(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdIcDeviceId)
}

func (a *Adapter) GetICDeviceRev(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdIcDeviceRev)
}

func (a *Adapter) GetMfrEfficiencyLL(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdMfrEfficiencyLl)
}

func (a *Adapter) GetMfrEfficiencyHL(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdMfrEfficiencyHl)
}

func (a *Adapter) ReadEin(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdReadEin)
}

func (a *Adapter) ReadEout(ctx context.Context, addr uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CmdReadEout)
}

// User data blocks, indexed 0-15.

func (a *Adapter) GetUserData(ctx context.Context, addr uint8, index uint8) ([]byte, error) {
	if index > 15 {
		return nil, &CommandError{Cmd: CmdUserData00, Reason: "user data index out of range"}
	}
	return a.readBlockRaw(ctx, addr, CmdUserData00+CommandCode(index))
}

func (a *Adapter) SetUserData(ctx context.Context, addr uint8, index uint8, data []byte) error {
	if index > 15 {
		return &CommandError{Cmd: CmdUserData00, Reason: "user data index out of range"}
	}
	return a.writeBlockRaw(ctx, addr, CmdUserData00+CommandCode(index), data)
}

// Status registers.

func (a *Adapter) GetStatusByte(ctx context.Context, addr uint8) (StatusByte, error) {
	v, err := a.readByteRaw(ctx, addr, CmdStatusByte)
	return StatusByte(v), err
}

func (a *Adapter) SetStatusByte(ctx context.Context, addr uint8, s StatusByte) error {
	return a.writeByteRaw(ctx, addr, CmdStatusByte, uint8(s))
}

func (a *Adapter) GetStatusWord(ctx context.Context, addr uint8) (StatusWord, error) {
	v, err := a.readWordRaw(ctx, addr, CmdStatusWord)
	return StatusWord(v), err
}

func (a *Adapter) SetStatusWord(ctx context.Context, addr uint8, s StatusWord) error {
	return a.writeWordRaw(ctx, addr, CmdStatusWord, uint16(s))
}

func (a *Adapter) GetStatusVout(ctx context.Context, addr uint8) (StatusVout, error) {
	v, err := a.readByteRaw(ctx, addr, CmdStatusVout)
	return StatusVout(v), err
}

func (a *Adapter) SetStatusVout(ctx context.Context, addr uint8, s StatusVout) error {
	return a.writeByteRaw(ctx, addr, CmdStatusVout, uint8(s))
}

func (a *Adapter) GetStatusIout(ctx context.Context, addr uint8) (StatusIout, error) {
	v, err := a.readByteRaw(ctx, addr, CmdStatusIout)
	return StatusIout(v), err
}

func (a *Adapter) SetStatusIout(ctx context.Context, addr uint8, s StatusIout) error {
	return a.writeByteRaw(ctx, addr, CmdStatusIout, uint8(s))
}

func (a *Adapter) GetStatusInput(ctx context.Context, addr uint8) (StatusInput, error) {
	v, err := a.readByteRaw(ctx, addr, CmdStatusInput)
	return StatusInput(v), err
}

func (a *Adapter) SetStatusInput(ctx context.Context, addr uint8, s StatusInput) error {
	return a.writeByteRaw(ctx, addr, CmdStatusInput, uint8(s))
}

func (a *Adapter) GetStatusTemperature(ctx context.Context, addr uint8) (StatusTemperature, error) {
	v, err := a.readByteRaw(ctx, addr, CmdStatusTemperature)
	return StatusTemperature(v), err
}

func (a *Adapter) SetStatusTemperature(ctx context.Context, addr uint8, s StatusTemperature) error {
	return a.writeByteRaw(ctx, addr, CmdStatusTemperature, uint8(s))
}

func (a *Adapter) GetStatusCML(ctx context.Context, addr uint8) (StatusCML, error) {
	v, err := a.readByteRaw(ctx, addr, CmdStatusCml)
	return StatusCML(v), err
}

func (a *Adapter) SetStatusCML(ctx context.Context, addr uint8, s StatusCML) error {
	return a.writeByteRaw(ctx, addr, CmdStatusCml, uint8(s))
}

func (a *Adapter) GetStatusOther(ctx context.Context, addr uint8) (StatusOther, error) {
	v, err := a.readByteRaw(ctx, addr, CmdStatusOther)
	return StatusOther(v), err
}

func (a *Adapter) SetStatusOther(ctx context.Context, addr uint8, s StatusOther) error {
	return a.writeByteRaw(ctx, addr, CmdStatusOther, uint8(s))
}

func (a *Adapter) GetStatusMfrSpecific(ctx context.Context, addr uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CmdStatusMfrSpecific)
}

func (a *Adapter) SetStatusMfrSpecific(ctx context.Context, addr uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CmdStatusMfrSpecific, v)
}

func (a *Adapter) GetStatusFans12(ctx context.Context, addr uint8) (StatusFans12, error) {
	v, err := a.readByteRaw(ctx, addr, CmdStatusFans12)
	return StatusFans12(v), err
}

func (a *Adapter) SetStatusFans12(ctx context.Context, addr uint8, s StatusFans12) error {
	return a.writeByteRaw(ctx, addr, CmdStatusFans12, uint8(s))
}

func (a *Adapter) GetStatusFans34(ctx context.Context, addr uint8) (StatusFans34, error) {
	v, err := a.readByteRaw(ctx, addr, CmdStatusFans34)
	return StatusFans34(v), err
}

func (a *Adapter) SetStatusFans34(ctx context.Context, addr uint8, s StatusFans34) error {
	return a.writeByteRaw(ctx, addr, CmdStatusFans34, uint8(s))
}

// Process-call commands.

// GetCoefficients reads the DIRECT coefficient set identified by query via
// the COEFFICIENTS block process call.
func (a *Adapter) GetCoefficients(ctx context.Context, addr uint8, query uint8) (DirectCoefficients, error) {
	resp, err := a.blockProcessCall(ctx, addr, CmdCoefficients, []byte{query})
	if err != nil {
		return DirectCoefficients{}, err
	}
	return ParseCoefficients(resp)
}

// Query asks the device whether and how it supports a command. The low byte
// of the process call response carries the support flags.
func (a *Adapter) Query(ctx context.Context, addr uint8, code CommandCode) (uint8, error) {
	resp, err := a.processCall(ctx, addr, CmdQuery, uint16(code))
	if err != nil {
		return 0, err
	}
	return uint8(resp), nil
}

// GetSmbalertMask reads the SMBALERT mask for the given status register via
// process call.
func (a *Adapter) GetSmbalertMask(ctx context.Context, addr uint8, statusCmd CommandCode) (uint8, error) {
	resp, err := a.processCall(ctx, addr, CmdSmbalertMask, uint16(statusCmd))
	if err != nil {
		return 0, err
	}
	return uint8(resp), nil
}

// SetSmbalertMask writes an SMBALERT mask word: low byte the status command
// code, high byte the mask.
func (a *Adapter) SetSmbalertMask(ctx context.Context, addr uint8, statusCmd CommandCode, mask uint8) error {
	return a.writeWordRaw(ctx, addr, CmdSmbalertMask, uint16(statusCmd)|uint16(mask)<<8)
}

// PagePlusRead reads one byte from a specific page in a single transaction.
func (a *Adapter) PagePlusRead(ctx context.Context, addr uint8, page uint8, cmd CommandCode) (uint8, error) {
	resp, err := a.blockProcessCall(ctx, addr, CmdPagePlusRead, []byte{page, uint8(cmd)})
	if err != nil {
		return 0, err
	}
	if len(resp) != 1 {
		return 0, &UnexpectedLengthError{Cmd: CmdPagePlusRead, Want: 1, Got: len(resp)}
	}
	return resp[0], nil
}

// PagePlusWrite writes command data to a specific page in a single
// transaction. data is the payload for cmd.
func (a *Adapter) PagePlusWrite(ctx context.Context, addr uint8, page uint8, cmd CommandCode, data []byte) error {
	buf := append([]byte{page, uint8(cmd)}, data...)
	return a.writeBlockRaw(ctx, addr, CmdPagePlusWrite, buf)
}
