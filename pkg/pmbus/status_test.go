// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import (
	"strings"
	"testing"
)

func TestStatusByte(t *testing.T) {
	s := StatusByte(0x80 | 0x10 | 0x02)
	if !s.Busy() || !s.IoutOc() || !s.CML() {
		t.Errorf("expected BUSY, IOUT_OC and CML set in %08b", uint8(s))
	}
	if s.Off() || s.VoutOv() || s.VinUv() || s.Temperature() || s.NoneOfTheAbove() {
		t.Errorf("unexpected flags set in %08b", uint8(s))
	}
	str := s.String()
	for _, want := range []string{"BUSY", "IOUT_OC", "CML"} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %q, missing %s", str, want)
		}
	}
	if StatusByte(0).String() != "none" {
		t.Errorf("empty StatusByte String() = %q, want none", StatusByte(0).String())
	}
}

func TestStatusWord(t *testing.T) {
	// BUSY in the low byte plus the IOUT/POUT summary in the high byte.
	s := StatusWord(0x4080)
	if !s.Busy() {
		t.Error("expected BUSY set")
	}
	if !s.IoutPout() {
		t.Error("expected IOUT_POUT set")
	}
	if s.Vout() || s.Input() || s.Mfr() || s.PowerGoodN() || s.Fans() || s.Other() || s.Unknown() {
		t.Errorf("unexpected high byte flags in %016b", uint16(s))
	}
	if s.Off() || s.VoutOv() || s.IoutOc() || s.VinUv() || s.Temperature() || s.CML() || s.NoneOfTheAbove() {
		t.Errorf("unexpected low byte flags in %016b", uint16(s))
	}

	str := s.String()
	if !strings.Contains(str, "IOUT_POUT") || !strings.Contains(str, "BUSY") {
		t.Errorf("String() = %q, want IOUT_POUT and BUSY", str)
	}

	if StatusWord(0x4080).Low() != StatusByte(0x80) {
		t.Errorf("Low() = %08b, want 10000000", uint8(s.Low()))
	}
}

func TestStatusVout(t *testing.T) {
	s := StatusVout(0x81)
	if !s.OvFault() || !s.TrackingError() {
		t.Errorf("expected OV_FAULT and TRACKING_ERROR in %08b", uint8(s))
	}
	if s.OvWarn() || s.UvWarn() || s.UvFault() || s.VoutMaxWarn() || s.TonMaxFault() || s.ToffMaxWarn() {
		t.Errorf("unexpected flags in %08b", uint8(s))
	}
}

func TestStatusIout(t *testing.T) {
	s := StatusIout(0x88)
	if !s.OcFault() || !s.CurrentShareFault() {
		t.Errorf("expected OC_FAULT and CURRENT_SHARE_FAULT in %08b", uint8(s))
	}
	if got := s.String(); !strings.Contains(got, "OC_FAULT") {
		t.Errorf("String() = %q", got)
	}
}

func TestStatusInput(t *testing.T) {
	s := StatusInput(0x18)
	if !s.VinUvFault() || !s.UnitOffLowVin() {
		t.Errorf("expected VIN_UV_FAULT and UNIT_OFF_LOW_VIN in %08b", uint8(s))
	}
}

func TestStatusTemperature(t *testing.T) {
	s := StatusTemperature(0xC0)
	if !s.OtFault() || !s.OtWarn() {
		t.Errorf("expected OT_FAULT and OT_WARN in %08b", uint8(s))
	}
	if s.UtWarn() || s.UtFault() {
		t.Errorf("unexpected UT flags in %08b", uint8(s))
	}
	// Reserved low bits decode without complaint.
	if StatusTemperature(0x0F).String() != "none" {
		t.Errorf("reserved bits String() = %q, want none", StatusTemperature(0x0F).String())
	}
}

func TestStatusCML(t *testing.T) {
	s := StatusCML(0xE0)
	if !s.InvalidCommand() || !s.InvalidData() || !s.PECFailed() {
		t.Errorf("expected INVALID_COMMAND, INVALID_DATA and PEC_FAILED in %08b", uint8(s))
	}
	if s.MemoryFault() || s.ProcessorFault() || s.CommFaultOther() || s.OtherMemLogic() {
		t.Errorf("unexpected flags in %08b", uint8(s))
	}
}

func TestStatusFans(t *testing.T) {
	f12 := StatusFans12(0xA0)
	if !f12.Fan1Fault() || !f12.Fan1Warn() {
		t.Errorf("expected FAN1_FAULT and FAN1_WARN in %08b", uint8(f12))
	}
	f34 := StatusFans34(0x48)
	if !f34.Fan4Fault() || !f34.Fan3SpeedOverride() {
		t.Errorf("expected FAN4_FAULT and FAN3_SPEED_OVERRIDE in %08b", uint8(f34))
	}
}

func TestStatusDecodeTotal(t *testing.T) {
	// Every possible byte decodes and renders without panicking.
	for v := 0; v <= 0xFF; v++ {
		b := uint8(v)
		_ = StatusByte(b).String()
		_ = StatusVout(b).String()
		_ = StatusIout(b).String()
		_ = StatusInput(b).String()
		_ = StatusTemperature(b).String()
		_ = StatusCML(b).String()
		_ = StatusOther(b).String()
		_ = StatusFans12(b).String()
		_ = StatusFans34(b).String()
	}
	for v := 0; v <= 0xFFFF; v += 0x101 {
		_ = StatusWord(uint16(v)).String()
	}
}
