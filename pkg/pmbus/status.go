// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import "strings"

// Status registers are thin typed wrappers over the raw wire byte or word.
// Construction is total: every bit pattern is a valid value, including ones
// with reserved bits set. Per-bit accessors follow the PMBus 1.4 bit tables.

func joinFlags(flags []string) string {
	if len(flags) == 0 {
		return "none"
	}
	return strings.Join(flags, "|")
}

// StatusByte is the one-byte summary register (STATUS_BYTE, 0x78).
type StatusByte uint8

func (s StatusByte) Busy() bool            { return s&0x80 != 0 }
func (s StatusByte) Off() bool             { return s&0x40 != 0 }
func (s StatusByte) VoutOv() bool          { return s&0x20 != 0 }
func (s StatusByte) IoutOc() bool          { return s&0x10 != 0 }
func (s StatusByte) VinUv() bool           { return s&0x08 != 0 }
func (s StatusByte) Temperature() bool     { return s&0x04 != 0 }
func (s StatusByte) CML() bool             { return s&0x02 != 0 }
func (s StatusByte) NoneOfTheAbove() bool  { return s&0x01 != 0 }

func (s StatusByte) String() string {
	var f []string
	if s.Busy() {
		f = append(f, "BUSY")
	}
	if s.Off() {
		f = append(f, "OFF")
	}
	if s.VoutOv() {
		f = append(f, "VOUT_OV")
	}
	if s.IoutOc() {
		f = append(f, "IOUT_OC")
	}
	if s.VinUv() {
		f = append(f, "VIN_UV")
	}
	if s.Temperature() {
		f = append(f, "TEMPERATURE")
	}
	if s.CML() {
		f = append(f, "CML")
	}
	if s.NoneOfTheAbove() {
		f = append(f, "NONE_OF_THE_ABOVE")
	}
	return joinFlags(f)
}

// StatusWord is the two-byte summary register (STATUS_WORD, 0x79). The low
// byte carries the same bits as STATUS_BYTE; the high byte summarizes the
// per-domain status registers.
type StatusWord uint16

// Low returns the STATUS_BYTE view of the low byte.
func (s StatusWord) Low() StatusByte { return StatusByte(s) }

func (s StatusWord) Vout() bool         { return s&0x8000 != 0 }
func (s StatusWord) IoutPout() bool     { return s&0x4000 != 0 }
func (s StatusWord) Input() bool        { return s&0x2000 != 0 }
func (s StatusWord) Mfr() bool          { return s&0x1000 != 0 }
func (s StatusWord) PowerGoodN() bool   { return s&0x0800 != 0 }
func (s StatusWord) Fans() bool         { return s&0x0400 != 0 }
func (s StatusWord) Other() bool        { return s&0x0200 != 0 }
func (s StatusWord) Unknown() bool      { return s&0x0100 != 0 }

func (s StatusWord) Busy() bool           { return s.Low().Busy() }
func (s StatusWord) Off() bool            { return s.Low().Off() }
func (s StatusWord) VoutOv() bool         { return s.Low().VoutOv() }
func (s StatusWord) IoutOc() bool         { return s.Low().IoutOc() }
func (s StatusWord) VinUv() bool          { return s.Low().VinUv() }
func (s StatusWord) Temperature() bool    { return s.Low().Temperature() }
func (s StatusWord) CML() bool            { return s.Low().CML() }
func (s StatusWord) NoneOfTheAbove() bool { return s.Low().NoneOfTheAbove() }

func (s StatusWord) String() string {
	var f []string
	if s.Vout() {
		f = append(f, "VOUT")
	}
	if s.IoutPout() {
		f = append(f, "IOUT_POUT")
	}
	if s.Input() {
		f = append(f, "INPUT")
	}
	if s.Mfr() {
		f = append(f, "MFR_SPECIFIC")
	}
	if s.PowerGoodN() {
		f = append(f, "POWER_GOOD#")
	}
	if s.Fans() {
		f = append(f, "FANS")
	}
	if s.Other() {
		f = append(f, "OTHER")
	}
	if s.Unknown() {
		f = append(f, "UNKNOWN")
	}
	low := s.Low().String()
	if low != "none" {
		f = append(f, strings.Split(low, "|")...)
	}
	return joinFlags(f)
}

// StatusVout is STATUS_VOUT (0x7A).
type StatusVout uint8

func (s StatusVout) OvFault() bool       { return s&0x80 != 0 }
func (s StatusVout) OvWarn() bool        { return s&0x40 != 0 }
func (s StatusVout) UvWarn() bool        { return s&0x20 != 0 }
func (s StatusVout) UvFault() bool       { return s&0x10 != 0 }
func (s StatusVout) VoutMaxWarn() bool   { return s&0x08 != 0 }
func (s StatusVout) TonMaxFault() bool   { return s&0x04 != 0 }
func (s StatusVout) ToffMaxWarn() bool   { return s&0x02 != 0 }
func (s StatusVout) TrackingError() bool { return s&0x01 != 0 }

func (s StatusVout) String() string {
	var f []string
	if s.OvFault() {
		f = append(f, "OV_FAULT")
	}
	if s.OvWarn() {
		f = append(f, "OV_WARN")
	}
	if s.UvWarn() {
		f = append(f, "UV_WARN")
	}
	if s.UvFault() {
		f = append(f, "UV_FAULT")
	}
	if s.VoutMaxWarn() {
		f = append(f, "VOUT_MAX_WARN")
	}
	if s.TonMaxFault() {
		f = append(f, "TON_MAX_FAULT")
	}
	if s.ToffMaxWarn() {
		f = append(f, "TOFF_MAX_WARN")
	}
	if s.TrackingError() {
		f = append(f, "TRACKING_ERROR")
	}
	return joinFlags(f)
}

// StatusIout is STATUS_IOUT (0x7B).
type StatusIout uint8

func (s StatusIout) OcFault() bool           { return s&0x80 != 0 }
func (s StatusIout) OcLvFault() bool         { return s&0x40 != 0 }
func (s StatusIout) OcWarn() bool            { return s&0x20 != 0 }
func (s StatusIout) UcFault() bool           { return s&0x10 != 0 }
func (s StatusIout) CurrentShareFault() bool { return s&0x08 != 0 }
func (s StatusIout) PowerLimiting() bool     { return s&0x04 != 0 }
func (s StatusIout) PoutOpFault() bool       { return s&0x02 != 0 }
func (s StatusIout) PoutOpWarn() bool        { return s&0x01 != 0 }

func (s StatusIout) String() string {
	var f []string
	if s.OcFault() {
		f = append(f, "OC_FAULT")
	}
	if s.OcLvFault() {
		f = append(f, "OC_LV_FAULT")
	}
	if s.OcWarn() {
		f = append(f, "OC_WARN")
	}
	if s.UcFault() {
		f = append(f, "UC_FAULT")
	}
	if s.CurrentShareFault() {
		f = append(f, "CURRENT_SHARE_FAULT")
	}
	if s.PowerLimiting() {
		f = append(f, "POWER_LIMITING")
	}
	if s.PoutOpFault() {
		f = append(f, "POUT_OP_FAULT")
	}
	if s.PoutOpWarn() {
		f = append(f, "POUT_OP_WARN")
	}
	return joinFlags(f)
}

// StatusInput is STATUS_INPUT (0x7C).
type StatusInput uint8

func (s StatusInput) VinOvFault() bool    { return s&0x80 != 0 }
func (s StatusInput) VinOvWarn() bool     { return s&0x40 != 0 }
func (s StatusInput) VinUvWarn() bool     { return s&0x20 != 0 }
func (s StatusInput) VinUvFault() bool    { return s&0x10 != 0 }
func (s StatusInput) UnitOffLowVin() bool { return s&0x08 != 0 }
func (s StatusInput) IinOcFault() bool    { return s&0x04 != 0 }
func (s StatusInput) IinOcWarn() bool     { return s&0x02 != 0 }
func (s StatusInput) PinOpWarn() bool     { return s&0x01 != 0 }

func (s StatusInput) String() string {
	var f []string
	if s.VinOvFault() {
		f = append(f, "VIN_OV_FAULT")
	}
	if s.VinOvWarn() {
		f = append(f, "VIN_OV_WARN")
	}
	if s.VinUvWarn() {
		f = append(f, "VIN_UV_WARN")
	}
	if s.VinUvFault() {
		f = append(f, "VIN_UV_FAULT")
	}
	if s.UnitOffLowVin() {
		f = append(f, "UNIT_OFF_LOW_VIN")
	}
	if s.IinOcFault() {
		f = append(f, "IIN_OC_FAULT")
	}
	if s.IinOcWarn() {
		f = append(f, "IIN_OC_WARN")
	}
	if s.PinOpWarn() {
		f = append(f, "PIN_OP_WARN")
	}
	return joinFlags(f)
}

// StatusTemperature is STATUS_TEMPERATURE (0x7D). The low four bits are
// reserved.
type StatusTemperature uint8

func (s StatusTemperature) OtFault() bool { return s&0x80 != 0 }
func (s StatusTemperature) OtWarn() bool  { return s&0x40 != 0 }
func (s StatusTemperature) UtWarn() bool  { return s&0x20 != 0 }
func (s StatusTemperature) UtFault() bool { return s&0x10 != 0 }

func (s StatusTemperature) String() string {
	var f []string
	if s.OtFault() {
		f = append(f, "OT_FAULT")
	}
	if s.OtWarn() {
		f = append(f, "OT_WARN")
	}
	if s.UtWarn() {
		f = append(f, "UT_WARN")
	}
	if s.UtFault() {
		f = append(f, "UT_FAULT")
	}
	return joinFlags(f)
}

// StatusCML is STATUS_CML (0x7E), communication/memory/logic faults.
type StatusCML uint8

func (s StatusCML) InvalidCommand() bool   { return s&0x80 != 0 }
func (s StatusCML) InvalidData() bool      { return s&0x40 != 0 }
func (s StatusCML) PECFailed() bool        { return s&0x20 != 0 }
func (s StatusCML) MemoryFault() bool      { return s&0x10 != 0 }
func (s StatusCML) ProcessorFault() bool   { return s&0x08 != 0 }
func (s StatusCML) CommFaultOther() bool   { return s&0x02 != 0 }
func (s StatusCML) OtherMemLogic() bool    { return s&0x01 != 0 }

func (s StatusCML) String() string {
	var f []string
	if s.InvalidCommand() {
		f = append(f, "INVALID_COMMAND")
	}
	if s.InvalidData() {
		f = append(f, "INVALID_DATA")
	}
	if s.PECFailed() {
		f = append(f, "PEC_FAILED")
	}
	if s.MemoryFault() {
		f = append(f, "MEMORY_FAULT")
	}
	if s.ProcessorFault() {
		f = append(f, "PROCESSOR_FAULT")
	}
	if s.CommFaultOther() {
		f = append(f, "COMM_FAULT_OTHER")
	}
	if s.OtherMemLogic() {
		f = append(f, "OTHER_MEM_LOGIC")
	}
	return joinFlags(f)
}

// StatusOther is STATUS_OTHER (0x7F).
type StatusOther uint8

func (s StatusOther) InputAFuseFault() bool  { return s&0x20 != 0 }
func (s StatusOther) InputBFuseFault() bool  { return s&0x10 != 0 }
func (s StatusOther) InputAOringFault() bool { return s&0x08 != 0 }
func (s StatusOther) InputBOringFault() bool { return s&0x04 != 0 }
func (s StatusOther) OutputOringFault() bool { return s&0x02 != 0 }
func (s StatusOther) FirstToAlert() bool     { return s&0x01 != 0 }

func (s StatusOther) String() string {
	var f []string
	if s.InputAFuseFault() {
		f = append(f, "INPUT_A_FUSE_FAULT")
	}
	if s.InputBFuseFault() {
		f = append(f, "INPUT_B_FUSE_FAULT")
	}
	if s.InputAOringFault() {
		f = append(f, "INPUT_A_ORING_FAULT")
	}
	if s.InputBOringFault() {
		f = append(f, "INPUT_B_ORING_FAULT")
	}
	if s.OutputOringFault() {
		f = append(f, "OUTPUT_ORING_FAULT")
	}
	if s.FirstToAlert() {
		f = append(f, "FIRST_TO_SMBALERT")
	}
	return joinFlags(f)
}

// StatusFans12 is STATUS_FANS_1_2 (0x81).
type StatusFans12 uint8

func (s StatusFans12) Fan1Fault() bool         { return s&0x80 != 0 }
func (s StatusFans12) Fan2Fault() bool         { return s&0x40 != 0 }
func (s StatusFans12) Fan1Warn() bool          { return s&0x20 != 0 }
func (s StatusFans12) Fan2Warn() bool          { return s&0x10 != 0 }
func (s StatusFans12) Fan1SpeedOverride() bool { return s&0x08 != 0 }
func (s StatusFans12) Fan2SpeedOverride() bool { return s&0x04 != 0 }
func (s StatusFans12) AirflowFault() bool      { return s&0x02 != 0 }
func (s StatusFans12) AirflowWarn() bool       { return s&0x01 != 0 }

func (s StatusFans12) String() string {
	var f []string
	if s.Fan1Fault() {
		f = append(f, "FAN1_FAULT")
	}
	if s.Fan2Fault() {
		f = append(f, "FAN2_FAULT")
	}
	if s.Fan1Warn() {
		f = append(f, "FAN1_WARN")
	}
	if s.Fan2Warn() {
		f = append(f, "FAN2_WARN")
	}
	if s.Fan1SpeedOverride() {
		f = append(f, "FAN1_SPEED_OVERRIDE")
	}
	if s.Fan2SpeedOverride() {
		f = append(f, "FAN2_SPEED_OVERRIDE")
	}
	if s.AirflowFault() {
		f = append(f, "AIRFLOW_FAULT")
	}
	if s.AirflowWarn() {
		f = append(f, "AIRFLOW_WARN")
	}
	return joinFlags(f)
}

// StatusFans34 is STATUS_FANS_3_4 (0x82).
type StatusFans34 uint8

func (s StatusFans34) Fan3Fault() bool         { return s&0x80 != 0 }
func (s StatusFans34) Fan4Fault() bool         { return s&0x40 != 0 }
func (s StatusFans34) Fan3Warn() bool          { return s&0x20 != 0 }
func (s StatusFans34) Fan4Warn() bool          { return s&0x10 != 0 }
func (s StatusFans34) Fan3SpeedOverride() bool { return s&0x08 != 0 }
func (s StatusFans34) Fan4SpeedOverride() bool { return s&0x04 != 0 }

func (s StatusFans34) String() string {
	var f []string
	if s.Fan3Fault() {
		f = append(f, "FAN3_FAULT")
	}
	if s.Fan4Fault() {
		f = append(f, "FAN4_FAULT")
	}
	if s.Fan3Warn() {
		f = append(f, "FAN3_WARN")
	}
	if s.Fan4Warn() {
		f = append(f, "FAN4_WARN")
	}
	if s.Fan3SpeedOverride() {
		f = append(f, "FAN3_SPEED_OVERRIDE")
	}
	if s.Fan4SpeedOverride() {
		f = append(f, "FAN4_SPEED_OVERRIDE")
	}
	return joinFlags(f)
}
