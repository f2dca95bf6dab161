// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

// Package pmbus implements the PMBus register codec and typed command layer.
//
// PMBus is a command/register-addressed power-management protocol layered on
// a two-wire serial bus. This package provides the three standard numeric
// encodings (LINEAR11, ULINEAR16, DIRECT), the VOUT_MODE register, the
// status bit-field registers, and a typed accessor per standard command.
// Bus transactions are delegated to an external Bus executor; this package
// never talks to hardware directly.
package pmbus

// CommandCode is a standard PMBus command code.
type CommandCode uint8

// Standard PMBus 1.4 command codes.
const (
	// General
	CmdPage          CommandCode = 0x00
	CmdOperation     CommandCode = 0x01
	CmdOnOffConfig   CommandCode = 0x02
	CmdClearFaults   CommandCode = 0x03
	CmdPhase         CommandCode = 0x04
	CmdPagePlusWrite CommandCode = 0x05
	CmdPagePlusRead  CommandCode = 0x06
	CmdZoneConfig    CommandCode = 0x07
	CmdZoneActive    CommandCode = 0x08

	// Store / restore
	CmdWriteProtect      CommandCode = 0x10
	CmdStoreDefaultAll   CommandCode = 0x11
	CmdRestoreDefaultAll CommandCode = 0x12
	CmdStoreDefaultCode  CommandCode = 0x13
	CmdRestoreDefaultCode CommandCode = 0x14
	CmdStoreUserAll      CommandCode = 0x15
	CmdRestoreUserAll    CommandCode = 0x16
	CmdStoreUserCode     CommandCode = 0x17
	CmdRestoreUserCode   CommandCode = 0x18
	CmdCapability        CommandCode = 0x19
	CmdQuery             CommandCode = 0x1A
	CmdSmbalertMask      CommandCode = 0x1B

	// Output voltage
	CmdVoutMode           CommandCode = 0x20
	CmdVoutCommand        CommandCode = 0x21
	CmdVoutTrim           CommandCode = 0x22
	CmdVoutCalOffset      CommandCode = 0x23
	CmdVoutMax            CommandCode = 0x24
	CmdVoutMarginHigh     CommandCode = 0x25
	CmdVoutMarginLow      CommandCode = 0x26
	CmdVoutTransitionRate CommandCode = 0x27
	CmdVoutDroop          CommandCode = 0x28
	CmdVoutScaleLoop      CommandCode = 0x29
	CmdVoutScaleMonitor   CommandCode = 0x2A
	CmdVoutMin            CommandCode = 0x2B

	// Coefficients and power conversion
	CmdCoefficients    CommandCode = 0x30
	CmdPoutMax         CommandCode = 0x31
	CmdMaxDuty         CommandCode = 0x32
	CmdFrequencySwitch CommandCode = 0x33
	CmdPowerMode       CommandCode = 0x34
	CmdVinOn           CommandCode = 0x35
	CmdVinOff          CommandCode = 0x36
	CmdInterleave      CommandCode = 0x37
	CmdIoutCalGain     CommandCode = 0x38
	CmdIoutCalOffset   CommandCode = 0x39

	// Fans
	CmdFanConfig12 CommandCode = 0x3A
	CmdFanCommand1 CommandCode = 0x3B
	CmdFanCommand2 CommandCode = 0x3C
	CmdFanConfig34 CommandCode = 0x3D
	CmdFanCommand3 CommandCode = 0x3E
	CmdFanCommand4 CommandCode = 0x3F

	// VOUT faults
	CmdVoutOvFaultLimit    CommandCode = 0x40
	CmdVoutOvFaultResponse CommandCode = 0x41
	CmdVoutOvWarnLimit     CommandCode = 0x42
	CmdVoutUvWarnLimit     CommandCode = 0x43
	CmdVoutUvFaultLimit    CommandCode = 0x44
	CmdVoutUvFaultResponse CommandCode = 0x45

	// IOUT faults
	CmdIoutOcFaultLimit      CommandCode = 0x46
	CmdIoutOcFaultResponse   CommandCode = 0x47
	CmdIoutOcLvFaultLimit    CommandCode = 0x48
	CmdIoutOcLvFaultResponse CommandCode = 0x49
	CmdIoutOcWarnLimit       CommandCode = 0x4A
	CmdIoutUcFaultLimit      CommandCode = 0x4B
	CmdIoutUcFaultResponse   CommandCode = 0x4C

	// Temperature faults
	CmdOtFaultLimit    CommandCode = 0x4F
	CmdOtFaultResponse CommandCode = 0x50
	CmdOtWarnLimit     CommandCode = 0x51
	CmdUtWarnLimit     CommandCode = 0x52
	CmdUtFaultLimit    CommandCode = 0x53
	CmdUtFaultResponse CommandCode = 0x54

	// VIN faults
	CmdVinOvFaultLimit    CommandCode = 0x55
	CmdVinOvFaultResponse CommandCode = 0x56
	CmdVinOvWarnLimit     CommandCode = 0x57
	CmdVinUvWarnLimit     CommandCode = 0x58
	CmdVinUvFaultLimit    CommandCode = 0x59
	CmdVinUvFaultResponse CommandCode = 0x5A

	// IIN faults
	CmdIinOcFaultLimit    CommandCode = 0x5B
	CmdIinOcFaultResponse CommandCode = 0x5C
	CmdIinOcWarnLimit     CommandCode = 0x5D

	// Power good
	CmdPowerGoodOn  CommandCode = 0x5E
	CmdPowerGoodOff CommandCode = 0x5F

	// Sequencing
	CmdTonDelay         CommandCode = 0x60
	CmdTonRise          CommandCode = 0x61
	CmdTonMaxFaultLimit CommandCode = 0x62
	CmdTonMaxFaultResponse CommandCode = 0x63
	CmdToffDelay        CommandCode = 0x64
	CmdToffFall         CommandCode = 0x65
	CmdToffMaxWarnLimit CommandCode = 0x66

	// POUT / PIN faults
	CmdPoutOpFaultLimit    CommandCode = 0x68
	CmdPoutOpFaultResponse CommandCode = 0x69
	CmdPoutOpWarnLimit     CommandCode = 0x6A
	CmdPinOpWarnLimit      CommandCode = 0x6B

	// Status registers
	CmdStatusByte        CommandCode = 0x78
	CmdStatusWord        CommandCode = 0x79
	CmdStatusVout        CommandCode = 0x7A
	CmdStatusIout        CommandCode = 0x7B
	CmdStatusInput       CommandCode = 0x7C
	CmdStatusTemperature CommandCode = 0x7D
	CmdStatusCml         CommandCode = 0x7E
	CmdStatusOther       CommandCode = 0x7F
	CmdStatusMfrSpecific CommandCode = 0x80
	CmdStatusFans12      CommandCode = 0x81
	CmdStatusFans34      CommandCode = 0x82

	// Energy configuration
	CmdReadKwhConfig CommandCode = 0x85

	// Telemetry — block reads
	CmdReadEin  CommandCode = 0x86
	CmdReadEout CommandCode = 0x87

	// Telemetry — word reads
	CmdReadVin          CommandCode = 0x88
	CmdReadIin          CommandCode = 0x89
	CmdReadVcap         CommandCode = 0x8A
	CmdReadVout         CommandCode = 0x8B
	CmdReadIout         CommandCode = 0x8C
	CmdReadTemperature1 CommandCode = 0x8D
	CmdReadTemperature2 CommandCode = 0x8E
	CmdReadTemperature3 CommandCode = 0x8F
	CmdReadFanSpeed1    CommandCode = 0x90
	CmdReadFanSpeed2    CommandCode = 0x91
	CmdReadFanSpeed3    CommandCode = 0x92
	CmdReadFanSpeed4    CommandCode = 0x93
	CmdReadDutyCycle    CommandCode = 0x94
	CmdReadFrequency    CommandCode = 0x95
	CmdReadPout         CommandCode = 0x96
	CmdReadPin          CommandCode = 0x97

	// Identification
	CmdPmbusRevision     CommandCode = 0x98
	CmdMfrId             CommandCode = 0x99
	CmdMfrModel          CommandCode = 0x9A
	CmdMfrRevision       CommandCode = 0x9B
	CmdMfrLocation       CommandCode = 0x9C
	CmdMfrDate           CommandCode = 0x9D
	CmdMfrSerial         CommandCode = 0x9E
	CmdAppProfileSupport CommandCode = 0x9F

	// MFR telemetry limits
	CmdMfrVinMin       CommandCode = 0xA0
	CmdMfrVinMax       CommandCode = 0xA1
	CmdMfrIinMax       CommandCode = 0xA2
	CmdMfrPinMax       CommandCode = 0xA3
	CmdMfrVoutMin      CommandCode = 0xA4
	CmdMfrVoutMax      CommandCode = 0xA5
	CmdMfrIoutMax      CommandCode = 0xA6
	CmdMfrPoutMax      CommandCode = 0xA7
	CmdMfrTambientMax  CommandCode = 0xA8
	CmdMfrTambientMin  CommandCode = 0xA9
	CmdMfrEfficiencyLl CommandCode = 0xAA
	CmdMfrEfficiencyHl CommandCode = 0xAB
	CmdMfrPinAccuracy  CommandCode = 0xAC
	CmdIcDeviceId      CommandCode = 0xAD
	CmdIcDeviceRev     CommandCode = 0xAE

	// User data blocks 0xB0-0xBF
	CmdUserData00 CommandCode = 0xB0

	// MFR maximum temperatures
	CmdMfrMaxTemp1 CommandCode = 0xC0
	CmdMfrMaxTemp2 CommandCode = 0xC1
	CmdMfrMaxTemp3 CommandCode = 0xC2
)

// Direction describes which bus operations a command supports.
type Direction uint8

const (
	ReadWrite Direction = iota
	ReadOnly
	WriteOnly
)

// Width is the wire width of a command's data phase.
type Width uint8

const (
	WidthNone Width = iota // send-byte, no data phase
	WidthByte
	WidthWord
	WidthBlock
)

// Codec identifies the semantic encoding applied to a command's data.
type Codec uint8

const (
	CodecRaw      Codec = iota // uninterpreted bits
	CodecLinear11              // LINEAR11 signed mantissa/exponent word
	CodecVoltage               // format selected by VOUT_MODE
	CodecStatus                // status bit-field
)

// CommandInfo is an immutable catalog entry describing one command.
type CommandInfo struct {
	Name  string
	Dir   Direction
	Width Width
	Codec Codec
}

// catalog maps every standard command to its transaction shape and codec.
// Built once at package init and never mutated afterwards.
var catalog = map[CommandCode]CommandInfo{
	CmdPage:          {"PAGE", ReadWrite, WidthByte, CodecRaw},
	CmdOperation:     {"OPERATION", ReadWrite, WidthByte, CodecRaw},
	CmdOnOffConfig:   {"ON_OFF_CONFIG", ReadWrite, WidthByte, CodecRaw},
	CmdClearFaults:   {"CLEAR_FAULTS", WriteOnly, WidthNone, CodecRaw},
	CmdPhase:         {"PHASE", ReadWrite, WidthByte, CodecRaw},
	CmdPagePlusWrite: {"PAGE_PLUS_WRITE", WriteOnly, WidthBlock, CodecRaw},
	CmdPagePlusRead:  {"PAGE_PLUS_READ", ReadOnly, WidthBlock, CodecRaw},
	CmdZoneConfig:    {"ZONE_CONFIG", ReadWrite, WidthWord, CodecRaw},
	CmdZoneActive:    {"ZONE_ACTIVE", ReadWrite, WidthWord, CodecRaw},

	CmdWriteProtect:       {"WRITE_PROTECT", ReadWrite, WidthByte, CodecRaw},
	CmdStoreDefaultAll:    {"STORE_DEFAULT_ALL", WriteOnly, WidthNone, CodecRaw},
	CmdRestoreDefaultAll:  {"RESTORE_DEFAULT_ALL", WriteOnly, WidthNone, CodecRaw},
	CmdStoreDefaultCode:   {"STORE_DEFAULT_CODE", WriteOnly, WidthByte, CodecRaw},
	CmdRestoreDefaultCode: {"RESTORE_DEFAULT_CODE", WriteOnly, WidthByte, CodecRaw},
	CmdStoreUserAll:       {"STORE_USER_ALL", WriteOnly, WidthNone, CodecRaw},
	CmdRestoreUserAll:     {"RESTORE_USER_ALL", WriteOnly, WidthNone, CodecRaw},
	CmdStoreUserCode:      {"STORE_USER_CODE", WriteOnly, WidthByte, CodecRaw},
	CmdRestoreUserCode:    {"RESTORE_USER_CODE", WriteOnly, WidthByte, CodecRaw},
	CmdCapability:         {"CAPABILITY", ReadOnly, WidthByte, CodecRaw},
	CmdQuery:              {"QUERY", ReadOnly, WidthWord, CodecRaw},
	CmdSmbalertMask:       {"SMBALERT_MASK", ReadWrite, WidthWord, CodecRaw},

	CmdVoutMode:           {"VOUT_MODE", ReadWrite, WidthByte, CodecRaw},
	CmdVoutCommand:        {"VOUT_COMMAND", ReadWrite, WidthWord, CodecVoltage},
	CmdVoutTrim:           {"VOUT_TRIM", ReadWrite, WidthWord, CodecRaw},
	CmdVoutCalOffset:      {"VOUT_CAL_OFFSET", ReadWrite, WidthWord, CodecRaw},
	CmdVoutMax:            {"VOUT_MAX", ReadWrite, WidthWord, CodecVoltage},
	CmdVoutMarginHigh:     {"VOUT_MARGIN_HIGH", ReadWrite, WidthWord, CodecVoltage},
	CmdVoutMarginLow:      {"VOUT_MARGIN_LOW", ReadWrite, WidthWord, CodecVoltage},
	CmdVoutTransitionRate: {"VOUT_TRANSITION_RATE", ReadWrite, WidthWord, CodecLinear11},
	CmdVoutDroop:          {"VOUT_DROOP", ReadWrite, WidthWord, CodecLinear11},
	CmdVoutScaleLoop:      {"VOUT_SCALE_LOOP", ReadWrite, WidthWord, CodecLinear11},
	CmdVoutScaleMonitor:   {"VOUT_SCALE_MONITOR", ReadWrite, WidthWord, CodecLinear11},
	CmdVoutMin:            {"VOUT_MIN", ReadWrite, WidthWord, CodecVoltage},

	CmdCoefficients:    {"COEFFICIENTS", ReadOnly, WidthBlock, CodecRaw},
	CmdPoutMax:         {"POUT_MAX", ReadWrite, WidthWord, CodecLinear11},
	CmdMaxDuty:         {"MAX_DUTY", ReadWrite, WidthWord, CodecLinear11},
	CmdFrequencySwitch: {"FREQUENCY_SWITCH", ReadWrite, WidthWord, CodecLinear11},
	CmdPowerMode:       {"POWER_MODE", ReadWrite, WidthByte, CodecRaw},
	CmdVinOn:           {"VIN_ON", ReadWrite, WidthWord, CodecLinear11},
	CmdVinOff:          {"VIN_OFF", ReadWrite, WidthWord, CodecLinear11},
	CmdInterleave:      {"INTERLEAVE", ReadWrite, WidthWord, CodecRaw},
	CmdIoutCalGain:     {"IOUT_CAL_GAIN", ReadWrite, WidthWord, CodecLinear11},
	CmdIoutCalOffset:   {"IOUT_CAL_OFFSET", ReadWrite, WidthWord, CodecLinear11},

	CmdFanConfig12: {"FAN_CONFIG_1_2", ReadWrite, WidthByte, CodecRaw},
	CmdFanCommand1: {"FAN_COMMAND_1", ReadWrite, WidthWord, CodecLinear11},
	CmdFanCommand2: {"FAN_COMMAND_2", ReadWrite, WidthWord, CodecLinear11},
	CmdFanConfig34: {"FAN_CONFIG_3_4", ReadWrite, WidthByte, CodecRaw},
	CmdFanCommand3: {"FAN_COMMAND_3", ReadWrite, WidthWord, CodecLinear11},
	CmdFanCommand4: {"FAN_COMMAND_4", ReadWrite, WidthWord, CodecLinear11},

	CmdVoutOvFaultLimit:    {"VOUT_OV_FAULT_LIMIT", ReadWrite, WidthWord, CodecVoltage},
	CmdVoutOvFaultResponse: {"VOUT_OV_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},
	CmdVoutOvWarnLimit:     {"VOUT_OV_WARN_LIMIT", ReadWrite, WidthWord, CodecVoltage},
	CmdVoutUvWarnLimit:     {"VOUT_UV_WARN_LIMIT", ReadWrite, WidthWord, CodecVoltage},
	CmdVoutUvFaultLimit:    {"VOUT_UV_FAULT_LIMIT", ReadWrite, WidthWord, CodecVoltage},
	CmdVoutUvFaultResponse: {"VOUT_UV_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},

	CmdIoutOcFaultLimit:      {"IOUT_OC_FAULT_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdIoutOcFaultResponse:   {"IOUT_OC_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},
	CmdIoutOcLvFaultLimit:    {"IOUT_OC_LV_FAULT_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdIoutOcLvFaultResponse: {"IOUT_OC_LV_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},
	CmdIoutOcWarnLimit:       {"IOUT_OC_WARN_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdIoutUcFaultLimit:      {"IOUT_UC_FAULT_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdIoutUcFaultResponse:   {"IOUT_UC_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},

	CmdOtFaultLimit:    {"OT_FAULT_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdOtFaultResponse: {"OT_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},
	CmdOtWarnLimit:     {"OT_WARN_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdUtWarnLimit:     {"UT_WARN_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdUtFaultLimit:    {"UT_FAULT_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdUtFaultResponse: {"UT_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},

	CmdVinOvFaultLimit:    {"VIN_OV_FAULT_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdVinOvFaultResponse: {"VIN_OV_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},
	CmdVinOvWarnLimit:     {"VIN_OV_WARN_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdVinUvWarnLimit:     {"VIN_UV_WARN_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdVinUvFaultLimit:    {"VIN_UV_FAULT_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdVinUvFaultResponse: {"VIN_UV_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},

	CmdIinOcFaultLimit:    {"IIN_OC_FAULT_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdIinOcFaultResponse: {"IIN_OC_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},
	CmdIinOcWarnLimit:     {"IIN_OC_WARN_LIMIT", ReadWrite, WidthWord, CodecLinear11},

	CmdPowerGoodOn:  {"POWER_GOOD_ON", ReadWrite, WidthWord, CodecVoltage},
	CmdPowerGoodOff: {"POWER_GOOD_OFF", ReadWrite, WidthWord, CodecVoltage},

	CmdTonDelay:            {"TON_DELAY", ReadWrite, WidthWord, CodecLinear11},
	CmdTonRise:             {"TON_RISE", ReadWrite, WidthWord, CodecLinear11},
	CmdTonMaxFaultLimit:    {"TON_MAX_FAULT_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdTonMaxFaultResponse: {"TON_MAX_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},
	CmdToffDelay:           {"TOFF_DELAY", ReadWrite, WidthWord, CodecLinear11},
	CmdToffFall:            {"TOFF_FALL", ReadWrite, WidthWord, CodecLinear11},
	CmdToffMaxWarnLimit:    {"TOFF_MAX_WARN_LIMIT", ReadWrite, WidthWord, CodecLinear11},

	CmdPoutOpFaultLimit:    {"POUT_OP_FAULT_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdPoutOpFaultResponse: {"POUT_OP_FAULT_RESPONSE", ReadWrite, WidthByte, CodecRaw},
	CmdPoutOpWarnLimit:     {"POUT_OP_WARN_LIMIT", ReadWrite, WidthWord, CodecLinear11},
	CmdPinOpWarnLimit:      {"PIN_OP_WARN_LIMIT", ReadWrite, WidthWord, CodecLinear11},

	CmdStatusByte:        {"STATUS_BYTE", ReadWrite, WidthByte, CodecStatus},
	CmdStatusWord:        {"STATUS_WORD", ReadWrite, WidthWord, CodecStatus},
	CmdStatusVout:        {"STATUS_VOUT", ReadWrite, WidthByte, CodecStatus},
	CmdStatusIout:        {"STATUS_IOUT", ReadWrite, WidthByte, CodecStatus},
	CmdStatusInput:       {"STATUS_INPUT", ReadWrite, WidthByte, CodecStatus},
	CmdStatusTemperature: {"STATUS_TEMPERATURE", ReadWrite, WidthByte, CodecStatus},
	CmdStatusCml:         {"STATUS_CML", ReadWrite, WidthByte, CodecStatus},
	CmdStatusOther:       {"STATUS_OTHER", ReadWrite, WidthByte, CodecStatus},
	CmdStatusMfrSpecific: {"STATUS_MFR_SPECIFIC", ReadWrite, WidthByte, CodecRaw},
	CmdStatusFans12:      {"STATUS_FANS_1_2", ReadWrite, WidthByte, CodecStatus},
	CmdStatusFans34:      {"STATUS_FANS_3_4", ReadWrite, WidthByte, CodecStatus},

	CmdReadKwhConfig: {"READ_KWH_CONFIG", ReadWrite, WidthWord, CodecRaw},
	CmdReadEin:       {"READ_EIN", ReadOnly, WidthBlock, CodecRaw},
	CmdReadEout:      {"READ_EOUT", ReadOnly, WidthBlock, CodecRaw},

	CmdReadVin:          {"READ_VIN", ReadOnly, WidthWord, CodecLinear11},
	CmdReadIin:          {"READ_IIN", ReadOnly, WidthWord, CodecLinear11},
	CmdReadVcap:         {"READ_VCAP", ReadOnly, WidthWord, CodecVoltage},
	CmdReadVout:         {"READ_VOUT", ReadOnly, WidthWord, CodecVoltage},
	CmdReadIout:         {"READ_IOUT", ReadOnly, WidthWord, CodecLinear11},
	CmdReadTemperature1: {"READ_TEMPERATURE_1", ReadOnly, WidthWord, CodecLinear11},
	CmdReadTemperature2: {"READ_TEMPERATURE_2", ReadOnly, WidthWord, CodecLinear11},
	CmdReadTemperature3: {"READ_TEMPERATURE_3", ReadOnly, WidthWord, CodecLinear11},
	CmdReadFanSpeed1:    {"READ_FAN_SPEED_1", ReadOnly, WidthWord, CodecLinear11},
	CmdReadFanSpeed2:    {"READ_FAN_SPEED_2", ReadOnly, WidthWord, CodecLinear11},
	CmdReadFanSpeed3:    {"READ_FAN_SPEED_3", ReadOnly, WidthWord, CodecLinear11},
	CmdReadFanSpeed4:    {"READ_FAN_SPEED_4", ReadOnly, WidthWord, CodecLinear11},
	CmdReadDutyCycle:    {"READ_DUTY_CYCLE", ReadOnly, WidthWord, CodecLinear11},
	CmdReadFrequency:    {"READ_FREQUENCY", ReadOnly, WidthWord, CodecLinear11},
	CmdReadPout:         {"READ_POUT", ReadOnly, WidthWord, CodecLinear11},
	CmdReadPin:          {"READ_PIN", ReadOnly, WidthWord, CodecLinear11},

	CmdPmbusRevision:     {"PMBUS_REVISION", ReadOnly, WidthByte, CodecRaw},
	CmdMfrId:             {"MFR_ID", ReadWrite, WidthBlock, CodecRaw},
	CmdMfrModel:          {"MFR_MODEL", ReadWrite, WidthBlock, CodecRaw},
	CmdMfrRevision:       {"MFR_REVISION", ReadWrite, WidthBlock, CodecRaw},
	CmdMfrLocation:       {"MFR_LOCATION", ReadWrite, WidthBlock, CodecRaw},
	CmdMfrDate:           {"MFR_DATE", ReadWrite, WidthBlock, CodecRaw},
	CmdMfrSerial:         {"MFR_SERIAL", ReadWrite, WidthBlock, CodecRaw},
	CmdAppProfileSupport: {"APP_PROFILE_SUPPORT", ReadOnly, WidthBlock, CodecRaw},

	CmdMfrVinMin:       {"MFR_VIN_MIN", ReadWrite, WidthWord, CodecLinear11},
	CmdMfrVinMax:       {"MFR_VIN_MAX", ReadWrite, WidthWord, CodecLinear11},
	CmdMfrIinMax:       {"MFR_IIN_MAX", ReadWrite, WidthWord, CodecLinear11},
	CmdMfrPinMax:       {"MFR_PIN_MAX", ReadWrite, WidthWord, CodecLinear11},
	CmdMfrVoutMin:      {"MFR_VOUT_MIN", ReadWrite, WidthWord, CodecVoltage},
	CmdMfrVoutMax:      {"MFR_VOUT_MAX", ReadWrite, WidthWord, CodecVoltage},
	CmdMfrIoutMax:      {"MFR_IOUT_MAX", ReadWrite, WidthWord, CodecLinear11},
	CmdMfrPoutMax:      {"MFR_POUT_MAX", ReadWrite, WidthWord, CodecLinear11},
	CmdMfrTambientMax:  {"MFR_TAMBIENT_MAX", ReadWrite, WidthWord, CodecLinear11},
	CmdMfrTambientMin:  {"MFR_TAMBIENT_MIN", ReadWrite, WidthWord, CodecLinear11},
	CmdMfrEfficiencyLl: {"MFR_EFFICIENCY_LL", ReadOnly, WidthBlock, CodecRaw},
	CmdMfrEfficiencyHl: {"MFR_EFFICIENCY_HL", ReadOnly, WidthBlock, CodecRaw},
	CmdMfrPinAccuracy:  {"MFR_PIN_ACCURACY", ReadOnly, WidthByte, CodecRaw},
	CmdIcDeviceId:      {"IC_DEVICE_ID", ReadOnly, WidthBlock, CodecRaw},
	CmdIcDeviceRev:     {"IC_DEVICE_REV", ReadOnly, WidthBlock, CodecRaw},

	CmdMfrMaxTemp1: {"MFR_MAX_TEMP_1", ReadWrite, WidthWord, CodecLinear11},
	CmdMfrMaxTemp2: {"MFR_MAX_TEMP_2", ReadWrite, WidthWord, CodecLinear11},
	CmdMfrMaxTemp3: {"MFR_MAX_TEMP_3", ReadWrite, WidthWord, CodecLinear11},
}

func init() {
	// The sixteen USER_DATA block commands share one shape.
	for i := 0; i < 16; i++ {
		code := CmdUserData00 + CommandCode(i)
		catalog[code] = CommandInfo{
			Name:  fmtUserDataName(i),
			Dir:   ReadWrite,
			Width: WidthBlock,
			Codec: CodecRaw,
		}
	}
}

func fmtUserDataName(i int) string {
	const digits = "0123456789"
	return "USER_DATA_" + string([]byte{digits[i/10], digits[i%10]})
}

// Lookup returns the catalog entry for a command code.
func Lookup(code CommandCode) (CommandInfo, bool) {
	info, ok := catalog[code]
	return info, ok
}

// Name returns the standard name of the command, or "UNKNOWN" for codes
// outside the standard set (manufacturer-specific ranges).
func (c CommandCode) Name() string {
	if info, ok := catalog[c]; ok {
		return info.Name
	}
	return "UNKNOWN"
}
