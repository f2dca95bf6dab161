// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import (
	"fmt"
	"strings"
)

// Unit returns the engineering unit for a command's decoded value, or ""
// when the value is dimensionless or the command carries no numeric data.
func Unit(cmd CommandCode) string {
	switch cmd {
	case CmdReadVin, CmdReadVout, CmdReadVcap,
		CmdVoutCommand, CmdVoutMax, CmdVoutMin,
		CmdVoutMarginHigh, CmdVoutMarginLow,
		CmdVoutOvFaultLimit, CmdVoutOvWarnLimit,
		CmdVoutUvWarnLimit, CmdVoutUvFaultLimit,
		CmdVinOn, CmdVinOff,
		CmdVinOvFaultLimit, CmdVinOvWarnLimit,
		CmdVinUvWarnLimit, CmdVinUvFaultLimit,
		CmdPowerGoodOn, CmdPowerGoodOff,
		CmdMfrVinMin, CmdMfrVinMax, CmdMfrVoutMin, CmdMfrVoutMax:
		return "V"
	case CmdReadIin, CmdReadIout,
		CmdIoutOcFaultLimit, CmdIoutOcLvFaultLimit, CmdIoutOcWarnLimit,
		CmdIoutUcFaultLimit,
		CmdIinOcFaultLimit, CmdIinOcWarnLimit,
		CmdMfrIinMax, CmdMfrIoutMax:
		return "A"
	case CmdReadPin, CmdReadPout,
		CmdPoutMax, CmdPoutOpFaultLimit, CmdPoutOpWarnLimit,
		CmdPinOpWarnLimit, CmdMfrPinMax, CmdMfrPoutMax:
		return "W"
	case CmdReadTemperature1, CmdReadTemperature2, CmdReadTemperature3,
		CmdOtFaultLimit, CmdOtWarnLimit, CmdUtWarnLimit, CmdUtFaultLimit,
		CmdMfrTambientMax, CmdMfrTambientMin,
		CmdMfrMaxTemp1, CmdMfrMaxTemp2, CmdMfrMaxTemp3:
		return "°C"
	case CmdReadFanSpeed1, CmdReadFanSpeed2, CmdReadFanSpeed3, CmdReadFanSpeed4:
		return "RPM"
	case CmdReadFrequency, CmdFrequencySwitch:
		return "kHz"
	case CmdReadDutyCycle, CmdMaxDuty:
		return "%"
	case CmdTonDelay, CmdTonRise, CmdTonMaxFaultLimit,
		CmdToffDelay, CmdToffFall, CmdToffMaxWarnLimit:
		return "ms"
	case CmdVoutTransitionRate:
		return "mV/µs"
	}
	return ""
}

// FormatValue renders a decoded value with its command's unit, e.g.
// "12.000 V".
func FormatValue(cmd CommandCode, v float64) string {
	unit := Unit(cmd)
	if unit == "" {
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%.3f %s", v, unit)
}

// FormatBlock renders an identification block: printable ASCII content is
// shown as text, anything else as a hex dump.
func FormatBlock(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}
	printable := true
	for _, b := range data {
		if b < 0x20 || b > 0x7E {
			printable = false
			break
		}
	}
	if printable {
		return string(data)
	}
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}
