// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import "context"

// Bus executes single SMBus transactions against a 7-bit device address.
// Implementations handle the wire details: words travel low byte first,
// block reads strip and validate the leading byte count. Errors returned by
// a Bus pass through the adapter unmodified.
type Bus interface {
	SendByte(ctx context.Context, addr uint8, cmd uint8) error
	ReadByte(ctx context.Context, addr uint8, cmd uint8) (uint8, error)
	WriteByte(ctx context.Context, addr uint8, cmd uint8, value uint8) error
	ReadWord(ctx context.Context, addr uint8, cmd uint8) (uint16, error)
	WriteWord(ctx context.Context, addr uint8, cmd uint8, value uint16) error
	ReadBlock(ctx context.Context, addr uint8, cmd uint8) ([]byte, error)
	WriteBlock(ctx context.Context, addr uint8, cmd uint8, data []byte) error
	ProcessCall(ctx context.Context, addr uint8, cmd uint8, value uint16) (uint16, error)
	BlockProcessCall(ctx context.Context, addr uint8, cmd uint8, data []byte) ([]byte, error)
}

// Adapter turns Bus transactions into typed PMBus operations. It is
// stateless: the device address is passed per call and VOUT_MODE is read
// fresh whenever a voltage conversion needs it, so one Adapter can serve any
// number of devices on the same bus.
type Adapter struct {
	bus Bus
}

// New returns an Adapter executing its transactions on bus.
func New(bus Bus) *Adapter {
	return &Adapter{bus: bus}
}

// ValidateAddress checks that addr is a usable 7-bit device address. The
// I2C reserved ranges 0x00-0x07 and 0x78-0x7F are rejected along with
// anything past 7 bits.
func ValidateAddress(addr uint8) error {
	if addr < 0x08 || addr > 0x77 {
		return &AddressError{Addr: addr}
	}
	return nil
}

// Generic catalog-driven numeric access. These consult the command catalog
// for direction, width and codec, so callers can work from bare command
// codes without knowing the data format.

// ReadValue reads a word command and decodes it per the catalog codec.
// Voltage-coded commands cost an extra VOUT_MODE read; if that read fails,
// the primary transaction is never issued.
func (a *Adapter) ReadValue(ctx context.Context, addr uint8, cmd CommandCode) (float64, error) {
	info, err := readableWord(cmd)
	if err != nil {
		return 0, err
	}
	if info.Codec == CodecVoltage {
		mode, err := a.GetVoutMode(ctx, addr)
		if err != nil {
			return 0, err
		}
		return a.ReadValueWith(ctx, addr, cmd, mode)
	}
	return a.ReadValueWith(ctx, addr, cmd, VoutMode{})
}

// ReadValueWith is ReadValue with a caller-supplied VOUT_MODE, saving the
// extra transaction when the mode is already known.
func (a *Adapter) ReadValueWith(ctx context.Context, addr uint8, cmd CommandCode, mode VoutMode) (float64, error) {
	info, err := readableWord(cmd)
	if err != nil {
		return 0, err
	}
	if info.Codec != CodecLinear11 && info.Codec != CodecVoltage {
		return 0, &CommandError{Cmd: cmd, Reason: "no numeric codec, use a raw accessor"}
	}
	raw, err := a.readWordRaw(ctx, addr, cmd)
	if err != nil {
		return 0, err
	}
	if info.Codec == CodecLinear11 {
		return DecodeLinear11(raw), nil
	}
	return decodeVoltage(raw, mode, cmd.Name())
}

// WriteValue encodes a value per the catalog codec and writes it. Voltage-
// coded commands cost an extra VOUT_MODE read first.
func (a *Adapter) WriteValue(ctx context.Context, addr uint8, cmd CommandCode, v float64) error {
	info, err := writableWord(cmd)
	if err != nil {
		return err
	}
	if info.Codec == CodecVoltage {
		mode, err := a.GetVoutMode(ctx, addr)
		if err != nil {
			return err
		}
		return a.WriteValueWith(ctx, addr, cmd, v, mode)
	}
	return a.WriteValueWith(ctx, addr, cmd, v, VoutMode{})
}

// WriteValueWith is WriteValue with a caller-supplied VOUT_MODE.
func (a *Adapter) WriteValueWith(ctx context.Context, addr uint8, cmd CommandCode, v float64, mode VoutMode) error {
	info, err := writableWord(cmd)
	if err != nil {
		return err
	}
	var raw uint16
	switch info.Codec {
	case CodecLinear11:
		raw, err = EncodeLinear11(v)
	case CodecVoltage:
		raw, err = encodeVoltage(v, mode, cmd.Name())
	default:
		return &CommandError{Cmd: cmd, Reason: "no numeric codec, use a raw accessor"}
	}
	if err != nil {
		return err
	}
	return a.writeWordRaw(ctx, addr, cmd, raw)
}

// ReadValueDirect reads a word command and decodes it with the given DIRECT
// coefficients, for devices whose registers use the DIRECT format.
func (a *Adapter) ReadValueDirect(ctx context.Context, addr uint8, cmd CommandCode, coef DirectCoefficients) (float64, error) {
	if _, err := readableWord(cmd); err != nil {
		return 0, err
	}
	raw, err := a.readWordRaw(ctx, addr, cmd)
	if err != nil {
		return 0, err
	}
	return coef.Decode(raw), nil
}

// WriteValueDirect encodes a value with the given DIRECT coefficients and
// writes it.
func (a *Adapter) WriteValueDirect(ctx context.Context, addr uint8, cmd CommandCode, v float64, coef DirectCoefficients) error {
	if _, err := writableWord(cmd); err != nil {
		return err
	}
	raw, err := coef.Encode(v)
	if err != nil {
		return err
	}
	return a.writeWordRaw(ctx, addr, cmd, raw)
}

func readableWord(cmd CommandCode) (CommandInfo, error) {
	info, ok := Lookup(cmd)
	if !ok {
		return CommandInfo{}, &CommandError{Cmd: cmd, Reason: "unknown command"}
	}
	if info.Dir == WriteOnly {
		return CommandInfo{}, &CommandError{Cmd: cmd, Reason: "not readable"}
	}
	if info.Width != WidthWord {
		return CommandInfo{}, &CommandError{Cmd: cmd, Reason: "not a word command"}
	}
	return info, nil
}

func writableWord(cmd CommandCode) (CommandInfo, error) {
	info, ok := Lookup(cmd)
	if !ok {
		return CommandInfo{}, &CommandError{Cmd: cmd, Reason: "unknown command"}
	}
	if info.Dir == ReadOnly {
		return CommandInfo{}, &CommandError{Cmd: cmd, Reason: "not writable"}
	}
	if info.Width != WidthWord {
		return CommandInfo{}, &CommandError{Cmd: cmd, Reason: "not a word command"}
	}
	return info, nil
}

// Internal transaction helpers. Every path through the adapter funnels into
// one of these, so address validation happens exactly once per operation.

func (a *Adapter) sendByte(ctx context.Context, addr uint8, cmd CommandCode) error {
	if err := ValidateAddress(addr); err != nil {
		return err
	}
	return a.bus.SendByte(ctx, addr, uint8(cmd))
}

func (a *Adapter) readByteRaw(ctx context.Context, addr uint8, cmd CommandCode) (uint8, error) {
	if err := ValidateAddress(addr); err != nil {
		return 0, err
	}
	return a.bus.ReadByte(ctx, addr, uint8(cmd))
}

func (a *Adapter) writeByteRaw(ctx context.Context, addr uint8, cmd CommandCode, v uint8) error {
	if err := ValidateAddress(addr); err != nil {
		return err
	}
	return a.bus.WriteByte(ctx, addr, uint8(cmd), v)
}

func (a *Adapter) readWordRaw(ctx context.Context, addr uint8, cmd CommandCode) (uint16, error) {
	if err := ValidateAddress(addr); err != nil {
		return 0, err
	}
	return a.bus.ReadWord(ctx, addr, uint8(cmd))
}

func (a *Adapter) writeWordRaw(ctx context.Context, addr uint8, cmd CommandCode, v uint16) error {
	if err := ValidateAddress(addr); err != nil {
		return err
	}
	return a.bus.WriteWord(ctx, addr, uint8(cmd), v)
}

func (a *Adapter) readBlockRaw(ctx context.Context, addr uint8, cmd CommandCode) ([]byte, error) {
	if err := ValidateAddress(addr); err != nil {
		return nil, err
	}
	return a.bus.ReadBlock(ctx, addr, uint8(cmd))
}

func (a *Adapter) writeBlockRaw(ctx context.Context, addr uint8, cmd CommandCode, data []byte) error {
	if err := ValidateAddress(addr); err != nil {
		return err
	}
	return a.bus.WriteBlock(ctx, addr, uint8(cmd), data)
}

func (a *Adapter) processCall(ctx context.Context, addr uint8, cmd CommandCode, v uint16) (uint16, error) {
	if err := ValidateAddress(addr); err != nil {
		return 0, err
	}
	return a.bus.ProcessCall(ctx, addr, uint8(cmd), v)
}

func (a *Adapter) blockProcessCall(ctx context.Context, addr uint8, cmd CommandCode, data []byte) ([]byte, error) {
	if err := ValidateAddress(addr); err != nil {
		return nil, err
	}
	return a.bus.BlockProcessCall(ctx, addr, uint8(cmd), data)
}

func (a *Adapter) readLinear11(ctx context.Context, addr uint8, cmd CommandCode) (float64, error) {
	raw, err := a.readWordRaw(ctx, addr, cmd)
	if err != nil {
		return 0, err
	}
	return DecodeLinear11(raw), nil
}

func (a *Adapter) writeLinear11(ctx context.Context, addr uint8, cmd CommandCode, v float64) error {
	raw, err := EncodeLinear11(v)
	if err != nil {
		return err
	}
	return a.writeWordRaw(ctx, addr, cmd, raw)
}

// Raw escape hatches for manufacturer-specific command codes the catalog
// does not describe. Only the address is validated.

func (a *Adapter) RawSendByte(ctx context.Context, addr uint8, code uint8) error {
	return a.sendByte(ctx, addr, CommandCode(code))
}

func (a *Adapter) RawReadByte(ctx context.Context, addr uint8, code uint8) (uint8, error) {
	return a.readByteRaw(ctx, addr, CommandCode(code))
}

func (a *Adapter) RawWriteByte(ctx context.Context, addr uint8, code uint8, v uint8) error {
	return a.writeByteRaw(ctx, addr, CommandCode(code), v)
}

func (a *Adapter) RawReadWord(ctx context.Context, addr uint8, code uint8) (uint16, error) {
	return a.readWordRaw(ctx, addr, CommandCode(code))
}

func (a *Adapter) RawWriteWord(ctx context.Context, addr uint8, code uint8, v uint16) error {
	return a.writeWordRaw(ctx, addr, CommandCode(code), v)
}

func (a *Adapter) RawBlockRead(ctx context.Context, addr uint8, code uint8) ([]byte, error) {
	return a.readBlockRaw(ctx, addr, CommandCode(code))
}

func (a *Adapter) RawBlockWrite(ctx context.Context, addr uint8, code uint8, data []byte) error {
	return a.writeBlockRaw(ctx, addr, CommandCode(code), data)
}

func (a *Adapter) RawProcessCall(ctx context.Context, addr uint8, code uint8, v uint16) (uint16, error) {
	return a.processCall(ctx, addr, CommandCode(code), v)
}
