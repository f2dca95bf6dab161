// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package pmbus

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeBus is a scripted in-memory Bus. Register contents are seeded through
// the maps, errors are injected per command code, and every transaction is
// recorded so tests can assert on counts and ordering.
type fakeBus struct {
	bytes     map[uint8]uint8
	words     map[uint8]uint16
	blocks    map[uint8][]byte
	procResp  map[uint8]uint16
	bprocResp map[uint8][]byte
	errs      map[uint8]error

	ops         []string
	wroteBytes  map[uint8]uint8
	wroteWords  map[uint8]uint16
	wroteBlocks map[uint8][]byte
}

func newFakeBus() *fakeBus {
	return &fakeBus{
		bytes:       map[uint8]uint8{},
		words:       map[uint8]uint16{},
		blocks:      map[uint8][]byte{},
		procResp:    map[uint8]uint16{},
		bprocResp:   map[uint8][]byte{},
		errs:        map[uint8]error{},
		wroteBytes:  map[uint8]uint8{},
		wroteWords:  map[uint8]uint16{},
		wroteBlocks: map[uint8][]byte{},
	}
}

func (f *fakeBus) record(op string, cmd uint8) error {
	f.ops = append(f.ops, fmt.Sprintf("%s:%02X", op, cmd))
	return f.errs[cmd]
}

func (f *fakeBus) SendByte(_ context.Context, _ uint8, cmd uint8) error {
	return f.record("send", cmd)
}

func (f *fakeBus) ReadByte(_ context.Context, _ uint8, cmd uint8) (uint8, error) {
	if err := f.record("rbyte", cmd); err != nil {
		return 0, err
	}
	return f.bytes[cmd], nil
}

func (f *fakeBus) WriteByte(_ context.Context, _ uint8, cmd uint8, v uint8) error {
	if err := f.record("wbyte", cmd); err != nil {
		return err
	}
	f.wroteBytes[cmd] = v
	return nil
}

func (f *fakeBus) ReadWord(_ context.Context, _ uint8, cmd uint8) (uint16, error) {
	if err := f.record("rword", cmd); err != nil {
		return 0, err
	}
	return f.words[cmd], nil
}

func (f *fakeBus) WriteWord(_ context.Context, _ uint8, cmd uint8, v uint16) error {
	if err := f.record("wword", cmd); err != nil {
		return err
	}
	f.wroteWords[cmd] = v
	return nil
}

func (f *fakeBus) ReadBlock(_ context.Context, _ uint8, cmd uint8) ([]byte, error) {
	if err := f.record("rblock", cmd); err != nil {
		return nil, err
	}
	return f.blocks[cmd], nil
}

func (f *fakeBus) WriteBlock(_ context.Context, _ uint8, cmd uint8, data []byte) error {
	if err := f.record("wblock", cmd); err != nil {
		return err
	}
	f.wroteBlocks[cmd] = append([]byte(nil), data...)
	return nil
}

func (f *fakeBus) ProcessCall(_ context.Context, _ uint8, cmd uint8, _ uint16) (uint16, error) {
	if err := f.record("proc", cmd); err != nil {
		return 0, err
	}
	return f.procResp[cmd], nil
}

func (f *fakeBus) BlockProcessCall(_ context.Context, _ uint8, cmd uint8, _ []byte) ([]byte, error) {
	if err := f.record("bproc", cmd); err != nil {
		return nil, err
	}
	return f.bprocResp[cmd], nil
}

const testAddr = 0x40

func TestValidateAddress(t *testing.T) {
	for _, addr := range []uint8{0x08, 0x40, 0x77} {
		if err := ValidateAddress(addr); err != nil {
			t.Errorf("ValidateAddress(0x%02X) = %v, want nil", addr, err)
		}
	}
	for _, addr := range []uint8{0x00, 0x03, 0x07, 0x78, 0x7F, 0x80, 0xFF} {
		var ae *AddressError
		err := ValidateAddress(addr)
		if !errors.As(err, &ae) {
			t.Errorf("ValidateAddress(0x%02X) = %v, want AddressError", addr, err)
		}
	}
}

func TestAdapterRejectsBadAddressBeforeBus(t *testing.T) {
	bus := newFakeBus()
	a := New(bus)
	ctx := context.Background()

	_, err := a.ReadIout(ctx, 0x78)
	var ae *AddressError
	if !errors.As(err, &ae) {
		t.Fatalf("ReadIout at reserved address error = %v, want AddressError", err)
	}
	if len(bus.ops) != 0 {
		t.Errorf("bus saw %d transactions, want 0", len(bus.ops))
	}
}

func TestReadLinear11Telemetry(t *testing.T) {
	bus := newFakeBus()
	bus.words[uint8(CmdReadIout)] = 0xD01C // -6 exponent, mantissa 28
	a := New(bus)

	got, err := a.ReadIout(context.Background(), testAddr)
	if err != nil {
		t.Fatalf("ReadIout error: %v", err)
	}
	if got != 0.4375 {
		t.Errorf("ReadIout = %g, want 0.4375", got)
	}
	if len(bus.ops) != 1 {
		t.Errorf("bus saw %d transactions, want 1", len(bus.ops))
	}
}

func TestReadVoutLinearMode(t *testing.T) {
	bus := newFakeBus()
	bus.bytes[uint8(CmdVoutMode)] = 0x17 // Linear, exponent -9
	bus.words[uint8(CmdReadVout)] = 0x1234
	a := New(bus)

	got, err := a.ReadVout(context.Background(), testAddr)
	if err != nil {
		t.Fatalf("ReadVout error: %v", err)
	}
	if want := 4660.0 / 512.0; got != want {
		t.Errorf("ReadVout = %g, want %g", got, want)
	}
	// One VOUT_MODE read plus the voltage read.
	if len(bus.ops) != 2 {
		t.Errorf("bus saw %d transactions, want 2: %v", len(bus.ops), bus.ops)
	}
}

func TestReadVoutWithSkipsModeRead(t *testing.T) {
	bus := newFakeBus()
	bus.words[uint8(CmdReadVout)] = 0x0C00
	a := New(bus)

	got, err := a.ReadVoutWith(context.Background(), testAddr, LinearMode(-12))
	if err != nil {
		t.Fatalf("ReadVoutWith error: %v", err)
	}
	if got != 0.75 {
		t.Errorf("ReadVoutWith = %g, want 0.75", got)
	}
	if len(bus.ops) != 1 {
		t.Errorf("bus saw %d transactions, want 1: %v", len(bus.ops), bus.ops)
	}
}

func TestVoutModeReadFailureAbortsVoltageRead(t *testing.T) {
	bus := newFakeBus()
	busErr := errors.New("bus timeout")
	bus.errs[uint8(CmdVoutMode)] = busErr
	bus.words[uint8(CmdReadVout)] = 0x1234
	a := New(bus)

	_, err := a.ReadVout(context.Background(), testAddr)
	if !errors.Is(err, busErr) {
		t.Fatalf("ReadVout error = %v, want the transport error unmodified", err)
	}
	if len(bus.ops) != 1 {
		t.Errorf("bus saw %d transactions, want only the VOUT_MODE read: %v", len(bus.ops), bus.ops)
	}
}

func TestReadVoutReservedMode(t *testing.T) {
	bus := newFakeBus()
	bus.bytes[uint8(CmdVoutMode)] = 0xA0
	a := New(bus)

	_, err := a.ReadVout(context.Background(), testAddr)
	var ime *InvalidModeError
	if !errors.As(err, &ime) {
		t.Fatalf("ReadVout error = %v, want InvalidModeError", err)
	}
	if len(bus.ops) != 1 {
		t.Errorf("bus saw %d transactions, want 1: %v", len(bus.ops), bus.ops)
	}
}

func TestReadVoutVIDMode(t *testing.T) {
	bus := newFakeBus()
	bus.bytes[uint8(CmdVoutMode)] = 0x25 // VID, code 5
	bus.words[uint8(CmdReadVout)] = 0x0042
	a := New(bus)

	_, err := a.ReadVout(context.Background(), testAddr)
	var mme *ModeMismatchError
	if !errors.As(err, &mme) {
		t.Fatalf("ReadVout error = %v, want ModeMismatchError", err)
	}
	if mme.Mode != ModeVID {
		t.Errorf("ModeMismatchError.Mode = %v, want VID", mme.Mode)
	}
}

func TestSetVoutCommand(t *testing.T) {
	bus := newFakeBus()
	bus.bytes[uint8(CmdVoutMode)] = 0x14 // Linear, exponent -12
	a := New(bus)

	if err := a.SetVoutCommand(context.Background(), testAddr, 0.75); err != nil {
		t.Fatalf("SetVoutCommand error: %v", err)
	}
	if got := bus.wroteWords[uint8(CmdVoutCommand)]; got != 3072 {
		t.Errorf("wrote 0x%04X, want 0x0C00", got)
	}
	if len(bus.ops) != 2 {
		t.Errorf("bus saw %d transactions, want 2: %v", len(bus.ops), bus.ops)
	}
}

func TestSetVoutCommandRangeErrorSkipsWrite(t *testing.T) {
	bus := newFakeBus()
	a := New(bus)

	err := a.SetVoutCommandWith(context.Background(), testAddr, 17.0, LinearMode(-12))
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want RangeError", err)
	}
	if len(bus.ops) != 0 {
		t.Errorf("bus saw %d transactions, want 0: %v", len(bus.ops), bus.ops)
	}
}

func TestReadVoutIEEEHalfMode(t *testing.T) {
	bus := newFakeBus()
	bus.bytes[uint8(CmdVoutMode)] = 0x60
	bus.words[uint8(CmdReadVout)] = 0x4A00 // 12.0
	a := New(bus)

	got, err := a.ReadVout(context.Background(), testAddr)
	if err != nil {
		t.Fatalf("ReadVout error: %v", err)
	}
	if got != 12.0 {
		t.Errorf("ReadVout = %g, want 12", got)
	}
}

func TestGenericReadValue(t *testing.T) {
	bus := newFakeBus()
	bus.bytes[uint8(CmdVoutMode)] = 0x17
	bus.words[uint8(CmdReadVout)] = 0x1234
	bus.words[uint8(CmdReadIout)] = 0xD01C
	a := New(bus)
	ctx := context.Background()

	got, err := a.ReadValue(ctx, testAddr, CmdReadIout)
	if err != nil || got != 0.4375 {
		t.Errorf("ReadValue(READ_IOUT) = %g, %v, want 0.4375", got, err)
	}

	got, err = a.ReadValue(ctx, testAddr, CmdReadVout)
	if err != nil || got != 4660.0/512.0 {
		t.Errorf("ReadValue(READ_VOUT) = %g, %v", got, err)
	}
}

func TestGenericReadValueMisuse(t *testing.T) {
	a := New(newFakeBus())
	ctx := context.Background()

	var ce *CommandError
	if _, err := a.ReadValue(ctx, testAddr, CommandCode(0xD0)); !errors.As(err, &ce) {
		t.Errorf("unknown command error = %v, want CommandError", err)
	}
	if _, err := a.ReadValue(ctx, testAddr, CmdClearFaults); !errors.As(err, &ce) {
		t.Errorf("non-word command error = %v, want CommandError", err)
	}
	if _, err := a.ReadValue(ctx, testAddr, CmdStatusWord); !errors.As(err, &ce) {
		t.Errorf("status codec error = %v, want CommandError", err)
	}
	if err := a.WriteValue(ctx, testAddr, CmdReadVout, 1.0); !errors.As(err, &ce) {
		t.Errorf("write to read-only error = %v, want CommandError", err)
	}
}

func TestGenericWriteValue(t *testing.T) {
	bus := newFakeBus()
	a := New(bus)

	err := a.WriteValueWith(context.Background(), testAddr, CmdVoutCommand, 0.75, LinearMode(-12))
	if err != nil {
		t.Fatalf("WriteValueWith error: %v", err)
	}
	if got := bus.wroteWords[uint8(CmdVoutCommand)]; got != 3072 {
		t.Errorf("wrote 0x%04X, want 0x0C00", got)
	}
}

func TestReadWriteValueDirect(t *testing.T) {
	bus := newFakeBus()
	bus.words[uint8(CmdReadVout)] = 123
	a := New(bus)
	ctx := context.Background()
	coef := DirectCoefficients{M: 1, B: 0, R: 2}

	got, err := a.ReadValueDirect(ctx, testAddr, CmdReadVout, coef)
	if err != nil || got != 1.23 {
		t.Errorf("ReadValueDirect = %g, %v, want 1.23", got, err)
	}

	if err := a.WriteValueDirect(ctx, testAddr, CmdVoutCommand, 1.23, coef); err != nil {
		t.Fatalf("WriteValueDirect error: %v", err)
	}
	if got := bus.wroteWords[uint8(CmdVoutCommand)]; got != 123 {
		t.Errorf("wrote %d, want 123", got)
	}
}

func TestGetStatusWord(t *testing.T) {
	bus := newFakeBus()
	bus.words[uint8(CmdStatusWord)] = 0x4080
	a := New(bus)

	s, err := a.GetStatusWord(context.Background(), testAddr)
	if err != nil {
		t.Fatalf("GetStatusWord error: %v", err)
	}
	if !s.Busy() || !s.IoutPout() {
		t.Errorf("StatusWord = %016b, want BUSY and IOUT_POUT", uint16(s))
	}
}

func TestGetCoefficients(t *testing.T) {
	bus := newFakeBus()
	bus.bprocResp[uint8(CmdCoefficients)] = []byte{0x10, 0x00, 0xFE, 0xFF, 0x02}
	a := New(bus)

	c, err := a.GetCoefficients(context.Background(), testAddr, 0x8B)
	if err != nil {
		t.Fatalf("GetCoefficients error: %v", err)
	}
	if c.M != 16 || c.B != -2 || c.R != 2 {
		t.Errorf("GetCoefficients = %+v, want M=16 B=-2 R=2", c)
	}
}

func TestQueryAndSmbalertMask(t *testing.T) {
	bus := newFakeBus()
	bus.procResp[uint8(CmdQuery)] = 0x00DB
	bus.procResp[uint8(CmdSmbalertMask)] = 0x0041
	a := New(bus)
	ctx := context.Background()

	got, err := a.Query(ctx, testAddr, CmdReadVout)
	if err != nil || got != 0xDB {
		t.Errorf("Query = 0x%02X, %v, want 0xDB", got, err)
	}

	mask, err := a.GetSmbalertMask(ctx, testAddr, CmdStatusVout)
	if err != nil || mask != 0x41 {
		t.Errorf("GetSmbalertMask = 0x%02X, %v, want 0x41", mask, err)
	}

	if err := a.SetSmbalertMask(ctx, testAddr, CmdStatusVout, 0x41); err != nil {
		t.Fatalf("SetSmbalertMask error: %v", err)
	}
	if got := bus.wroteWords[uint8(CmdSmbalertMask)]; got != 0x417A {
		t.Errorf("wrote 0x%04X, want 0x417A", got)
	}
}

func TestPagePlus(t *testing.T) {
	bus := newFakeBus()
	bus.bprocResp[uint8(CmdPagePlusRead)] = []byte{0x55}
	a := New(bus)
	ctx := context.Background()

	v, err := a.PagePlusRead(ctx, testAddr, 1, CmdOperation)
	if err != nil || v != 0x55 {
		t.Errorf("PagePlusRead = 0x%02X, %v, want 0x55", v, err)
	}

	bus.bprocResp[uint8(CmdPagePlusRead)] = []byte{0x55, 0x66}
	_, err = a.PagePlusRead(ctx, testAddr, 1, CmdOperation)
	var le *UnexpectedLengthError
	if !errors.As(err, &le) {
		t.Errorf("long response error = %v, want UnexpectedLengthError", err)
	}

	if err := a.PagePlusWrite(ctx, testAddr, 2, CmdOperation, []byte{0x80}); err != nil {
		t.Fatalf("PagePlusWrite error: %v", err)
	}
	want := []byte{2, uint8(CmdOperation), 0x80}
	got := bus.wroteBlocks[uint8(CmdPagePlusWrite)]
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("PagePlusWrite payload = %v, want %v", got, want)
	}
}

func TestUserDataIndexValidation(t *testing.T) {
	bus := newFakeBus()
	bus.blocks[uint8(CmdUserData00)+3] = []byte{1, 2, 3}
	a := New(bus)
	ctx := context.Background()

	data, err := a.GetUserData(ctx, testAddr, 3)
	if err != nil || len(data) != 3 {
		t.Errorf("GetUserData(3) = %v, %v", data, err)
	}

	var ce *CommandError
	if _, err := a.GetUserData(ctx, testAddr, 16); !errors.As(err, &ce) {
		t.Errorf("GetUserData(16) error = %v, want CommandError", err)
	}
	if err := a.SetUserData(ctx, testAddr, 16, nil); !errors.As(err, &ce) {
		t.Errorf("SetUserData(16) error = %v, want CommandError", err)
	}
}

func TestTransportErrorsPassThrough(t *testing.T) {
	bus := newFakeBus()
	busErr := errors.New("i2c nack")
	bus.errs[uint8(CmdReadIout)] = busErr
	a := New(bus)

	_, err := a.ReadIout(context.Background(), testAddr)
	if err != busErr {
		t.Errorf("error = %v, want the exact transport error", err)
	}
}

func TestClearFaults(t *testing.T) {
	bus := newFakeBus()
	a := New(bus)

	if err := a.ClearFaults(context.Background(), testAddr); err != nil {
		t.Fatalf("ClearFaults error: %v", err)
	}
	if len(bus.ops) != 1 || bus.ops[0] != fmt.Sprintf("send:%02X", uint8(CmdClearFaults)) {
		t.Errorf("ops = %v, want a single send byte", bus.ops)
	}
}
