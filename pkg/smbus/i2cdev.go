// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

//go:build linux

package smbus

import (
	"context"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/openpmc/pmbusmon/pkg/pmbus"
)

var _ pmbus.Bus = (*I2CDev)(nil)

// /dev/i2c-X ioctl commands. I2C_SMBUS takes a pointer to an
// i2c_smbus_ioctl_data struct; I2C_SLAVE takes the address directly.
const (
	i2cSlave = 0x0703
	i2cSMBus = 0x0720
)

// SMBus transaction sizes for the I2C_SMBUS ioctl.
const (
	sizeByte          = 1
	sizeByteData      = 2
	sizeWordData      = 3
	sizeProcCall      = 4
	sizeBlockData     = 5
	sizeBlockProcCall = 7
)

// smbusData mirrors the kernel's union i2c_smbus_data: a block is
// [count, data...] with room for count itself plus a trailing PEC byte.
type smbusData [blockMax + 2]byte

// I2CDev executes SMBus transactions against a Linux /dev/i2c-N adapter.
// The kernel tracks the selected slave address per file descriptor, so a
// mutex serializes the select+transfer pair.
type I2CDev struct {
	mu   sync.Mutex
	fd   int
	path string
	addr uint8 // currently selected slave, 0xFF when none
}

// OpenI2CDev opens the i2c-dev adapter at path, e.g. "/dev/i2c-1".
func OpenI2CDev(path string) (*I2CDev, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &I2CDev{fd: fd, path: path, addr: 0xFF}, nil
}

// Close releases the adapter file descriptor.
func (d *I2CDev) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return unix.Close(d.fd)
}

func (d *I2CDev) selectSlave(addr uint8) error {
	if d.addr == addr {
		return nil
	}
	if err := unix.IoctlSetInt(d.fd, i2cSlave, int(addr)); err != nil {
		return fmt.Errorf("%s: select slave 0x%02X: %w", d.path, addr, err)
	}
	d.addr = addr
	return nil
}

// transfer issues one I2C_SMBUS ioctl. The ioctl itself cannot be
// interrupted, so the context is only consulted before starting.
func (d *I2CDev) transfer(ctx context.Context, addr uint8, isRead uint8, cmd uint8, size uint32, data *smbusData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.selectSlave(addr); err != nil {
		return err
	}

	arg := struct {
		isRead  uint8
		command uint8
		size    uint32
		data    *smbusData
	}{isRead, cmd, size, data}

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), i2cSMBus, uintptr(unsafe.Pointer(&arg)))
	if errno != 0 {
		return fmt.Errorf("%s: smbus transfer cmd 0x%02X: %w", d.path, cmd, errno)
	}
	return nil
}

func (d *I2CDev) SendByte(ctx context.Context, addr uint8, cmd uint8) error {
	return d.transfer(ctx, addr, 0, cmd, sizeByte, nil)
}

func (d *I2CDev) ReadByte(ctx context.Context, addr uint8, cmd uint8) (uint8, error) {
	var data smbusData
	if err := d.transfer(ctx, addr, 1, cmd, sizeByteData, &data); err != nil {
		return 0, err
	}
	return data[0], nil
}

func (d *I2CDev) WriteByte(ctx context.Context, addr uint8, cmd uint8, value uint8) error {
	var data smbusData
	data[0] = value
	return d.transfer(ctx, addr, 0, cmd, sizeByteData, &data)
}

func (d *I2CDev) ReadWord(ctx context.Context, addr uint8, cmd uint8) (uint16, error) {
	var data smbusData
	if err := d.transfer(ctx, addr, 1, cmd, sizeWordData, &data); err != nil {
		return 0, err
	}
	return uint16(data[0]) | uint16(data[1])<<8, nil
}

func (d *I2CDev) WriteWord(ctx context.Context, addr uint8, cmd uint8, value uint16) error {
	var data smbusData
	data[0] = uint8(value)
	data[1] = uint8(value >> 8)
	return d.transfer(ctx, addr, 0, cmd, sizeWordData, &data)
}

func (d *I2CDev) ReadBlock(ctx context.Context, addr uint8, cmd uint8) ([]byte, error) {
	var data smbusData
	if err := d.transfer(ctx, addr, 1, cmd, sizeBlockData, &data); err != nil {
		return nil, err
	}
	count := int(data[0])
	if count > blockMax {
		return nil, fmt.Errorf("%s: block read cmd 0x%02X: count %d exceeds %d", d.path, cmd, count, blockMax)
	}
	out := make([]byte, count)
	copy(out, data[1:1+count])
	return out, nil
}

func (d *I2CDev) WriteBlock(ctx context.Context, addr uint8, cmd uint8, payload []byte) error {
	if len(payload) > blockMax {
		return fmt.Errorf("%s: block write cmd 0x%02X: %d bytes exceeds %d", d.path, cmd, len(payload), blockMax)
	}
	var data smbusData
	data[0] = uint8(len(payload))
	copy(data[1:], payload)
	return d.transfer(ctx, addr, 0, cmd, sizeBlockData, &data)
}

func (d *I2CDev) ProcessCall(ctx context.Context, addr uint8, cmd uint8, value uint16) (uint16, error) {
	var data smbusData
	data[0] = uint8(value)
	data[1] = uint8(value >> 8)
	if err := d.transfer(ctx, addr, 0, cmd, sizeProcCall, &data); err != nil {
		return 0, err
	}
	return uint16(data[0]) | uint16(data[1])<<8, nil
}

func (d *I2CDev) BlockProcessCall(ctx context.Context, addr uint8, cmd uint8, payload []byte) ([]byte, error) {
	if len(payload) > blockMax-1 {
		return nil, fmt.Errorf("%s: block process call cmd 0x%02X: %d bytes exceeds %d", d.path, cmd, len(payload), blockMax-1)
	}
	var data smbusData
	data[0] = uint8(len(payload))
	copy(data[1:], payload)
	if err := d.transfer(ctx, addr, 0, cmd, sizeBlockProcCall, &data); err != nil {
		return nil, err
	}
	count := int(data[0])
	if count > blockMax {
		return nil, fmt.Errorf("%s: block process call cmd 0x%02X: count %d exceeds %d", d.path, cmd, count, blockMax)
	}
	out := make([]byte, count)
	copy(out, data[1:1+count])
	return out, nil
}
