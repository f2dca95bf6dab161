// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package smbus

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.bug.st/serial"
)

// SC18IM704-style UART-to-I2C bridge framing: transactions are framed
// between 'S' (start) and 'P' (stop) bytes, with the 8-bit read/write
// address and an explicit transfer length. A repeated start chains a write
// and a read in one framed transaction.
const (
	bridgeStart = 'S'
	bridgeStop  = 'P'
)

// SerialBridge executes SMBus transactions through a UART-to-I2C bridge on
// a serial port. The bridge protocol only supports fixed-length reads, so
// block reads fetch the maximum block length and truncate to the count byte;
// devices pad the tail of an over-read with 0xFF.
type SerialBridge struct {
	mu   sync.Mutex
	port serialPort
}

// serialPort is the slice of serial.Port the bridge needs.
type serialPort interface {
	io.ReadWriter
	SetReadTimeout(t time.Duration) error
	Close() error
}

// OpenSerialBridge opens the bridge on the named port at the given baud
// rate, e.g. OpenSerialBridge("/dev/ttyUSB0", 115200).
func OpenSerialBridge(name string, baud int) (*SerialBridge, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	if err := port.SetReadTimeout(2 * time.Second); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", name, err)
	}
	return &SerialBridge{port: port}, nil
}

// Close closes the serial port.
func (b *SerialBridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.port.Close()
}

func writeAddr(addr uint8) uint8 { return addr << 1 }
func readAddr(addr uint8) uint8  { return addr<<1 | 1 }

// write sends a framed write transaction: S addrW len payload P.
func (b *SerialBridge) write(ctx context.Context, addr uint8, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	frame := append([]byte{bridgeStart, writeAddr(addr), uint8(len(payload))}, payload...)
	frame = append(frame, bridgeStop)
	if _, err := b.port.Write(frame); err != nil {
		return fmt.Errorf("bridge write: %w", err)
	}
	return nil
}

// writeRead sends a framed write immediately chained to a fixed-length read
// via repeated start: S addrW len payload S addrR n P, then reads n bytes
// back from the bridge.
func (b *SerialBridge) writeRead(ctx context.Context, addr uint8, payload []byte, n int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	frame := append([]byte{bridgeStart, writeAddr(addr), uint8(len(payload))}, payload...)
	frame = append(frame, bridgeStart, readAddr(addr), uint8(n), bridgeStop)
	if _, err := b.port.Write(frame); err != nil {
		return nil, fmt.Errorf("bridge write: %w", err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(b.port, buf); err != nil {
		return nil, fmt.Errorf("bridge read: %w", err)
	}
	return buf, nil
}

func (b *SerialBridge) SendByte(ctx context.Context, addr uint8, cmd uint8) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.write(ctx, addr, []byte{cmd})
}

func (b *SerialBridge) ReadByte(ctx context.Context, addr uint8, cmd uint8) (uint8, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, err := b.writeRead(ctx, addr, []byte{cmd}, 1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (b *SerialBridge) WriteByte(ctx context.Context, addr uint8, cmd uint8, value uint8) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.write(ctx, addr, []byte{cmd, value})
}

func (b *SerialBridge) ReadWord(ctx context.Context, addr uint8, cmd uint8) (uint16, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, err := b.writeRead(ctx, addr, []byte{cmd}, 2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0]) | uint16(buf[1])<<8, nil
}

func (b *SerialBridge) WriteWord(ctx context.Context, addr uint8, cmd uint8, value uint16) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.write(ctx, addr, []byte{cmd, uint8(value), uint8(value >> 8)})
}

func (b *SerialBridge) ReadBlock(ctx context.Context, addr uint8, cmd uint8) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, err := b.writeRead(ctx, addr, []byte{cmd}, blockMax+1)
	if err != nil {
		return nil, err
	}
	count := int(buf[0])
	if count > blockMax {
		return nil, fmt.Errorf("bridge block read cmd 0x%02X: count %d exceeds %d", cmd, count, blockMax)
	}
	return buf[1 : 1+count], nil
}

func (b *SerialBridge) WriteBlock(ctx context.Context, addr uint8, cmd uint8, payload []byte) error {
	if len(payload) > blockMax {
		return fmt.Errorf("bridge block write cmd 0x%02X: %d bytes exceeds %d", cmd, len(payload), blockMax)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	frame := append([]byte{cmd, uint8(len(payload))}, payload...)
	return b.write(ctx, addr, frame)
}

func (b *SerialBridge) ProcessCall(ctx context.Context, addr uint8, cmd uint8, value uint16) (uint16, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf, err := b.writeRead(ctx, addr, []byte{cmd, uint8(value), uint8(value >> 8)}, 2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0]) | uint16(buf[1])<<8, nil
}

func (b *SerialBridge) BlockProcessCall(ctx context.Context, addr uint8, cmd uint8, payload []byte) ([]byte, error) {
	if len(payload) > blockMax-1 {
		return nil, fmt.Errorf("bridge block process call cmd 0x%02X: %d bytes exceeds %d", cmd, len(payload), blockMax-1)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	req := append([]byte{cmd, uint8(len(payload))}, payload...)
	buf, err := b.writeRead(ctx, addr, req, blockMax+1)
	if err != nil {
		return nil, err
	}
	count := int(buf[0])
	if count > blockMax {
		return nil, fmt.Errorf("bridge block process call cmd 0x%02X: count %d exceeds %d", cmd, count, blockMax)
	}
	return buf[1 : 1+count], nil
}
