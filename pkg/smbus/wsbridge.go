// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package smbus

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/gorilla/websocket"
)

// Remote bus operations. One CBOR-encoded request per WebSocket binary
// message, answered by exactly one response message.
const (
	opSendByte = iota
	opReadByte
	opWriteByte
	opReadWord
	opWriteWord
	opReadBlock
	opWriteBlock
	opProcessCall
	opBlockProcessCall
)

type wsRequest struct {
	Op    int    `cbor:"0,keyasint"`
	Addr  uint8  `cbor:"1,keyasint"`
	Cmd   uint8  `cbor:"2,keyasint"`
	Value uint16 `cbor:"3,keyasint,omitempty"`
	Data  []byte `cbor:"4,keyasint,omitempty"`
}

type wsResponse struct {
	OK    bool   `cbor:"0,keyasint"`
	Error string `cbor:"1,keyasint,omitempty"`
	Value uint16 `cbor:"2,keyasint,omitempty"`
	Data  []byte `cbor:"3,keyasint,omitempty"`
}

// WSBridge tunnels SMBus transactions to a remote bus daemon over a
// WebSocket. Requests and responses are CBOR-encoded binary messages; the
// mutex keeps the request/response pairing strict.
type WSBridge struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// OpenWSBridge connects to the remote bus daemon at wsURL (ws:// or wss://)
// with optional HTTP Basic auth.
func OpenWSBridge(wsURL, username, password string, skipSSLVerify bool) (*WSBridge, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	switch u.Scheme {
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s (use ws:// or wss://)", u.Scheme)
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	if u.Scheme == "wss" {
		dialer.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: skipSSLVerify,
		}
	}

	headers := http.Header{}
	if username != "" && password != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
		headers.Set("Authorization", "Basic "+credentials)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	conn, resp, err := dialer.DialContext(ctx, wsURL, headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("WebSocket connection failed (HTTP %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("WebSocket connection failed: %w", err)
	}
	return &WSBridge{conn: conn}, nil
}

// Close closes the WebSocket connection.
func (w *WSBridge) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.Close()
}

func (w *WSBridge) roundTrip(ctx context.Context, req wsRequest) (wsResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return wsResponse{}, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		w.conn.SetReadDeadline(deadline)
		w.conn.SetWriteDeadline(deadline)
	} else {
		w.conn.SetReadDeadline(time.Time{})
		w.conn.SetWriteDeadline(time.Time{})
	}

	payload, err := cbor.Marshal(req)
	if err != nil {
		return wsResponse{}, fmt.Errorf("encode request: %w", err)
	}
	if err := w.conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
		return wsResponse{}, fmt.Errorf("bridge send: %w", err)
	}

	for {
		messageType, data, err := w.conn.ReadMessage()
		if err != nil {
			return wsResponse{}, fmt.Errorf("bridge receive: %w", err)
		}
		if messageType != websocket.BinaryMessage {
			continue
		}
		var resp wsResponse
		if err := cbor.Unmarshal(data, &resp); err != nil {
			return wsResponse{}, fmt.Errorf("decode response: %w", err)
		}
		if !resp.OK {
			return wsResponse{}, fmt.Errorf("remote bus: %s", resp.Error)
		}
		return resp, nil
	}
}

func (w *WSBridge) SendByte(ctx context.Context, addr uint8, cmd uint8) error {
	_, err := w.roundTrip(ctx, wsRequest{Op: opSendByte, Addr: addr, Cmd: cmd})
	return err
}

func (w *WSBridge) ReadByte(ctx context.Context, addr uint8, cmd uint8) (uint8, error) {
	resp, err := w.roundTrip(ctx, wsRequest{Op: opReadByte, Addr: addr, Cmd: cmd})
	if err != nil {
		return 0, err
	}
	return uint8(resp.Value), nil
}

func (w *WSBridge) WriteByte(ctx context.Context, addr uint8, cmd uint8, value uint8) error {
	_, err := w.roundTrip(ctx, wsRequest{Op: opWriteByte, Addr: addr, Cmd: cmd, Value: uint16(value)})
	return err
}

func (w *WSBridge) ReadWord(ctx context.Context, addr uint8, cmd uint8) (uint16, error) {
	resp, err := w.roundTrip(ctx, wsRequest{Op: opReadWord, Addr: addr, Cmd: cmd})
	if err != nil {
		return 0, err
	}
	return resp.Value, nil
}

func (w *WSBridge) WriteWord(ctx context.Context, addr uint8, cmd uint8, value uint16) error {
	_, err := w.roundTrip(ctx, wsRequest{Op: opWriteWord, Addr: addr, Cmd: cmd, Value: value})
	return err
}

func (w *WSBridge) ReadBlock(ctx context.Context, addr uint8, cmd uint8) ([]byte, error) {
	resp, err := w.roundTrip(ctx, wsRequest{Op: opReadBlock, Addr: addr, Cmd: cmd})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) > blockMax {
		return nil, fmt.Errorf("remote block read cmd 0x%02X: %d bytes exceeds %d", cmd, len(resp.Data), blockMax)
	}
	return resp.Data, nil
}

func (w *WSBridge) WriteBlock(ctx context.Context, addr uint8, cmd uint8, data []byte) error {
	if len(data) > blockMax {
		return fmt.Errorf("remote block write cmd 0x%02X: %d bytes exceeds %d", cmd, len(data), blockMax)
	}
	_, err := w.roundTrip(ctx, wsRequest{Op: opWriteBlock, Addr: addr, Cmd: cmd, Data: data})
	return err
}

func (w *WSBridge) ProcessCall(ctx context.Context, addr uint8, cmd uint8, value uint16) (uint16, error) {
	resp, err := w.roundTrip(ctx, wsRequest{Op: opProcessCall, Addr: addr, Cmd: cmd, Value: value})
	if err != nil {
		return 0, err
	}
	return resp.Value, nil
}

func (w *WSBridge) BlockProcessCall(ctx context.Context, addr uint8, cmd uint8, data []byte) ([]byte, error) {
	if len(data) > blockMax-1 {
		return nil, fmt.Errorf("remote block process call cmd 0x%02X: %d bytes exceeds %d", cmd, len(data), blockMax-1)
	}
	resp, err := w.roundTrip(ctx, wsRequest{Op: opBlockProcessCall, Addr: addr, Cmd: cmd, Data: data})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
