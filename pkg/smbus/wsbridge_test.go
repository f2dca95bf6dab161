// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The OpenPMC Authors

package smbus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/gorilla/websocket"
)

// busServer is a scripted remote bus daemon: it decodes each request,
// records it and answers from the registers it was seeded with.
type busServer struct {
	mu    sync.Mutex
	words map[uint8]uint16
	data  map[uint8][]byte
	fail  map[uint8]string // cmd -> error string
	seen  []wsRequest
}

func (s *busServer) handler(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req wsRequest
		if err := cbor.Unmarshal(payload, &req); err != nil {
			return
		}

		s.mu.Lock()
		s.seen = append(s.seen, req)
		var resp wsResponse
		if msg, ok := s.fail[req.Cmd]; ok {
			resp = wsResponse{OK: false, Error: msg}
		} else {
			resp = wsResponse{OK: true}
			switch req.Op {
			case opReadByte, opReadWord, opProcessCall:
				resp.Value = s.words[req.Cmd]
			case opReadBlock, opBlockProcessCall:
				resp.Data = s.data[req.Cmd]
			case opWriteWord, opWriteByte:
				s.words[req.Cmd] = req.Value
			case opWriteBlock:
				s.data[req.Cmd] = req.Data
			}
		}
		s.mu.Unlock()

		out, _ := cbor.Marshal(resp)
		if err := conn.WriteMessage(websocket.BinaryMessage, out); err != nil {
			return
		}
	}
}

func newBusServer(t *testing.T) (*busServer, *WSBridge) {
	t.Helper()
	srv := &busServer{
		words: map[uint8]uint16{},
		data:  map[uint8][]byte{},
		fail:  map[uint8]string{},
	}
	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	t.Cleanup(ts.Close)

	wsURL := "ws://" + strings.TrimPrefix(ts.URL, "http://")
	bridge, err := OpenWSBridge(wsURL, "", "", false)
	if err != nil {
		t.Fatalf("OpenWSBridge error: %v", err)
	}
	t.Cleanup(func() { bridge.Close() })
	return srv, bridge
}

func TestWSBridgeReadWord(t *testing.T) {
	srv, bridge := newBusServer(t)
	srv.words[0x79] = 0x4080

	got, err := bridge.ReadWord(context.Background(), 0x40, 0x79)
	if err != nil {
		t.Fatalf("ReadWord error: %v", err)
	}
	if got != 0x4080 {
		t.Errorf("ReadWord = 0x%04X, want 0x4080", got)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()
	if len(srv.seen) != 1 || srv.seen[0].Op != opReadWord || srv.seen[0].Addr != 0x40 {
		t.Errorf("server saw %+v", srv.seen)
	}
}

func TestWSBridgeWriteWord(t *testing.T) {
	srv, bridge := newBusServer(t)

	if err := bridge.WriteWord(context.Background(), 0x40, 0x21, 0x0C00); err != nil {
		t.Fatalf("WriteWord error: %v", err)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.words[0x21] != 0x0C00 {
		t.Errorf("server word = 0x%04X, want 0x0C00", srv.words[0x21])
	}
}

func TestWSBridgeBlocks(t *testing.T) {
	srv, bridge := newBusServer(t)
	srv.data[0x99] = []byte("ACME POWER")
	ctx := context.Background()

	got, err := bridge.ReadBlock(ctx, 0x40, 0x99)
	if err != nil {
		t.Fatalf("ReadBlock error: %v", err)
	}
	if string(got) != "ACME POWER" {
		t.Errorf("ReadBlock = %q", got)
	}

	if err := bridge.WriteBlock(ctx, 0x40, 0x9A, []byte("R1")); err != nil {
		t.Fatalf("WriteBlock error: %v", err)
	}
	srv.mu.Lock()
	if string(srv.data[0x9A]) != "R1" {
		t.Errorf("server block = %q, want R1", srv.data[0x9A])
	}
	srv.mu.Unlock()

	if err := bridge.WriteBlock(ctx, 0x40, 0x9A, make([]byte, blockMax+1)); err == nil {
		t.Error("oversized block write succeeded, want error")
	}
}

func TestWSBridgeRemoteError(t *testing.T) {
	srv, bridge := newBusServer(t)
	srv.fail[0x8B] = "device nack"

	_, err := bridge.ReadWord(context.Background(), 0x40, 0x8B)
	if err == nil || !strings.Contains(err.Error(), "device nack") {
		t.Errorf("error = %v, want the remote failure text", err)
	}
}

func TestWSBridgeSendByteAndProcessCall(t *testing.T) {
	srv, bridge := newBusServer(t)
	srv.words[0x1A] = 0x00DB
	ctx := context.Background()

	if err := bridge.SendByte(ctx, 0x40, 0x03); err != nil {
		t.Fatalf("SendByte error: %v", err)
	}
	got, err := bridge.ProcessCall(ctx, 0x40, 0x1A, 0x008B)
	if err != nil {
		t.Fatalf("ProcessCall error: %v", err)
	}
	if got != 0x00DB {
		t.Errorf("ProcessCall = 0x%04X, want 0x00DB", got)
	}
}
