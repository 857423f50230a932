package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"inode-msd/internal/config"
	"inode-msd/msd"
)

// A valid Nav payload: status 0x48, accel (1, -8, 0), magnetic (16, 0, 0).
const navHex = "48 89 0100 F8FF 0000 1000 0000 0000"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s, err := New(config.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postDecode(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/decode", "text/plain", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/decode error = %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestDecodeEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postDecode(t, ts, navHex)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var rec msd.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if rec.Model != msd.ModelNav {
		t.Errorf("model = 0x%02X, want 0x%02X", byte(rec.Model), byte(msd.ModelNav))
	}
	if rec.CompanyIdentifier != 0x8948 {
		t.Errorf("companyIdentifier = 0x%04X, want 0x8948", rec.CompanyIdentifier)
	}
	if rec.RTTO || rec.Alarms.LowBattery {
		t.Errorf("status flags decoded wrong: rtto=%v lowBattery=%v", rec.RTTO, rec.Alarms.LowBattery)
	}
	if want := 16.0 / 10000; rec.MagneticField.X != want {
		t.Errorf("magneticField.x = %v, want %v", rec.MagneticField.X, want)
	}
}

func TestDecodeEndpointErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "bad_hex", body: "not hex", wantStatus: http.StatusBadRequest},
		{name: "short_buffer", body: "4889", wantStatus: http.StatusBadRequest},
		{name: "unknown_model", body: "48FF0100F8FF00001000000000 00", wantStatus: http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := postDecode(t, ts, tc.body)
			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
			var errResp errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if errResp.Error == "" {
				t.Error("error response has empty message")
			}
		})
	}
}

func TestModelsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/models")
	if err != nil {
		t.Fatalf("GET /api/models error = %v", err)
	}
	defer resp.Body.Close()

	var infos []modelInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	found := false
	for _, info := range infos {
		if info.Model == byte(msd.ModelNav) && info.Label == "iNode Nav" {
			found = true
		}
	}
	if !found {
		t.Errorf("models = %+v, want to contain iNode Nav", infos)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestWebSocketStream(t *testing.T) {
	ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	defer conn.Close()

	// Valid payload comes back as a record.
	if err := conn.WriteMessage(websocket.TextMessage, []byte(navHex)); err != nil {
		t.Fatalf("write: %v", err)
	}
	var result wsResult
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("read: %v", err)
	}
	if result.Error != "" {
		t.Fatalf("result.Error = %q, want empty", result.Error)
	}
	if result.Record == nil || result.Record.Model != msd.ModelNav {
		t.Errorf("result.Record = %+v, want Nav record", result.Record)
	}

	// A bad payload reports in-band and keeps the stream open.
	if err := conn.WriteMessage(websocket.TextMessage, []byte("zz")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("read: %v", err)
	}
	if result.Error == "" {
		t.Error("result.Error empty for invalid hex")
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(navHex)); err != nil {
		t.Fatalf("write after error: %v", err)
	}
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("read after error: %v", err)
	}
	if result.Record == nil {
		t.Error("stream did not survive an in-band error")
	}
}
