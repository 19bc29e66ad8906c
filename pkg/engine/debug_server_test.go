package engine_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-drift/sunder/pkg/engine"
	"github.com/go-drift/sunder/pkg/graphics"
)

func TestDebugHandler(t *testing.T) {
	m, _ := newGadgetMount(&gadget{size: graphics.Size{Width: 7, Height: 9}})
	if _, err := m.DrawFrame(); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}
	h := engine.DebugHandler(m)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != `{"status":"ok"}` {
		t.Errorf("/health = %d %q", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/debug", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("/debug status = %d", rr.Code)
	}
	var info engine.DebugInfo
	if err := json.Unmarshal(rr.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode /debug: %v", err)
	}
	if info.Stats.Frames != 1 || info.Bounds != (graphics.Size{Width: 7, Height: 9}) {
		t.Errorf("/debug = %+v", info)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/debug", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /debug status = %d, want 405", rr.Code)
	}
}

func TestServeDebug_StartStop(t *testing.T) {
	m, _ := newGadgetMount(&gadget{})
	ctx, cancel := context.WithCancel(context.Background())
	addrc := make(chan net.Addr, 1)
	done := make(chan error, 1)
	go func() {
		done <- engine.ServeDebug(ctx, "127.0.0.1:0", m, func(a net.Addr) { addrc <- a })
	}()

	var addr net.Addr
	select {
	case addr = <-addrc:
	case err := <-done:
		t.Fatalf("ServeDebug: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener not ready")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/health", addr))
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("ServeDebug returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
