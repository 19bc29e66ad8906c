package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-drift/sunder/pkg/graphics"
	"github.com/go-drift/sunder/pkg/sunder"
)

// Inspectable is the view of a Mount the debug server reports on.
type Inspectable interface {
	Stats() Stats
	Bounds() graphics.Size
}

// DebugInfo is the body of the /debug endpoint.
type DebugInfo struct {
	Stats  Stats         `json:"stats"`
	Bounds graphics.Size `json:"bounds"`
}

// DebugHandler returns an HTTP handler exposing the counters of m.
//
//	GET /health  {"status":"ok"}
//	GET /debug   DebugInfo as JSON
func DebugHandler(m Inspectable) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/debug", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		info := DebugInfo{Stats: m.Stats(), Bounds: m.Bounds()}
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})
	return mux
}

// handleHealth returns a simple health check response.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// ServeDebug serves DebugHandler(m) on addr until ctx is done. ready, if
// non-nil, receives the bound address once the listener is open.
func ServeDebug(ctx context.Context, addr string, m Inspectable, ready func(net.Addr)) error {
	// Bind listener first to fail fast on port conflicts
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("debug server listen: %w", err)
	}
	if ready != nil {
		ready(listener.Addr())
	}
	sunder.Logger().Info("debug server listening", "addr", listener.Addr().String())

	server := &http.Server{Handler: DebugHandler(m), ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- server.Serve(listener) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
		return ctx.Err()
	}
}
