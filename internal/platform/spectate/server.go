package spectate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Server serves the spectator feed:
//
//	GET /ws        websocket stream of JSON snapshots
//	GET /snapshot  latest snapshot as a single JSON document
type Server struct {
	hub  *Hub
	srv  *http.Server
	addr string
}

// NewServer creates a server for hub listening on addr.
func NewServer(addr string, hub *Hub) *Server {
	s := &Server{hub: hub, addr: addr}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", s.hub)
	mux.HandleFunc("/snapshot", s.handleSnapshot)
	return mux
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, err := s.hub.Latest()
	if err != nil {
		http.Error(w, "snapshot unavailable", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// Start listens on the configured address and serves in the background.
// It returns the bound address, which differs from the configured one
// when port 0 was requested.
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", fmt.Errorf("spectate: listen %s: %w", s.addr, err)
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.hub.logger.Error("spectator server error", "error", err)
		}
	}()
	s.hub.logger.Info("spectator feed listening", "address", ln.Addr().String())
	return ln.Addr().String(), nil
}

// Shutdown stops the server and disconnects spectators.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.srv.Shutdown(ctx)
}
