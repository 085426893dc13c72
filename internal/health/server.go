package health

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Server exposes a single liveness route for external uptime monitors.
// It shares no state with the update loop.
type Server struct {
	srv *http.Server
}

// NewServer creates the liveness server on the given port.
func NewServer(port int) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", Handler)
	return &Server{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}
}

// Handler answers every request with a fixed liveness message.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Telegram Bot is running")
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[INFO] health endpoint listening on %s", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown stops the server, waiting briefly for in-flight requests.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
