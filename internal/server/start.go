package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Start runs the HTTP server and blocks until an interrupt or terminate
// signal arrives, then shuts down gracefully: the listener drains, the event
// bridge stops, and the bus closes.
func (s *Server) Start() {
	go func() {
		if err := s.E.Start(s.Cfg.Addr); err != nil && err != http.ErrServerClosed {
			s.E.Logger.Fatalf("shutting down the server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.E.Shutdown(ctx); err != nil {
		s.E.Logger.Fatal(err)
	}
	s.Close()
}

// Close releases the server's background resources. It is safe to call
// after Shutdown and in tests that never called Start.
func (s *Server) Close() {
	s.cancel()
	if err := s.PubSub.Close(); err != nil {
		s.E.Logger.Errorf("closing pubsub bridge: %v", err)
	}
}
