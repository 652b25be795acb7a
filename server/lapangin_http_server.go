package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type LapanginHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewLapanginHttpServer(router *Router, muxRouter *mux.Router, addr string) *LapanginHttpServer {
	return &LapanginHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
	}
}

// Start serves until an interrupt, SIGTERM or ctx cancellation, then shuts
// down gracefully.
func (s *LapanginHttpServer) Start(ctx context.Context) {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	go func() {
		log.Printf("[LapanginHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	select {
	case <-stop:
	case <-ctx.Done():
	}
	log.Println("[LapanginHttpServer] Shutting down the server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[LapanginHttpServer] Server exiting")
}
