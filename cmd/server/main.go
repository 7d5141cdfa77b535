package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"DCASimulator/internal/config"
	"DCASimulator/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] DCASimulator starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Build the default price series
	s, err := cfg.Series()
	if err != nil {
		log.Fatalf("[FATAL] build price series: %v", err)
	}
	log.Printf("[INFO] default series loaded: %d periods (%s - %s)",
		s.Len(),
		s.Observations[0].Time.Format("2006-01"),
		s.Observations[s.Len()-1].Time.Format("2006-01"))

	// Init HTTP server
	h := server.NewHandler(cfg.Simulation, s)
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.NewRouter(h, cfg.Server.AllowOrigins),
	}

	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] listen: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[WARN] server shutdown: %v", err)
	}
	log.Println("[INFO] DCASimulator stopped")
}
