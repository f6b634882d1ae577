package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloodcloud/site-api/internal/api"
	"github.com/bloodcloud/site-api/internal/auth"
	"github.com/bloodcloud/site-api/internal/config"
	"github.com/bloodcloud/site-api/internal/contact"
	"github.com/bloodcloud/site-api/internal/store"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from a stale process occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	ln.Close()
	return nil
}

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if os.Getenv("ADMIN_PASSWORD") != "" {
		log.Println("[config] ADMIN_PASSWORD env override active")
	}

	// Pre-flight check: verify the target port is available
	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}
	log.Printf("Pre-flight check passed: port %d is available", port)

	// Stores are created empty; nothing is persisted across restarts
	sessions := store.NewSessionStore()
	messages := store.NewMessageStore()

	authSvc := auth.NewService(cfg.Auth, sessions)
	contactSvc := contact.NewService(messages)

	server := api.NewServer(cfg, authSvc, contactSvc, sessions, messages)
	log.Printf("Auth tiers: 1 admin, %d staff", len(cfg.Auth.Staff))
	log.Printf("Serving front end from %s", cfg.Site.StaticDir)

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", host, port)
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
