/*
main.go - HTTP server entry point

PURPOSE:
  Initializes and starts the amortization engine API server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Initialize the result cache (Redis when -redis is set, memory otherwise)
  3. Create API handler with dependencies
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: 8080)
  -redis      Redis address for the result cache (e.g. localhost:6379).
              Empty uses an in-process cache.
  -cache-ttl  TTL for Redis cache entries (default: 1h)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Run with the in-process cache
  ./server

  # Run with a shared Redis cache
  ./server -redis=localhost:6379 -cache-ttl=30m

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - api/cache.go: Cache implementations
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/amortization-engine/api"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	redisAddr := flag.String("redis", "", "Redis address for the result cache (empty: in-process cache)")
	cacheTTL := flag.Duration("cache-ttl", time.Hour, "TTL for Redis cache entries")
	flag.Parse()

	// Initialize cache
	var cache api.Cache
	if *redisAddr != "" {
		cache = api.NewRedisCache(*redisAddr, *cacheTTL)
		log.Printf("Using Redis result cache at %s", *redisAddr)
	} else {
		cache = api.NewMemoryCache()
		log.Printf("Using in-process result cache")
	}

	// Initialize handler and router
	handler := api.NewHandler(cache)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
