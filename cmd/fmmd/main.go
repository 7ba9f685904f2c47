// Command fmmd serves the Fast Marching Method engine over HTTP: POST a
// grid size, spacing, speed, and seed set, get back a cached distance
// field addressable by id, renderable as PNG, and watchable over a
// WebSocket while it computes.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ccurtis0/fast-marching-method/cmd/fmmd/internal/api"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("fmmd: no .env file found, using environment variables only")
	}

	addr := getEnvWithDefault("FMMD_ADDR", ":8080")
	rateLimitCfg := api.DefaultRateLimitConfig
	if v := os.Getenv("FMMD_RATE_PER_SEC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rateLimitCfg.RequestsPerSecond = f
		}
	}
	if v := os.Getenv("FMMD_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rateLimitCfg.Burst = n
		}
	}

	store := api.NewStore()
	router := api.NewRouter(api.RouterConfig{
		Store:           store,
		RateLimitConfig: &rateLimitCfg,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Printf("fmmd: listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("fmmd: server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("fmmd: shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("fmmd: shutdown error: %v", err)
	}
}

func getEnvWithDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
