package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignite/outreach-engine/internal/api"
	"github.com/ignite/outreach-engine/internal/config"
	"github.com/ignite/outreach-engine/internal/optimizer"
	"github.com/ignite/outreach-engine/internal/pkg/logger"
	"github.com/ignite/outreach-engine/internal/storage"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v", port, addr, err)
	}
	ln.Close()
	return nil
}

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		logger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))

	host := cfg.Server.GetHost()
	if err := checkPortAvailable(host, cfg.Server.Port); err != nil {
		logger.Error("port preflight failed", "error", err.Error())
		os.Exit(1)
	}

	ctx := context.Background()

	var model optimizer.ModelInvoker
	if cfg.Bedrock.Enabled {
		client, err := optimizer.NewBedrockClient(ctx, cfg.Bedrock)
		if err != nil {
			// Optimization degrades to rule-based; analysis is unaffected.
			logger.Warn("bedrock unavailable, running rule-based only", "error", err.Error())
		} else {
			model = client
		}
	} else {
		logger.Info("bedrock disabled by config, running rule-based only")
	}

	var history *storage.HistoryStore
	if cfg.Redis.Enabled {
		history = storage.NewHistoryStore(cfg.Redis)
		if err := history.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, history disabled", "addr", cfg.Redis.Addr, "error", err.Error())
			history.Close()
			history = nil
		}
	}

	handlers := api.NewHandlers(cfg, optimizer.New(cfg, model), history)
	router := api.SetupRoutes(handlers)

	addr := fmt.Sprintf("%s:%d", host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server listening", "addr", addr, "model_enabled", model != nil, "history_enabled", history != nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err.Error())
	}
	if history != nil {
		history.Close()
	}

	logger.Info("server stopped")
}
