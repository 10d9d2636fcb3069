package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/driftboard/founder-ledger/internal/config"
	"github.com/driftboard/founder-ledger/internal/handler"
	"github.com/driftboard/founder-ledger/internal/ledger"
	"github.com/driftboard/founder-ledger/internal/logging"
	"github.com/driftboard/founder-ledger/internal/middleware"
	"github.com/driftboard/founder-ledger/internal/service"
)

func main() {
	// Local development convenience; absent .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("founder-ledger", cfg.LogLevel, cfg.AppEnv)

	loc, err := time.LoadLocation(cfg.LedgerTimezone)
	if err != nil {
		slog.Error("invalid ledger timezone", "timezone", cfg.LedgerTimezone, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	sheetsSvc, err := ledger.NewSheetsService(ctx, cfg.GoogleCredentialsJSON, cfg.GoogleCredentialsFile)
	if err != nil {
		slog.Error("failed to build sheets client", "error", err)
		os.Exit(1)
	}
	writer := ledger.NewSheetsWriter(sheetsSvc, cfg.SheetID, cfg.SheetTab,
		time.Duration(cfg.LedgerAppendTimeoutS)*time.Second)

	verifier := service.NewStripeVerifier(cfg.StripeWebhookSecret,
		time.Duration(cfg.WebhookToleranceS)*time.Second)
	stripeClient := service.NewStripeClient(cfg.StripeSecretKey,
		time.Duration(cfg.StripeTimeoutS)*time.Second)
	dispatcher := service.NewDispatcher(verifier, stripeClient, writer, loc)

	webhooks := handler.NewWebhookHandler(dispatcher)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("POST /stripe-webhook", webhooks.ReceiveStripeWebhook)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           middleware.Tracing(middleware.Logging(middleware.Recovery(mux))),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr, "sheet_tab", cfg.SheetTab)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
