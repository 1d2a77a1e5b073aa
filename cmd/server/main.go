// Package main initializes and starts the expense-tracking HTTP server,
// wiring configuration, logging, the database connection, repositories,
// services, handlers, and graceful shutdown.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/akarev/expensekeeper/internal/config"
	"github.com/akarev/expensekeeper/internal/db"
	"github.com/akarev/expensekeeper/internal/hash"
	"github.com/akarev/expensekeeper/internal/logger"
	"github.com/akarev/expensekeeper/internal/repository"
	"github.com/akarev/expensekeeper/internal/server/handler/http"
	"github.com/akarev/expensekeeper/internal/service"
	"github.com/akarev/expensekeeper/internal/token"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	cfg := config.MustLoad()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(cfg.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer func() { _ = postgresDB.Close() }()

	// Initialize repositories for users and expenses.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	expenseRepo := repository.NewPostgresExpenseRepository(postgresDB)

	// Token manager holds the server signing secret from configuration.
	tokenManager := token.NewManager([]byte(cfg.Token.Secret), cfg.Token.TTL)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, hash.NewBcrypt(0), tokenManager)
	expenseService := service.NewExpenseService(expenseRepo)

	// Create HTTP handlers for auth and expense endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	expenseHandler := &http.ExpenseHandler{ExpenseService: expenseService, Logger: zapLogger}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, expenseHandler, tokenManager, zapLogger)

	server := &nethttp.Server{
		Addr:    cfg.Address,
		Handler: router,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		zapLogger.Info("starting HTTP server",
			zap.String("addr", cfg.Address),
			zap.String("env", cfg.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	<-sigChan
	zapLogger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown error", zap.Error(err))
	}
}
