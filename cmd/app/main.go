package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizza/cmd"
	"pizza/internal/adapters/in/http/api"
	"pizza/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	loadDotEnv()

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.New(configs.AppEnv)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if _, err = api.GetSwagger(); err != nil {
		zapLogger.Fatal("OpenAPI document is broken", zap.Error(err))
	}

	app := cmd.NewCompositionRoot(configs, zapLogger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		zapLogger.Fatal("Failed to create jobs", zap.Error(err))
	}
	if err = jobManager.StartAll(); err != nil {
		zapLogger.Fatal("Failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(app, configs, zapLogger)
}

// loadDotEnv loads .env when present; the environment alone is enough.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config, zapLogger *zap.Logger) {
	e := app.CreateRouter()
	if configs.AppEnv == "production" {
		e.Logger.SetLevel(log.WARN)
	} else {
		e.Logger.SetLevel(log.DEBUG)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		zapLogger.Info("HTTP server starting", zap.String("addr", addr), zap.String("env", configs.AppEnv))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
