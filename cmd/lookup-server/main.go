// cmd/lookup-server/main.go
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

	"go.uber.org/zap"

	"cnpj-lookup/internal/api"
	"cnpj-lookup/internal/common/camunda"
	"cnpj-lookup/internal/common/config"
	"cnpj-lookup/internal/common/database"
	"cnpj-lookup/internal/common/logger"
	"cnpj-lookup/internal/common/observability"
	"cnpj-lookup/internal/lookup"
	"cnpj-lookup/internal/registry"
	"cnpj-lookup/internal/view"
	"cnpj-lookup/internal/view/store"
	cnpjlookup "cnpj-lookup/internal/workers/registry/cnpj-lookup"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console", "stderr")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"service": cfg.App.Name,
		"env":     cfg.App.Environment,
	})
	zapLog.Info("Starting lookup server...", zap.String("version", cfg.App.Version))

	obs := observability.New(cfg.App.Name, log)
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Session store ---
	var sessions store.Store
	var readiness []namedCheck
	switch cfg.Sessions.Backend {
	case "redis":
		redisClient := database.NewRedis(cfg.Redis)
		defer redisClient.Close()

		err = retryWithBackoff(func() error {
			return redisClient.Ping(ctx)
		}, 5, time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis unavailable after retries", zap.Error(err))
		}
		sessions = store.NewRedisStore(redisClient.Client, cfg.Sessions.Prefix, cfg.Sessions.GetTTL())
		readiness = append(readiness, namedCheck{"redis", redisClient.Ping})
		zapLog.Info("Redis session store connected", zap.String("address", cfg.Redis.Address))
	default:
		memory := store.NewMemoryStore(cfg.Sessions.GetTTL())
		go memory.RunSweeper(ctx, time.Minute)
		sessions = memory
	}

	// --- Lookup pipeline ---
	registryClient := registry.NewClient(cfg.Registry.BaseURL, config.GetDuration(cfg.Registry.Timeout), log)
	service := lookup.NewService(registryClient, log)
	dispatcher := view.NewDispatcher(service, log)

	handler := api.NewHandler(service, dispatcher, sessions, log)
	for _, c := range readiness {
		handler.AddReadinessCheck(c.name, c.check)
	}

	// --- Zeebe worker ---
	var zeebeClient *camunda.Client
	var lookupWorker *camunda.CamundaWorker
	if cfg.Camunda.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			zeebeClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
				GatewayAddress:         cfg.Camunda.BrokerAddress,
				UsePlaintextConnection: true,
				ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
			})
			if err != nil && !camunda.IsRetryable(err) {
				zapLog.Error("zeebe error is not retryable", zap.Error(err))
			}
			return err
		}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
		if err != nil {
			zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
		}
		zapLog.Info("Zeebe client connected successfully")
		handler.AddReadinessCheck("zeebe", zeebeClient.HealthCheck)

		wcfg := config.GetWorkerConfig(cfg, cnpjlookup.TaskType)
		jobHandler := cnpjlookup.NewHandler(cnpjlookup.LoadConfig(wcfg), service, obs, log)
		lookupWorker = camunda.NewWorker(zeebeClient.GetClient(), cnpjlookup.TaskType, wcfg, jobHandler.Handle, log)
	}

	// --- HTTP server ---
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           api.NewRouter(handler, config.GetDuration(cfg.Registry.Timeout)+5*time.Second),
		ReadHeaderTimeout: config.GetDuration(cfg.Server.ReadHeaderTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("HTTP server failed", zap.Error(err))
			stop()
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	zapLog.Info("Shutdown signal received, stopping...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	lookupWorker.Stop()
	if zeebeClient != nil {
		if err := zeebeClient.Close(); err != nil {
			zapLog.Error("Error closing Zeebe client", zap.Error(err))
		}
	}

	zapLog.Info("Lookup server stopped gracefully")
}

type namedCheck struct {
	name  string
	check api.ReadinessCheck
}
