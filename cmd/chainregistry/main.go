package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chainregistry/internal/app/provider"
	"chainregistry/internal/app/service"
	"chainregistry/internal/config"
	"chainregistry/internal/domain/entity"
	"chainregistry/internal/infrastructure/chainloader"
	"chainregistry/internal/infrastructure/network/client"
	networkdefinition "chainregistry/internal/infrastructure/network/definition"
	"chainregistry/internal/infrastructure/restapi"
	"chainregistry/internal/pkg/logger"
	"chainregistry/internal/pkg/metrics"
	"chainregistry/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfgPath := utils.GetEnv("CONFIG_PATH", config.DefaultPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", "path", cfgPath, "error", err)
	}

	zapLogger, err := logger.Init(cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to initialize zap logger", "error", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	if logger.ParseLevel(cfg.Logging.Level) != zap.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath))

	metrics.MustRegisterMetrics()

	var builtins []entity.ChainDescriptor
	if !cfg.Registry.DisableBuiltins {
		builtins = networkdefinition.All()
	}
	loader := chainloader.NewChainFileLoader(logger.NewAdapter(slog.Default(), "ChainFileLoader"))
	registry, err := provider.BuildRegistry(
		logger.NewAdapter(slog.Default(), "ChainRegistry"),
		builtins,
		loader,
		cfg.Registry.OverlayDir,
	)
	if err != nil {
		zapLogger.Fatal("Failed to build chain registry", zap.Error(err))
	}
	metrics.RegisteredChains.Set(float64(registry.Len()))

	prober := client.NewEVMProber(client.ProberConfig{
		ConnectionTimeout: time.Duration(cfg.Probe.ConnectTimeoutMs) * time.Millisecond,
		CallTimeout:       time.Duration(cfg.Probe.CallTimeoutMs) * time.Millisecond,
		MaxRetries:        cfg.Probe.MaxRetries,
		RetryDelay:        time.Duration(cfg.Probe.RetryDelayMs) * time.Millisecond,
		RatePerSecond:     cfg.Probe.RateLimitPerSecond,
		Burst:             cfg.Probe.Burst,
	}, zapLogger)
	defer prober.Close()

	healthSvc := service.NewHealthService(registry, prober, logger.NewAdapter(slog.Default(), "HealthService"), service.HealthConfig{
		CacheTTL:        time.Duration(cfg.Cache.TTLMinutes) * time.Minute,
		CleanupInterval: time.Duration(cfg.Cache.CleanupIntervalMinutes) * time.Minute,
		MaxConcurrent:   cfg.Probe.MaxConcurrent,
	})

	rootCtx, cancelRoot := context.WithCancel(context.Background())
	defer cancelRoot()

	if cfg.Health.WarmOnStart {
		go func() {
			ctx, cancel := context.WithTimeout(rootCtx, 5*time.Minute)
			defer cancel()
			healthSvc.CheckAll(ctx)
			zapLogger.Info("Initial RPC health check completed")
		}()
	}

	chainHandler := restapi.NewChainHandler(registry, healthSvc, logger.NewAdapter(slog.Default(), "ChainHandler"))
	router := restapi.SetupRouter(chainHandler, zapLogger)

	pprofRouter := router.Group("/debug/pprof")
	{
		pprofRouter.GET("/", gin.WrapF(pprof.Index))
		pprofRouter.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		pprofRouter.GET("/profile", gin.WrapF(pprof.Profile))
		pprofRouter.POST("/symbol", gin.WrapF(pprof.Symbol))
		pprofRouter.GET("/symbol", gin.WrapF(pprof.Symbol))
		pprofRouter.GET("/trace", gin.WrapF(pprof.Trace))
		pprofRouter.GET("/allocs", gin.WrapH(pprof.Handler("allocs")))
		pprofRouter.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
		pprofRouter.GET("/heap", gin.WrapH(pprof.Handler("heap")))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("addr", cfg.Server.Port), zap.Int("chains", registry.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")
	cancelRoot()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exiting")
}
