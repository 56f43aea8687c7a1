package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kevinaaaquil/oct-library/config"
	"github.com/kevinaaaquil/oct-library/handlers"
	"github.com/kevinaaaquil/oct-library/logger"
	"github.com/kevinaaaquil/oct-library/middleware"
	"github.com/kevinaaaquil/oct-library/service"
	"github.com/kevinaaaquil/oct-library/store"
	"github.com/kevinaaaquil/oct-library/utils"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Error("config", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Writer:      os.Stdout,
		Environment: cfg.Env,
		Level:       logger.ParseLevel(cfg.LogLevel),
	})
	config.ReportEnv(log)

	content, err := store.New(store.Seeded(), log)
	if err != nil {
		log.Error("content store", "error", err)
		os.Exit(1)
	}

	sealer, err := utils.NewSealer(cfg.SessionSecret, "oct-library session")
	if err != nil {
		log.Error("session sealer", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var presigner service.Presigner
	if cfg.S3Bucket != "" {
		s3Service, err := service.NewS3Service(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3AccessKeyID, cfg.S3SecretKey)
		if err != nil {
			log.Error("s3", "error", err)
			os.Exit(1)
		}
		presigner = s3Service
	} else {
		log.Warn("AWS_S3_BUCKET not set; s3:// asset urls will not resolve")
	}

	limiter := middleware.NewKeyedLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	router, err := handlers.NewRouter(handlers.Deps{
		Store:        content,
		Sessions:     middleware.NewSessions(sealer, cfg.Env == "production", log),
		Assets:       service.NewAssetLinks(presigner, cfg.AssetURLTTL, log),
		Limiter:      limiter,
		Logger:       log,
		Now:          time.Now,
		AdminEnabled: cfg.AdminEnabled,
		CORSOrigins:  cfg.CORSOrigins,
		TrustProxy:   cfg.TrustProxyHeaders,
	})
	if err != nil {
		log.Error("router", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("server listening", "addr", server.Addr, "env", cfg.Env, "admin", cfg.AdminEnabled, "trustProxy", cfg.TrustProxyHeaders)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
