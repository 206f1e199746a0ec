package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutriscan/config"
	"nutriscan/middlewares"
	"nutriscan/routes"
	"nutriscan/services"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := config.NewLogger(cfg)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	var cache services.FoodCache = services.NoopFoodCache{}
	if rdb := config.NewRedis(cfg, log); rdb != nil {
		defer rdb.Close()
		cache = services.NewRedisFoodCache(rdb, cfg.FoodCacheTTL, log)
	}

	var (
		store     services.ImageStore
		uploadDir string
	)
	switch cfg.UploadDriver {
	case "s3":
		s3Store, err := services.NewS3ImageStore(ctx, cfg.Region(), cfg.S3Bucket, cfg.CDNURL)
		if err != nil {
			log.Fatalf("s3: %v", err)
		}
		store = s3Store
	default:
		local, err := services.NewLocalImageStore(cfg.UploadDir)
		if err != nil {
			log.Fatalf("uploads dir: %v", err)
		}
		store, uploadDir = local, local.Dir()
	}

	var mailer services.Mailer
	if cfg.SESEmail != "" {
		ses, err := services.NewSESMailer(ctx, cfg.Region(), cfg.SESEmail)
		if err != nil {
			log.WithError(err).Warn("SES unavailable, welcome emails disabled")
		} else {
			mailer = ses
		}
	}

	hub := services.NewRealtimeHub(log)
	foods := services.NewFoodService(db, cache)

	limiter := middlewares.NewRateLimiter(cfg.AuthRatePerSec, cfg.AuthRateBurst, log)
	routes.StartLimiterCleanup(limiter, ctx.Done())

	r := routes.SetupRouter(routes.Deps{
		DB:             db,
		Log:            log,
		Auth:           services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL, mailer, log),
		Users:          services.NewUserService(db),
		Foods:          foods,
		Logs:           services.NewLogService(db, foods, hub),
		Metrics:        services.NewMetricService(db, hub),
		Analytics:      services.NewAnalyticsService(db),
		Uploads:        services.NewUploadService(store),
		Hub:            hub,
		UploadDir:      uploadDir,
		AuthLimiter:    limiter,
		TrustedProxies: cfg.TrustedProxyList(),
		DevRoutes:      cfg.DevRoutes,
		ExposeErrors:   cfg.IsDevelopment(),
	})

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Accept"},
		MaxAge:         300,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("NutriScan API listening on :%s (%s)", cfg.Port, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
