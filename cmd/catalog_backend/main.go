package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/localecart/catalog_backend/internal/adapters/jsondata"
	"github.com/localecart/catalog_backend/internal/adapters/preference"
	"github.com/localecart/catalog_backend/internal/core/domain"
	"github.com/localecart/catalog_backend/internal/core/ports"
	"github.com/localecart/catalog_backend/internal/core/services"
	"github.com/localecart/catalog_backend/internal/handlers"
	"github.com/localecart/catalog_backend/internal/middleware"
	"github.com/localecart/catalog_backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// Redis keys for the persisted preferences.
const (
	currencyPrefKey = "pref:currency"
	languagePrefKey = "pref:language"
)

// @title Catalog Backend API
// @version 1.0
// @description Catalog resolution backend: currencies, localization and products.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Preference stores: Redis when configured, in-process otherwise.
	var redisClient *redis.Client
	var currencyPrefs, languagePrefs ports.PreferenceStore
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		logger.Info("Redis connection established", slog.String("addr", cfg.RedisAddr))

		currencyPrefs = preference.NewRedisStore(redisClient, currencyPrefKey)
		languagePrefs = preference.NewRedisStore(redisClient, languagePrefKey)
	} else {
		currencyPrefs = preference.NewMemoryStore()
		languagePrefs = preference.NewMemoryStore()
	}

	container, err := services.NewContainer(services.ContainerDeps{
		CurrencyLoader:  jsondata.NewCurrencyLoader(cfg.DataDir),
		CatalogLoader:   jsondata.NewCatalogLoader(cfg.DataDir),
		CategoryLoader:  jsondata.NewCategoryLoader(cfg.DataDir),
		CurrencyPrefs:   currencyPrefs,
		LanguagePrefs:   languagePrefs,
		DefaultCurrency: cfg.DefaultCurrency,
		DefaultLanguage: cfg.DefaultLanguage,
		Languages:       services.DefaultLanguages,
	})
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Pick up preferences persisted by a previous run.
	if err := container.Currency.RestorePreference(ctx); err != nil {
		logger.Warn("Failed to restore currency preference", slog.String("error", err.Error()))
	}
	if err := container.Localization.RestorePreference(ctx); err != nil {
		logger.Warn("Failed to restore language preference", slog.String("error", err.Error()))
	}

	container.Currency.SubscribeCurrencyChanged(func(e domain.CurrencyChangedEvent) {
		logger.Info("Active currency changed",
			slog.String("previous", e.Previous), slog.String("current", e.Current))
	})
	container.Localization.SubscribeLanguageChanged(func(e domain.LanguageChangedEvent) {
		logger.Info("Active language changed",
			slog.String("previous", e.Previous), slog.String("current", e.Current))
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	ipLimiter, err := newRateLimiter(cfg, redisClient)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(ipLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, container.Facades())

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newRateLimiter builds an IP rate limiter from the configured rate,
// backed by Redis when available so limits hold across instances.
func newRateLimiter(cfg *config.Config, redisClient *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	if redisClient != nil {
		store, err := limiterredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{
			Prefix: "ratelimit",
		})
		if err != nil {
			return nil, err
		}
		return limiter.New(store, rate), nil
	}
	return limiter.New(limitermem.NewStore(), rate), nil
}
