package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boba-storefront/config"
	"boba-storefront/internal/cache"
	"boba-storefront/internal/database"
	"boba-storefront/internal/events"
	"boba-storefront/internal/hashing"
	"boba-storefront/internal/logger"
	"boba-storefront/internal/ratelimit"
	"boba-storefront/internal/repository"
	"boba-storefront/internal/service"
	"boba-storefront/internal/token"
	transport "boba-storefront/internal/transport/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)
	hasher := hashing.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := token.NewHSProvider(cfg.JWT.AccessSecret, cfg.JWT.Issuer, cfg.JWT.Audience)

	var bus service.EventBus
	if cfg.Kafka.Enabled {
		kafkaBus := events.NewKafkaBus(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaBus.Close()
		bus = kafkaBus
		log.Info("Kafka event bus enabled", zap.String("topic", cfg.Kafka.Topic))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var limiter ratelimit.Limiter
	switch cfg.Rate.Backend {
	case "redis":
		rdb, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Fatal("failed to connect to redis for rate limiting", zap.Error(err))
		}
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.Rate.Max, cfg.Rate.Window)
	default:
		mem := ratelimit.NewMemoryLimiter(cfg.Rate.Max, cfg.Rate.Window)
		mem.StartSweeper(ctx, cfg.Rate.Window)
		limiter = mem
	}

	router := transport.Router(transport.RouterDeps{
		Auth:       service.NewAuthService(repos.Users, hasher, tokens, cfg.JWT.AccessTTL, log),
		Catalog:    service.NewCatalogService(repos, log),
		Cart:       service.NewCartService(repos, log),
		Checkout:   service.NewCheckoutService(repos, bus, log),
		Tokens:     tokens,
		Roles:      service.ClaimsRoleResolver{},
		Limiter:    limiter,
		Production: cfg.Env == "production",
		Log:        log,
	})

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Starting storefront HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down storefront HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("Storefront HTTP server stopped gracefully")
}
