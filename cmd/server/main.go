package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	cartapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/cart"
	catalogapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/catalog"
	checkoutapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/checkout"
	communityapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/community"
	identityapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/identity"
	orderingapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/ordering"
	settingsapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/settings"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/cart"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/analytics"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/auth"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/cache"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/config"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/logger"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/persistence"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/storage"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/telemetry"
	"github.com/ozercanmutlu-ship-it/capdana/internal/interfaces/http/handler"
	"github.com/ozercanmutlu-ship-it/capdana/internal/interfaces/http/middleware"
	"github.com/ozercanmutlu-ship-it/capdana/internal/interfaces/http/router"
)

var version = "dev"

func main() {
	configFile := flag.String("config", "", "path to config.toml")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() { _ = log.Sync() }()

	log.Info("starting capdana",
		zap.String("version", version),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.HTTP.Port),
	)

	ctx := context.Background()

	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("error shutting down tracing", zap.Error(err))
		}
	}()

	db, err := persistence.Open(cfg.Database, log, persistence.Options{
		LogLevel:      cfg.Log.Level,
		EnableTracing: cfg.Telemetry.Enabled,
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected", zap.String("host", cfg.Database.Host))

	// The cart lives in redis when available, memory otherwise.
	var backing cart.BackingStore
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = client.Close() }()
		// Key layout: capdana:<cart.key_prefix><cart id>
		backing = cache.NewRedisCartStore(client, log,
			cache.WithCartTTL(cfg.Cart.TTL),
			cache.WithKeyPrefix("capdana:"),
		)
		log.Info("cart backing store: redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		backing = cache.NewInMemoryCartStore()
		log.Warn("cart backing store: in-memory, carts are lost on restart")
	}

	var objectStorage storage.ObjectStorage
	if cfg.Storage.Provider == "s3" {
		objectStorage, err = storage.NewS3Storage(ctx, cfg.Storage, log)
		if err != nil {
			log.Fatal("failed to initialize object storage", zap.Error(err))
		}
	} else {
		objectStorage = storage.NewStubStorage()
		log.Warn("object storage: in-memory stub, uploads are lost on restart")
	}

	// Repositories
	frontRepo := persistence.NewGormFrontRepository(db)
	bandanaRepo := persistence.NewGormBandanaRepository(db)
	readyRepo := persistence.NewGormReadyCapdanaRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	postRepo := persistence.NewGormPostRepository(db)
	userRepo := persistence.NewGormUserRepository(db)
	settingsRepo := persistence.NewGormSettingsRepository(db)

	// Services
	jwtService := auth.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
	)
	sink := analytics.NewZapSink(log)

	catalogService := catalogapp.NewService(frontRepo, bandanaRepo, readyRepo, log)
	cartService := cartapp.NewService(backing, sink, readyRepo, frontRepo, bandanaRepo, settingsRepo, cfg.Cart.KeyPrefix, log)
	checkoutService := checkoutapp.NewService(orderRepo, cartService, log)
	orderingService := orderingapp.NewService(orderRepo, log)
	communityService := communityapp.NewService(postRepo, orderRepo, objectStorage, log)
	identityService := identityapp.NewService(userRepo, jwtService, log)
	settingsService := settingsapp.NewService(settingsRepo, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig()))

	requireAuth := middleware.RequireAuth(jwtService)
	requireAdmin := middleware.RequireAdmin()

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(version)).
		Register(handler.NewAuthHandler(identityService, requireAuth)).
		Register(handler.NewCatalogHandler(catalogService, requireAuth, requireAdmin)).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewOrderHandler(checkoutService, orderingService, requireAuth, requireAdmin)).
		Register(handler.NewCommunityHandler(communityService, requireAuth, requireAdmin)).
		Register(handler.NewSettingsHandler(settingsService, requireAuth, requireAdmin)).
		Register(handler.NewUploadHandler(objectStorage, requireAuth, requireAdmin))
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("forced shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
