package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shankz20191/qkart-backend/cache"
	"github.com/Shankz20191/qkart-backend/common/logger"
	"github.com/Shankz20191/qkart-backend/config"
	"github.com/Shankz20191/qkart-backend/controllers"
	"github.com/Shankz20191/qkart-backend/database"
	"github.com/Shankz20191/qkart-backend/kafka"
	"github.com/Shankz20191/qkart-backend/repository"
	"github.com/Shankz20191/qkart-backend/routes"
	"github.com/Shankz20191/qkart-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	mongoClient, db, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zapLogger.Fatal("mongo connection failed", zap.Error(err))
	}
	zapLogger.Info("connected to MongoDB", zap.String("db", cfg.MongoDB))

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	zapLogger.Info("connected to Redis")

	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)

	cartRepo := repository.NewCartRepository(db)
	if err := cartRepo.EnsureIndexes(context.Background()); err != nil {
		zapLogger.Fatal("failed to ensure cart indexes", zap.Error(err))
	}

	catalog := services.NewCatalogService(
		repository.NewProductRepository(db),
		cache.NewProductCache(redisClient, cfg.ProductCacheTTL),
		zapLogger,
	)
	cartService := services.NewCartService(
		catalog,
		cartRepo,
		repository.NewUserRepository(db),
		repository.NewSettlementRepository(mongoClient, db),
		producer,
		cfg.DefaultAddress,
		cfg.DefaultPaymentOption,
		zapLogger,
	)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	routes.RegisterCartRoutes(router, controllers.NewCartController(cartService), cfg, zapLogger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zapLogger.Info("cart service listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLogger.Info("shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("shutdown error", zap.Error(err))
	}

	producer.Close()
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("redis close error", zap.Error(err))
	}
	if err := database.DisconnectMongo(mongoClient); err != nil {
		zapLogger.Error("mongo disconnect error", zap.Error(err))
	}
	zapLogger.Info("server shutdown complete")
}
