package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cakeshop/internal/config"
	"cakeshop/internal/gateway"
	"cakeshop/internal/handler"
	"cakeshop/internal/infra/cache"
	"cakeshop/internal/infra/db"
	infraRepo "cakeshop/internal/infra/repository"
	"cakeshop/internal/server"
	"cakeshop/internal/usecase"
	auth "cakeshop/internal/usecase/auth_usecase"
	"cakeshop/internal/validator"

	"github.com/google/uuid"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now().UTC()
}

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, cfg.Database.DSN()); err != nil {
			logger.Fatalf("migrate: %v", err)
		}
		logger.Println("migrations applied")
	}

	//DB接続
	gormDB, err := db.Connect(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer db.Close(gormDB)

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//Redisがあればカタログをキャッシュ
	cakeRepo, closeCache := cache.WrapCakeRepository(ctx, cfg.Redis, cfg.CatalogCacheTTL,
		infraRepo.NewCakeGormRepository(gormDB), logger)
	defer closeCache()

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	hasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()
	tokens := auth.NewJWTTokenService(cfg.JWTSecret, cfg.SessionTTL)

	authValidator := validator.NewAuthValidator()
	orderValidator := validator.NewOrderValidator()

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, authValidator, hasher, tokens, idGen, clock)
	loginUC := auth.NewLoginUsecase(userRepo, authValidator, verifier, tokens, clock)
	sessionUC := auth.NewSessionUsecase(userRepo, tokens)

	catalogUC := usecase.NewCatalogUsecase(cakeRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cakeRepo, idGen)
	orderUC := usecase.NewOrderUsecase(txm, orderRepo, orderValidator, idGen, clock,
		usecase.WithClientPrices(cfg.TrustClientPrices))
	adminOrderUC := usecase.NewAdminOrderUsecase(txm, idGen, clock, cfg.StrictOrderStatus)

	if cfg.TrustClientPrices {
		logger.Println("TRUST_CLIENT_PRICES=true: order totals use client-supplied prices")
	}
	if !cfg.StrictOrderStatus {
		logger.Println("STRICT_ORDER_STATUS=false: order status transitions are not checked")
	}

	schema, err := gateway.NewSchema(&gateway.Resolver{
		Catalog:     catalogUC,
		Cart:        cartUC,
		Orders:      orderUC,
		AdminOrders: adminOrderUC,
		Register:    registerUC,
		Login:       loginUC,
		Session:     sessionUC,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatalf("build graphql schema: %v", err)
	}

	//Handler生成
	srv := server.New(cfg, logger, server.Deps{
		Session: sessionUC,
		GraphQL: handler.NewGraphQLHandler(&schema, cfg.GoEnv != "prod"),
		Health: handler.NewHealthHandler(handler.PingFunc(func(ctx context.Context) error {
			return db.Ping(ctx, gormDB)
		})),
	})

	//Server起動
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil {
			logger.Printf("server error: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
