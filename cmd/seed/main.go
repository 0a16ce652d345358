package main

import (
	"context"
	"log"
	"os"
	"time"

	"cakeshop/internal/config"
	"cakeshop/internal/infra/cache"
	"cakeshop/internal/infra/db"
	infraRepo "cakeshop/internal/infra/repository"
	"cakeshop/internal/seed"
	auth "cakeshop/internal/usecase/auth_usecase"

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
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	gormDB, err := db.Connect(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer db.Close(gormDB)

	//APIと同じキャッシュを通して書く（更新したケーキのキーが消える）
	cakeRepo, closeCache := cache.WrapCakeRepository(ctx, cfg.Redis, cfg.CatalogCacheTTL,
		infraRepo.NewCakeGormRepository(gormDB), logger)
	defer closeCache()

	s := seed.NewSeeder(
		infraRepo.NewUserGormRepository(gormDB),
		cakeRepo,
		auth.NewBcryptPasswordHasher(cfg.BcryptCost),
		&uuidGenerator{},
		&realClock{},
		logger,
	)
	if err := s.Apply(ctx); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
