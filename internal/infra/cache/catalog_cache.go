package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"cakeshop/internal/domain/model"
	repo "cakeshop/internal/repository"
)

const (
	keyCategories = "catalog:categories"
	keyCakePrefix = "catalog:cake:"
)

// CatalogCache は CakeRepository の前に置く読み込みキャッシュ。
// カテゴリ一覧とID指定の取得だけをキャッシュする。
// Redisが落ちていてもDBで応答する（ログだけ出す）。
type CatalogCache struct {
	repo.CakeRepository
	store  Store
	ttl    time.Duration
	logger *log.Logger
}

func NewCatalogCache(inner repo.CakeRepository, store Store, ttl time.Duration, logger *log.Logger) *CatalogCache {
	return &CatalogCache{
		CakeRepository: inner,
		store:          store,
		ttl:            ttl,
		logger:         logger,
	}
}

func (c *CatalogCache) FindByID(ctx context.Context, id string) (model.Cake, error) {
	key := keyCakePrefix + id

	var cached model.Cake
	if c.load(ctx, key, &cached) {
		return cached, nil
	}

	cake, err := c.CakeRepository.FindByID(ctx, id)
	if err != nil {
		return model.Cake{}, err
	}
	c.save(ctx, key, cake)
	return cake, nil
}

func (c *CatalogCache) ListCategories(ctx context.Context) ([]string, error) {
	var cached []string
	if c.load(ctx, keyCategories, &cached) {
		return cached, nil
	}

	cats, err := c.CakeRepository.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	c.save(ctx, keyCategories, cats)
	return cats, nil
}

// 更新したら該当キーを消す
func (c *CatalogCache) UpsertByName(ctx context.Context, cake *model.Cake) error {
	if err := c.CakeRepository.UpsertByName(ctx, cake); err != nil {
		return err
	}
	if err := c.store.Delete(ctx, keyCategories, keyCakePrefix+cake.ID); err != nil {
		c.logger.Printf("catalog cache: invalidate %s: %v", cake.ID, err)
	}
	return nil
}

func (c *CatalogCache) load(ctx context.Context, key string, dst interface{}) bool {
	b, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			c.logger.Printf("catalog cache: get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		c.logger.Printf("catalog cache: decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *CatalogCache) save(ctx context.Context, key string, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		c.logger.Printf("catalog cache: encode %s: %v", key, err)
		return
	}
	if err := c.store.Set(ctx, key, b, c.ttl); err != nil {
		c.logger.Printf("catalog cache: set %s: %v", key, err)
	}
}
