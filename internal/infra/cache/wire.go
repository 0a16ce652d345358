package cache

import (
	"context"
	"log"
	"time"

	"cakeshop/internal/config"
	repo "cakeshop/internal/repository"
)

// WrapCakeRepository はRedisが設定されていれば inner をカタログキャッシュで包む。
// api と seed の両方がこれを通すので、seedでの更新もキャッシュを消す。
// 戻り値の close は必ず呼ぶ（Redis無しなら何もしない）。
func WrapCakeRepository(ctx context.Context, cfg config.Redis, ttl time.Duration, inner repo.CakeRepository, logger *log.Logger) (repo.CakeRepository, func()) {
	if !cfg.Enabled() {
		return inner, func() {}
	}

	client, err := NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Printf("redis unavailable, catalog cache disabled: %v", err)
		return inner, func() {}
	}
	logger.Printf("catalog cache enabled (%s)", cfg.Addr)

	return NewCatalogCache(inner, NewRedisStore(client), ttl, logger), func() {
		_ = client.Close()
	}
}
