package repository

import (
	"context"

	"cakeshop/internal/domain/model"
)

// 一覧検索。空文字は条件なし。
type CakeListQuery struct {
	// name / description / flavor の部分一致（大文字小文字を無視）
	Search string
	// 完全一致
	Category string
}

// ケーキの永続化（保存・取得）だけを約束。
type CakeRepository interface {
	// 新しい順
	List(ctx context.Context, q CakeListQuery) ([]model.Cake, error)
	FindByID(ctx context.Context, id string) (model.Cake, error)
	// 重複なし・昇順
	ListCategories(ctx context.Context) ([]string, error)

	// 注文確定用。Tx内で価格が変わらないよう行をロックして取得する。
	FindByIDsForShare(ctx context.Context, ids []string) ([]model.Cake, error)

	// seed用。名前が同じなら更新。
	UpsertByName(ctx context.Context, cake *model.Cake) error
}
