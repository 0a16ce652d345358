package repository

import (
	"cakeshop/internal/domain/model"
	repo "cakeshop/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カート明細を一覧取得（新しい順）
func (r *CartGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	if !validID(userID) {
		return []model.CartItem{}, nil
	}

	var items []model.CartItem

	if err := r.db.WithContext(ctx).
		Preload("Cake").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Order("id desc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}

	return items, nil
}

// 同一ケーキは数量加算。
// 探してから書くとレースするので、一意制約 + ON CONFLICT の1文で行う。
func (r *CartGormRepository) Upsert(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	if item.Quantity <= 0 {
		return model.CartItem{}, errors.New("invalid quantity")
	}
	if item.Quantity > model.MaxLineQuantity {
		return model.CartItem{}, repo.ErrQuantityLimit
	}
	if !validID(item.UserID) || !validID(item.CakeID) {
		return model.CartItem{}, repo.ErrNotFound
	}

	var saved model.CartItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		item.CreatedAt = now
		item.UpdatedAt = now
		item.Cake = nil

		// 加算後に上限を超える場合は更新されず0行になる
		res := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "cake_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				"updated_at": gorm.Expr("EXCLUDED.updated_at"),
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				gorm.Expr("cart_items.quantity + EXCLUDED.quantity <= ?", model.MaxLineQuantity),
			}},
		}).Create(&item)
		if res.Error != nil {
			if isForeignKeyViolation(res.Error) {
				return repo.ErrNotFound
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrQuantityLimit
		}

		// 既存行が更新された場合IDが変わらないので読み直す
		return tx.Preload("Cake").
			Where("user_id = ? AND cake_id = ?", item.UserID, item.CakeID).
			First(&saved).Error
	})
	if err != nil {
		return model.CartItem{}, err
	}
	return saved, nil
}

// 明細を取得（本人のものだけ）
func (r *CartGormRepository) FindByID(ctx context.Context, userID string, cartItemID string) (model.CartItem, error) {
	if !validID(cartItemID) {
		return model.CartItem{}, repo.ErrNotFound
	}

	var item model.CartItem

	err := r.db.WithContext(ctx).
		Preload("Cake").
		Where("id = ? AND user_id = ?", cartItemID, userID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// 明細の数量を置き換え
func (r *CartGormRepository) UpdateQuantity(ctx context.Context, userID string, cartItemID string, qty int) error {
	if !validID(cartItemID) {
		return repo.ErrNotFound
	}

	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Updates(map[string]interface{}{
			"quantity":   qty,
			"updated_at": time.Now(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 明細を削除
func (r *CartGormRepository) DeleteByID(ctx context.Context, userID string, cartItemID string) error {
	if !validID(cartItemID) {
		return repo.ErrNotFound
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ユーザーの明細を全削除。0件でもエラーにしない。
func (r *CartGormRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	if !validID(userID) {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
