package repository

import (
	"context"
	"errors"
	"strings"

	"cakeshop/internal/domain/model"
	repo "cakeshop/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CakeGormRepository struct {
	db *gorm.DB
}

// DI
func NewCakeGormRepository(db *gorm.DB) *CakeGormRepository {
	return &CakeGormRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// 検索/カテゴリで絞って新しい順に返す。
func (r *CakeGormRepository) List(ctx context.Context, q repo.CakeListQuery) ([]model.Cake, error) {
	var cakes []model.Cake

	tx := r.db.WithContext(ctx).Model(&model.Cake{})

	// name / description / flavor のどれかに含まれる
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + likeEscaper.Replace(s) + "%"
		tx = tx.Where("(name ILIKE ? OR description ILIKE ? OR flavor ILIKE ?)", like, like, like)
	}

	if c := strings.TrimSpace(q.Category); c != "" {
		tx = tx.Where("category = ?", c)
	}

	if err := tx.Order("created_at desc").Order("id desc").Find(&cakes).Error; err != nil {
		return []model.Cake{}, err
	}
	return cakes, nil
}

// IDで取得
func (r *CakeGormRepository) FindByID(ctx context.Context, id string) (model.Cake, error) {
	if !validID(id) {
		return model.Cake{}, repo.ErrNotFound
	}

	var c model.Cake
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cake{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cake{}, err
	}
	return c, nil
}

func (r *CakeGormRepository) ListCategories(ctx context.Context) ([]string, error) {
	var cats []string
	err := r.db.WithContext(ctx).
		Model(&model.Cake{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &cats).Error
	if err != nil {
		return []string{}, err
	}
	return cats, nil
}

// FOR SHARE: Tx終了まで価格・在庫の更新を待たせる
func (r *CakeGormRepository) FindByIDsForShare(ctx context.Context, ids []string) ([]model.Cake, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return []model.Cake{}, nil
	}

	var cakes []model.Cake
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("id IN ?", valid).
		Find(&cakes).Error
	if err != nil {
		return []model.Cake{}, err
	}
	return cakes, nil
}

// 名前が同じなら内容を上書き。cake.IDは保存された行のIDになる。
func (r *CakeGormRepository) UpsertByName(ctx context.Context, cake *model.Cake) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"description", "price", "image", "category", "weight", "flavor", "in_stock", "updated_at",
			}),
		}).Create(cake).Error
		if err != nil {
			return err
		}

		var saved model.Cake
		if err := tx.Where("name = ?", cake.Name).First(&saved).Error; err != nil {
			return err
		}
		*cake = saved
		return nil
	})
}
