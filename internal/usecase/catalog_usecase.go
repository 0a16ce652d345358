package usecase

import (
	"context"
	"errors"
	"strings"

	"cakeshop/internal/domain/model"
	repo "cakeshop/internal/repository"
)

const maxSearchLen = 100

type CatalogUsecase struct {
	cakes repo.CakeRepository
}

// DI
func NewCatalogUsecase(cakes repo.CakeRepository) *CatalogUsecase {
	return &CatalogUsecase{cakes: cakes}
}

// cakes(search, category) の入力。空なら条件なし。
type ListCakesInput struct {
	Search   string
	Category string
}

func (u *CatalogUsecase) List(ctx context.Context, in ListCakesInput) ([]model.Cake, error) {
	search := strings.TrimSpace(in.Search)
	if len([]rune(search)) > maxSearchLen {
		return nil, NewError(CodeValidation, "search is too long")
	}

	cakes, err := u.cakes.List(ctx, repo.CakeListQuery{
		Search:   search,
		Category: strings.TrimSpace(in.Category),
	})
	if err != nil {
		return nil, storageError("list cakes", err)
	}
	return cakes, nil
}

// 無ければnil（エラーにしない）
func (u *CatalogUsecase) Get(ctx context.Context, id string) (*model.Cake, error) {
	cake, err := u.cakes.FindByID(ctx, strings.TrimSpace(id))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageError("find cake", err)
	}
	return &cake, nil
}

func (u *CatalogUsecase) Categories(ctx context.Context) ([]string, error) {
	cats, err := u.cakes.ListCategories(ctx)
	if err != nil {
		return nil, storageError("list categories", err)
	}
	return cats, nil
}
