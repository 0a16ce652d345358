package auth

import (
	"context"
	"strings"

	"cakeshop/internal/domain/model"
	"cakeshop/internal/repository"
	"cakeshop/internal/usecase"
)

func invalidToken() error {
	return usecase.NewError(usecase.CodeInvalidToken, "invalid or expired token")
}

// SessionUsecase はトークンからユーザーを引く。
// リクエストごとに1回、middlewareから呼ばれる。
type SessionUsecase struct {
	userRepo repository.UserRepository
	verifier TokenVerifier
}

func NewSessionUsecase(userRepo repository.UserRepository, verifier TokenVerifier) *SessionUsecase {
	return &SessionUsecase{userRepo: userRepo, verifier: verifier}
}

func (u *SessionUsecase) Resolve(ctx context.Context, token string) (*model.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, invalidToken()
	}

	userID, err := u.verifier.Verify(token)
	if err != nil {
		return nil, invalidToken()
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, usecase.StorageError("find user", err)
	}
	// 削除済みユーザーのトークン
	if user == nil {
		return nil, invalidToken()
	}

	safe := safeUser(user)
	return &safe, nil
}
