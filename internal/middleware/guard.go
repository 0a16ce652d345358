package middleware

import (
	"context"

	"cakeshop/internal/domain/model"
	"cakeshop/internal/usecase"
)

// ログイン必須の操作で呼ぶ。
// 不正なトークンが付いていた場合はそのエラー（INVALID_TOKEN等）を返す。
func RequireUser(ctx context.Context) (*model.User, error) {
	if u, ok := UserFromContext(ctx); ok {
		return u, nil
	}
	if err := SessionErrorFromContext(ctx); err != nil {
		return nil, err
	}
	return nil, usecase.NewError(usecase.CodeUnauthenticated, "authentication required")
}

// roleがADMINかどうかを確認します。
func RequireAdmin(ctx context.Context) (*model.User, error) {
	u, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	//USERは拒否、ADMINだけ許可
	if !u.IsAdmin() {
		return nil, usecase.NewError(usecase.CodeForbidden, "admin only")
	}
	return u, nil
}

// userIdの指定は本人かADMINだけ。空なら本人。
func ResolveUserID(ctx context.Context, requested string) (string, error) {
	u, err := RequireUser(ctx)
	if err != nil {
		return "", err
	}
	if requested == "" || requested == u.ID {
		return u.ID, nil
	}
	if u.IsAdmin() {
		return requested, nil
	}
	return "", usecase.NewError(usecase.CodeForbidden, "cannot access another user's data")
}
