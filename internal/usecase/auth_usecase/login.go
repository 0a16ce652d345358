package auth

import (
	"context"

	"cakeshop/internal/repository"
	"cakeshop/internal/usecase"
)

// 存在しないメールでも照合を1回走らせるためのハッシュ（cost 10）。結果は見ない。
// 応答時間でアカウントの有無が分からないようにする。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// メールが無い場合もパスワード違いも同じエラー（アカウントの有無を漏らさない）
func invalidCredentials() error {
	return usecase.NewError(usecase.CodeInvalidCredentials, "invalid credentials")
}

type LoginUsecase struct {
	userRepo  repository.UserRepository
	validator usecase.AuthValidator
	verifier  PasswordVerifier
	issuer    AccessTokenIssuer
	clock     usecase.Clock
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	validator usecase.AuthValidator,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock usecase.Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo:  userRepo,
		validator: validator,
		verifier:  verifier,
		issuer:    issuer,
		clock:     clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (AuthOutput, error) {
	var out AuthOutput

	if err := u.validator.ValidateLogin(in.Email, in.Password); err != nil {
		return out, err
	}

	//emailでユーザー取得
	user, err := u.userRepo.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return out, usecase.StorageError("find user by email", err)
	}
	if user == nil {
		u.verifier.Verify(in.Password, dummyPasswordHash)
		return out, invalidCredentials()
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return out, invalidCredentials()
	}

	token, exp, err := u.issuer.Issue(user.ID, u.clock.Now())
	if err != nil {
		return out, err
	}

	out.Token = token
	out.ExpiresAt = exp.Unix()
	out.User = safeUser(user)
	return out, nil
}
