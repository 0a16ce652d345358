package auth

import (
	"context"
	"errors"
	"strings"

	"cakeshop/internal/domain/model"
	"cakeshop/internal/repository"
	"cakeshop/internal/usecase"
)

// 会員登録の入力
type RegisterUserInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
	Address  *string
}

// 登録・ログインの出力（AuthPayload）
type AuthOutput struct {
	Token     string
	User      model.User
	ExpiresAt int64
}

func duplicateIdentity() error {
	return usecase.NewError(usecase.CodeDuplicateIdentity, "email is already registered")
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo  repository.UserRepository
	validator usecase.AuthValidator
	hasher    PasswordHasher
	issuer    AccessTokenIssuer
	idGen     usecase.IDGenerator
	clock     usecase.Clock
}

// DI
func NewRegisterUserUsecase(
	userRepo repository.UserRepository,
	validator usecase.AuthValidator,
	hasher PasswordHasher,
	issuer AccessTokenIssuer,
	idGen usecase.IDGenerator,
	clock usecase.Clock,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo:  userRepo,
		validator: validator,
		hasher:    hasher,
		issuer:    issuer,
		idGen:     idGen,
		clock:     clock,
	}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (AuthOutput, error) {
	var out AuthOutput

	if err := u.validator.ValidateRegister(in.Email, in.Password, in.Name); err != nil {
		return out, err
	}
	email := normalizeEmail(in.Email)

	// email重複チェック
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return out, usecase.StorageError("find user by email", err)
	}
	if existing != nil {
		return out, duplicateIdentity()
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()
	user := &model.User{
		ID:           u.idGen.NewID(),
		Email:        email,
		PasswordHash: hashed, // ハッシュを保存（平文は保存しない）
		Name:         strings.TrimSpace(in.Name),
		Phone:        trimOptional(in.Phone),
		Address:      trimOptional(in.Address),
		Role:         model.RoleUser, // 初期はUSER
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// DBへ保存（同時登録は一意制約で弾く）
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return out, duplicateIdentity()
		}
		return out, usecase.StorageError("create user", err)
	}

	token, exp, err := u.issuer.Issue(user.ID, now)
	if err != nil {
		return out, err
	}

	out.Token = token
	out.ExpiresAt = exp.Unix()
	out.User = safeUser(user)
	return out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// 空文字はnil
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// 返すときは password を空にして漏洩防止
func safeUser(u *model.User) model.User {
	out := *u
	out.PasswordHash = ""
	return out
}
