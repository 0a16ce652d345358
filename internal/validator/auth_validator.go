package validator

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"cakeshop/internal/usecase"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcryptの上限
	maxNameLen     = 255
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

func invalid(msg string) error {
	return usecase.NewError(usecase.CodeValidation, msg)
}

// 会員登録の入力を検証
// email重複はusecase側（DUPLICATE_IDENTITY）
func (v *authValidator) ValidateRegister(email string, password string, name string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" {
		return invalid("email is required")
	}
	if strings.TrimSpace(name) == "" {
		return invalid("name is required")
	}
	if password == "" {
		return invalid("password is required")
	}

	// email形式
	if !isEmailLike(email) {
		return invalid("invalid email format")
	}

	if len(password) < minPasswordLen {
		return invalid("password must be at least 6 characters")
	}
	if len(password) > maxPasswordLen {
		return invalid("password is too long")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return invalid("name is too long")
	}

	return nil
}

// ログインの入力を検証
// 形式チェックはしない（存在しないメールと同じ扱いにする）
func (v *authValidator) ValidateLogin(email string, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return invalid("email and password are required")
	}
	return nil
}

// 簡易メール形式をチェック（表示名付きは不可）
func isEmailLike(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}
