package usecase

import (
	"errors"
	"fmt"
)

// Code はクライアントに返すエラーの種類。
type Code string

const (
	CodeDuplicateIdentity  Code = "DUPLICATE_IDENTITY"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeInvalidToken       Code = "INVALID_TOKEN"
	CodeNotFound           Code = "NOT_FOUND"
	CodeInvalidQuantity    Code = "INVALID_QUANTITY"
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
	CodeInvalidTransition  Code = "INVALID_STATUS_TRANSITION"
	CodeOutOfStock         Code = "OUT_OF_STOCK"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeForbidden          Code = "FORBIDDEN"
	// 想定外（トークン署名の失敗など）
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error はusecaseが返すエラー。
// Messageはそのままクライアントに見せる。原因(Err)は見せずにログへ。
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GraphQLのerrors[].extensionsに載る
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.Code)}
}

func NewError(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) error {
	return &Error{Code: code, Message: message, Err: err}
}

func AsError(err error) (*Error, bool) {
	var ue *Error
	ok := errors.As(err, &ue)
	return ue, ok
}

// errのCodeがcodeならtrue
func IsCode(err error, code Code) bool {
	ue, ok := AsError(err)
	return ok && ue.Code == code
}

// DBエラーは握りつぶさずにSTORAGE_UNAVAILABLEで返す
func storageError(op string, err error) error {
	return Wrap(CodeStorageUnavailable, "storage unavailable", fmt.Errorf("%s: %w", op, err))
}

// StorageError は他パッケージ（auth）用
func StorageError(op string, err error) error {
	return storageError(op, err)
}

func notFound(what string) error {
	return NewError(CodeNotFound, what+" not found")
}

func unauthenticated() error {
	return NewError(CodeUnauthenticated, "authentication required")
}
