package middleware

import (
	"context"
	"log"
	"strings"

	"cakeshop/internal/domain/model"
	"cakeshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserKey = "user" // *model.User
)

type ctxKey int

const (
	userCtxKey ctxKey = iota
	sessionErrCtxKey
)

// トークンからユーザーを引く約束（auth.SessionUsecase）
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*model.User, error)
}

// Session はリクエストごとに1回だけセッションを解決する。
// ヘッダーが無ければ匿名のまま次へ。トークンが不正でも匿名で通し、エラーだけ残す。
// 認証が必要かどうかは後段（GraphQLのresolver）が決める。
func Session(resolver SessionResolver, logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get(echo.HeaderAuthorization)
			if authz == "" {
				return next(c)
			}

			req := c.Request()
			ctx := req.Context()

			rawToken, ok := bearerToken(authz)
			if !ok {
				ctx = withSessionError(ctx, usecase.NewError(usecase.CodeInvalidToken, "invalid or expired token"))
				c.SetRequest(req.WithContext(ctx))
				return next(c)
			}

			user, err := resolver.Resolve(ctx, rawToken)
			if err != nil {
				if !usecase.IsCode(err, usecase.CodeInvalidToken) && logger != nil {
					logger.Printf("session resolve: %v", errorCause(err))
				}
				ctx = withSessionError(ctx, err)
				c.SetRequest(req.WithContext(ctx))
				return next(c)
			}

			//contextへ保存
			c.Set(CtxUserKey, user)
			c.SetRequest(req.WithContext(WithUser(ctx, user)))

			return next(c)
		}
	}
}

// Bearer形式か確認してtokenを抜く
func bearerToken(authz string) (string, bool) {
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	rawToken := strings.TrimSpace(parts[1])
	if rawToken == "" {
		return "", false
	}
	return rawToken, true
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// セッションのユーザー。匿名ならfalse。
func UserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userCtxKey).(*model.User)
	return u, ok && u != nil
}

func withSessionError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, sessionErrCtxKey, err)
}

// トークンが付いていたのに解決できなかったときのエラー
func SessionErrorFromContext(ctx context.Context) error {
	err, _ := ctx.Value(sessionErrCtxKey).(error)
	return err
}

func errorCause(err error) error {
	if ue, ok := usecase.AsError(err); ok && ue.Err != nil {
		return ue.Err
	}
	return err
}
