package handler

import (
	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"
	"github.com/labstack/echo/v4"
)

// /graphql のエンドポイント
type GraphQLHandler struct {
	h *gqlhandler.Handler
}

// DI
func NewGraphQLHandler(schema *graphql.Schema, pretty bool) *GraphQLHandler {
	return &GraphQLHandler{
		h: gqlhandler.New(&gqlhandler.Config{
			Schema:   schema,
			Pretty:   pretty,
			GraphiQL: false,
		}),
	}
}

// requestのcontext（セッション入り）をそのままresolverへ渡す
func (h *GraphQLHandler) Serve(c echo.Context) error {
	h.h.ContextHandler(c.Request().Context(), c.Response(), c.Request())
	return nil
}
