package middlewares

import (
	"os"

	"github.com/gin-gonic/gin"
	apperrors "veriface.io/application/appErrors"
	"veriface.io/application/interfaces"
)

// AppContextMiddleware seeds every request with an ApplicationContext so
// route handlers can hand controllers a uniform context.
func AppContextMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("AppContext", &interfaces.ApplicationContext[any]{
			Ctx:    ctx,
			Keys:   map[string]any{},
			Header: ctx.Request.Header,
		})
		ctx.Next()
	}
}

// OperatorAuthMiddleware gates the alert operations endpoints behind a
// static API key. Verification endpoints stay open to client apps.
func OperatorAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		expected := os.Getenv("OPERATOR_API_KEY")
		if expected == "" || ctx.GetHeader("x-api-key") != expected {
			apperrors.ClientError(ctx, "invalid or missing api key", nil, nil)
			return
		}
		ctx.Next()
	}
}
