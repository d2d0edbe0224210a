package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "veriface.io/application/appErrors"
	"veriface.io/application/controller"
	"veriface.io/application/controller/dto"
	"veriface.io/application/interfaces"
)

func VerificationRouter(router *gin.RouterGroup) {
	verificationRouter := router.Group("/verification")
	{
		verificationRouter.POST("/sessions", func(ctx *gin.Context) {
			var body dto.StartSessionDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.StartVerificationSession(&interfaces.ApplicationContext[dto.StartSessionDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		verificationRouter.POST("/sessions/:sessionID/challenge", func(ctx *gin.Context) {
			var body dto.IssueChallengeDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.IssueChallenge(&interfaces.ApplicationContext[dto.IssueChallengeDTO]{
				Ctx:   ctx,
				Body:  &body,
				Param: pathParams(ctx),
			})
		})

		verificationRouter.POST("/sessions/:sessionID/frames", func(ctx *gin.Context) {
			var body dto.ProcessFrameDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.ProcessFrame(&interfaces.ApplicationContext[dto.ProcessFrameDTO]{
				Ctx:   ctx,
				Body:  &body,
				Param: pathParams(ctx),
			})
		})

		verificationRouter.POST("/sessions/:sessionID/video", func(ctx *gin.Context) {
			controller.ProcessVerificationVideo(&interfaces.ApplicationContext[any]{
				Ctx:   ctx,
				Param: pathParams(ctx),
			})
		})

		verificationRouter.POST("/sessions/:sessionID/complete", func(ctx *gin.Context) {
			controller.CompleteVerification(&interfaces.ApplicationContext[any]{
				Ctx:   ctx,
				Param: pathParams(ctx),
			})
		})

		verificationRouter.GET("/sessions/:sessionID", func(ctx *gin.Context) {
			controller.SessionStatus(&interfaces.ApplicationContext[any]{
				Ctx:   ctx,
				Param: pathParams(ctx),
			})
		})
	}
}

func pathParams(ctx *gin.Context) map[string]any {
	params := map[string]any{}
	for _, p := range ctx.Params {
		params[p.Key] = p.Value
	}
	return params
}
