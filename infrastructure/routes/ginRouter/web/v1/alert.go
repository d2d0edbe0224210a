package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "veriface.io/application/appErrors"
	"veriface.io/application/controller"
	"veriface.io/application/controller/dto"
	"veriface.io/application/interfaces"
	middlewares "veriface.io/infrastructure/middleware"
)

func AlertRouter(router *gin.RouterGroup) {
	alertRouter := router.Group("/alerts")
	alertRouter.Use(middlewares.OperatorAuthMiddleware())
	{
		alertRouter.GET("/active", func(ctx *gin.Context) {
			controller.ActiveAlerts(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
			})
		})

		alertRouter.GET("/statistics", func(ctx *gin.Context) {
			controller.AlertStatistics(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
			})
		})

		alertRouter.POST("/:alertID/acknowledge", func(ctx *gin.Context) {
			var body dto.AcknowledgeAlertDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.AcknowledgeAlert(&interfaces.ApplicationContext[dto.AcknowledgeAlertDTO]{
				Ctx:   ctx,
				Body:  &body,
				Param: pathParams(ctx),
			})
		})
	}
}
