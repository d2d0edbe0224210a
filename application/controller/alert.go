package controller

import (
	"net/http"

	apperrors "veriface.io/application/appErrors"
	"veriface.io/application/controller/dto"
	"veriface.io/application/interfaces"
	"veriface.io/application/services/alerting"
	server_response "veriface.io/infrastructure/serverResponse"
	"veriface.io/infrastructure/validator"
)

// ActiveAlerts lists alerts that have not been acknowledged yet.
func ActiveAlerts(ctx *interfaces.ApplicationContext[any]) {
	alerts := alerting.Default().ActiveAlerts()
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "active alerts retrieved", alerts, nil, nil)
}

// AlertStatistics summarizes alert volume by status, severity and type.
func AlertStatistics(ctx *interfaces.ApplicationContext[any]) {
	stats := alerting.Default().Statistics()
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "alert statistics retrieved", stats, nil, nil)
}

// AcknowledgeAlert marks an alert as handled by the named operator.
func AcknowledgeAlert(ctx *interfaces.ApplicationContext[dto.AcknowledgeAlertDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	alertID := ctx.GetStringParameter("alertID")
	if !alerting.Default().AcknowledgeAlert(alertID, ctx.Body.AcknowledgedBy) {
		apperrors.NotFoundError(ctx.Ctx, "alert not found")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "alert acknowledged", nil, nil, nil)
}
