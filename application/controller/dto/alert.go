package dto

type AcknowledgeAlertDTO struct {
	AcknowledgedBy string `json:"acknowledgedBy" validate:"required,min=1,max=128"`
}
