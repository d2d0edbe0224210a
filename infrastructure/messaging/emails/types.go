package emails

import "time"

type EmailServiceType interface {
	SendEmail(toEmail string, subject string, templateName string, opts interface{}) bool
	loadTemplates(templateName string, opts interface{}) *string
}

// SecurityAlertPayload feeds the security_alert email template.
type SecurityAlertPayload struct {
	AlertID   string
	Severity  string
	AlertType string
	SessionID string
	Message   string
	Timestamp time.Time
}
