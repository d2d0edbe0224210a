package alerting

import (
	"time"

	"veriface.io/application/constants"
	"veriface.io/entities"
)

type ChannelName string

const (
	ChannelLog   ChannelName = "log"
	ChannelEmail ChannelName = "email"
	ChannelSlack ChannelName = "slack"
	ChannelSMS   ChannelName = "sms"
	ChannelPage  ChannelName = "page"
)

// PolicyEntry maps one severity tier to its notification fan-out.
// Read-only after initialization.
type PolicyEntry struct {
	Channels      []ChannelName
	Recipients    []string
	PhoneNumbers  []string
	EscalateAfter time.Duration
	Page          bool
}

// DefaultEscalationPolicies returns the static severity -> channel table.
func DefaultEscalationPolicies() map[entities.AlertSeverity]PolicyEntry {
	return map[entities.AlertSeverity]PolicyEntry{
		entities.SeverityLow: {
			Channels:      []ChannelName{ChannelLog},
			EscalateAfter: time.Hour,
		},
		entities.SeverityMedium: {
			Channels:      []ChannelName{ChannelLog, ChannelEmail},
			Recipients:    constants.ComplianceRecipients,
			EscalateAfter: 10 * time.Minute,
		},
		entities.SeverityHigh: {
			Channels:      []ChannelName{ChannelLog, ChannelEmail, ChannelSlack},
			Recipients:    constants.FraudTeamRecipients,
			EscalateAfter: 5 * time.Minute,
		},
		entities.SeverityCritical: {
			Channels:     []ChannelName{ChannelLog, ChannelEmail, ChannelSlack, ChannelSMS, ChannelPage},
			Recipients:   constants.CriticalRecipients,
			PhoneNumbers: constants.CriticalPhoneNumbers,
			Page:         true,
		},
	}
}

// NotificationChannel delivers one alert over one transport. Failures are
// logged by the dispatcher and never propagated; the alert record exists
// and is queryable regardless of delivery outcome.
type NotificationChannel interface {
	Name() ChannelName
	Send(alert entities.Alert, policy PolicyEntry) error
}
