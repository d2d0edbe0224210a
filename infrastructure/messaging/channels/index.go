package channels

import (
	"fmt"
	"os"

	"veriface.io/application/services/alerting"
	"veriface.io/entities"
	"veriface.io/infrastructure/messaging/emails"
	"veriface.io/infrastructure/messaging/pager"
	"veriface.io/infrastructure/messaging/slack"
	"veriface.io/infrastructure/messaging/sms"
	"veriface.io/infrastructure/network"
)

// EmailChannel delivers alerts to the policy's recipient list over the
// resend email service.
type EmailChannel struct {
	Service emails.EmailServiceType
}

func (c *EmailChannel) Name() alerting.ChannelName { return alerting.ChannelEmail }

func (c *EmailChannel) Send(alert entities.Alert, policy alerting.PolicyEntry) error {
	subject := fmt.Sprintf("[%s] Security alert: %s", alert.Severity, alert.Type)
	payload := emails.SecurityAlertPayload{
		AlertID:   alert.ID,
		Severity:  string(alert.Severity),
		AlertType: string(alert.Type),
		SessionID: alert.SessionID,
		Message:   alert.Message,
		Timestamp: alert.Timestamp,
	}
	var failed []string
	for _, recipient := range policy.Recipients {
		if !c.Service.SendEmail(recipient, subject, "security_alert", payload) {
			failed = append(failed, recipient)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("email delivery failed for %v", failed)
	}
	return nil
}

type SlackChannel struct {
	Service *slack.WebhookService
}

func (c *SlackChannel) Name() alerting.ChannelName { return alerting.ChannelSlack }

func (c *SlackChannel) Send(alert entities.Alert, policy alerting.PolicyEntry) error {
	text := fmt.Sprintf(":rotating_light: *%s* alert `%s`\n%s\nSession: `%s` | Alert ID: `%s`",
		alert.Severity, alert.Type, alert.Message, alert.SessionID, alert.ID)
	if !c.Service.PostMessage(text, nil) {
		return fmt.Errorf("slack delivery failed for alert %s", alert.ID)
	}
	return nil
}

type SMSChannel struct {
	Service *sms.TermiiService
}

func (c *SMSChannel) Name() alerting.ChannelName { return alerting.ChannelSMS }

func (c *SMSChannel) Send(alert entities.Alert, policy alerting.PolicyEntry) error {
	message := fmt.Sprintf("VERIFACE %s ALERT: %s (session %s)", alert.Severity, alert.Type, alert.SessionID)
	var failed []string
	for _, phone := range policy.PhoneNumbers {
		if !c.Service.SendSMS(phone, message) {
			failed = append(failed, phone)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("sms delivery failed for %v", failed)
	}
	return nil
}

type PagerChannel struct {
	Service *pager.EventsService
}

func (c *PagerChannel) Name() alerting.ChannelName { return alerting.ChannelPage }

func (c *PagerChannel) Send(alert entities.Alert, policy alerting.PolicyEntry) error {
	if !policy.Page {
		return nil
	}
	summary := fmt.Sprintf("%s: %s", alert.Type, alert.Message)
	if !c.Service.TriggerIncident(summary, string(alert.Severity), alert.ID, alert.Details) {
		return fmt.Errorf("pager delivery failed for alert %s", alert.ID)
	}
	return nil
}

// BuildDefaultChannels wires every outbound transport from environment
// configuration. Channels with no credentials configured are still built;
// their transports fail soft and the dispatcher logs the failure.
func BuildDefaultChannels() []alerting.NotificationChannel {
	return []alerting.NotificationChannel{
		&EmailChannel{Service: &emails.ResendService{}},
		&SlackChannel{Service: &slack.WebhookService{
			Network: network.NewNetworkController("https://hooks.slack.com"),
			Path:    os.Getenv("SLACK_ALERT_WEBHOOK_PATH"),
		}},
		&SMSChannel{Service: &sms.TermiiService{
			Network: network.NewNetworkController(os.Getenv("TERMII_API_URL")),
			API_KEY: os.Getenv("TERMII_API_KEY"),
		}},
		&PagerChannel{Service: &pager.EventsService{
			Network:    network.NewNetworkController("https://events.pagerduty.com"),
			RoutingKey: os.Getenv("PAGERDUTY_ROUTING_KEY"),
		}},
	}
}
