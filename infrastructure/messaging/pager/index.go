package pager

import (
	"fmt"
	"os"

	"veriface.io/infrastructure/logger"
	"veriface.io/infrastructure/network"
)

// EventsService triggers on-call pages through a PagerDuty-compatible
// events endpoint.
type EventsService struct {
	Network    *network.NetworkController
	RoutingKey string
}

// TriggerIncident opens an incident for the on-call engineer. dedupKey
// collapses repeat pages for the same alert.
func (es *EventsService) TriggerIncident(summary string, severity string, dedupKey string, details map[string]any) bool {
	if os.Getenv("ENV") != "production" {
		logger.Info("skipping on-call page outside production", logger.LoggerOptions{
			Key:  "summary",
			Data: summary,
		})
		return true
	}
	response, statusCode, err := es.Network.Post("/v2/enqueue", nil, map[string]any{
		"routing_key":  es.RoutingKey,
		"event_action": "trigger",
		"dedup_key":    dedupKey,
		"payload": map[string]any{
			"summary":        summary,
			"severity":       severity,
			"source":         "verification-engine",
			"custom_details": details,
		},
	})
	if err != nil {
		logger.Error("error triggering pager incident", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return false
	}
	if *statusCode != 202 {
		logger.Error("pager events endpoint rejected the incident", logger.LoggerOptions{
			Key:  "statusCode",
			Data: fmt.Sprintf("%d", *statusCode),
		}, logger.LoggerOptions{
			Key:  "body",
			Data: string(*response),
		})
		return false
	}
	return true
}
