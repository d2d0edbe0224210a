package slack

import (
	"fmt"

	"veriface.io/infrastructure/logger"
	"veriface.io/infrastructure/network"
)

// WebhookService posts alert notifications into a Slack channel through
// an incoming webhook.
type WebhookService struct {
	Network *network.NetworkController
	Path    string
}

func (ws *WebhookService) PostMessage(text string, blocks []map[string]any) bool {
	body := map[string]any{"text": text}
	if len(blocks) > 0 {
		body["blocks"] = blocks
	}
	response, statusCode, err := ws.Network.Post(ws.Path, nil, body)
	if err != nil {
		logger.Error("error posting slack message", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return false
	}
	if *statusCode != 200 {
		logger.Error("slack webhook returned a non-200 response", logger.LoggerOptions{
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
