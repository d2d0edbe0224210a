package sms

import (
	"encoding/json"
	"fmt"
	"os"

	"veriface.io/infrastructure/logger"
	"veriface.io/infrastructure/network"
)

type TermiiService struct {
	Network *network.NetworkController
	API_KEY string
}

type TermiiSendResponse struct {
	MessageID *string `json:"message_id"`
	Message   *string `json:"message"`
	Balance   float64 `json:"balance"`
}

// SendSMS delivers a plain text message. Outside production the send is
// skipped so local runs never burn credits.
func (ts *TermiiService) SendSMS(phone string, message string) bool {
	if os.Getenv("ENV") != "production" {
		logger.Info(fmt.Sprintf("skipping sms delivery to %s outside production", phone))
		return true
	}
	response, statusCode, err := ts.Network.Post("/sms/send", nil, map[string]any{
		"api_key": ts.API_KEY,
		"from":    "N-Alert",
		"to":      phone,
		"sms":     message,
		"type":    "plain",
		"channel": "dnd",
	})
	if err != nil {
		logger.Error("error sending sms", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return false
	}
	var termiiResponse TermiiSendResponse
	json.Unmarshal(*response, &termiiResponse)
	if *statusCode != 200 {
		logger.Error("request to termii for sms delivery was unsuccessful", logger.LoggerOptions{
			Key:  "statusCode",
			Data: fmt.Sprintf("%d", *statusCode),
		}, logger.LoggerOptions{
			Key:  "data",
			Data: termiiResponse,
		})
		return false
	}
	logger.Info(fmt.Sprintf("alert SMS sent to %s", phone), logger.LoggerOptions{
		Key:  "res",
		Data: termiiResponse,
	})
	return true
}
