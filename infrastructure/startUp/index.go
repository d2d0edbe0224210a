package startup

import (
	"veriface.io/application/services/alerting"
	"veriface.io/infrastructure/landmark"
	"veriface.io/infrastructure/logger"
	"veriface.io/infrastructure/messaging/channels"
)

// StartServices boots the loggers, landmark provider and alert dispatcher
// before the HTTP surface accepts traffic.
func StartServices() {
	logger.InitializeLogger()
	landmark.InitialiseLandmarkProvider()

	alertService := alerting.NewService(channels.BuildDefaultChannels()...)
	alerting.SetDefault(alertService)
	alertService.Start()
}

// CleanUpServices stops background workers after the server shuts down.
func CleanUpServices() {
	alerting.Default().Stop()
}
