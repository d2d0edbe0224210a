package verification_usecases

import (
	"time"

	"veriface.io/application/constants"
	"veriface.io/application/repository"
	"veriface.io/application/services/deepfake"
	"veriface.io/application/services/liveness"
	"veriface.io/application/utils"
	"veriface.io/entities"
	"veriface.io/infrastructure/logger"
)

// StartSessionUseCase creates a verification session with fresh detector
// state. Session ids are unguessable UUIDs; detector buffers are released
// when the session expires or completes.
func StartSessionUseCase(userID string) *entities.Session {
	session := &entities.Session{
		ID:        utils.GenerateSessionID(),
		UserID:    userID,
		Status:    entities.SessionActive,
		CreatedAt: time.Now(),
	}
	record := &repository.SessionRecord{
		Session:  session,
		Liveness: liveness.NewDetector(constants.ConfidenceThreshold),
		Deepfake: deepfake.NewDetector(constants.HistorySize),
	}
	repository.SessionRepo().Save(record)

	logger.Info("verification session started", logger.LoggerOptions{
		Key:  "sessionID",
		Data: session.ID,
	}, logger.LoggerOptions{
		Key:  "userID",
		Data: userID,
	})
	return session
}
