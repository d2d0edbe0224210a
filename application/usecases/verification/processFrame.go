package verification_usecases

import (
	"time"

	"gocv.io/x/gocv"
	"veriface.io/application/repository"
	"veriface.io/application/services/alerting"
	"veriface.io/application/utils"
	"veriface.io/entities"
	"veriface.io/infrastructure/landmark"
	ltypes "veriface.io/infrastructure/landmark/types"
	"veriface.io/infrastructure/logger"
)

// ProcessFrameUseCase analyzes one base64-encoded frame for an active
// session. The record mutex serializes frames within a session so the
// detector history buffers only ever see one writer.
func ProcessFrameUseCase(sessionID string, frameBase64 string) (*entities.FrameAnalysis, error) {
	record := repository.SessionRepo().FindByID(sessionID)
	if record == nil {
		return nil, ErrSessionNotFound
	}

	raw, err := utils.DecodeBase64Image(frameBase64)
	if err != nil {
		return nil, ErrInvalidImage
	}
	frame, err := gocv.IMDecode(raw, gocv.IMReadColor)
	if err != nil || frame.Empty() {
		return nil, ErrInvalidImage
	}
	defer frame.Close()

	provider := landmark.GetProvider()
	var set *ltypes.LandmarkSet
	if provider.MeshCapable() {
		set, err = provider.ExtractLandmarks(frame)
		if err != nil {
			logger.Warning("landmark extraction failed, continuing with face detection only", logger.LoggerOptions{
				Key:  "sessionID",
				Data: sessionID,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			set = nil
		}
	}

	faceDetected := set.Len() > 0
	faceCount := 0
	if !faceDetected {
		faces := provider.DetectFaces(frame)
		faceCount = len(faces)
		faceDetected = faceCount > 0
	} else {
		faceCount = 1
	}

	record.Mu.Lock()
	defer record.Mu.Unlock()
	if record.Session.Status != entities.SessionActive {
		return nil, ErrSessionCompleted
	}

	if !faceDetected {
		alerting.Default().CreateAlert(
			entities.AlertFaceNotDetected,
			sessionID,
			entities.SeverityMedium,
			"No face detected in frame",
			map[string]any{"frameIndex": len(record.Session.FrameAnalysis)},
			&record.Session.UserID,
		)
	}
	if faceCount > 1 {
		alerting.Default().CreateAlert(
			entities.AlertMultipleFaces,
			sessionID,
			entities.SeverityMedium,
			"Multiple faces detected in frame",
			map[string]any{"faceCount": faceCount},
			&record.Session.UserID,
		)
	}

	analysis := entities.FrameAnalysis{
		Liveness:  record.Liveness.ProcessFrame(frame, set, faceDetected),
		Deepfake:  record.Deepfake.ProcessFrame(frame, set, faceDetected),
		Timestamp: time.Now(),
	}
	record.Session.FrameAnalysis = append(record.Session.FrameAnalysis, analysis)
	repository.SessionRepo().Touch(sessionID)
	return &analysis, nil
}
