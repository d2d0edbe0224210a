package verification_usecases

import (
	"time"

	"gocv.io/x/gocv"
	"veriface.io/application/repository"
	"veriface.io/application/services/alerting"
	"veriface.io/entities"
	"veriface.io/infrastructure/landmark"
	ltypes "veriface.io/infrastructure/landmark/types"
	"veriface.io/infrastructure/logger"
	"veriface.io/infrastructure/video"
)

// Cap on frames analyzed per video upload. Longer videos are sampled
// evenly instead of processed frame by frame.
const maxAnalyzedFrames = 150

// ProcessVideoUseCase runs the full pipeline over an uploaded video and
// finalizes the session. The temp file is removed when processing ends.
func ProcessVideoUseCase(sessionID string, videoPath string) (*entities.VerificationResult, error) {
	defer video.CleanupTempVideo(videoPath)

	record := repository.SessionRepo().FindByID(sessionID)
	if record == nil {
		return nil, ErrSessionNotFound
	}

	meta, err := video.Probe(videoPath)
	if err != nil {
		return nil, err
	}
	if err := video.Validate(meta); err != nil {
		return nil, err
	}

	sampleEvery := 1
	if meta.FrameCount > maxAnalyzedFrames {
		sampleEvery = meta.FrameCount / maxAnalyzedFrames
	}

	provider := landmark.GetProvider()
	processed, err := video.ExtractFrames(videoPath, sampleEvery, func(index int, frame gocv.Mat) error {
		var set *ltypes.LandmarkSet
		if provider.MeshCapable() {
			set, _ = provider.ExtractLandmarks(frame)
		}
		faceDetected := set.Len() > 0
		faceCount := 0
		if !faceDetected {
			faces := provider.DetectFaces(frame)
			faceCount = len(faces)
			faceDetected = faceCount > 0
		}

		record.Mu.Lock()
		defer record.Mu.Unlock()
		if record.Session.Status != entities.SessionActive {
			return ErrSessionCompleted
		}
		if faceCount > 1 {
			alerting.Default().CreateAlert(
				entities.AlertMultipleFaces,
				sessionID,
				entities.SeverityMedium,
				"Multiple faces detected in video frame",
				map[string]any{"faceCount": faceCount, "frameIndex": index},
				&record.Session.UserID,
			)
		}
		record.Session.FrameAnalysis = append(record.Session.FrameAnalysis, entities.FrameAnalysis{
			Liveness:  record.Liveness.ProcessFrame(frame, set, faceDetected),
			Deepfake:  record.Deepfake.ProcessFrame(frame, set, faceDetected),
			Timestamp: time.Now(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("video processed for verification", logger.LoggerOptions{
		Key:  "sessionID",
		Data: sessionID,
	}, logger.LoggerOptions{
		Key:  "framesAnalyzed",
		Data: processed,
	}, logger.LoggerOptions{
		Key:  "duration",
		Data: meta.Duration.String(),
	})
	return CompleteVerificationUseCase(sessionID)
}
