package verification_usecases

import (
	"veriface.io/application/repository"
	"veriface.io/application/services/alerting"
	"veriface.io/application/services/liveness"
	"veriface.io/entities"
	"veriface.io/infrastructure/logger"
)

// CompleteVerificationUseCase finalizes a session: aggregates per-frame
// analysis, adjudicates, and seals the session. Completing an already
// completed session returns the stored result unchanged.
func CompleteVerificationUseCase(sessionID string) (*entities.VerificationResult, error) {
	record := repository.SessionRepo().FindByID(sessionID)
	if record == nil {
		return nil, ErrSessionNotFound
	}

	record.Mu.Lock()
	defer record.Mu.Unlock()

	if record.Session.Status == entities.SessionCompleted {
		return record.Session.VerificationResult, nil
	}
	if len(record.Session.FrameAnalysis) == 0 {
		return nil, ErrNoFramesAnalyzed
	}

	deepfakeAnalysis := aggregateDeepfake(record.Session.FrameAnalysis)
	livenessAnalysis := aggregateLiveness(record.Session.FrameAnalysis)

	result := alerting.Default().EvaluateVerificationResult(
		sessionID,
		record.Session.UserID,
		deepfakeAnalysis,
		livenessAnalysis,
	)
	record.Session.VerificationResult = &result
	record.Session.Status = entities.SessionCompleted
	record.Liveness.Close()
	record.Deepfake.Close()
	repository.SessionRepo().Touch(sessionID)

	logger.Info("verification session completed", logger.LoggerOptions{
		Key:  "sessionID",
		Data: sessionID,
	}, logger.LoggerOptions{
		Key:  "status",
		Data: result.Status,
	}, logger.LoggerOptions{
		Key:  "frames",
		Data: len(record.Session.FrameAnalysis),
	})
	return &result, nil
}

// aggregateDeepfake averages frame scores and sub-signal anomalies over
// face-detected frames. A session where no frame ever carried a face
// reports FaceNotDetected with a zero score.
func aggregateDeepfake(frames []entities.FrameAnalysis) entities.DeepfakeAnalysis {
	var scoreSum float64
	var blinkSum, textureSum, geometrySum, temporalSum float64
	var blinkN, textureN, geometryN, temporalN int
	faceFrames := 0

	for _, f := range frames {
		if !f.Deepfake.FaceDetected {
			continue
		}
		faceFrames++
		scoreSum += f.Deepfake.DeepfakeScore
		indicators := f.Deepfake.Indicators
		if indicators == nil {
			continue
		}
		textureSum += indicators.Texture.AnomalyScore
		textureN++
		if indicators.Blink != nil {
			blinkSum += indicators.Blink.PatternAnomaly
			blinkN++
		}
		if indicators.Geometry != nil {
			geometrySum += indicators.Geometry.ConsistencyAnomaly
			geometryN++
		}
		if indicators.Temporal != nil {
			temporalSum += indicators.Temporal.Anomaly
			temporalN++
		}
	}

	analysis := entities.DeepfakeAnalysis{FaceDetected: faceFrames > 0}
	analysis.Indicators.FaceNotDetected = faceFrames == 0
	if faceFrames > 0 {
		analysis.DeepfakeScore = scoreSum / float64(faceFrames)
	}
	if textureN > 0 {
		analysis.Indicators.TextureAnomaly = textureSum / float64(textureN)
	}
	if blinkN > 0 {
		analysis.Indicators.BlinkPatternAnomaly = blinkSum / float64(blinkN)
	}
	if geometryN > 0 {
		analysis.Indicators.GeometryAnomaly = geometrySum / float64(geometryN)
	}
	if temporalN > 0 {
		analysis.Indicators.TemporalAnomaly = temporalSum / float64(temporalN)
	}
	return analysis
}

func aggregateLiveness(frames []entities.FrameAnalysis) entities.LivenessAnalysis {
	faceDetected := false
	var scoreSum float64
	faceFrames := 0
	for _, f := range frames {
		if f.Liveness.FaceDetected {
			faceDetected = true
			scoreSum += f.Liveness.LivenessScore
			faceFrames++
		}
	}

	analysis := entities.LivenessAnalysis{
		FaceDetected:       faceDetected,
		WeightedConfidence: liveness.SessionConfidence(frames),
	}
	if faceFrames > 0 {
		analysis.LivenessScore = scoreSum / float64(faceFrames)
	}
	return analysis
}
