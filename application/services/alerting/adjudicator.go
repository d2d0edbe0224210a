package alerting

import (
	"fmt"

	"veriface.io/application/constants"
	"veriface.io/entities"
	"veriface.io/infrastructure/logger"
)

// EvaluateVerificationResult adjudicates a completed session. All three
// checks run to completion; failing one never short-circuits the others,
// so every applicable alert is raised.
func (s *Service) EvaluateVerificationResult(sessionID string, userID string, deepfake entities.DeepfakeAnalysis, liveness entities.LivenessAnalysis) entities.VerificationResult {
	result := entities.VerificationResult{
		SessionID:       sessionID,
		UserID:          userID,
		Verified:        true,
		Status:          entities.VerificationPassed,
		Alerts:          []entities.Alert{},
		Recommendations: []string{},
	}

	if deepfake.DeepfakeScore > constants.DeepfakeThreshold {
		severity := ClassifySeverity(deepfake.DeepfakeScore, liveness.LivenessScore, deepfake.Indicators)
		alert := s.CreateAlert(
			entities.AlertDeepfakeDetected,
			sessionID,
			severity,
			fmt.Sprintf("Deepfake detected with score %.2f", deepfake.DeepfakeScore),
			map[string]any{
				"deepfakeScore": deepfake.DeepfakeScore,
				"indicators":    deepfake.Indicators,
			},
			&userID,
		)
		result.Verified = false
		result.Alerts = append(result.Alerts, alert)
		result.Recommendations = append(result.Recommendations, "Manual review required - potential deepfake")
	}

	if liveness.LivenessScore < constants.LivenessThreshold {
		alert := s.CreateAlert(
			entities.AlertLivenessFailed,
			sessionID,
			entities.SeverityHigh,
			fmt.Sprintf("Liveness check failed with score %.2f", liveness.LivenessScore),
			map[string]any{
				"livenessScore":      liveness.LivenessScore,
				"weightedConfidence": liveness.WeightedConfidence,
			},
			&userID,
		)
		result.Verified = false
		result.Alerts = append(result.Alerts, alert)
		result.Recommendations = append(result.Recommendations, "Request additional liveness verification")
	}

	if !deepfake.FaceDetected && !liveness.FaceDetected {
		alert := s.CreateAlert(
			entities.AlertFaceNotDetected,
			sessionID,
			entities.SeverityMedium,
			"No face detected during verification",
			map[string]any{},
			&userID,
		)
		result.Verified = false
		result.Alerts = append(result.Alerts, alert)
		result.Recommendations = append(result.Recommendations, "Ensure face is clearly visible")
	}

	if !result.Verified {
		result.Status = entities.VerificationFailed
	}

	logger.Info(fmt.Sprintf("Verification %s for session %s", result.Status, sessionID), logger.LoggerOptions{
		Key:  "alerts",
		Data: len(result.Alerts),
	})
	return result
}
