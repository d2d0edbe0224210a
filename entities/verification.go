package entities

type VerificationStatus string

const (
	VerificationPassed VerificationStatus = "PASSED"
	VerificationFailed VerificationStatus = "FAILED"
)

// SeverityIndicators is the closed set of session-level anomaly signals the
// severity classifier weighs alongside the aggregate scores.
type SeverityIndicators struct {
	BlinkPatternAnomaly float64 `json:"blinkPatternAnomaly"`
	TextureAnomaly      float64 `json:"textureAnomaly"`
	GeometryAnomaly     float64 `json:"geometryAnomaly"`
	TemporalAnomaly     float64 `json:"temporalAnomaly"`
	FaceNotDetected     bool    `json:"faceNotDetected"`
}

// DeepfakeAnalysis is the session-level aggregate handed to the adjudicator.
type DeepfakeAnalysis struct {
	DeepfakeScore float64            `json:"deepfakeScore"`
	FaceDetected  bool               `json:"faceDetected"`
	Indicators    SeverityIndicators `json:"indicators"`
}

type LivenessAnalysis struct {
	LivenessScore float64 `json:"livenessScore"`
	FaceDetected  bool    `json:"faceDetected"`
	// Recency-weighted confidence over face-detected frames.
	WeightedConfidence float64 `json:"weightedConfidence"`
}

// VerificationResult is produced exactly once per session and immutable
// after creation.
type VerificationResult struct {
	SessionID       string             `json:"sessionID"`
	UserID          string             `json:"userID"`
	Verified        bool               `json:"verified"`
	Status          VerificationStatus `json:"status"`
	Alerts          []Alert            `json:"alerts"`
	Recommendations []string           `json:"recommendations"`
}
