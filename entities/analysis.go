package entities

import "time"

// SignalDetection is the per-frame outcome of one liveness signal. Confidence
// is always in [0, 1]. Details carries auxiliary measurements and, when the
// extractor degraded to its neutral value, the failure reason.
type SignalDetection struct {
	Detected   bool           `json:"detected"`
	Confidence float64        `json:"confidence"`
	Details    map[string]any `json:"details,omitempty"`
}

type LivenessFrameResult struct {
	FaceDetected  bool            `json:"faceDetected"`
	LivenessScore float64         `json:"livenessScore"`
	IsLikelyLive  bool            `json:"isLikelyLive"`
	Blink         SignalDetection `json:"blink"`
	HeadMovement  SignalDetection `json:"headMovement"`
	MouthOpen     SignalDetection `json:"mouthOpen"`
}

type TextureAnalysis struct {
	LaplacianVariance    float64 `json:"laplacianVariance"`
	EdgeDensity          float64 `json:"edgeDensity"`
	SmoothnessScore      float64 `json:"smoothnessScore"`
	BoundaryArtifacts    float64 `json:"boundaryArtifacts"`
	CompressionArtifacts float64 `json:"compressionArtifacts"`
	AnomalyScore         float64 `json:"anomalyScore"`
	Failure              string  `json:"failure,omitempty"`
}

type BlinkPatternAnalysis struct {
	CurrentEAR      float64 `json:"currentEAR"`
	BlinkRate       float64 `json:"blinkRate"`
	PatternAnomaly  float64 `json:"patternAnomaly"`
	DurationAnomaly float64 `json:"durationAnomaly"`
}

type GeometryAnalysis struct {
	FaceHeight         float64 `json:"faceHeight"`
	FaceWidth          float64 `json:"faceWidth"`
	MouthFaceRatio     float64 `json:"mouthFaceRatio"`
	WidthHeightRatio   float64 `json:"widthHeightRatio"`
	ConsistencyAnomaly float64 `json:"consistencyAnomaly"`
}

type TemporalAnalysis struct {
	Anomaly             float64 `json:"anomaly"`
	MeanFrameDifference float64 `json:"meanFrameDifference"`
	DifferenceVariance  float64 `json:"differenceVariance"`
}

// DeepfakeIndicators groups the sub-signal analyses behind a frame's
// deepfake score. Blink, Geometry and Temporal are nil on the reduced
// no-landmarks path.
type DeepfakeIndicators struct {
	Texture  TextureAnalysis       `json:"texture"`
	Blink    *BlinkPatternAnalysis `json:"blink,omitempty"`
	Geometry *GeometryAnalysis     `json:"geometry,omitempty"`
	Temporal *TemporalAnalysis     `json:"temporal,omitempty"`
	Note     string                `json:"note,omitempty"`
}

type DeepfakeFrameResult struct {
	FaceDetected     bool                `json:"faceDetected"`
	DeepfakeScore    float64             `json:"deepfakeScore"`
	IsLikelyDeepfake bool                `json:"isLikelyDeepfake"`
	Indicators       *DeepfakeIndicators `json:"indicators,omitempty"`
}

type FrameAnalysis struct {
	Liveness  LivenessFrameResult `json:"liveness"`
	Deepfake  DeepfakeFrameResult `json:"deepfake"`
	Timestamp time.Time           `json:"timestamp"`
}
