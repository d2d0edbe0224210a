package constants

import "time"

// Detection thresholds. Signal and score values always live in [0, 1];
// the pixel thresholds below assume landmark coordinates in frame pixels.
const (
	EARBlinkThreshold       = 0.15
	MovementThresholdPx     = 15.0
	MouthOpenThresholdPx    = 20.0
	MotionNormalizer        = 50.0
	ConfidenceThreshold     = 0.7
	LivenessThreshold       = 0.5
	DeepfakeFrameThreshold  = 0.5
	DeepfakeThreshold       = 0.6
	GeometryStdDevReference = 0.1
)

// Composite score weights.
const (
	LivenessBlinkWeight    = 0.3
	LivenessMovementWeight = 0.4
	LivenessMouthWeight    = 0.3

	DeepfakeTextureWeight     = 0.35
	DeepfakePeriodicityWeight = 0.25
	DeepfakeGeometryWeight    = 0.2
	DeepfakeTemporalWeight    = 0.2
)

// History windows used by the temporal signals.
const (
	HistorySize             = 30
	PeriodicityMinSamples   = 20
	BlinkDurationMinSamples = 10
	GeometryMinSamples      = 5
	TemporalMinFrames       = 3

	// Physiological blink duration range in frames at ~30 fps.
	BlinkDurationMinFrames = 2
	BlinkDurationMaxFrames = 15
)

// Canonical face-mesh landmark indices. A full mesh carries 468 points;
// providers returning fewer than MinMeshLandmarks are treated as faceless.
const MinMeshLandmarks = 400

var (
	LeftEyeIndices  = []int{362, 385, 387, 263, 373, 380}
	RightEyeIndices = []int{33, 160, 158, 133, 153, 144}
)

const (
	MouthTopIndex        = 13
	MouthBottomIndex     = 14
	NoseTipIndex         = 1
	ChinIndex            = 152
	LeftEyeCornerIndex   = 33
	RightEyeCornerIndex  = 263
	LeftMouthCornerIndex = 61
	RightMouthCornerIdx  = 291
)

// Alert dispatch.
const (
	AlertQueueCapacity = 1024
	DispatchPollPeriod = time.Second
)

// Session lifecycle.
const (
	SessionTTL           = 30 * time.Minute
	SessionSweepInterval = 5 * time.Minute
)

// Escalation recipients per severity tier.
var (
	ComplianceRecipients = []string{"compliance@institution.com"}
	FraudTeamRecipients  = []string{"fraud-team@institution.com", "operations@institution.com"}
	CriticalRecipients   = []string{"fraud-head@institution.com", "ciso@institution.com"}
	CriticalPhoneNumbers = []string{"+1234567890"}
)

// Video upload validation bounds.
const (
	VideoMinDuration   = 3 * time.Second
	VideoMaxDuration   = 60 * time.Second
	VideoMinFrameCount = 30
	VideoMinWidth      = 320
	VideoMinHeight     = 240
	VideoMinFPS        = 15.0
	TargetFrameWidth   = 640
	TargetFrameHeight  = 480
)
