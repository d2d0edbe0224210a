package liveness

import (
	"math"

	"gocv.io/x/gocv"
	"veriface.io/application/constants"
	"veriface.io/application/services/signals"
	"veriface.io/entities"
	ltypes "veriface.io/infrastructure/landmark/types"
)

// Detector scores one session's frames for signs of a live subject:
// blinking, head movement and mouth motion. It is single-writer state;
// concurrent uploads for the same session must be serialized by the caller.
type Detector struct {
	confidenceThreshold float64
	movement            signals.MovementState
	motion              signals.MotionState
}

func NewDetector(confidenceThreshold float64) *Detector {
	if confidenceThreshold <= 0 {
		confidenceThreshold = constants.ConfidenceThreshold
	}
	return &Detector{confidenceThreshold: confidenceThreshold}
}

// ProcessFrame scores a single frame. Landmark-driven signals are used
// when a mesh is available; otherwise raw frame motion stands in for
// head movement and, with a face still detected, the composite score is
// floored at 0.5 as partial credit.
func (d *Detector) ProcessFrame(frame gocv.Mat, set *ltypes.LandmarkSet, faceDetected bool) entities.LivenessFrameResult {
	result := entities.LivenessFrameResult{FaceDetected: faceDetected}
	hasLandmarks := set.Len() > 0

	if hasLandmarks {
		result.Blink, _ = signals.DetectBlink(set)
		result.HeadMovement, _ = d.movement.Detect(set)
		result.MouthOpen, _ = signals.DetectMouthOpen(set)
	} else {
		result.Blink = entities.SignalDetection{
			Details: map[string]any{"failure": string(signals.FailureNoLandmarks)},
		}
		result.MouthOpen = entities.SignalDetection{
			Details: map[string]any{"failure": string(signals.FailureNoLandmarks)},
		}
		result.HeadMovement, _ = d.motion.Detect(frame)
	}

	score := result.Blink.Confidence*constants.LivenessBlinkWeight +
		result.HeadMovement.Confidence*constants.LivenessMovementWeight +
		result.MouthOpen.Confidence*constants.LivenessMouthWeight
	if !hasLandmarks && faceDetected {
		score = math.Max(score, 0.5)
	}

	result.LivenessScore = score
	result.IsLikelyLive = score > d.confidenceThreshold
	return result
}

// Reset clears inter-frame state without releasing the detector.
func (d *Detector) Reset() {
	d.movement.Reset()
	d.motion.Close()
}

func (d *Detector) Close() {
	d.motion.Close()
}

// SessionConfidence folds per-frame liveness scores into one confidence
// value, decaying older frames by 0.9 per step. Frames without a detected
// face are excluded.
func SessionConfidence(frames []entities.FrameAnalysis) float64 {
	scores := []float64{}
	for _, f := range frames {
		if f.Liveness.FaceDetected {
			scores = append(scores, f.Liveness.LivenessScore)
		}
	}
	if len(scores) == 0 {
		return 0
	}

	weightedSum := 0.0
	weightSum := 0.0
	weight := 1.0
	for i := len(scores) - 1; i >= 0; i-- {
		weightedSum += scores[i] * weight
		weightSum += weight
		weight *= 0.9
	}
	if weightSum == 0 {
		return 0
	}
	return weightedSum / weightSum
}
