package signals

import (
	"veriface.io/application/constants"
	"veriface.io/entities"
	ltypes "veriface.io/infrastructure/landmark/types"
)

// eyeAspectRatio computes the EAR over a 6-point eye subset: the two
// vertical lid distances over twice the corner-to-corner width. A zero
// width (degenerate geometry) yields 0 rather than a division error.
func eyeAspectRatio(eye []ltypes.Point) float64 {
	a := ltypes.Distance(eye[1], eye[5])
	b := ltypes.Distance(eye[2], eye[4])
	c := ltypes.Distance(eye[0], eye[3])
	if c <= 0 {
		return 0
	}
	return (a + b) / (2.0 * c)
}

// EyeAspectRatio averages the EAR of both eyes from a full mesh. The second
// return is false when the mesh is too sparse to carry the eye indices.
func EyeAspectRatio(set *ltypes.LandmarkSet) (float64, bool) {
	if set.Len() < constants.MinMeshLandmarks {
		return 0, false
	}
	left, ok := set.Select(constants.LeftEyeIndices)
	if !ok {
		return 0, false
	}
	right, ok := set.Select(constants.RightEyeIndices)
	if !ok {
		return 0, false
	}
	return (eyeAspectRatio(left) + eyeAspectRatio(right)) / 2.0, true
}

// DetectBlink flags a closed eye via the EAR threshold. Confidence is
// 1-EAR while blinking, 0 otherwise.
func DetectBlink(set *ltypes.LandmarkSet) (entities.SignalDetection, error) {
	ear, ok := EyeAspectRatio(set)
	if !ok {
		kind := FailureNoLandmarks
		if set.Len() > 0 {
			kind = FailureInsufficientPoints
		}
		return entities.SignalDetection{
			Details: map[string]any{"failure": string(kind)},
		}, extractionFailure(kind)
	}

	isBlink := ear < constants.EARBlinkThreshold
	confidence := 0.0
	if isBlink {
		confidence = clip(1.0-ear, 0, 1)
	}
	return entities.SignalDetection{
		Detected:   isBlink,
		Confidence: confidence,
		Details:    map[string]any{"ear": ear},
	}, nil
}
