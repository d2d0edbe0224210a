package signals

import (
	"math"

	"veriface.io/application/constants"
	"veriface.io/entities"
	ltypes "veriface.io/infrastructure/landmark/types"
)

// MovementState retains only the previous frame's centroid; head movement
// is measured as frame-to-frame centroid displacement in pixels.
type MovementState struct {
	prevCentroid *ltypes.Point
}

func (m *MovementState) Detect(set *ltypes.LandmarkSet) (entities.SignalDetection, error) {
	if set.Len() == 0 {
		return entities.SignalDetection{
			Details: map[string]any{"failure": string(FailureNoLandmarks)},
		}, extractionFailure(FailureNoLandmarks)
	}

	centroid := set.Centroid()
	if m.prevCentroid == nil {
		m.prevCentroid = &centroid
		return entities.SignalDetection{
			Details: map[string]any{"failure": string(FailureNoPreviousFrame)},
		}, extractionFailure(FailureNoPreviousFrame)
	}

	displacement := ltypes.Distance(centroid, *m.prevCentroid)
	m.prevCentroid = &centroid

	detected := displacement > constants.MovementThresholdPx
	confidence := 0.0
	if detected {
		confidence = math.Min(displacement/constants.MovementThresholdPx, 1.0)
	}
	return entities.SignalDetection{
		Detected:   detected,
		Confidence: confidence,
		Details:    map[string]any{"displacement": displacement},
	}, nil
}

func (m *MovementState) Reset() {
	m.prevCentroid = nil
}
