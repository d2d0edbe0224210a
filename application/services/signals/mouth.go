package signals

import (
	"math"

	"veriface.io/application/constants"
	"veriface.io/entities"
	ltypes "veriface.io/infrastructure/landmark/types"
)

// DetectMouthOpen measures the lip gap between the designated upper and
// lower lip landmarks.
func DetectMouthOpen(set *ltypes.LandmarkSet) (entities.SignalDetection, error) {
	if set.Len() < constants.MinMeshLandmarks {
		kind := FailureNoLandmarks
		if set.Len() > 0 {
			kind = FailureInsufficientPoints
		}
		return entities.SignalDetection{
			Details: map[string]any{"failure": string(kind)},
		}, extractionFailure(kind)
	}

	points, ok := set.Select([]int{constants.MouthTopIndex, constants.MouthBottomIndex})
	if !ok {
		return entities.SignalDetection{
			Details: map[string]any{"failure": string(FailureInsufficientPoints)},
		}, extractionFailure(FailureInsufficientPoints)
	}

	gap := ltypes.Distance(points[0], points[1])
	open := gap > constants.MouthOpenThresholdPx
	confidence := 0.0
	if open {
		confidence = math.Min(gap/constants.MouthOpenThresholdPx, 1.0)
	}
	return entities.SignalDetection{
		Detected:   open,
		Confidence: confidence,
		Details:    map[string]any{"mouthDistance": gap},
	}, nil
}
