package signals

import (
	"math"

	"gocv.io/x/gocv"
	"veriface.io/application/constants"
	"veriface.io/entities"
)

// MotionState approximates liveness from raw frame differences when no
// structured landmarks are available. Only the previous grayscale frame
// is retained.
type MotionState struct {
	prevGray *gocv.Mat
}

func (m *MotionState) Detect(frame gocv.Mat) (entities.SignalDetection, error) {
	if frame.Empty() {
		return entities.SignalDetection{
			Confidence: 0.1,
			Details:    map[string]any{"failure": string(FailureProcessing)},
		}, extractionFailure(FailureProcessing)
	}

	gray := gocv.NewMat()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)

	if m.prevGray == nil {
		m.prevGray = &gray
		// Some default liveness when there is nothing to diff against.
		return entities.SignalDetection{
			Confidence: 0.2,
			Details:    map[string]any{"failure": string(FailureNoPreviousFrame)},
		}, extractionFailure(FailureNoPreviousFrame)
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(gray, *m.prevGray, &diff)
	magnitude := matMedianU8(diff)

	m.prevGray.Close()
	m.prevGray = &gray

	score := math.Min(magnitude/constants.MotionNormalizer, 1.0)
	return entities.SignalDetection{
		Detected:   score > 0,
		Confidence: score,
		Details:    map[string]any{"motionMagnitude": magnitude, "reason": "motion_fallback"},
	}, nil
}

func (m *MotionState) Close() {
	if m.prevGray != nil {
		m.prevGray.Close()
		m.prevGray = nil
	}
}

// matMedianU8 computes the median of a single-channel 8-bit mat via a
// 256-bin histogram.
func matMedianU8(m gocv.Mat) float64 {
	data := m.ToBytes()
	if len(data) == 0 {
		return 0
	}
	var bins [256]int
	for _, v := range data {
		bins[v]++
	}
	half := len(data) / 2
	seen := 0
	for value, count := range bins {
		seen += count
		if seen > half {
			return float64(value)
		}
	}
	return 255
}
