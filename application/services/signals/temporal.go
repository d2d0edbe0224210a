package signals

import (
	"gocv.io/x/gocv"
	"veriface.io/application/constants"
	"veriface.io/entities"
)

// TemporalState keeps a rolling grayscale frame window and scores
// frame-to-frame flicker. High variance across consecutive differences
// points at splices or generator instability.
type TemporalState struct {
	frames *HistoryBuffer[gocv.Mat]
}

func NewTemporalState(historySize int) *TemporalState {
	frames := NewHistoryBuffer[gocv.Mat](historySize)
	frames.SetEvictCallback(func(m gocv.Mat) {
		m.Close()
	})
	return &TemporalState{frames: frames}
}

func (t *TemporalState) Analyze(frame gocv.Mat) entities.TemporalAnalysis {
	if frame.Empty() {
		return entities.TemporalAnalysis{}
	}

	gray := gocv.NewMat()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	t.frames.Push(gray)

	if t.frames.Len() < constants.TemporalMinFrames {
		return entities.TemporalAnalysis{}
	}

	diffs := make([]float64, 0, t.frames.Len()-1)
	diff := gocv.NewMat()
	defer diff.Close()
	for i := 1; i < t.frames.Len(); i++ {
		gocv.AbsDiff(t.frames.At(i-1), t.frames.At(i), &diff)
		diffs = append(diffs, diff.Mean().Val1)
	}

	return entities.TemporalAnalysis{
		Anomaly:             clip(variance(diffs)/1000.0, 0, 1),
		MeanFrameDifference: mean(diffs),
		DifferenceVariance:  variance(diffs),
	}
}

func (t *TemporalState) Close() {
	t.frames.Clear()
}
