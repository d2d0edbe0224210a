package signals

import (
	"veriface.io/application/constants"
	"veriface.io/entities"
	ltypes "veriface.io/infrastructure/landmark/types"
)

const flatStdDevEpsilon = 1e-6

// AnalyzeBlinkPattern appends the current EAR to the blink history and
// scores rate, periodicity and duration anomalies over the window.
// Generated or replayed faces blink on a schedule; real ones don't.
func AnalyzeBlinkPattern(set *ltypes.LandmarkSet, history *HistoryBuffer[float64]) (entities.BlinkPatternAnalysis, error) {
	ear, ok := EyeAspectRatio(set)
	if !ok {
		kind := FailureNoLandmarks
		if set.Len() > 0 {
			kind = FailureInsufficientPoints
		}
		return entities.BlinkPatternAnalysis{}, extractionFailure(kind)
	}
	history.Push(ear)
	values := history.Values()

	return entities.BlinkPatternAnalysis{
		CurrentEAR:      ear,
		BlinkRate:       BlinkRate(values),
		PatternAnomaly:  BlinkPatternAnomaly(values),
		DurationAnomaly: BlinkDurationAnomaly(values),
	}, nil
}

// BlinkRate estimates blinks per minute from the EAR window, assuming
// ~30 fps capture.
func BlinkRate(history []float64) float64 {
	if len(history) < constants.BlinkDurationMinSamples {
		return 0
	}
	blinks := 0
	wasClosed := false
	for _, ear := range history {
		isClosed := ear < constants.EARBlinkThreshold
		if wasClosed && !isClosed {
			blinks++
		}
		wasClosed = isClosed
	}
	return float64(blinks) / float64(len(history)) * 30.0
}

// BlinkPatternAnomaly scores periodicity of the EAR sequence via its
// normalized autocorrelation peak in the lag window [10, min(50, n)).
// A perfectly flat history is maximally suspicious: frozen or looped input.
func BlinkPatternAnomaly(history []float64) float64 {
	if len(history) < constants.PeriodicityMinSamples {
		return 0
	}
	if stdDev(history) < flatStdDevEpsilon {
		return 1.0
	}

	correlation := autocorrelate(history)
	if correlation[0] == 0 {
		return 1.0
	}
	for i := range correlation {
		correlation[i] /= correlation[0]
	}

	upper := len(correlation)
	if upper > 50 {
		upper = 50
	}
	peak := 0.0
	for lag := 10; lag < upper; lag++ {
		if correlation[lag] > peak {
			peak = correlation[lag]
		}
	}
	return clip(peak-0.5, 0, 1)
}

// autocorrelate returns the one-sided raw autocorrelation of xs.
func autocorrelate(xs []float64) []float64 {
	n := len(xs)
	out := make([]float64, n)
	for lag := 0; lag < n; lag++ {
		var sum float64
		for i := 0; i+lag < n; i++ {
			sum += xs[i] * xs[i+lag]
		}
		out[lag] = sum
	}
	return out
}

// BlinkDurationAnomaly segments the EAR window into closed-eye runs and
// reports the fraction falling outside the ~65-500ms physiological range
// (2-15 frames at 30 fps).
func BlinkDurationAnomaly(history []float64) float64 {
	if len(history) < constants.BlinkDurationMinSamples {
		return 0
	}

	durations := []int{}
	inBlink := false
	duration := 0
	for _, ear := range history {
		if ear < constants.EARBlinkThreshold {
			if inBlink {
				duration++
			} else {
				inBlink = true
				duration = 1
			}
			continue
		}
		if inBlink {
			durations = append(durations, duration)
			inBlink = false
			duration = 0
		}
	}
	if len(durations) == 0 {
		return 0
	}

	abnormal := 0
	for _, d := range durations {
		if d < constants.BlinkDurationMinFrames || d > constants.BlinkDurationMaxFrames {
			abnormal++
		}
	}
	return clip(float64(abnormal)/float64(len(durations)), 0, 1)
}
