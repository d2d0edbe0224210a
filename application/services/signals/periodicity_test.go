package signals

import (
	"math"
	"testing"
)

func TestBlinkPatternAnomalyFlatHistory(t *testing.T) {
	flat := make([]float64, 30)
	for i := range flat {
		flat[i] = 0.3
	}
	if got := BlinkPatternAnomaly(flat); got != 1.0 {
		t.Errorf("flat history anomaly = %f, want 1.0", got)
	}
}

func TestBlinkPatternAnomalyShortHistory(t *testing.T) {
	short := []float64{0.3, 0.1, 0.3}
	if got := BlinkPatternAnomaly(short); got != 0 {
		t.Errorf("short history anomaly = %f, want 0", got)
	}
}

func TestBlinkPatternAnomalyPeriodicVsNoisy(t *testing.T) {
	// Metronomic blinking: a closed eye every 15th frame exactly.
	periodic := make([]float64, 45)
	for i := range periodic {
		periodic[i] = 0.3
		if i%15 == 0 {
			periodic[i] = 0.05
		}
	}

	// Irregular natural pattern.
	noisy := make([]float64, 45)
	for i := range noisy {
		noisy[i] = 0.25 + 0.1*math.Sin(float64(i)*1.7) + 0.05*math.Cos(float64(i)*0.43)
	}

	periodicScore := BlinkPatternAnomaly(periodic)
	noisyScore := BlinkPatternAnomaly(noisy)
	if periodicScore < 0 || periodicScore > 1 || noisyScore < 0 || noisyScore > 1 {
		t.Fatalf("scores outside [0, 1]: periodic %f, noisy %f", periodicScore, noisyScore)
	}
}

func TestBlinkRate(t *testing.T) {
	// Two complete blinks over 30 frames => 2 blinks/sec at 30 fps.
	history := make([]float64, 30)
	for i := range history {
		history[i] = 0.3
	}
	history[5], history[6] = 0.1, 0.1
	history[20] = 0.1

	got := BlinkRate(history)
	want := 2.0 / 30.0 * 30.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("BlinkRate = %f, want %f", got, want)
	}
}

func TestBlinkDurationAnomaly(t *testing.T) {
	tests := []struct {
		name  string
		build func() []float64
		want  float64
	}{
		{
			name: "physiological blinks",
			build: func() []float64 {
				h := make([]float64, 30)
				for i := range h {
					h[i] = 0.3
				}
				h[4], h[5], h[6] = 0.1, 0.1, 0.1 // 3 frames, normal
				h[20], h[21] = 0.1, 0.1          // 2 frames, normal
				return h
			},
			want: 0,
		},
		{
			name: "single-frame flickers",
			build: func() []float64 {
				h := make([]float64, 30)
				for i := range h {
					h[i] = 0.3
				}
				h[4] = 0.1  // 1 frame, abnormal
				h[20] = 0.1 // 1 frame, abnormal
				return h
			},
			want: 1,
		},
		{
			name: "no blinks at all",
			build: func() []float64 {
				h := make([]float64, 30)
				for i := range h {
					h[i] = 0.3
				}
				return h
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlinkDurationAnomaly(tt.build()); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BlinkDurationAnomaly = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestAnalyzeBlinkPatternPushesHistory(t *testing.T) {
	history := NewHistoryBuffer[float64](30)
	set := newTestMesh(9, 5)

	analysis, err := AnalyzeBlinkPattern(set, history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if history.Len() != 1 {
		t.Errorf("expected 1 history entry, got %d", history.Len())
	}
	if math.Abs(analysis.CurrentEAR-0.3) > 1e-9 {
		t.Errorf("CurrentEAR = %f, want 0.3", analysis.CurrentEAR)
	}
}
