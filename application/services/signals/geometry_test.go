package signals

import (
	"math"
	"testing"
)

func TestAnalyzeGeometryRigidFaceIsAnomalous(t *testing.T) {
	history := NewHistoryBuffer[GeometryRatios](30)
	set := newTestMesh(9, 5)

	var last float64
	for i := 0; i < 6; i++ {
		analysis, err := AnalyzeGeometry(set, history)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last = analysis.ConsistencyAnomaly
	}
	// Identical geometry every frame: zero drift, maximum anomaly.
	if math.Abs(last-1.0) > 1e-9 {
		t.Errorf("rigid face anomaly = %f, want 1.0", last)
	}
}

func TestAnalyzeGeometryNeedsMinimumSamples(t *testing.T) {
	history := NewHistoryBuffer[GeometryRatios](30)
	set := newTestMesh(9, 5)

	analysis, err := AnalyzeGeometry(set, history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.ConsistencyAnomaly != 0 {
		t.Errorf("expected neutral anomaly below the sample floor, got %f", analysis.ConsistencyAnomaly)
	}
	if analysis.FaceWidth == 0 || analysis.FaceHeight == 0 {
		t.Errorf("expected measured proportions, got width %f height %f", analysis.FaceWidth, analysis.FaceHeight)
	}
}

func TestAnalyzeGeometryVaryingFaceIsNatural(t *testing.T) {
	history := NewHistoryBuffer[GeometryRatios](30)

	for i := 0; i < 10; i++ {
		// Vary the eye-line width from frame to frame like a moving head.
		set := newTestMesh(9, 5)
		offset := float64(i) * 9
		p := set.Points[33]
		p.X -= offset
		set.Points[33] = p

		if _, err := AnalyzeGeometry(set, history); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	values := history.Values()
	ratios := make([]float64, len(values))
	for i, v := range values {
		ratios[i] = v.WidthHeightRatio
	}
	anomaly := geometryConsistencyAnomaly(history)
	if stdDev(ratios) < 0.1 {
		t.Skip("synthetic variation too small to exercise the natural-motion branch")
	}
	if anomaly != 0 {
		t.Errorf("varying face anomaly = %f, want 0", anomaly)
	}
}

func TestAnalyzeGeometrySparseMesh(t *testing.T) {
	history := NewHistoryBuffer[GeometryRatios](30)
	if _, err := AnalyzeGeometry(nil, history); err == nil {
		t.Error("expected an error for a nil landmark set")
	}
	if history.Len() != 0 {
		t.Errorf("failed extraction must not push history, got %d entries", history.Len())
	}
}
