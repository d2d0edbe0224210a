package signals

import (
	"testing"

	ltypes "veriface.io/infrastructure/landmark/types"
)

func shiftMesh(set *ltypes.LandmarkSet, dx, dy float64) *ltypes.LandmarkSet {
	shifted := &ltypes.LandmarkSet{Points: make([]ltypes.Point, len(set.Points))}
	for i, p := range set.Points {
		shifted.Points[i] = ltypes.Point{X: p.X + dx, Y: p.Y + dy, Z: p.Z}
	}
	return shifted
}

func TestMovementFirstFrameHasNoBaseline(t *testing.T) {
	var state MovementState
	result, err := state.Detect(newTestMesh(9, 5))
	if err == nil {
		t.Fatal("expected baseline error on the first frame")
	}
	if result.Detected {
		t.Error("first frame must not report movement")
	}
	if result.Details["failure"] != string(FailureNoPreviousFrame) {
		t.Errorf("expected no-previous-frame failure, got %v", result.Details["failure"])
	}
}

func TestMovementDetectsDisplacement(t *testing.T) {
	var state MovementState
	base := newTestMesh(9, 5)
	if _, err := state.Detect(base); err == nil {
		t.Fatal("expected baseline error on the first frame")
	}

	// 30px horizontal shift, twice the detection threshold.
	result, err := state.Detect(shiftMesh(base, 30, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Detected {
		t.Errorf("expected movement detection, displacement detail %v", result.Details["displacement"])
	}
	if result.Confidence != 1.0 {
		t.Errorf("expected saturated confidence, got %f", result.Confidence)
	}
}

func TestMovementIgnoresStillFace(t *testing.T) {
	var state MovementState
	base := newTestMesh(9, 5)
	state.Detect(base)

	result, err := state.Detect(shiftMesh(base, 2, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Detected {
		t.Error("sub-threshold displacement must not count as movement")
	}
	if result.Confidence != 0 {
		t.Errorf("expected zero confidence, got %f", result.Confidence)
	}
}

func TestMovementReset(t *testing.T) {
	var state MovementState
	base := newTestMesh(9, 5)
	state.Detect(base)
	state.Reset()

	if _, err := state.Detect(shiftMesh(base, 100, 100)); err == nil {
		t.Error("expected baseline error after reset")
	}
}

func TestDetectMouthOpen(t *testing.T) {
	tests := []struct {
		name         string
		mouthGap     float64
		wantDetected bool
	}{
		{"closed mouth", 5, false},
		{"open mouth", 30, true},
		{"at threshold", 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DetectMouthOpen(newTestMesh(9, tt.mouthGap))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Detected != tt.wantDetected {
				t.Errorf("Detected = %v, want %v (gap %v)", result.Detected, tt.wantDetected, result.Details["mouthDistance"])
			}
		})
	}
}
