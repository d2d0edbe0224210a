package signals

import (
	"math"
	"testing"

	ltypes "veriface.io/infrastructure/landmark/types"
)

func TestEyeAspectRatioDegenerateWidth(t *testing.T) {
	// All six points collapsed to one location: zero corner distance.
	eye := make([]ltypes.Point, 6)
	if got := eyeAspectRatio(eye); got != 0 {
		t.Errorf("expected 0 for degenerate eye, got %f", got)
	}
}

func TestDetectBlink(t *testing.T) {
	tests := []struct {
		name         string
		eyeOpening   float64
		wantDetected bool
	}{
		{"open eyes", 9, false},          // EAR 0.3
		{"closed eyes", 3, true},         // EAR 0.1
		{"just under threshold", 4.2, true}, // EAR 0.14
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := newTestMesh(tt.eyeOpening, 5)
			result, err := DetectBlink(set)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Detected != tt.wantDetected {
				t.Errorf("Detected = %v, want %v (ear detail %v)", result.Detected, tt.wantDetected, result.Details["ear"])
			}
			if result.Confidence < 0 || result.Confidence > 1 {
				t.Errorf("confidence %f outside [0, 1]", result.Confidence)
			}
		})
	}
}

func TestDetectBlinkSparseMesh(t *testing.T) {
	set := &ltypes.LandmarkSet{Points: make([]ltypes.Point, 50)}
	result, err := DetectBlink(set)
	if err == nil {
		t.Fatal("expected an extraction error for a sparse mesh")
	}
	if result.Detected {
		t.Error("sparse mesh must not report a blink")
	}
	if result.Details["failure"] != string(FailureInsufficientPoints) {
		t.Errorf("expected insufficient points failure, got %v", result.Details["failure"])
	}
}

func TestDetectBlinkNilSet(t *testing.T) {
	result, err := DetectBlink(nil)
	if err == nil {
		t.Fatal("expected an extraction error for a nil set")
	}
	if result.Details["failure"] != string(FailureNoLandmarks) {
		t.Errorf("expected no landmarks failure, got %v", result.Details["failure"])
	}
}

func TestEyeAspectRatioMatchesGeometry(t *testing.T) {
	set := newTestMesh(9, 5)
	ear, ok := EyeAspectRatio(set)
	if !ok {
		t.Fatal("expected EAR from a full mesh")
	}
	if math.Abs(ear-0.3) > 1e-9 {
		t.Errorf("EAR = %f, want 0.3", ear)
	}
}
