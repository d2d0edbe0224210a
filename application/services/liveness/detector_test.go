package liveness

import (
	"math"
	"testing"

	"veriface.io/entities"
)

func frameWithLiveness(score float64, faceDetected bool) entities.FrameAnalysis {
	return entities.FrameAnalysis{
		Liveness: entities.LivenessFrameResult{
			FaceDetected:  faceDetected,
			LivenessScore: score,
		},
	}
}

func TestSessionConfidenceEmpty(t *testing.T) {
	if got := SessionConfidence(nil); got != 0 {
		t.Errorf("empty session confidence = %f, want 0", got)
	}
}

func TestSessionConfidenceIgnoresFacelessFrames(t *testing.T) {
	frames := []entities.FrameAnalysis{
		frameWithLiveness(0.9, true),
		frameWithLiveness(0.0, false),
	}
	if got := SessionConfidence(frames); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("confidence = %f, want 0.9", got)
	}
}

func TestSessionConfidenceWeightsRecentFrames(t *testing.T) {
	// Older low score, newer high score: the recency decay must pull the
	// confidence above the plain average.
	frames := []entities.FrameAnalysis{
		frameWithLiveness(0.2, true),
		frameWithLiveness(0.8, true),
	}
	got := SessionConfidence(frames)
	want := (0.8*1.0 + 0.2*0.9) / (1.0 + 0.9)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("confidence = %f, want %f", got, want)
	}
	if got <= 0.5 {
		t.Errorf("recency weighting should favor the newer frame, got %f", got)
	}
}

func TestSessionConfidenceUniformScores(t *testing.T) {
	frames := []entities.FrameAnalysis{}
	for i := 0; i < 10; i++ {
		frames = append(frames, frameWithLiveness(0.7, true))
	}
	if got := SessionConfidence(frames); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("uniform scores confidence = %f, want 0.7", got)
	}
}
