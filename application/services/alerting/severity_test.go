package alerting

import (
	"testing"

	"veriface.io/entities"
)

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		name          string
		deepfakeScore float64
		livenessScore float64
		indicators    entities.SeverityIndicators
		want          entities.AlertSeverity
	}{
		{
			name:          "extreme deepfake score alone is critical",
			deepfakeScore: 0.9,
			livenessScore: 0.8,
			want:          entities.SeverityCritical,
		},
		{
			name:          "two critical indicators",
			deepfakeScore: 0.5,
			livenessScore: 0.1,
			indicators:    entities.SeverityIndicators{BlinkPatternAnomaly: 0.85},
			want:          entities.SeverityCritical,
		},
		{
			name:          "high score alone",
			deepfakeScore: 0.8,
			livenessScore: 0.9,
			want:          entities.SeverityHigh,
		},
		{
			name:          "two high indicators",
			deepfakeScore: 0.72,
			livenessScore: 0.9,
			indicators:    entities.SeverityIndicators{GeometryAnomaly: 0.85},
			want:          entities.SeverityHigh,
		},
		{
			name:          "single medium indicator",
			deepfakeScore: 0.6,
			livenessScore: 0.9,
			want:          entities.SeverityMedium,
		},
		{
			name:          "weak liveness only",
			deepfakeScore: 0.1,
			livenessScore: 0.45,
			want:          entities.SeverityMedium,
		},
		{
			name:          "clean session",
			deepfakeScore: 0.4,
			livenessScore: 0.8,
			want:          entities.SeverityLow,
		},
		{
			name:          "face never detected plus weak liveness",
			deepfakeScore: 0.3,
			livenessScore: 0.1,
			indicators:    entities.SeverityIndicators{FaceNotDetected: true},
			want:          entities.SeverityCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySeverity(tt.deepfakeScore, tt.livenessScore, tt.indicators)
			if got != tt.want {
				t.Errorf("ClassifySeverity(%f, %f) = %s, want %s", tt.deepfakeScore, tt.livenessScore, got, tt.want)
			}
		})
	}
}
