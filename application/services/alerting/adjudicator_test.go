package alerting

import (
	"testing"

	"veriface.io/entities"
)

func TestEvaluateVerificationResult(t *testing.T) {
	tests := []struct {
		name       string
		deepfake   entities.DeepfakeAnalysis
		liveness   entities.LivenessAnalysis
		wantStatus entities.VerificationStatus
		wantAlerts int
	}{
		{
			name:       "clean session passes",
			deepfake:   entities.DeepfakeAnalysis{DeepfakeScore: 0.2, FaceDetected: true},
			liveness:   entities.LivenessAnalysis{LivenessScore: 0.9, FaceDetected: true},
			wantStatus: entities.VerificationPassed,
			wantAlerts: 0,
		},
		{
			name:       "deepfake score fails",
			deepfake:   entities.DeepfakeAnalysis{DeepfakeScore: 0.85, FaceDetected: true},
			liveness:   entities.LivenessAnalysis{LivenessScore: 0.9, FaceDetected: true},
			wantStatus: entities.VerificationFailed,
			wantAlerts: 1,
		},
		{
			name:       "liveness failure fails",
			deepfake:   entities.DeepfakeAnalysis{DeepfakeScore: 0.2, FaceDetected: true},
			liveness:   entities.LivenessAnalysis{LivenessScore: 0.3, FaceDetected: true},
			wantStatus: entities.VerificationFailed,
			wantAlerts: 1,
		},
		{
			name: "all checks fail without short-circuit",
			deepfake: entities.DeepfakeAnalysis{
				DeepfakeScore: 0.9,
				Indicators:    entities.SeverityIndicators{FaceNotDetected: true},
			},
			liveness:   entities.LivenessAnalysis{LivenessScore: 0.1},
			wantStatus: entities.VerificationFailed,
			wantAlerts: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService()
			result := service.EvaluateVerificationResult("session-1", "user-1", tt.deepfake, tt.liveness)

			if result.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", result.Status, tt.wantStatus)
			}
			if result.Verified != (tt.wantStatus == entities.VerificationPassed) {
				t.Errorf("Verified = %v inconsistent with status %s", result.Verified, result.Status)
			}
			if len(result.Alerts) != tt.wantAlerts {
				t.Errorf("alerts = %d, want %d", len(result.Alerts), tt.wantAlerts)
			}
			if len(result.Recommendations) != tt.wantAlerts {
				t.Errorf("recommendations = %d, want %d", len(result.Recommendations), tt.wantAlerts)
			}
			if result.SessionID != "session-1" || result.UserID != "user-1" {
				t.Error("result must carry the session and user ids")
			}
		})
	}
}

func TestEvaluateVerificationResultGradesDeepfakeSeverity(t *testing.T) {
	service := NewService()
	result := service.EvaluateVerificationResult("session-2", "user-2",
		entities.DeepfakeAnalysis{DeepfakeScore: 0.95, FaceDetected: true},
		entities.LivenessAnalysis{LivenessScore: 0.9, FaceDetected: true},
	)
	if len(result.Alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(result.Alerts))
	}
	if result.Alerts[0].Severity != entities.SeverityCritical {
		t.Errorf("severity = %s, want critical", result.Alerts[0].Severity)
	}
	if result.Alerts[0].Type != entities.AlertDeepfakeDetected {
		t.Errorf("type = %s, want deepfake_detected", result.Alerts[0].Type)
	}
}
