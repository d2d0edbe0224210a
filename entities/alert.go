package entities

import "time"

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

var AllSeverities = []AlertSeverity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

type AlertType string

const (
	AlertDeepfakeDetected      AlertType = "deepfake_detected"
	AlertLivenessFailed        AlertType = "liveness_failed"
	AlertUnusualGeometry       AlertType = "unusual_geometry"
	AlertTextureAnomaly        AlertType = "texture_anomaly"
	AlertBlinkPatternAnomaly   AlertType = "blink_pattern_anomaly"
	AlertTemporalInconsistency AlertType = "temporal_inconsistency"
	AlertFaceNotDetected       AlertType = "face_not_detected"
	AlertMultipleFaces         AlertType = "multiple_faces"
)

var AllAlertTypes = []AlertType{
	AlertDeepfakeDetected,
	AlertLivenessFailed,
	AlertUnusualGeometry,
	AlertTextureAnomaly,
	AlertBlinkPatternAnomaly,
	AlertTemporalInconsistency,
	AlertFaceNotDetected,
	AlertMultipleFaces,
}

type AlertStatus string

const (
	AlertActive       AlertStatus = "active"
	AlertAcknowledged AlertStatus = "acknowledged"
)

// Alert is raised when a verification session shows spoofing indicators.
// Status only moves active -> acknowledged.
type Alert struct {
	ID             string         `json:"id"`
	Type           AlertType      `json:"type"`
	Severity       AlertSeverity  `json:"severity"`
	Timestamp      time.Time      `json:"timestamp"`
	UserID         *string        `json:"userID,omitempty"`
	SessionID      string         `json:"sessionID"`
	Message        string         `json:"message"`
	Details        map[string]any `json:"details"`
	Status         AlertStatus    `json:"status"`
	AcknowledgedAt *time.Time     `json:"acknowledgedAt,omitempty"`
	AcknowledgedBy *string        `json:"acknowledgedBy,omitempty"`
}

type AlertStatistics struct {
	TotalAlerts  int                   `json:"totalAlerts"`
	ActiveAlerts int                   `json:"activeAlerts"`
	BySeverity   map[AlertSeverity]int `json:"bySeverity"`
	ByType       map[AlertType]int     `json:"byType"`
}
