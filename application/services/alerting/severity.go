package alerting

import "veriface.io/entities"

// ClassifySeverity grades a detection by score and indicator evidence.
// The tiers are a priority cascade: critical is checked first, then high,
// then medium, defaulting to low.
func ClassifySeverity(deepfakeScore float64, livenessScore float64, indicators entities.SeverityIndicators) entities.AlertSeverity {
	criticalIndicators := countTrue(
		deepfakeScore > 0.85,
		livenessScore < 0.2,
		indicators.BlinkPatternAnomaly > 0.8,
		indicators.TextureAnomaly > 0.9,
		indicators.FaceNotDetected,
	)
	highIndicators := countTrue(
		deepfakeScore > 0.7,
		livenessScore < 0.35,
		indicators.TextureAnomaly > 0.7,
		indicators.GeometryAnomaly > 0.8,
	)
	mediumIndicators := countTrue(
		deepfakeScore > 0.55,
		livenessScore < 0.5,
		indicators.TemporalAnomaly > 0.6,
	)

	switch {
	case criticalIndicators >= 2 || deepfakeScore > 0.85:
		return entities.SeverityCritical
	case highIndicators >= 2 || deepfakeScore > 0.75:
		return entities.SeverityHigh
	case mediumIndicators >= 1:
		return entities.SeverityMedium
	default:
		return entities.SeverityLow
	}
}

func countTrue(conditions ...bool) int {
	count := 0
	for _, c := range conditions {
		if c {
			count++
		}
	}
	return count
}
