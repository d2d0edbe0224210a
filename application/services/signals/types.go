package signals

// FailureKind names the reason an extractor fell back to its neutral
// default. Callers stay fail-open but can tell a genuine neutral score
// from a degraded one.
type FailureKind string

const (
	FailureNoLandmarks        FailureKind = "no_landmarks"
	FailureInsufficientPoints FailureKind = "insufficient_landmarks"
	FailureNoPreviousFrame    FailureKind = "no_previous_frame"
	FailureDegenerateGeometry FailureKind = "degenerate_geometry"
	FailureInsufficientFrames FailureKind = "insufficient_history"
	FailureProcessing         FailureKind = "processing_error"
)

// ExtractionError reports a degraded extraction. The accompanying result
// is always a safe neutral value, so these are recorded rather than
// propagated.
type ExtractionError struct {
	Kind FailureKind
}

func (e *ExtractionError) Error() string {
	return string(e.Kind)
}

func extractionFailure(kind FailureKind) *ExtractionError {
	return &ExtractionError{Kind: kind}
}
