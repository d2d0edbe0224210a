package entities

import "time"

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// Session holds the state of one verification attempt. Frame analysis is
// append-only; Status moves active -> completed exactly once.
type Session struct {
	ID                 string              `json:"id"`
	UserID             string              `json:"userID"`
	Status             SessionStatus       `json:"status"`
	CreatedAt          time.Time           `json:"createdAt"`
	FrameAnalysis      []FrameAnalysis     `json:"frameAnalysis,omitempty"`
	CurrentChallenge   *IssuedChallenge    `json:"currentChallenge,omitempty"`
	VerificationResult *VerificationResult `json:"verificationResult,omitempty"`
}

type IssuedChallenge struct {
	Type        ChallengeType `json:"type"`
	Instruction string        `json:"instruction"`
	Timeout     time.Duration `json:"timeout"`
	IssuedAt    time.Time     `json:"issuedAt"`
}
