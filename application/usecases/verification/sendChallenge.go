package verification_usecases

import (
	"time"

	"veriface.io/application/repository"
	"veriface.io/application/services/liveness"
	"veriface.io/entities"
)

// IssueChallengeUseCase attaches an interactive challenge to an active
// session. Issuing a new challenge replaces the previous one.
func IssueChallengeUseCase(sessionID string, challengeType entities.ChallengeType) (*entities.IssuedChallenge, error) {
	record := repository.SessionRepo().FindByID(sessionID)
	if record == nil {
		return nil, ErrSessionNotFound
	}

	spec, err := liveness.GenerateChallenge(challengeType)
	if err != nil {
		return nil, err
	}

	record.Mu.Lock()
	defer record.Mu.Unlock()
	if record.Session.Status != entities.SessionActive {
		return nil, ErrSessionCompleted
	}

	issued := &entities.IssuedChallenge{
		Type:        challengeType,
		Instruction: spec.Instruction,
		Timeout:     spec.Timeout,
		IssuedAt:    time.Now(),
	}
	record.Session.CurrentChallenge = issued
	repository.SessionRepo().Touch(sessionID)
	return issued, nil
}
