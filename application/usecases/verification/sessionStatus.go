package verification_usecases

import (
	"veriface.io/application/repository"
	"veriface.io/entities"
)

// SessionStatusUseCase returns a snapshot of the session state, safe to
// serialize while frames keep arriving.
func SessionStatusUseCase(sessionID string) (*entities.Session, error) {
	record := repository.SessionRepo().FindByID(sessionID)
	if record == nil {
		return nil, ErrSessionNotFound
	}

	record.Mu.Lock()
	defer record.Mu.Unlock()
	snapshot := *record.Session
	snapshot.FrameAnalysis = append([]entities.FrameAnalysis{}, record.Session.FrameAnalysis...)
	return &snapshot, nil
}
