package verification_usecases

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found or expired")
	ErrSessionCompleted = errors.New("session has already been completed")
	ErrInvalidImage     = errors.New("frame payload could not be decoded as an image")
	ErrNoFramesAnalyzed = errors.New("no frames have been analyzed for this session")
)
