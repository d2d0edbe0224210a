package controller

import (
	"errors"
	"net/http"

	apperrors "veriface.io/application/appErrors"
	"veriface.io/application/controller/dto"
	"veriface.io/application/interfaces"
	verification_usecases "veriface.io/application/usecases/verification"
	"veriface.io/entities"
	server_response "veriface.io/infrastructure/serverResponse"
	"veriface.io/infrastructure/validator"
	"veriface.io/infrastructure/video"
)

// StartVerificationSession opens a new session for a user.
func StartVerificationSession(ctx *interfaces.ApplicationContext[dto.StartSessionDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	session := verification_usecases.StartSessionUseCase(ctx.Body.UserID)
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "verification session started", session, nil, nil)
}

// IssueChallenge attaches an interactive liveness challenge to a session.
func IssueChallenge(ctx *interfaces.ApplicationContext[dto.IssueChallengeDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	issued, err := verification_usecases.IssueChallengeUseCase(
		ctx.GetStringParameter("sessionID"),
		entities.ChallengeType(ctx.Body.ChallengeType),
	)
	if err != nil {
		respondUseCaseError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "challenge issued", issued, nil, nil)
}

// ProcessFrame analyzes a single base64-encoded frame.
func ProcessFrame(ctx *interfaces.ApplicationContext[dto.ProcessFrameDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	analysis, err := verification_usecases.ProcessFrameUseCase(ctx.GetStringParameter("sessionID"), ctx.Body.Frame)
	if err != nil {
		respondUseCaseError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "frame analyzed", analysis, nil, nil)
}

// ProcessVerificationVideo runs the pipeline over an uploaded video and
// finalizes the session in one call.
func ProcessVerificationVideo(ctx *interfaces.ApplicationContext[any]) {
	sessionID := ctx.GetStringParameter("sessionID")
	file, err := ctx.Ctx.FormFile("video")
	if err != nil {
		apperrors.ClientError(ctx.Ctx, "a video file upload is required", nil, nil)
		return
	}

	tempPath := "/tmp/veriface-" + sessionID + "-" + file.Filename
	if err := ctx.Ctx.SaveUploadedFile(file, tempPath); err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	result, err := verification_usecases.ProcessVideoUseCase(sessionID, tempPath)
	if err != nil {
		respondUseCaseError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "video verification completed", result, nil, nil)
}

// CompleteVerification finalizes a session and returns the adjudicated
// result.
func CompleteVerification(ctx *interfaces.ApplicationContext[any]) {
	result, err := verification_usecases.CompleteVerificationUseCase(ctx.GetStringParameter("sessionID"))
	if err != nil {
		respondUseCaseError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "verification completed", result, nil, nil)
}

// SessionStatus returns the current state of a session.
func SessionStatus(ctx *interfaces.ApplicationContext[any]) {
	session, err := verification_usecases.SessionStatusUseCase(ctx.GetStringParameter("sessionID"))
	if err != nil {
		respondUseCaseError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "session status retrieved", session, nil, nil)
}

func respondUseCaseError(ginCtx any, err error) {
	switch {
	case errors.Is(err, verification_usecases.ErrSessionNotFound):
		apperrors.NotFoundError(ginCtx, err.Error())
	case errors.Is(err, verification_usecases.ErrSessionCompleted):
		apperrors.ConflictError(ginCtx, err.Error())
	case errors.Is(err, verification_usecases.ErrInvalidImage),
		errors.Is(err, verification_usecases.ErrNoFramesAnalyzed),
		errors.Is(err, video.ErrVideoUnreadable),
		errors.Is(err, video.ErrVideoTooShort),
		errors.Is(err, video.ErrVideoTooLong),
		errors.Is(err, video.ErrResolutionLow),
		errors.Is(err, video.ErrFrameRateLow),
		errors.Is(err, video.ErrTooFewFrames):
		apperrors.ClientError(ginCtx, err.Error(), nil, nil)
	default:
		apperrors.UnknownError(ginCtx, err, nil)
	}
}
