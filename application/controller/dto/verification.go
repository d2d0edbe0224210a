package dto

type StartSessionDTO struct {
	UserID string `json:"userID" validate:"required,min=1,max=128"`
}

type IssueChallengeDTO struct {
	ChallengeType string `json:"challengeType" validate:"required,challenge_type"`
}

type ProcessFrameDTO struct {
	Frame string `json:"frame" validate:"required,base64image"`
}
