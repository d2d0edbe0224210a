package validator

import (
	"encoding/base64"
	"strings"
	"testing"
)

type framePayload struct {
	Frame string `validate:"required,base64image"`
}

type challengePayload struct {
	ChallengeType string `validate:"required,challenge_type"`
}

func TestValidateStructBase64Image(t *testing.T) {
	valid := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("frame-data", 20)))

	tests := []struct {
		name    string
		payload framePayload
		wantErr bool
	}{
		{"plain base64", framePayload{Frame: valid}, false},
		{"data url", framePayload{Frame: "data:image/jpeg;base64," + valid}, false},
		{"empty frame", framePayload{Frame: ""}, true},
		{"not base64", framePayload{Frame: "!!definitely not base64!!"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatorInstance.ValidateStruct(tt.payload)
			if (errs != nil) != tt.wantErr {
				t.Errorf("errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateStructChallengeType(t *testing.T) {
	tests := []struct {
		name    string
		payload challengePayload
		wantErr bool
	}{
		{"known type", challengePayload{ChallengeType: "blink"}, false},
		{"another known type", challengePayload{ChallengeType: "head_turn"}, false},
		{"unknown type", challengePayload{ChallengeType: "wink"}, true},
		{"empty type", challengePayload{ChallengeType: ""}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatorInstance.ValidateStruct(tt.payload)
			if (errs != nil) != tt.wantErr {
				t.Errorf("errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidateValue(t *testing.T) {
	if err := ValidatorInstance.ValidateValue("user-1", "required,min=1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatorInstance.ValidateValue("", "required"); err == nil {
		t.Error("expected required violation for empty value")
	}
}
