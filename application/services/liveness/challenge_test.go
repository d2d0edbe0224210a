package liveness

import (
	"testing"

	"veriface.io/entities"
)

func TestGenerateChallengeKnownTypes(t *testing.T) {
	for _, challengeType := range entities.AllChallengeTypes {
		spec, err := GenerateChallenge(challengeType)
		if err != nil {
			t.Errorf("GenerateChallenge(%s) returned error: %v", challengeType, err)
			continue
		}
		if spec.Instruction == "" {
			t.Errorf("challenge %s has no instruction", challengeType)
		}
		if len(spec.ExpectedActions) == 0 {
			t.Errorf("challenge %s has no expected actions", challengeType)
		}
		if spec.Timeout <= 0 {
			t.Errorf("challenge %s has no timeout", challengeType)
		}
	}
}

func TestGenerateChallengeUnknownType(t *testing.T) {
	if _, err := GenerateChallenge(entities.ChallengeType("wink")); err == nil {
		t.Error("expected an error for an unknown challenge type")
	}
}
