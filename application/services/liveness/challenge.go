package liveness

import (
	"fmt"
	"time"

	"veriface.io/entities"
)

// ChallengeSpec describes one interactive liveness challenge presented to
// the user during a session.
type ChallengeSpec struct {
	Instruction     string        `json:"instruction"`
	ExpectedActions []string      `json:"expectedActions"`
	Timeout         time.Duration `json:"timeout"`
}

var challengeTable = map[entities.ChallengeType]ChallengeSpec{
	entities.ChallengeHeadTurn: {
		Instruction:     "Please turn your head to the left and then to the right",
		ExpectedActions: []string{"horizontal_turn"},
		Timeout:         8 * time.Second,
	},
	entities.ChallengeBlink: {
		Instruction:     "Please blink your eyes",
		ExpectedActions: []string{"blink"},
		Timeout:         5 * time.Second,
	},
	entities.ChallengeMouthOpen: {
		Instruction:     "Please open your mouth",
		ExpectedActions: []string{"mouth_open"},
		Timeout:         5 * time.Second,
	},
	entities.ChallengeSmile: {
		Instruction:     "Please smile",
		ExpectedActions: []string{"smile"},
		Timeout:         5 * time.Second,
	},
	entities.ChallengeNod: {
		Instruction:     "Please nod your head",
		ExpectedActions: []string{"vertical_nod"},
		Timeout:         5 * time.Second,
	},
}

func GenerateChallenge(challengeType entities.ChallengeType) (*ChallengeSpec, error) {
	spec, ok := challengeTable[challengeType]
	if !ok {
		return nil, fmt.Errorf("unknown challenge type %q", challengeType)
	}
	return &spec, nil
}
