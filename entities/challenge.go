package entities

type ChallengeType string

const (
	ChallengeHeadTurn  ChallengeType = "head_turn"
	ChallengeBlink     ChallengeType = "blink"
	ChallengeMouthOpen ChallengeType = "mouth_open"
	ChallengeSmile     ChallengeType = "smile"
	ChallengeNod       ChallengeType = "nod"
)

var AllChallengeTypes = []ChallengeType{
	ChallengeHeadTurn,
	ChallengeBlink,
	ChallengeMouthOpen,
	ChallengeSmile,
	ChallengeNod,
}

func (c ChallengeType) Valid() bool {
	for _, known := range AllChallengeTypes {
		if c == known {
			return true
		}
	}
	return false
}
