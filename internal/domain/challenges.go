package domain

// PointsPerChallenge is the fixed award for each correct answer.
const PointsPerChallenge = 10

// challenges is the embedded catalog. It is static configuration, never
// mutated at runtime; the last ordinal completes the game.
var challenges = []Challenge{
	{
		ID:     1,
		Prompt: "Decrypt this Caesar cipher (shift of 3): Khoor",
		Answer: "Hello",
	},
	{
		ID:     2,
		Prompt: "Decode this binary: 01001000 01001001",
		Answer: "HI",
	},
	{
		ID:     3,
		Prompt: "What does 'HTTP' stand for?",
		Answer: "HyperText Transfer Protocol",
	},
	{
		ID:     4,
		Prompt: "What does 'SQL' stand for?",
		Options: []string{
			"Standard Query Language",
			"Structured Query Language",
			"Simple Query Language",
			"System Query Language",
		},
		Answer: "Structured Query Language",
	},
	{
		ID:     5,
		Prompt: "Final riddle: What message appears when you successfully breach a system? (format: 'Hacked by __')",
		Answer: "Hacked by JH",
	},
}

// Challenges returns the full catalog in play order.
func Challenges() []Challenge {
	return challenges
}

// ChallengeByID looks up a challenge by its ordinal.
func ChallengeByID(id int) (Challenge, bool) {
	for _, c := range challenges {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}

// FinalChallengeID is the ordinal whose correct answer completes the game.
func FinalChallengeID() int {
	return challenges[len(challenges)-1].ID
}

// SolvedBit maps a challenge ordinal to its position in Player.Solved.
func SolvedBit(challengeID int) uint32 {
	return 1 << uint(challengeID-1)
}
