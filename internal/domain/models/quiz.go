package models

// Severity levels produced by quiz scoring, ordered from least to most
// concerning. The thresholds and suggestion texts that map scores onto these
// levels are domain content and live with the quiz feature.
const (
	LevelLow      = "Low"
	LevelModerate = "Moderate"
	LevelElevated = "Elevated"
	LevelHigh     = "High"
)

// QuizSubmission is the request body for POST /api/quiz. Each answer must be
// an integer in 0-3; length is caller-determined.
type QuizSubmission struct {
	Answers []int `json:"answers"`
}

// QuizResult is the response body for POST /api/quiz. Score is the arithmetic
// sum of the answers; Level is one of the Level* constants.
type QuizResult struct {
	Score      int    `json:"score"`
	Level      string `json:"level"`
	Suggestion string `json:"suggestion"`
}
