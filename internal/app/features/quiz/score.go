package quiz

import (
	"errors"

	"github.com/dalemusser/mindwell/internal/domain/models"
)

// Answer bounds for a single quiz question.
const (
	minAnswer = 0
	maxAnswer = 3
)

// ErrInvalidAnswers is returned when the submission is empty or contains a
// value outside 0-3. The text is the exact message surfaced to clients.
var ErrInvalidAnswers = errors.New("Answers must be a list of integers 0-3")

// Suggestion texts are domain content reviewed with the content team. The
// thresholds in Score are illustrative, not clinically derived; do not
// rework them without a content review.
const (
	suggestionLow = "You seem to be doing okay. Keep up your routines and check in with yourself." +
		" Explore the tips section for daily maintenance."
	suggestionModerate = "You may be experiencing some stress. Consider mindfulness, movement, and talking to someone you trust."
	suggestionElevated = "It might help to speak with a mental health professional. Check the helplines and consider scheduling a consult."
	suggestionHigh     = "Please consider reaching out to a professional or a trusted person today. If you feel unsafe, contact your local crisis line immediately."
)

// Score validates the answers and computes the quiz result.
//
// The score is the arithmetic sum of the answers. Buckets are inclusive on
// the upper bound and evaluated in order: <=6 Low, <=12 Moderate,
// <=18 Elevated, else High.
func Score(answers []int) (models.QuizResult, error) {
	if len(answers) == 0 {
		return models.QuizResult{}, ErrInvalidAnswers
	}

	score := 0
	for _, a := range answers {
		if a < minAnswer || a > maxAnswer {
			return models.QuizResult{}, ErrInvalidAnswers
		}
		score += a
	}

	result := models.QuizResult{Score: score}
	switch {
	case score <= 6:
		result.Level = models.LevelLow
		result.Suggestion = suggestionLow
	case score <= 12:
		result.Level = models.LevelModerate
		result.Suggestion = suggestionModerate
	case score <= 18:
		result.Level = models.LevelElevated
		result.Suggestion = suggestionElevated
	default:
		result.Level = models.LevelHigh
		result.Suggestion = suggestionHigh
	}

	return result, nil
}
