// Package quiz implements scoring for the timed quiz minigame: per-answer
// combo and time-bonus scoring plus the end-of-session XP summary.
package quiz

import (
	"math"

	"cryptopet/internal/models"
)

// Scoring constants
const (
	BasePointsPerQuestion = 100
	TimeBonusPerSecond    = 5
	ComboMultiplierStep   = 0.2
	XPComboBonusStep      = 0.1
)

// Session accumulates scoring state for one run of a timed quiz.
// The zero value is not usable; create one with NewSession.
type Session struct {
	GameID         string
	TotalQuestions int

	score    int
	combo    int
	maxCombo int
	correct  int
	answered int
}

// NewSession starts a scoring session for a game with the given number
// of questions
func NewSession(gameID string, totalQuestions int) *Session {
	return &Session{GameID: gameID, TotalQuestions: totalQuestions}
}

// Correct scores a correct answer given the seconds left on the question
// timer, and returns the points awarded for this question. The combo
// multiplier uses the consecutive-correct count from before this answer.
func (s *Session) Correct(timeLeftSeconds int) int {
	if timeLeftSeconds < 0 {
		timeLeftSeconds = 0
	}

	timeBonus := timeLeftSeconds * TimeBonusPerSecond
	comboMultiplier := 1 + ComboMultiplierStep*float64(s.combo)
	questionScore := int(math.Floor(float64(BasePointsPerQuestion+timeBonus) * comboMultiplier))

	s.score += questionScore
	s.combo++
	if s.combo > s.maxCombo {
		s.maxCombo = s.combo
	}
	s.correct++
	s.answered++

	return questionScore
}

// Wrong records an incorrect answer: the combo resets and no points are
// added
func (s *Session) Wrong() {
	s.combo = 0
	s.answered++
}

// Timeout records a question whose timer ran out. Scoring-wise it is an
// incorrect answer.
func (s *Session) Timeout() {
	s.Wrong()
}

// Score returns the accumulated session score
func (s *Session) Score() int { return s.score }

// Combo returns the current consecutive-correct count
func (s *Session) Combo() int { return s.combo }

// MaxCombo returns the best combo reached during the session
func (s *Session) MaxCombo() int { return s.maxCombo }

// Summary closes the session and computes earned XP:
// floor(baseXP * accuracy * (1 + maxCombo/10)).
func (s *Session) Summary(baseXP int) (int, models.SessionDetails) {
	accuracy := 0.0
	if s.TotalQuestions > 0 {
		accuracy = float64(s.correct) / float64(s.TotalQuestions)
	}
	xpEarned := int(math.Floor(float64(baseXP) * accuracy * (1 + float64(s.maxCombo)*XPComboBonusStep)))

	return xpEarned, models.SessionDetails{
		CorrectAnswers: s.correct,
		TotalQuestions: s.TotalQuestions,
		MaxCombo:       s.maxCombo,
		Accuracy:       accuracy,
	}
}

// XPFromDetails recomputes session XP from reported statistics, using
// the same formula as Summary. The server trusts the client's per-answer
// timing but never its XP figure.
func XPFromDetails(baseXP int, d models.SessionDetails) int {
	accuracy := 0.0
	if d.TotalQuestions > 0 {
		accuracy = float64(d.CorrectAnswers) / float64(d.TotalQuestions)
	}
	return int(math.Floor(float64(baseXP) * accuracy * (1 + float64(d.MaxCombo)*XPComboBonusStep)))
}

// ModuleQuizScore computes the plain percentage score used by module
// quizzes (no combo or time bonus): round(correct/total*100).
func ModuleQuizScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
