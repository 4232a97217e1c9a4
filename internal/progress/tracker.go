// Package progress implements the module progression state machine:
// lessons gate the quiz, a passing quiz (plus the practice task when the
// module has one) gates the badge.
package progress

import (
	"errors"
	"math"
	"time"

	"cryptopet/internal/models"
)

// PassThreshold is the minimum module quiz score that counts as a pass
const PassThreshold = 70

var (
	// ErrLessonNotInModule is returned for a lesson id the module does not contain
	ErrLessonNotInModule = errors.New("lesson does not belong to module")

	// ErrLessonsIncomplete is returned when the quiz is attempted before
	// every lesson is done
	ErrLessonsIncomplete = errors.New("all lessons must be completed before the quiz")

	// ErrNoPracticeTask is returned when practice completion is reported
	// for a module without a practice task
	ErrNoPracticeTask = errors.New("module has no practice task")

	// ErrBadgeNotEarnable is returned when a badge mint is requested
	// before the module's requirements are met
	ErrBadgeNotEarnable = errors.New("badge requirements not met")

	// ErrBadgeAlreadyMinted is returned for a repeated mint of the same badge
	ErrBadgeAlreadyMinted = errors.New("badge already minted")
)

// Stage is a coarse label for where a user is within a module
type Stage string

const (
	StageNotStarted        Stage = "not_started"
	StageLessonsInProgress Stage = "lessons_in_progress"
	StageQuizEligible      Stage = "quiz_eligible"
	StageQuizFailed        Stage = "quiz_failed"
	StagePracticeEligible  Stage = "practice_eligible"
	StageCompleted         Stage = "completed"
)

// NewProgress creates an empty progress record for a (user, module) pair
func NewProgress(id, userID, moduleID string, now time.Time) *models.ModuleProgress {
	return &models.ModuleProgress{
		ID:               id,
		UserID:           userID,
		ModuleID:         moduleID,
		LessonsCompleted: []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// CompleteLesson marks a lesson done. Re-completing an already-completed
// lesson is a no-op, not an error; the returned bool reports whether the
// record changed.
func CompleteLesson(p *models.ModuleProgress, m *models.Module, lessonID string, now time.Time) (bool, error) {
	found := false
	for _, l := range m.Lessons {
		if l.ID == lessonID {
			found = true
			break
		}
	}
	if !found {
		return false, ErrLessonNotInModule
	}

	if p.HasLesson(lessonID) {
		return false, nil
	}
	p.LessonsCompleted = append(p.LessonsCompleted, lessonID)
	p.UpdatedAt = now
	return true, nil
}

// CanTakeQuiz reports whether every lesson of the module is completed
func CanTakeQuiz(p *models.ModuleProgress, m *models.Module) bool {
	for _, l := range m.Lessons {
		if !p.HasLesson(l.ID) {
			return false
		}
	}
	return true
}

// CompleteQuiz records a quiz attempt. The lesson gate is enforced here;
// a retake overwrites the previous score (last attempt wins).
func CompleteQuiz(p *models.ModuleProgress, m *models.Module, score int, now time.Time) error {
	if !CanTakeQuiz(p, m) {
		return ErrLessonsIncomplete
	}
	p.QuizScore = &score
	p.QuizCompletedAt = &now
	p.UpdatedAt = now
	return nil
}

// CompletePractice records the externally-validated practice signal.
// Correctness of the practice work is not checked here; the caller
// supplies the validated transaction hash.
func CompletePractice(p *models.ModuleProgress, m *models.Module, txHash string, now time.Time) error {
	if !m.HasPractice() {
		return ErrNoPracticeTask
	}
	p.PracticeCompleted = true
	p.PracticeCompletedAt = &now
	if txHash != "" {
		p.PracticeTxHash = &txHash
	}
	p.UpdatedAt = now
	return nil
}

// BadgeEarnable reports whether the module's badge can be minted:
// a passing quiz, plus practice completion when the module defines a
// practice task.
func BadgeEarnable(p *models.ModuleProgress, m *models.Module) bool {
	if !p.QuizPassed(PassThreshold) {
		return false
	}
	if m.HasPractice() && !p.PracticeCompleted {
		return false
	}
	return true
}

// MarkBadgeMinted flips the local mint flag. Guarded: minting an
// unearned or already-minted badge is rejected without mutation.
func MarkBadgeMinted(p *models.ModuleProgress, m *models.Module, now time.Time) error {
	if p.BadgeMinted {
		return ErrBadgeAlreadyMinted
	}
	if !BadgeEarnable(p, m) {
		return ErrBadgeNotEarnable
	}
	p.BadgeMinted = true
	p.BadgeMintedAt = &now
	p.UpdatedAt = now
	return nil
}

// Percent computes module completion: lessons count one step each, the
// quiz one step (pass required), the practice task one step when present.
func Percent(p *models.ModuleProgress, m *models.Module) int {
	totalSteps := len(m.Lessons) + 1
	if m.HasPractice() {
		totalSteps++
	}

	completed := len(p.LessonsCompleted)
	if p.QuizPassed(PassThreshold) {
		completed++
	}
	if p.PracticeCompleted {
		completed++
	}

	return int(math.Round(float64(completed) / float64(totalSteps) * 100))
}

// CurrentStage derives the coarse stage label for display
func CurrentStage(p *models.ModuleProgress, m *models.Module) Stage {
	switch {
	case p == nil || (len(p.LessonsCompleted) == 0 && p.QuizScore == nil):
		return StageNotStarted
	case Percent(p, m) == 100:
		return StageCompleted
	case p.QuizPassed(PassThreshold) && m.HasPractice() && !p.PracticeCompleted:
		return StagePracticeEligible
	case p.QuizScore != nil && !p.QuizPassed(PassThreshold):
		return StageQuizFailed
	case CanTakeQuiz(p, m):
		return StageQuizEligible
	default:
		return StageLessonsInProgress
	}
}
