package models

import "time"

// ModuleProgress tracks one user's progress through one module.
// Created lazily on the first lesson completion, never deleted.
type ModuleProgress struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"userId"`
	ModuleID            string     `json:"moduleId"`
	LessonsCompleted    []string   `json:"lessonsCompleted"`
	QuizScore           *int       `json:"quizScore"`
	QuizCompletedAt     *time.Time `json:"quizCompletedAt"`
	PracticeCompleted   bool       `json:"practiceCompleted"`
	PracticeCompletedAt *time.Time `json:"practiceCompletedAt"`
	PracticeTxHash      *string    `json:"practiceTxHash"`
	BadgeMinted         bool       `json:"badgeMinted"`
	BadgeMintedAt       *time.Time `json:"badgeMintedAt"`
	BadgeTxHash         *string    `json:"badgeTxHash"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// HasLesson reports whether the given lesson id is already completed
func (p *ModuleProgress) HasLesson(lessonID string) bool {
	for _, id := range p.LessonsCompleted {
		if id == lessonID {
			return true
		}
	}
	return false
}

// QuizPassed reports whether the recorded quiz score meets the pass threshold
func (p *ModuleProgress) QuizPassed(passThreshold int) bool {
	return p.QuizScore != nil && *p.QuizScore >= passThreshold
}
