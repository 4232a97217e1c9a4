package models

// LessonType describes how a lesson is delivered
type LessonType string

const (
	LessonTypeText        LessonType = "text"
	LessonTypeVideo       LessonType = "video"
	LessonTypeInteractive LessonType = "interactive"
)

// Lesson is a single learning unit inside a module
type Lesson struct {
	ID          string     `json:"id"`
	ModuleID    string     `json:"moduleId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        LessonType `json:"type"`
	Content     string     `json:"content"`
	Duration    int        `json:"duration"` // minutes
	Order       int        `json:"order"`
}

// QuizQuestion is a multiple-choice question with one correct option
type QuizQuestion struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty"`
	Category     string   `json:"category,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
}

// Quiz is the end-of-module knowledge check
type Quiz struct {
	ID        string         `json:"id"`
	ModuleID  string         `json:"moduleId"`
	Questions []QuizQuestion `json:"questions"`
}

// PracticeTaskType describes the kind of on-chain practice exercise
type PracticeTaskType string

const (
	PracticeTransaction PracticeTaskType = "transaction"
	PracticeSwap        PracticeTaskType = "swap"
	PracticeWalletSetup PracticeTaskType = "wallet-setup"
)

// PracticeTask is an optional hands-on exercise verified externally
// (the core only records the validated signal, it never checks the chain)
type PracticeTask struct {
	ID                 string           `json:"id"`
	ModuleID           string           `json:"moduleId"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Type               PracticeTaskType `json:"type"`
	Instructions       []string         `json:"instructions"`
	ValidationCriteria string           `json:"validationCriteria"`
}

// Module is a learning unit: ordered lessons, one quiz, optional practice
// task. Modules come from the static catalog and are never mutated.
type Module struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Icon          string        `json:"icon"`
	RequiredLevel int           `json:"requiredLevel"`
	XPReward      int           `json:"xpReward"`
	BadgeID       string        `json:"badgeId"`
	Order         int           `json:"order"`
	Lessons       []Lesson      `json:"lessons"`
	Quiz          Quiz          `json:"quiz"`
	PracticeTask  *PracticeTask `json:"practiceTask"`
}

// LessonIDs returns the ids of all lessons in the module
func (m *Module) LessonIDs() []string {
	ids := make([]string, len(m.Lessons))
	for i, l := range m.Lessons {
		ids[i] = l.ID
	}
	return ids
}

// HasPractice reports whether the module defines a practice task
func (m *Module) HasPractice() bool {
	return m.PracticeTask != nil
}
