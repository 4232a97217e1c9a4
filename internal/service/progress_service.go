package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cryptopet/internal/catalog"
	"cryptopet/internal/logger"
	"cryptopet/internal/models"
	"cryptopet/internal/progress"
	"cryptopet/internal/quiz"
)

var (
	ErrModuleNotFound = errors.New("module not found")
	ErrModuleLocked   = errors.New("module requires a higher pet level")
	ErrAnswerCount    = errors.New("answer count does not match question count")
)

// ProgressStore is the persistence surface the progress service needs
type ProgressStore interface {
	CreateProgress(p *models.ModuleProgress) error
	GetProgress(userID, moduleID string) (*models.ModuleProgress, error)
	ListProgress(userID string) ([]models.ModuleProgress, error)
	UpdateProgress(p *models.ModuleProgress) error
}

// PetGateway is the slice of the pet service the progress service needs:
// the level gate and the XP grant on module completion
type PetGateway interface {
	GetPet(userID string) (*models.Pet, error)
	GrantXP(userID string, amount int) (*models.Pet, error)
}

// ModuleOverview pairs a catalog module with the user's progress in it
type ModuleOverview struct {
	Module   *models.Module         `json:"module"`
	Progress *models.ModuleProgress `json:"progress"`
	Percent  int                    `json:"percent"`
	Stage    progress.Stage         `json:"stage"`
	Locked   bool                   `json:"locked"`
}

// QuizResult is returned after grading a module quiz submission
type QuizResult struct {
	Score    int  `json:"score"`
	Correct  int  `json:"correct"`
	Total    int  `json:"total"`
	Passed   bool `json:"passed"`
	XPEarned int  `json:"xpEarned"`
}

// ProgressService drives learning module progression: lesson completion,
// quiz grading and the practice task signal. Module XP is granted to the
// pet exactly once, on the transition into the completed stage.
type ProgressService struct {
	store ProgressStore
	pets  PetGateway
	now   func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(store ProgressStore, pets PetGateway) *ProgressService {
	return &ProgressService{
		store: store,
		pets:  pets,
		now:   time.Now,
	}
}

// Overview returns every catalog module with the user's progress overlay
func (s *ProgressService) Overview(userID string) ([]ModuleOverview, error) {
	records, err := s.store.ListProgress(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	byModule := make(map[string]*models.ModuleProgress, len(records))
	for i := range records {
		byModule[records[i].ModuleID] = &records[i]
	}

	level := 1
	if p, err := s.pets.GetPet(userID); err == nil && p != nil {
		level = p.Level
	}

	modules := catalog.Modules()
	out := make([]ModuleOverview, 0, len(modules))
	for i := range modules {
		m := &modules[i]
		rec := byModule[m.ID]
		out = append(out, ModuleOverview{
			Module:   m,
			Progress: rec,
			Percent:  percentOrZero(rec, m),
			Stage:    progress.CurrentStage(rec, m),
			Locked:   level < m.RequiredLevel,
		})
	}
	return out, nil
}

// ModuleProgress returns the user's progress in one module, creating an
// empty record on first touch
func (s *ProgressService) ModuleProgress(userID, moduleID string) (*ModuleOverview, error) {
	m, ok := catalog.ModuleByID(moduleID)
	if !ok {
		return nil, ErrModuleNotFound
	}

	rec, err := s.getOrCreate(userID, m)
	if err != nil {
		return nil, err
	}

	return &ModuleOverview{
		Module:   m,
		Progress: rec,
		Percent:  progress.Percent(rec, m),
		Stage:    progress.CurrentStage(rec, m),
	}, nil
}

// CompleteLesson marks a lesson done for the user. The module's level
// requirement is enforced; re-completion is a no-op.
func (s *ProgressService) CompleteLesson(userID, moduleID, lessonID string) (*models.ModuleProgress, error) {
	m, err := s.unlockedModule(userID, moduleID)
	if err != nil {
		return nil, err
	}

	rec, err := s.getOrCreate(userID, m)
	if err != nil {
		return nil, err
	}

	changed, err := progress.CompleteLesson(rec, m, lessonID, s.now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return rec, nil
	}

	if err := s.store.UpdateProgress(rec); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}
	return rec, nil
}

// SubmitQuiz grades a module quiz attempt. Answers are option indexes in
// question order; grading happens server side against the catalog. A
// retake overwrites the previous score.
func (s *ProgressService) SubmitQuiz(userID, moduleID string, answers []int) (*QuizResult, error) {
	m, err := s.unlockedModule(userID, moduleID)
	if err != nil {
		return nil, err
	}
	if len(answers) != len(m.Quiz.Questions) {
		return nil, ErrAnswerCount
	}

	rec, err := s.getOrCreate(userID, m)
	if err != nil {
		return nil, err
	}

	correct := 0
	for i, q := range m.Quiz.Questions {
		if answers[i] == q.CorrectIndex {
			correct++
		}
	}
	score := quiz.ModuleQuizScore(correct, len(m.Quiz.Questions))

	wasCompleted := progress.CurrentStage(rec, m) == progress.StageCompleted
	if err := progress.CompleteQuiz(rec, m, score, s.now()); err != nil {
		return nil, err
	}

	if err := s.store.UpdateProgress(rec); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	result := &QuizResult{
		Score:   score,
		Correct: correct,
		Total:   len(m.Quiz.Questions),
		Passed:  score >= progress.PassThreshold,
	}
	result.XPEarned = s.grantCompletionXP(userID, rec, m, wasCompleted)
	return result, nil
}

// CompletePractice records the validated practice transaction for the
// user's module progress
func (s *ProgressService) CompletePractice(userID, moduleID, txHash string) (*models.ModuleProgress, error) {
	m, err := s.unlockedModule(userID, moduleID)
	if err != nil {
		return nil, err
	}

	rec, err := s.getOrCreate(userID, m)
	if err != nil {
		return nil, err
	}

	wasCompleted := progress.CurrentStage(rec, m) == progress.StageCompleted
	if err := progress.CompletePractice(rec, m, txHash, s.now()); err != nil {
		return nil, err
	}

	if err := s.store.UpdateProgress(rec); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	s.grantCompletionXP(userID, rec, m, wasCompleted)
	return rec, nil
}

// grantCompletionXP grants the module's XP reward on the transition into
// the completed stage, and reports the amount granted
func (s *ProgressService) grantCompletionXP(userID string, rec *models.ModuleProgress, m *models.Module, wasCompleted bool) int {
	if wasCompleted || progress.CurrentStage(rec, m) != progress.StageCompleted {
		return 0
	}
	if _, err := s.pets.GrantXP(userID, m.XPReward); err != nil {
		// Progress is already saved; the grant is retried on the next
		// completion-stage transition only, so log loudly.
		logger.Logger.Error("module xp grant failed",
			zap.String("user_id", userID),
			zap.String("module_id", m.ID),
			zap.Error(err))
		return 0
	}
	return m.XPReward
}

// unlockedModule resolves a module and enforces its pet level requirement
func (s *ProgressService) unlockedModule(userID, moduleID string) (*models.Module, error) {
	m, ok := catalog.ModuleByID(moduleID)
	if !ok {
		return nil, ErrModuleNotFound
	}
	if m.RequiredLevel > 1 {
		p, err := s.pets.GetPet(userID)
		if err != nil {
			return nil, err
		}
		if p.Level < m.RequiredLevel {
			return nil, ErrModuleLocked
		}
	}
	return m, nil
}

// getOrCreate loads the (user, module) progress record, creating an
// empty one on first access
func (s *ProgressService) getOrCreate(userID string, m *models.Module) (*models.ModuleProgress, error) {
	rec, err := s.store.GetProgress(userID, m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if rec != nil {
		return rec, nil
	}

	rec = progress.NewProgress(uuid.NewString(), userID, m.ID, s.now())
	if err := s.store.CreateProgress(rec); err != nil {
		return nil, fmt.Errorf("failed to create progress: %w", err)
	}
	return rec, nil
}

func percentOrZero(rec *models.ModuleProgress, m *models.Module) int {
	if rec == nil {
		return 0
	}
	return progress.Percent(rec, m)
}
