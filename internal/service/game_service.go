package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cryptopet/internal/catalog"
	"cryptopet/internal/logger"
	"cryptopet/internal/models"
	"cryptopet/internal/quiz"
)

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrDailyLimitReached = errors.New("daily play limit reached")
)

// playDateLayout keys daily play counters; a "day" is a UTC calendar day
const playDateLayout = "2006-01-02"

// GameStore is the persistence surface the game service needs
type GameStore interface {
	InsertSession(session *models.GameSession) error
	ListSessions(userID string, limit int) ([]models.GameSession, error)
	IncrementPlayCount(userID, gameID, playDate string) error
	GetPlayCount(userID, gameID, playDate string) (int, error)
	GetHighScore(userID, gameID string) (int, error)
	UpdateHighScore(userID, gameID string, score int) (bool, error)
}

// ScoreBoard receives finished scores for ranking. Implementations may
// be backed by Redis; failures must not fail the game flow.
type ScoreBoard interface {
	RecordScore(ctx context.Context, gameID, userID string, score int64) error
}

// GameStart is returned when a play session is granted
type GameStart struct {
	Config         *models.GameConfig    `json:"config"`
	Questions      []models.QuizQuestion `json:"questions,omitempty"`
	PlaysRemaining int                   `json:"playsRemaining"`
}

// GameResult is returned after a finished session is recorded
type GameResult struct {
	Session      *models.GameSession `json:"session"`
	XPEarned     int                 `json:"xpEarned"`
	HighScore    int                 `json:"highScore"`
	NewHighScore bool                `json:"newHighScore"`
}

// GameService runs the minigame loop: daily play gating, question
// dealing for the timed quiz, and XP plus high-score settlement when a
// session finishes.
type GameService struct {
	store GameStore
	pets  PetGateway
	board ScoreBoard
	now   func() time.Time
}

// NewGameService creates a new game service. board may be nil when no
// leaderboard backend is configured.
func NewGameService(store GameStore, pets PetGateway, board ScoreBoard) *GameService {
	return &GameService{
		store: store,
		pets:  pets,
		board: board,
		now:   time.Now,
	}
}

// StartGame consumes one of the day's plays and, for question games,
// deals a fresh random question set
func (s *GameService) StartGame(userID, gameID string) (*GameStart, error) {
	cfg, ok := catalog.GameConfigByID(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}

	day := s.now().UTC().Format(playDateLayout)
	plays, err := s.store.GetPlayCount(userID, gameID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to read play count: %w", err)
	}
	if plays >= cfg.MaxPlaysPerDay {
		return nil, ErrDailyLimitReached
	}
	if err := s.store.IncrementPlayCount(userID, gameID, day); err != nil {
		return nil, fmt.Errorf("failed to record play: %w", err)
	}

	start := &GameStart{
		Config:         cfg,
		PlaysRemaining: cfg.MaxPlaysPerDay - plays - 1,
	}
	if cfg.QuestionCount > 0 {
		start.Questions = catalog.RandomQuestions(cfg.QuestionCount, "")
	}
	return start, nil
}

// FinishGame records a finished session. XP for question games is
// recomputed from the reported details; other games earn their flat
// base XP. The high score only moves on a strictly greater score.
func (s *GameService) FinishGame(userID, gameID string, score int, details models.SessionDetails) (*GameResult, error) {
	cfg, ok := catalog.GameConfigByID(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}

	xp := cfg.BaseXP
	if cfg.QuestionCount > 0 {
		xp = quiz.XPFromDetails(cfg.BaseXP, details)
	}

	session := &models.GameSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		GameType:  gameID,
		Score:     score,
		XPEarned:  xp,
		Details:   details,
		Timestamp: s.now(),
	}
	if err := s.store.InsertSession(session); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	isNew, err := s.store.UpdateHighScore(userID, gameID, score)
	if err != nil {
		return nil, fmt.Errorf("failed to update high score: %w", err)
	}
	high, err := s.store.GetHighScore(userID, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to read high score: %w", err)
	}

	if xp > 0 {
		if _, err := s.pets.GrantXP(userID, xp); err != nil {
			logger.Logger.Error("game xp grant failed",
				zap.String("user_id", userID),
				zap.String("game_id", gameID),
				zap.Error(err))
		}
	}

	if s.board != nil {
		if err := s.board.RecordScore(context.Background(), gameID, userID, int64(high)); err != nil {
			logger.Logger.Warn("leaderboard update failed",
				zap.String("game_id", gameID),
				zap.Error(err))
		}
	}

	return &GameResult{
		Session:      session,
		XPEarned:     xp,
		HighScore:    high,
		NewHighScore: isNew,
	}, nil
}

// History returns the user's most recent sessions, newest first
func (s *GameService) History(userID string, limit int) ([]models.GameSession, error) {
	return s.store.ListSessions(userID, limit)
}

// PlaysRemaining reports how many plays of a game are left today
func (s *GameService) PlaysRemaining(userID, gameID string) (int, error) {
	cfg, ok := catalog.GameConfigByID(gameID)
	if !ok {
		return 0, ErrGameNotFound
	}
	day := s.now().UTC().Format(playDateLayout)
	plays, err := s.store.GetPlayCount(userID, gameID, day)
	if err != nil {
		return 0, err
	}
	remaining := cfg.MaxPlaysPerDay - plays
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
