package models

import "time"

// SessionDetails captures per-session quiz statistics
type SessionDetails struct {
	CorrectAnswers int     `json:"correctAnswers"`
	TotalQuestions int     `json:"totalQuestions"`
	MaxCombo       int     `json:"maxCombo"`
	Accuracy       float64 `json:"accuracy"`
}

// GameSession is an immutable record of one finished minigame session.
// History is append-only and capped at the most recent 50 entries.
type GameSession struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	GameType  string         `json:"gameType"`
	Score     int            `json:"score"`
	XPEarned  int            `json:"xpEarned"`
	Details   SessionDetails `json:"details"`
	Timestamp time.Time      `json:"timestamp"`
}

// GameConfig is the static per-game configuration
type GameConfig struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	QuestionCount   int    `json:"questionCount"`
	TimePerQuestion int    `json:"timePerQuestion"` // seconds
	BaseXP          int    `json:"baseXP"`
	MaxPlaysPerDay  int    `json:"maxPlaysPerDay"`
}

// LeaderboardEntry is one row of the XP leaderboard
type LeaderboardEntry struct {
	Rank   int64  `json:"rank"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Value  int64  `json:"value"`
}
