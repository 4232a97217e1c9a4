// Package leaderboard keeps per-game high score rankings in Redis
// sorted sets. The database stays the source of truth; the board is a
// cache that can be rebuilt from high_scores.
package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"cryptopet/internal/models"
)

const (
	keyScores = "leaderboard:scores:"
	keyNames  = "leaderboard:names"
)

// ErrNotRanked is returned when a user has no score on a board
var ErrNotRanked = errors.New("user not on leaderboard")

// Board is a Redis-backed score ranking per game
type Board struct {
	client *redis.Client
}

// NewBoard creates a leaderboard over an existing Redis client
func NewBoard(client *redis.Client) *Board {
	return &Board{client: client}
}

// RecordScore writes a user's score for a game. Callers pass the
// current high score, so a plain ZAdd keeps the set consistent.
func (b *Board) RecordScore(ctx context.Context, gameID, userID string, score int64) error {
	err := b.client.ZAdd(ctx, keyScores+gameID, redis.Z{
		Score:  float64(score),
		Member: userID,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}
	return nil
}

// SetName stores the display name shown next to a user's entries
func (b *Board) SetName(ctx context.Context, userID, name string) error {
	return b.client.HSet(ctx, keyNames, userID, name).Err()
}

// Top returns the highest-scoring entries for a game, best first
func (b *Board) Top(ctx context.Context, gameID string, limit int64) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	members, err := b.client.ZRevRangeWithScores(ctx, keyScores+gameID, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(members))
	for i, m := range members {
		userID, _ := m.Member.(string)
		name, err := b.client.HGet(ctx, keyNames, userID).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("failed to read names: %w", err)
		}
		entries = append(entries, models.LeaderboardEntry{
			Rank:   int64(i + 1),
			UserID: userID,
			Name:   name,
			Value:  int64(m.Score),
		})
	}
	return entries, nil
}

// Rank returns a user's 1-based rank on a game's board
func (b *Board) Rank(ctx context.Context, gameID, userID string) (int64, error) {
	rank, err := b.client.ZRevRank(ctx, keyScores+gameID, userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotRanked
		}
		return 0, err
	}
	return rank + 1, nil
}
