package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cryptopet/internal/catalog"
	"cryptopet/internal/chain"
	"cryptopet/internal/logger"
	"cryptopet/internal/models"
	"cryptopet/internal/progress"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrAlreadyClaimed = errors.New("daily reward already claimed today")
)

// Daily reward amounts: 10 XP base plus 2 per streak day, capped
const (
	DailyBaseXP        = 10
	DailyStreakBonusXP = 2
	DailyStreakCap     = 20
	streakMilestone    = 7
)

// BadgeStore is the badge and daily-reward persistence surface
type BadgeStore interface {
	InsertUserBadge(badge *models.UserBadge) error
	ListUserBadges(userID string) ([]models.UserBadge, error)
	HasBadge(userID, badgeID string) (bool, error)
	InsertDailyReward(userID string, day, xp int, claimedAt time.Time) (int64, error)
	CountDailyRewards(userID string) (int, error)
}

// UserDirectory is the slice of user persistence the reward service needs
type UserDirectory interface {
	GetUserByID(id string) (*models.User, error)
	UpdateStreak(id string, streak int, claimedAt time.Time) error
}

// InventoryStore grants and lists inventory items
type InventoryStore interface {
	GrantItem(userID, itemID string, quantity int) error
	ListInventory(userID string) ([]models.UserItem, error)
}

// BadgeMailer sends the badge-earned notification. May be a disabled
// no-op when email is not configured.
type BadgeMailer interface {
	SendBadgeEarned(toEmail, displayName, badgeName string) error
}

// DailyClaim is the outcome of a daily reward claim
type DailyClaim struct {
	Streak      int     `json:"streak"`
	TotalClaims int     `json:"totalClaims"`
	XPEarned    int     `json:"xpEarned"`
	ItemGranted *string `json:"itemGranted,omitempty"`
}

// InventoryEntry joins an owned item with its catalog definition
type InventoryEntry struct {
	Item     *models.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// RewardService settles earned rewards: on-chain badge mints, the daily
// streak claim and the item inventory.
type RewardService struct {
	badges   BadgeStore
	users    UserDirectory
	items    InventoryStore
	progress ProgressStore
	pets     PetGateway
	adapter  chain.Adapter
	mailer   BadgeMailer
	now      func() time.Time
}

// NewRewardService creates a new reward service. mailer may be nil.
func NewRewardService(badges BadgeStore, users UserDirectory, items InventoryStore, progressStore ProgressStore, pets PetGateway, adapter chain.Adapter, mailer BadgeMailer) *RewardService {
	return &RewardService{
		badges:   badges,
		users:    users,
		items:    items,
		progress: progressStore,
		pets:     pets,
		adapter:  adapter,
		mailer:   mailer,
		now:      time.Now,
	}
}

// MintBadge mints the badge for a completed module to the user's wallet.
// The local mint flag is set before the chain call; a chain-side failure
// is reported in the TxResult and does not roll the flag back, so a
// retry path stays server-driven.
func (s *RewardService) MintBadge(ctx context.Context, userID, moduleID string) (chain.TxResult, error) {
	var zero chain.TxResult

	m, ok := catalog.ModuleByID(moduleID)
	if !ok {
		return zero, ErrModuleNotFound
	}
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return zero, err
	}
	if user == nil {
		return zero, ErrUserNotFound
	}

	// The progress flag is the primary guard; the badge table backs it
	// up in case a progress row was reset.
	owned, err := s.badges.HasBadge(userID, m.BadgeID)
	if err != nil {
		return zero, fmt.Errorf("failed to check badge: %w", err)
	}
	if owned {
		return zero, progress.ErrBadgeAlreadyMinted
	}

	rec, err := s.progress.GetProgress(userID, moduleID)
	if err != nil {
		return zero, fmt.Errorf("failed to load progress: %w", err)
	}
	if rec == nil {
		return zero, progress.ErrBadgeNotEarnable
	}

	if err := progress.MarkBadgeMinted(rec, m, s.now()); err != nil {
		return zero, err
	}
	if err := s.progress.UpdateProgress(rec); err != nil {
		return zero, fmt.Errorf("failed to save progress: %w", err)
	}

	result, err := s.adapter.MintBadge(ctx, user.Address, m.BadgeID)
	if err != nil {
		return zero, fmt.Errorf("chain adapter unavailable: %w", err)
	}
	if !result.Success {
		logger.Logger.Warn("badge mint rejected on chain",
			zap.String("user_id", userID),
			zap.String("badge_id", m.BadgeID),
			zap.String("reason", result.Error))
		return result, nil
	}

	rec.BadgeTxHash = &result.TxHash
	if err := s.progress.UpdateProgress(rec); err != nil {
		return zero, fmt.Errorf("failed to save tx hash: %w", err)
	}

	if err := s.badges.InsertUserBadge(&models.UserBadge{
		ID:       uuid.NewString(),
		UserID:   userID,
		BadgeID:  m.BadgeID,
		TxHash:   result.TxHash,
		Network:  result.Network,
		MintedAt: s.now(),
	}); err != nil {
		return zero, fmt.Errorf("failed to record badge: %w", err)
	}

	s.notifyBadgeEarned(user, m.BadgeID)
	return result, nil
}

func (s *RewardService) notifyBadgeEarned(user *models.User, badgeID string) {
	if s.mailer == nil || user.Email == nil {
		return
	}
	badge, ok := catalog.BadgeByID(badgeID)
	if !ok {
		return
	}
	if err := s.mailer.SendBadgeEarned(*user.Email, user.DisplayName, badge.Name); err != nil {
		logger.Logger.Warn("badge email failed",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}
}

// Badges lists the user's minted badges in mint order
func (s *RewardService) Badges(userID string) ([]models.UserBadge, error) {
	return s.badges.ListUserBadges(userID)
}

// ClaimDaily claims the daily login reward. One claim per UTC day; a
// claim on the day after the last one extends the streak, any longer
// gap resets it. Every seventh streak day also grants a revival token.
func (s *RewardService) ClaimDaily(userID string) (*DailyClaim, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := s.now().UTC()
	today := now.Format(playDateLayout)

	streak := 1
	if user.LastClaimAt != nil {
		last := user.LastClaimAt.UTC()
		switch last.Format(playDateLayout) {
		case today:
			return nil, ErrAlreadyClaimed
		case now.AddDate(0, 0, -1).Format(playDateLayout):
			streak = user.Streak + 1
		}
	}

	bonus := streak * DailyStreakBonusXP
	if bonus > DailyStreakCap {
		bonus = DailyStreakCap
	}
	xp := DailyBaseXP + bonus

	if _, err := s.badges.InsertDailyReward(userID, streak, xp, now); err != nil {
		return nil, fmt.Errorf("failed to record reward: %w", err)
	}
	if err := s.users.UpdateStreak(userID, streak, now); err != nil {
		return nil, fmt.Errorf("failed to update streak: %w", err)
	}

	total, err := s.badges.CountDailyRewards(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count rewards: %w", err)
	}

	claim := &DailyClaim{Streak: streak, TotalClaims: total, XPEarned: xp}

	if streak%streakMilestone == 0 {
		if err := s.items.GrantItem(userID, RevivalTokenItemID, 1); err != nil {
			logger.Logger.Error("milestone item grant failed",
				zap.String("user_id", userID),
				zap.Error(err))
		} else {
			id := RevivalTokenItemID
			claim.ItemGranted = &id
		}
	}

	if _, err := s.pets.GrantXP(userID, xp); err != nil {
		logger.Logger.Error("daily xp grant failed",
			zap.String("user_id", userID),
			zap.Error(err))
	}

	return claim, nil
}

// Inventory lists the user's items joined with their catalog entries.
// Rows whose item id is no longer in the catalog are skipped.
func (s *RewardService) Inventory(userID string) ([]InventoryEntry, error) {
	rows, err := s.items.ListInventory(userID)
	if err != nil {
		return nil, err
	}
	entries := make([]InventoryEntry, 0, len(rows))
	for _, row := range rows {
		item, ok := catalog.ItemByID(row.ItemID)
		if !ok {
			continue
		}
		entries = append(entries, InventoryEntry{Item: item, Quantity: row.Quantity})
	}
	return entries, nil
}

// GrantItem adds an item to the user's inventory. Items arrive through
// reward flows only; there is no shop.
func (s *RewardService) GrantItem(userID, itemID string, quantity int) error {
	if _, ok := catalog.ItemByID(itemID); !ok {
		return fmt.Errorf("unknown item %s", itemID)
	}
	return s.items.GrantItem(userID, itemID, quantity)
}
