package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptopet/internal/chain"
	"cryptopet/internal/models"
	"cryptopet/internal/progress"
)

func newTestRewardService() (*RewardService, *fakeBadgeStore, *fakeUserDirectory, *fakeItemStore, *fakeProgressStore, *fakePetGateway) {
	badges := &fakeBadgeStore{}
	users := &fakeUserDirectory{user: &models.User{
		ID:         "user-1",
		Address:    "GABC123",
		WalletType: models.WalletFreighter,
	}}
	items := newFakeItemStore()
	store := newFakeProgressStore()
	pets := &fakePetGateway{}
	adapter := chain.NewMockAdapter(chain.StellarTestnet)
	svc := NewRewardService(badges, users, items, store, pets, adapter, nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, badges, users, items, store, pets
}

// earnedProgress seeds a wallet-basics progress record with everything
// done except the badge mint
func earnedProgress(store *fakeProgressStore, now time.Time) *models.ModuleProgress {
	score := 90
	rec := &models.ModuleProgress{
		ID:               "prog-1",
		UserID:           "user-1",
		ModuleID:         "wallet-basics",
		LessonsCompleted: []string{"wb-1", "wb-2", "wb-3"},
		QuizScore:        &score,
		QuizCompletedAt:  &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	store.records[store.key("user-1", "wallet-basics")] = rec
	return rec
}

func TestMintBadge(t *testing.T) {
	svc, badges, _, _, store, _ := newTestRewardService()
	earnedProgress(store, svc.now())

	result, err := svc.MintBadge(context.Background(), "user-1", "wallet-basics")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.TxHash)
	assert.Equal(t, string(chain.StellarTestnet), result.Network)

	require.Len(t, badges.badges, 1)
	assert.Equal(t, "badge-wallet-master", badges.badges[0].BadgeID)

	rec := store.records[store.key("user-1", "wallet-basics")]
	assert.True(t, rec.BadgeMinted)
	require.NotNil(t, rec.BadgeTxHash)
	assert.Equal(t, result.TxHash, *rec.BadgeTxHash)
}

func TestMintBadgeNotEarned(t *testing.T) {
	svc, badges, _, _, _, _ := newTestRewardService()

	_, err := svc.MintBadge(context.Background(), "user-1", "wallet-basics")
	assert.ErrorIs(t, err, progress.ErrBadgeNotEarnable)
	assert.Empty(t, badges.badges)
}

func TestMintBadgeTwice(t *testing.T) {
	svc, _, _, _, store, _ := newTestRewardService()
	earnedProgress(store, svc.now())

	_, err := svc.MintBadge(context.Background(), "user-1", "wallet-basics")
	require.NoError(t, err)

	_, err = svc.MintBadge(context.Background(), "user-1", "wallet-basics")
	assert.ErrorIs(t, err, progress.ErrBadgeAlreadyMinted)
}

func TestMintBadgeUnknownModule(t *testing.T) {
	svc, _, _, _, _, _ := newTestRewardService()

	_, err := svc.MintBadge(context.Background(), "user-1", "no-such-module")
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestClaimDailyFirstTime(t *testing.T) {
	svc, badges, users, _, _, pets := newTestRewardService()

	claim, err := svc.ClaimDaily("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, claim.Streak)
	assert.Equal(t, 12, claim.XPEarned)
	assert.Equal(t, 1, claim.TotalClaims)
	assert.Nil(t, claim.ItemGranted)
	assert.Equal(t, 1, badges.dailyRewards)
	assert.Equal(t, 1, users.user.Streak)
	assert.Equal(t, 12, pets.xpGranted)
}

func TestClaimDailyTwiceSameDay(t *testing.T) {
	svc, _, _, _, _, _ := newTestRewardService()

	_, err := svc.ClaimDaily("user-1")
	require.NoError(t, err)

	_, err = svc.ClaimDaily("user-1")
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
}

func TestClaimDailyStreakContinues(t *testing.T) {
	svc, _, users, _, _, _ := newTestRewardService()

	yesterday := time.Date(2025, 5, 31, 9, 0, 0, 0, time.UTC)
	users.user.Streak = 4
	users.user.LastClaimAt = &yesterday

	claim, err := svc.ClaimDaily("user-1")
	require.NoError(t, err)
	assert.Equal(t, 5, claim.Streak)
	assert.Equal(t, 20, claim.XPEarned)
}

func TestClaimDailyStreakResetsAfterGap(t *testing.T) {
	svc, _, users, _, _, _ := newTestRewardService()

	lastWeek := time.Date(2025, 5, 25, 9, 0, 0, 0, time.UTC)
	users.user.Streak = 9
	users.user.LastClaimAt = &lastWeek

	claim, err := svc.ClaimDaily("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, claim.Streak)
}

func TestClaimDailyBonusCapped(t *testing.T) {
	svc, _, users, _, _, _ := newTestRewardService()

	yesterday := time.Date(2025, 5, 31, 9, 0, 0, 0, time.UTC)
	users.user.Streak = 29
	users.user.LastClaimAt = &yesterday

	claim, err := svc.ClaimDaily("user-1")
	require.NoError(t, err)
	assert.Equal(t, 30, claim.Streak)
	assert.Equal(t, 30, claim.XPEarned)
}

func TestClaimDailyMilestoneGrantsToken(t *testing.T) {
	svc, _, users, items, _, _ := newTestRewardService()

	yesterday := time.Date(2025, 5, 31, 9, 0, 0, 0, time.UTC)
	users.user.Streak = 6
	users.user.LastClaimAt = &yesterday

	claim, err := svc.ClaimDaily("user-1")
	require.NoError(t, err)
	assert.Equal(t, 7, claim.Streak)
	require.NotNil(t, claim.ItemGranted)
	assert.Equal(t, RevivalTokenItemID, *claim.ItemGranted)
	assert.Equal(t, 1, items.granted[RevivalTokenItemID])
}

func TestInventorySkipsUnknownItems(t *testing.T) {
	svc, _, _, items, _, _ := newTestRewardService()

	items.quantities["item-medkit"] = 2
	items.quantities["item-retired"] = 1

	entries, err := svc.Inventory("user-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "item-medkit", entries[0].Item.ID)
	assert.Equal(t, 2, entries[0].Quantity)
}
