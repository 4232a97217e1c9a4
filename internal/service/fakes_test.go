package service

import (
	"context"
	"errors"
	"time"

	"cryptopet/internal/models"
)

// In-memory fakes shared by the service tests.

type fakePetStore struct {
	pet     *models.Pet
	updates int
}

func (f *fakePetStore) CreatePet(p *models.Pet) error {
	f.pet = p
	return nil
}

func (f *fakePetStore) GetPetByUserID(userID string) (*models.Pet, error) {
	if f.pet == nil || f.pet.UserID != userID {
		return nil, nil
	}
	return f.pet, nil
}

func (f *fakePetStore) UpdatePet(p *models.Pet) error {
	f.pet = p
	f.updates++
	return nil
}

type fakeItemStore struct {
	quantities map[string]int
	granted    map[string]int
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{
		quantities: make(map[string]int),
		granted:    make(map[string]int),
	}
}

func (f *fakeItemStore) ConsumeItem(userID, itemID string) error {
	if f.quantities[itemID] <= 0 {
		return errors.New("item not in inventory")
	}
	f.quantities[itemID]--
	return nil
}

func (f *fakeItemStore) GetQuantity(userID, itemID string) (int, error) {
	return f.quantities[itemID], nil
}

func (f *fakeItemStore) GrantItem(userID, itemID string, quantity int) error {
	f.quantities[itemID] += quantity
	f.granted[itemID] += quantity
	return nil
}

func (f *fakeItemStore) ListInventory(userID string) ([]models.UserItem, error) {
	items := make([]models.UserItem, 0, len(f.quantities))
	for id, qty := range f.quantities {
		if qty > 0 {
			items = append(items, models.UserItem{UserID: userID, ItemID: id, Quantity: qty})
		}
	}
	return items, nil
}

type fakeProgressStore struct {
	records map[string]*models.ModuleProgress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: make(map[string]*models.ModuleProgress)}
}

func (f *fakeProgressStore) key(userID, moduleID string) string {
	return userID + "|" + moduleID
}

func (f *fakeProgressStore) CreateProgress(p *models.ModuleProgress) error {
	f.records[f.key(p.UserID, p.ModuleID)] = p
	return nil
}

func (f *fakeProgressStore) GetProgress(userID, moduleID string) (*models.ModuleProgress, error) {
	return f.records[f.key(userID, moduleID)], nil
}

func (f *fakeProgressStore) ListProgress(userID string) ([]models.ModuleProgress, error) {
	var out []models.ModuleProgress
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeProgressStore) UpdateProgress(p *models.ModuleProgress) error {
	key := f.key(p.UserID, p.ModuleID)
	if _, ok := f.records[key]; !ok {
		return errors.New("progress not found")
	}
	f.records[key] = p
	return nil
}

type fakePetGateway struct {
	level     int
	xpGranted int
	grantErr  error
}

func (f *fakePetGateway) GetPet(userID string) (*models.Pet, error) {
	level := f.level
	if level == 0 {
		level = 1
	}
	return &models.Pet{UserID: userID, Level: level}, nil
}

func (f *fakePetGateway) GrantXP(userID string, amount int) (*models.Pet, error) {
	if f.grantErr != nil {
		return nil, f.grantErr
	}
	f.xpGranted += amount
	return &models.Pet{UserID: userID}, nil
}

type fakeGameStore struct {
	sessions   []models.GameSession
	plays      map[string]int
	highScores map[string]int
}

func newFakeGameStore() *fakeGameStore {
	return &fakeGameStore{
		plays:      make(map[string]int),
		highScores: make(map[string]int),
	}
}

func (f *fakeGameStore) InsertSession(s *models.GameSession) error {
	f.sessions = append(f.sessions, *s)
	return nil
}

func (f *fakeGameStore) ListSessions(userID string, limit int) ([]models.GameSession, error) {
	return f.sessions, nil
}

func (f *fakeGameStore) IncrementPlayCount(userID, gameID, playDate string) error {
	f.plays[userID+"|"+gameID+"|"+playDate]++
	return nil
}

func (f *fakeGameStore) GetPlayCount(userID, gameID, playDate string) (int, error) {
	return f.plays[userID+"|"+gameID+"|"+playDate], nil
}

func (f *fakeGameStore) GetHighScore(userID, gameID string) (int, error) {
	return f.highScores[userID+"|"+gameID], nil
}

func (f *fakeGameStore) UpdateHighScore(userID, gameID string, score int) (bool, error) {
	key := userID + "|" + gameID
	if score <= f.highScores[key] {
		return false, nil
	}
	f.highScores[key] = score
	return true, nil
}

type fakeScoreBoard struct {
	scores map[string]int64
}

func newFakeScoreBoard() *fakeScoreBoard {
	return &fakeScoreBoard{scores: make(map[string]int64)}
}

func (f *fakeScoreBoard) RecordScore(ctx context.Context, gameID, userID string, score int64) error {
	f.scores[gameID+"|"+userID] = score
	return nil
}

type fakeBadgeStore struct {
	badges       []models.UserBadge
	dailyRewards int
}

func (f *fakeBadgeStore) InsertUserBadge(b *models.UserBadge) error {
	f.badges = append(f.badges, *b)
	return nil
}

func (f *fakeBadgeStore) ListUserBadges(userID string) ([]models.UserBadge, error) {
	return f.badges, nil
}

func (f *fakeBadgeStore) HasBadge(userID, badgeID string) (bool, error) {
	for _, b := range f.badges {
		if b.UserID == userID && b.BadgeID == badgeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBadgeStore) InsertDailyReward(userID string, day, xp int, claimedAt time.Time) (int64, error) {
	f.dailyRewards++
	return int64(f.dailyRewards), nil
}

func (f *fakeBadgeStore) CountDailyRewards(userID string) (int, error) {
	return f.dailyRewards, nil
}

type fakeUserDirectory struct {
	user *models.User
}

func (f *fakeUserDirectory) GetUserByID(id string) (*models.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, nil
	}
	return f.user, nil
}

func (f *fakeUserDirectory) UpdateStreak(id string, streak int, claimedAt time.Time) error {
	f.user.Streak = streak
	at := claimedAt
	f.user.LastClaimAt = &at
	return nil
}

type fakeSessionStore struct {
	usersByID      map[string]*models.User
	usersByAddress map[string]*models.User
	sessions       map[string]*models.Session
	lastLogin      *time.Time
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		usersByID:      make(map[string]*models.User),
		usersByAddress: make(map[string]*models.User),
		sessions:       make(map[string]*models.Session),
	}
}

func (f *fakeSessionStore) CreateUser(u *models.User) error {
	f.usersByID[u.ID] = u
	f.usersByAddress[u.Address] = u
	return nil
}

func (f *fakeSessionStore) GetUserByAddress(address string) (*models.User, error) {
	return f.usersByAddress[address], nil
}

func (f *fakeSessionStore) GetUserByID(id string) (*models.User, error) {
	return f.usersByID[id], nil
}

func (f *fakeSessionStore) TouchLastLogin(id string, at time.Time) error {
	f.lastLogin = &at
	return nil
}

func (f *fakeSessionStore) UpdateProfile(id, displayName string, email *string) error {
	u, ok := f.usersByID[id]
	if !ok {
		return errors.New("user not found")
	}
	u.DisplayName = displayName
	u.Email = email
	return nil
}

func (f *fakeSessionStore) CreateSession(s *models.Session) error {
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeSessionStore) GetSession(sessionID string) (*models.Session, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeSessionStore) DeleteSession(sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeSessionStore) DeleteExpiredSessions() error {
	for id, s := range f.sessions {
		if s.IsExpired() {
			delete(f.sessions, id)
		}
	}
	return nil
}
