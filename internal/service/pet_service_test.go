package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptopet/internal/catalog"
	"cryptopet/internal/models"
	"cryptopet/internal/pet"
)

func newTestPetService() (*PetService, *fakePetStore, *fakeItemStore) {
	pets := &fakePetStore{}
	items := newFakeItemStore()
	svc := NewPetService(pets, items)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, pets, items
}

func TestCreatePet(t *testing.T) {
	svc, pets, _ := newTestPetService()

	p, err := svc.CreatePet("user-1", "Byte", models.PetTypeDragon)
	require.NoError(t, err)
	assert.Equal(t, "Byte", p.Name)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 100.0, p.Stats.Health)
	assert.NotNil(t, pets.pet)

	_, err = svc.CreatePet("user-1", "Again", models.PetTypeCat)
	assert.ErrorIs(t, err, ErrPetAlreadyExists)
}

func TestCreatePetInvalidType(t *testing.T) {
	svc, _, _ := newTestPetService()

	_, err := svc.CreatePet("user-1", "Byte", models.PetType("unicorn"))
	assert.ErrorIs(t, err, ErrInvalidPetType)
}

func TestGetPetMissing(t *testing.T) {
	svc, _, _ := newTestPetService()

	_, err := svc.GetPet("user-1")
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestFeedAppliesDecayFirst(t *testing.T) {
	svc, pets, _ := newTestPetService()

	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	pets.pet = pet.NewPet("pet-1", "user-1", "Byte", models.PetTypeDog, created)

	// 12 hours pass between creation and the feed
	p, err := svc.Feed("user-1")
	require.NoError(t, err)
	assert.Less(t, p.Stats.Energy, 100.0)
	assert.Equal(t, svc.now(), p.LastUpdated)
	assert.GreaterOrEqual(t, pets.updates, 1)
}

func TestReviveFree(t *testing.T) {
	svc, pets, _ := newTestPetService()

	p := pet.NewPet("pet-1", "user-1", "Byte", models.PetTypeDog, svc.now())
	p.Level = 3
	p.IsDead = true
	p.Stats = models.Stats{}
	pets.pet = p

	revived, err := svc.Revive("user-1", true)
	require.NoError(t, err)
	assert.False(t, revived.IsDead)
	assert.Equal(t, 2, revived.Level)
	assert.Equal(t, pet.FreeRevivalStat, revived.Stats.Health)
	assert.True(t, revived.FreeRevivalUsed)
}

func TestReviveWithTokenRequiresToken(t *testing.T) {
	svc, pets, items := newTestPetService()

	p := pet.NewPet("pet-1", "user-1", "Byte", models.PetTypeDog, svc.now())
	p.IsDead = true
	pets.pet = p

	_, err := svc.Revive("user-1", false)
	assert.ErrorIs(t, err, ErrNoRevivalToken)

	items.quantities[RevivalTokenItemID] = 1
	revived, err := svc.Revive("user-1", false)
	require.NoError(t, err)
	assert.False(t, revived.IsDead)
	assert.Equal(t, pet.FullRevivalStat, revived.Stats.Health)
	assert.Equal(t, 0, items.quantities[RevivalTokenItemID])
}

func TestReviveAlivePet(t *testing.T) {
	svc, pets, _ := newTestPetService()

	pets.pet = pet.NewPet("pet-1", "user-1", "Byte", models.PetTypeDog, svc.now())

	_, err := svc.Revive("user-1", true)
	assert.ErrorIs(t, err, ErrPetAlive)
}

func TestUseConsumable(t *testing.T) {
	svc, pets, items := newTestPetService()

	p := pet.NewPet("pet-1", "user-1", "Byte", models.PetTypeDog, svc.now())
	p.Stats.Health = 40
	pets.pet = p
	items.quantities["item-medkit"] = 2

	medkit, ok := catalog.ItemByID("item-medkit")
	require.True(t, ok)

	updated, err := svc.UseConsumable("user-1", medkit)
	require.NoError(t, err)
	assert.Equal(t, 80.0, updated.Stats.Health)
	assert.Equal(t, 1, items.quantities["item-medkit"])
}

func TestEquipSkin(t *testing.T) {
	svc, pets, items := newTestPetService()

	pets.pet = pet.NewPet("pet-1", "user-1", "Byte", models.PetTypeRobot, svc.now())
	skin, ok := catalog.ItemByID("item-skin-astronaut")
	require.True(t, ok)

	_, err := svc.Equip("user-1", skin)
	assert.ErrorIs(t, err, ErrItemNotOwnedByUser)

	items.quantities[skin.ID] = 1
	updated, err := svc.Equip("user-1", skin)
	require.NoError(t, err)
	require.NotNil(t, updated.EquippedSkin)
	assert.Equal(t, skin.ID, *updated.EquippedSkin)
}

func TestGrantXPLevelsUp(t *testing.T) {
	svc, pets, _ := newTestPetService()

	pets.pet = pet.NewPet("pet-1", "user-1", "Byte", models.PetTypeCat, svc.now())

	p, err := svc.GrantXP("user-1", 350)
	require.NoError(t, err)
	assert.Equal(t, 350, p.XP)
	assert.Equal(t, 3, p.Level)
}
