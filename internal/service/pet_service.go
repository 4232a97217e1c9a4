package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"cryptopet/internal/models"
	"cryptopet/internal/pet"
)

var (
	ErrPetNotFound      = errors.New("pet not found")
	ErrPetAlreadyExists = errors.New("user already has a pet")
	ErrInvalidPetType   = errors.New("invalid pet type")
	ErrPetAlive         = errors.New("pet is not dead")
	ErrNoRevivalToken   = errors.New("no revival token in inventory")

	ErrItemNotOwnedByUser = errors.New("item not owned")
	ErrItemNotEquippable  = errors.New("item cannot be equipped")
	ErrItemNotConsumable  = errors.New("item is not a consumable")
)

// RevivalTokenItemID is the inventory item consumed by a paid revival
const RevivalTokenItemID = "item-revival-token"

// PetStore is the persistence surface the pet service needs
type PetStore interface {
	CreatePet(pet *models.Pet) error
	GetPetByUserID(userID string) (*models.Pet, error)
	UpdatePet(pet *models.Pet) error
}

// ItemStore is the inventory surface the pet service needs
type ItemStore interface {
	ConsumeItem(userID, itemID string) error
	GetQuantity(userID, itemID string) (int, error)
}

// PetService owns the pet lifecycle: lazy decay on read, care actions,
// death and revival. Per-user locking serializes the decay-then-act
// read-modify-write so concurrent requests cannot interleave.
type PetService struct {
	pets  PetStore
	items ItemStore
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewPetService creates a new pet service
func NewPetService(pets PetStore, items ItemStore) *PetService {
	return &PetService{
		pets:  pets,
		items: items,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex serializing operations for one user's pet
func (s *PetService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// CreatePet creates the user's pet. One pet per user.
func (s *PetService) CreatePet(userID, name string, petType models.PetType) (*models.Pet, error) {
	if !petType.IsValid() {
		return nil, ErrInvalidPetType
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	existing, err := s.pets.GetPetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPetAlreadyExists
	}

	p := pet.NewPet(uuid.NewString(), userID, name, petType, s.now())
	if err := s.pets.CreatePet(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPet loads the user's pet with decay applied up to now. The decayed
// state is persisted so repeated reads do not re-apply the same window.
func (s *PetService) GetPet(userID string) (*models.Pet, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	return s.loadTicked(userID)
}

// loadTicked fetches the pet, applies decay and saves. Caller must hold
// the user lock.
func (s *PetService) loadTicked(userID string) (*models.Pet, error) {
	p, err := s.pets.GetPetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPetNotFound
	}

	pet.ClampStats(p)
	pet.Tick(p, s.now())
	if err := s.pets.UpdatePet(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Feed applies the feed action after catching up on decay
func (s *PetService) Feed(userID string) (*models.Pet, error) {
	return s.act(userID, pet.Feed)
}

// Play applies the play action after catching up on decay
func (s *PetService) Play(userID string) (*models.Pet, error) {
	return s.act(userID, pet.Play)
}

// Rest applies the rest action after catching up on decay
func (s *PetService) Rest(userID string) (*models.Pet, error) {
	return s.act(userID, pet.Rest)
}

// Heal applies the heal action after catching up on decay
func (s *PetService) Heal(userID string) (*models.Pet, error) {
	return s.act(userID, pet.Heal)
}

func (s *PetService) act(userID string, action func(*models.Pet, time.Time) error) (*models.Pet, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.loadTicked(userID)
	if err != nil {
		return nil, err
	}

	if err := action(p, s.now()); err != nil {
		return nil, err
	}

	if err := s.pets.UpdatePet(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Revive brings a dead pet back. useFree selects the one-time free
// revival (level penalty); otherwise one revival token is consumed.
func (s *PetService) Revive(userID string, useFree bool) (*models.Pet, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.loadTicked(userID)
	if err != nil {
		return nil, err
	}
	if !p.IsDead {
		return nil, ErrPetAlive
	}

	if !useFree {
		if err := s.items.ConsumeItem(userID, RevivalTokenItemID); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoRevivalToken, err)
		}
	}

	if err := pet.Revive(p, useFree, s.now()); err != nil {
		return nil, err
	}

	if err := s.pets.UpdatePet(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GrantXP adds experience to the user's pet and persists the result
func (s *PetService) GrantXP(userID string, amount int) (*models.Pet, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.loadTicked(userID)
	if err != nil {
		return nil, err
	}

	pet.AddXP(p, amount, s.now())
	if err := s.pets.UpdatePet(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Equip sets the pet's skin or environment from an owned inventory item
func (s *PetService) Equip(userID string, item *models.Item) (*models.Pet, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	qty, err := s.items.GetQuantity(userID, item.ID)
	if err != nil {
		return nil, err
	}
	if qty == 0 {
		return nil, ErrItemNotOwnedByUser
	}

	p, err := s.loadTicked(userID)
	if err != nil {
		return nil, err
	}

	id := item.ID
	switch item.Type {
	case models.ItemSkin:
		p.EquippedSkin = &id
	case models.ItemEnvironment:
		p.EquippedEnvironment = &id
	default:
		return nil, ErrItemNotEquippable
	}

	if err := s.pets.UpdatePet(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UseConsumable applies a consumable item's stat effect to the pet
func (s *PetService) UseConsumable(userID string, item *models.Item) (*models.Pet, error) {
	if item.Type != models.ItemConsumable {
		return nil, ErrItemNotConsumable
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.loadTicked(userID)
	if err != nil {
		return nil, err
	}
	if p.IsDead {
		return nil, pet.ErrPetDead
	}

	if err := s.items.ConsumeItem(userID, item.ID); err != nil {
		return nil, err
	}

	pet.ApplyStatEffect(p, item.EffectStat, float64(item.EffectValue), s.now())

	if err := s.pets.UpdatePet(p); err != nil {
		return nil, err
	}
	return p, nil
}
