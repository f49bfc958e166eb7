// Package devserver implements an in-memory stand-in for the RELEVÉ backend,
// used for local development and end-to-end testing of the terminal client.
// It serves the same routes and JSON shapes as the production API.
package devserver

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/releve-app/releve/internal/client/models"
)

var (
	ErrInvalidCredentials = errors.New("Credenciales inválidas")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrNotFound           = errors.New("Not found")
)

type account struct {
	user         models.User
	passwordHash []byte
	wallet       models.Wallet
}

// Store holds all dev server state in memory. Writes are last-write-wins;
// nothing survives a restart.
type Store struct {
	mu         sync.RWMutex
	byEmail    map[string]*account
	byID       map[string]*account
	businesses []models.Business
	slots      map[string][]models.Slot
	categories []models.Category
	cities     []models.City
}

// NewStore seeds a store with demo fixtures: a handful of Caracas venues,
// the standard categories and a demo account (ana@releve.app / "password").
func NewStore() *Store {
	s := &Store{
		byEmail: make(map[string]*account),
		byID:    make(map[string]*account),
		slots:   make(map[string][]models.Slot),
		categories: []models.Category{
			{Name: "Restaurante", Slug: "restaurante"},
			{Name: "Belleza", Slug: "belleza"},
			{Name: "Experiencia", Slug: "experiencia"},
		},
		cities: []models.City{
			{ID: "caracas", Name: "Caracas"},
			{ID: "valencia", Name: "Valencia"},
		},
		businesses: []models.Business{
			{
				ID:                 "kokomo",
				Name:               "Kokomo Restaurant",
				Description:        "Beachside dining with a seasonal menu",
				CategoryName:       "Restaurante",
				CategorySlug:       "restaurante",
				DefaultVisitCredit: 180,
				Requirements:       []string{"Reservation required", "One visit per week"},
			},
			{
				ID:                 "billys",
				Name:               "Billy's at the Beach",
				Description:        "Seafood and cocktails by the water",
				CategoryName:       "Restaurante",
				CategorySlug:       "restaurante",
				DefaultVisitCredit: 150,
				Requirements:       []string{"One visit per week"},
			},
			{
				ID:                 "glowbar",
				Name:               "Glow Bar",
				Description:        "Hair and nail studio",
				CategoryName:       "Belleza",
				CategorySlug:       "belleza",
				DefaultVisitCredit: 90,
			},
			{
				ID:                 "avila",
				Name:               "Ávila Hike",
				Description:        "Guided sunrise hike with breakfast",
				CategoryName:       "Experiencia",
				CategorySlug:       "experiencia",
				DefaultVisitCredit: 120,
				Requirements:       []string{"Minimum age 16"},
			},
		},
	}

	for _, b := range s.businesses {
		s.slots[b.ID] = seedSlots()
	}

	_, _ = s.register("Ana", "ana@releve.app", "password")
	return s
}

// seedSlots generates evening windows for the next three days.
func seedSlots() []models.Slot {
	base := time.Now().Truncate(24 * time.Hour).Add(19 * time.Hour)
	slots := make([]models.Slot, 0, 3)
	for day := 1; day <= 3; day++ {
		start := base.AddDate(0, 0, day)
		slots = append(slots, models.Slot{
			Start:     start,
			End:       start.Add(2 * time.Hour),
			Available: 4,
		})
	}
	return slots
}

func (s *Store) register(name, email, password string) (*account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[email]; ok {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := &account{
		user:         models.User{ID: uuid.NewString(), Name: name, Email: email, Role: "user"},
		passwordHash: hash,
		wallet:       models.Wallet{Balance: 200, WeeklyAllowance: 100},
	}
	s.byEmail[email] = acc
	s.byID[acc.user.ID] = acc
	return acc, nil
}

func (s *Store) authenticate(email, password string) (*account, error) {
	s.mu.RLock()
	acc, ok := s.byEmail[email]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}

func (s *Store) userByID(id string) (*account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.byID[id]
	return acc, ok
}

func (s *Store) listBusinesses(category, query string) []models.Business {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Business, 0, len(s.businesses))
	for _, b := range s.businesses {
		if category != "" && b.CategorySlug != category {
			continue
		}
		if query != "" && !containsFold(b.Name, query) && !containsFold(b.Description, query) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (s *Store) business(id string) (models.Business, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.businesses {
		if b.ID == id {
			return b, true
		}
	}
	return models.Business{}, false
}

func (s *Store) businessSlots(id string) ([]models.Slot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slots, ok := s.slots[id]
	return slots, ok
}

func (s *Store) listCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

func (s *Store) listCities() []models.City {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.City(nil), s.cities...)
}

func (s *Store) wallet(userID string) (models.Wallet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.byID[userID]
	if !ok {
		return models.Wallet{}, false
	}
	return acc.wallet, true
}

func (s *Store) setAvatar(userID, url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.byID[userID]
	if !ok {
		return false
	}
	acc.user.AvatarURL = url
	return true
}

func (s *Store) applyCreator(userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.byID[userID]
	if !ok {
		return "", false
	}
	if acc.user.InfluencerStatus == "" {
		acc.user.InfluencerStatus = models.InfluencerPending
	}
	return acc.user.InfluencerStatus, true
}
