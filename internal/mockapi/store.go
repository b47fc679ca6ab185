package mockapi

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

var (
	errUserExists         = errors.New("user already exists")
	errUserNotFound       = errors.New("user not found")
	errInvalidCredentials = errors.New("invalid credentials")
)

// demoVerificationCode is the code the mock "sends" for every phone
// verification request.
const demoVerificationCode = "123456"

type account struct {
	user         domain.User
	passwordHash []byte
	phonePending bool
}

// memStore is the mock backend's entire persistence layer: mutex-guarded
// maps, seeded with demo data, reset on restart.
type memStore struct {
	mu sync.RWMutex

	accounts map[string]*account // by user ID
	byEmail  map[string]string   // email → user ID

	factors       map[string]*domain.PricingFactors  // by mover ID
	overrides     map[string]*domain.PriceOverride   // by override ID
	itemTypes     []domain.ItemType
	categories    []domain.Category
	notifications map[string][]domain.Notification // by user ID
	quotes        map[string]*domain.Quote
	bookings      map[string]*domain.Booking

	revokedRefresh map[string]bool
}

func newMemStore() *memStore {
	s := &memStore{
		accounts:       make(map[string]*account),
		byEmail:        make(map[string]string),
		factors:        make(map[string]*domain.PricingFactors),
		overrides:      make(map[string]*domain.PriceOverride),
		notifications:  make(map[string][]domain.Notification),
		quotes:         make(map[string]*domain.Quote),
		bookings:       make(map[string]*domain.Booking),
		revokedRefresh: make(map[string]bool),
	}
	s.seed()
	return s
}

// seed loads a small demo catalog so dev sessions have something to list.
func (s *memStore) seed() {
	s.categories = []domain.Category{
		{ID: "cat-furniture", Name: "Furniture", Slug: "furniture", ItemCount: 2},
		{ID: "cat-appliances", Name: "Appliances", Slug: "appliances", ItemCount: 1},
	}
	s.itemTypes = []domain.ItemType{
		{ID: "it-sofa", Name: "Sofa (3-seat)", CategoryID: "cat-furniture", CategoryName: "Furniture", BasePrice: 45, EffectivePrice: 45, VolumeM3: 1.8},
		{ID: "it-wardrobe", Name: "Wardrobe", CategoryID: "cat-furniture", CategoryName: "Furniture", BasePrice: 60, EffectivePrice: 60, VolumeM3: 2.4},
		{ID: "it-fridge", Name: "Refrigerator", CategoryID: "cat-appliances", CategoryName: "Appliances", BasePrice: 55, EffectivePrice: 55, VolumeM3: 1.2},
	}
}

func (s *memStore) createAccount(req domain.RegisterRequest) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[req.Email]; exists {
		return nil, errUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:          uuid.NewString(),
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		UserType:    req.UserType,
		CompanyName: req.CompanyName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.accounts[user.ID] = &account{user: user, passwordHash: hash}
	s.byEmail[user.Email] = user.ID

	if user.UserType == domain.RoleMover {
		s.factors[user.ID] = &domain.PricingFactors{
			ID:                "pf-" + user.ID,
			MoverID:           user.ID,
			BaseFee:           50,
			PerKmRate:         1.5,
			FloorSurcharge:    10,
			WeekendMultiplier: 1.25,
			ExpressMultiplier: 1.5,
			MinimumCharge:     80,
			UpdatedAt:         now,
		}
	}

	s.notifications[user.ID] = []domain.Notification{{
		ID:        uuid.NewString(),
		Kind:      "welcome",
		Title:     "Welcome to the marketplace",
		Message:   "Your account is ready.",
		CreatedAt: now,
	}}

	return cloneUser(&user), nil
}

func (s *memStore) authenticate(email, password string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, errInvalidCredentials
	}
	acc := s.accounts[id]
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return nil, errInvalidCredentials
	}
	return cloneUser(&acc.user), nil
}

func (s *memStore) userByID(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	if !ok {
		return nil, errUserNotFound
	}
	return cloneUser(&acc.user), nil
}

func (s *memStore) userByEmail(email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, errUserNotFound
	}
	return cloneUser(&s.accounts[id].user), nil
}

func (s *memStore) updateUser(id string, apply func(*account)) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[id]
	if !ok {
		return nil, errUserNotFound
	}
	apply(acc)
	acc.user.UpdatedAt = time.Now().UTC()
	return cloneUser(&acc.user), nil
}

func (s *memStore) revokeRefresh(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revokedRefresh[token] = true
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}
