package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventsapp/notify-system/internal/core/domain"
	"github.com/eventsapp/notify-system/internal/core/ports"
)

// AuthService implements credential checks and registration. The sentinel
// admin account is fixed at construction time and never persisted; everyone
// else lives in the registered-accounts collection with a bcrypt hash.
type AuthService struct {
	repo          ports.AccountRepository
	admin         domain.Account
	adminPassword string
	jwtSecret     string
	tokenTTL      time.Duration
	log           zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, adminEmail, adminPassword, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo: repo,
		admin: domain.Account{
			ID:    "admin",
			Name:  "Administrator",
			Email: adminEmail,
			Role:  domain.RoleAdmin,
			Image: "https://randomuser.me/api/portraits/men/3.jpg",
		},
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		log:           log,
	}
}

// Authenticate checks the sentinel admin first, then the registered
// collection. Email matching is exact and case-sensitive, as stored.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if email == s.admin.Email {
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
			return "", nil, domain.ErrInvalidCredentials
		}
		admin := s.admin
		token, err := s.generateToken(&admin)
		if err != nil {
			return "", nil, err
		}
		return token, &admin, nil
	}

	accounts, err := s.repo.List(ctx)
	if err != nil {
		return "", nil, err
	}

	for i := range accounts {
		if accounts[i].Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(accounts[i].PasswordHash), []byte(password)) != nil {
			return "", nil, domain.ErrInvalidCredentials
		}
		account := accounts[i]
		token, err := s.generateToken(&account)
		if err != nil {
			return "", nil, err
		}
		return token, &account, nil
	}

	return "", nil, domain.ErrInvalidCredentials
}

// Register creates a client account. Ids are sequential (client-N in
// registration order) and the decorative avatar alternates between two pools
// based on registration-order parity.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.Account, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	if email == s.admin.Email {
		return "", nil, domain.ErrEmailInUse
	}

	accounts, err := s.repo.List(ctx)
	if err != nil {
		return "", nil, err
	}
	for i := range accounts {
		if accounts[i].Email == email {
			return "", nil, domain.ErrEmailInUse
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	n := len(accounts)
	pool := "men"
	if n%2 != 0 {
		pool = "women"
	}
	account := domain.Account{
		ID:           fmt.Sprintf("client-%d", n+1),
		Name:         name,
		Email:        email,
		Role:         domain.RoleClient,
		Image:        fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", pool, n+1),
		PasswordHash: string(hash),
	}

	if err := s.repo.Append(ctx, account); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("failed to persist account")
		return "", nil, err
	}

	token, err := s.generateToken(&account)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("account_id", account.ID).Msg("account registered")
	return token, &account, nil
}

// ListClients returns all registered (non-admin) accounts in registration
// order. A storage read failure degrades to an empty list.
func (s *AuthService) ListClients(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load accounts, serving empty collection")
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"account_id": account.ID,
		"name":       account.Name,
		"role":       account.Role,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
