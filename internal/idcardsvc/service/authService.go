package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/models"
	"github.com/mtpdept/idcard-services/internal/idcardsvc/store"

	"github.com/go-chi/jwtauth"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"

	// TokenTTL is the fixed lifetime of an issued token. There is no
	// revocation; a leaked token stays valid until it expires.
	TokenTTL = time.Hour
)

// Identity is the decoded subject of a successful authentication.
type Identity struct {
	ID       int64
	Username string
	Role     string
}

// AdminStore is the slice of the admin store the auth service needs.
type AdminStore interface {
	Create(ctx context.Context, username, passwordHash, email string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	Exists(ctx context.Context, username, email string) (bool, error)
}

// AuthProvider tries to authenticate a username/password pair. A nil
// identity with a nil error means "not my user", and the next provider in
// the chain gets a turn.
type AuthProvider interface {
	Authenticate(ctx context.Context, username, password string) (*Identity, error)
}

// staticProvider matches the env-configured superadmin pair. It is checked
// before the store so the superadmin never needs a database row.
type staticProvider struct {
	username string
	password string
}

func (p staticProvider) Authenticate(_ context.Context, username, password string) (*Identity, error) {
	if p.username == "" {
		return nil, nil
	}
	if username != p.username || password != p.password {
		return nil, nil
	}

	return &Identity{Username: username, Role: RoleSuperadmin}, nil
}

// storeProvider matches against the admins table using bcrypt.
type storeProvider struct {
	admins AdminStore
}

func (p storeProvider) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	admin, err := p.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if admin == nil {
		return nil, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, nil
	}

	return &Identity{ID: admin.ID, Username: admin.Username, Role: RoleAdmin}, nil
}

// AuthService handles login, signup and token minting.
type AuthService struct {
	providers []AuthProvider
	admins    AdminStore
	tokenAuth *jwtauth.JWTAuth
}

func NewAuthService(admins AdminStore, tokenAuth *jwtauth.JWTAuth, superUser, superPass string) *AuthService {
	return &AuthService{
		providers: []AuthProvider{
			staticProvider{username: superUser, password: superPass},
			storeProvider{admins: admins},
		},
		admins:    admins,
		tokenAuth: tokenAuth,
	}
}

// Login runs the provider chain in order and mints a token for the first
// match.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	for _, p := range s.providers {
		identity, err := p.Authenticate(ctx, username, password)
		if err != nil {
			return "", err
		}
		if identity != nil {
			return s.mint(identity)
		}
	}

	return "", ErrInvalidCredentials
}

func (s *AuthService) mint(identity *Identity) (string, error) {
	claims := map[string]interface{}{
		"username": identity.Username,
		"role":     identity.Role,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	}
	if identity.ID != 0 {
		claims["id"] = identity.ID
	}

	_, tokenString, err := s.tokenAuth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}

	return tokenString, nil
}

// Signup registers a new store-backed admin.
func (s *AuthService) Signup(ctx context.Context, username, password, email string) error {
	if strings.TrimSpace(username) == "" || password == "" || strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: username, password and email are required", ErrInvalidInput)
	}

	exists, err := s.admins.Exists(ctx, username, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.admins.Create(ctx, username, string(hash), email); err != nil {
		// Exists/Create race still surfaces as a conflict.
		if errors.Is(err, store.ErrDuplicate) {
			return ErrAdminExists
		}
		return err
	}

	return nil
}
