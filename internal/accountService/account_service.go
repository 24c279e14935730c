package accounts

import (
	"fmt"
	"time"

	"freelance-market/internal/marketerrors"
	"freelance-market/internal/models"
	"freelance-market/internal/repository"
	"freelance-market/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the session token payload
type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"user_id"`
	Role   models.Role `json:"role"`
}

// AccountService issues and verifies marketplace identities
type AccountService struct {
	repo     repository.MarketDB
	secret   []byte
	tokenTTL time.Duration
}

// NewAccountService creates a new AccountService instance
func NewAccountService(repo repository.MarketDB, secret []byte, tokenTTL time.Duration) *AccountService {
	return &AccountService{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Signup registers a new account and returns it with a signed session token
func (s *AccountService) Signup(username, email, password string, role models.Role) (models.User, string, error) {
	if username == "" || email == "" || password == "" {
		return models.User{}, "", fmt.Errorf("service: %w - username, email and password are required", marketerrors.ErrInvalidInput)
	}
	if role != models.RoleClient && role != models.RoleSeller {
		return models.User{}, "", fmt.Errorf("service: %w - unknown role %q", marketerrors.ErrInvalidInput, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       utils.GenerateID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to create user %s: %w", email, err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the account with a fresh session token
func (s *AccountService) Login(email, password string) (models.User, string, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: login failed for %s: %w", email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", fmt.Errorf("service: login failed for %s: %w", email, marketerrors.ErrInvalidCredentials)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// VerifyToken parses a session token and yields the caller identity
func (s *AccountService) VerifyToken(token string) (models.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("service: %w: %v", marketerrors.ErrUnauthenticated, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return models.Identity{}, fmt.Errorf("service: %w - invalid token", marketerrors.ErrUnauthenticated)
	}

	return models.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

func (s *AccountService) issueToken(user models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		UserID: user.UserID,
		Role:   user.Role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("service: failed to sign session token: %w", err)
	}
	return token, nil
}
