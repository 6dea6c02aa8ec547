package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pixel_bistro/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL   = 12 * time.Hour
	defaultSigningKey = "pixel-bistro-dev-key"
)

// Domain errors for auth flows.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrChefNotFound    = errors.New("chef not found")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthService signs chefs up and issues API tokens.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration
}

// NewAuthService falls back to development defaults for an empty key or ttl.
func NewAuthService(repo repository.Authorization, signingKey string, ttl time.Duration) *AuthService {
	if signingKey == "" {
		signingKey = defaultSigningKey
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{authRepo: repo, signingKey: []byte(signingKey), tokenTTL: ttl}
}

// SignUp hashes the password and creates a chef account
func (s *AuthService) SignUp(username, password string) (int, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	return s.authRepo.Create(username, hash)
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	ChefID int    `json:"chef_id"`
	Chef   string `json:"chef,omitempty"`
}

// Identity is the chef a valid token was issued to.
type Identity struct {
	ID   int
	Chef string
}

// GenerateToken validates credentials and returns JWT
func (s *AuthService) GenerateToken(username, password string) (string, error) {
	c, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", ErrChefNotFound
	}

	if err := verifyPassword(c.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(c.ID, c.Username)
}

// ParseToken validates a token and returns the chef id
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	id, err := s.Identify(accessToken)
	return id.ID, err
}

// Identify validates a token and returns who it was issued to.
func (s *AuthService) Identify(accessToken string) (Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	return Identity{ID: claims.ChefID, Chef: claims.Chef}, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) issueToken(chefID int, chef string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "pixel-bistro",
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		ChefID: chefID,
		Chef:   chef,
	})
	return token.SignedString(s.signingKey)
}
