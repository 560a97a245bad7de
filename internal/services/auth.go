package services

import (
	"context"
	"fmt"
	"time"

	"github.com/TedMN/mplsjrdevs/internal/domain"
)

const adminRole = "admin"

type authService struct {
	hasher       domain.PasswordHasher
	issuer       domain.TokenIssuer
	passwordHash string
	passwordSalt string
	tokenExpiry  time.Duration
}

// NewAuthService creates an AuthService that checks the configured admin
// password hash and issues bearer tokens valid for expiry.
func NewAuthService(hasher domain.PasswordHasher, issuer domain.TokenIssuer, passwordHash, passwordSalt string, expiry time.Duration) domain.AuthService {
	return &authService{
		hasher:       hasher,
		issuer:       issuer,
		passwordHash: passwordHash,
		passwordSalt: passwordSalt,
		tokenExpiry:  expiry,
	}
}

func (s *authService) Login(ctx context.Context, password string) (string, error) {
	// No configured hash means the admin endpoints are closed.
	if s.passwordHash == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(s.passwordHash, s.passwordSalt, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(domain.AdminSubject, []string{adminRole}, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
