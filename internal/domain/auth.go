package domain

import (
	"context"
	"time"
)

// AdminSubject is the token subject for the single schedule administrator.
const AdminSubject = "admin"

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues signed tokens for an authenticated subject.
type TokenIssuer interface {
	Issue(subject string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AuthService exchanges the admin password for a bearer token.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
}
