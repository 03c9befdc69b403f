package auth

import (
	"context"
	"errors"
	"time"

	"locallibrary/internal/platform/crypto"
	"locallibrary/internal/user"
)

// UserLookup is the slice of user.Service the login flow needs.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

type BlacklistRepository interface {
	AddToken(ctx context.Context, jti, userID string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	CleanupExpired(ctx context.Context) error
}

type Service struct {
	secret    string
	tokenTTL  time.Duration
	users     UserLookup
	blacklist BlacklistRepository
}

func NewService(secret string, tokenTTL time.Duration, users UserLookup, blacklist BlacklistRepository) *Service {
	return &Service{
		secret:    secret,
		tokenTTL:  tokenTTL,
		users:     users,
		blacklist: blacklist,
	}
}

// Login checks the credentials and returns a signed access token with its
// lifetime in seconds.
func (s *Service) Login(ctx context.Context, email, password string) (string, int, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", 0, ErrUnauthorized
		}
		return "", 0, err
	}
	if !crypto.VerifyPassword(u.Password, password) {
		return "", 0, ErrUnauthorized
	}

	token, _, err := crypto.GenerateToken(s.secret, u.ID, u.Role, s.tokenTTL)
	if err != nil {
		return "", 0, err
	}
	return token, int(s.tokenTTL.Seconds()), nil
}

// Logout revokes token until its natural expiry.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := crypto.ParseToken(s.secret, token)
	if err != nil {
		return ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.blacklist.AddToken(ctx, claims.ID, claims.Sub, expiresAt)
}

func (s *Service) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	return s.blacklist.IsBlacklisted(ctx, jti)
}
