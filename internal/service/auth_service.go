package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"

	"github.com/victornavas/unified-api/internal/domain"
	"github.com/victornavas/unified-api/internal/repo/postgres"
	"github.com/victornavas/unified-api/pkg/auth"
)

type AuthService struct {
	users  postgres.UserRepo
	secret string
	ttl    time.Duration
}

func NewAuthService(users postgres.UserRepo, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		secret: secret,
		ttl:    ttl,
	}
}

// Login verifies the password and issues an HS256 bearer token carrying the
// user id and username.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	match, err := argon2id.ComparePasswordAndHash(password, user.PasswordHash)
	if err != nil || !match {
		return "", domain.ErrInvalidCredentials
	}

	return auth.NewToken(user.ID, user.Username, s.secret, s.ttl)
}
