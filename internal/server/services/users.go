// Package services contains server-side business logic: the credential
// service (signup/signin) and the note service with its ownership guard.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/alexsk87/notehub/internal/common"
	"github.com/alexsk87/notehub/internal/server/auth"
	"github.com/alexsk87/notehub/internal/server/config"
	"github.com/alexsk87/notehub/internal/server/models"
	"github.com/alexsk87/notehub/internal/server/repositories/users"
	"github.com/google/uuid"
)

// dummyPasswordHash is a valid bcrypt hash compared against when the account
// does not exist, so an unknown login costs the same as a wrong password.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService handles registration and login and mints session tokens.
type UserService struct {
	repo      users.Repository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:      repo,
		jwtSecret: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
	}
}

// SignUp creates an account and returns a session token bound to it. A
// username or email collision is reported as common.ErrorAlreadyExists
// without naming the colliding field.
func (s *UserService) SignUp(ctx context.Context, username, email, password string) (string, error) {

	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)

	if err := validateSignUp(username, email, password); err != nil {
		return "", err
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		AvatarURL:    GravatarURL(email),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.issueToken(created.ID)
}

// SignIn verifies credentials and returns a session token. The login may be a
// username or an email. Unknown accounts and wrong passwords yield the same
// common.ErrorInvalidCredentials.
func (s *UserService) SignIn(ctx context.Context, login, password string) (string, error) {

	login = strings.TrimSpace(login)
	if strings.Contains(login, "@") {
		login = NormalizeEmail(login)
	}
	if login == "" || password == "" {
		return "", common.ErrorInvalidCredentials
	}

	user, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn a comparison so this branch is not cheaper than the
			// wrong-password one.
			_, _ = auth.VerifyPassword(password, dummyPasswordHash)
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrorInvalidCredentials
	}

	return s.issueToken(user.ID)
}

// Profile returns the account behind an authenticated identity. A verified
// token whose subject no longer resolves to a user is treated as a failed
// authentication, not as a missing resource.
func (s *UserService) Profile(ctx context.Context, identity auth.Identity) (*models.User, error) {
	if !identity.Authenticated() {
		return nil, common.ErrorUnauthenticated
	}

	user, err := s.repo.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthenticated
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user, nil
}

func (s *UserService) issueToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// NormalizeEmail trims and lowercases an email address; this is the stored
// form and the form uniqueness is checked against.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateSignUp(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return common.ErrorValidation
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return common.ErrorValidation
	}
	return nil
}
