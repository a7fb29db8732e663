package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronov/notepad-server/internal/apierrors"
	"github.com/avoronov/notepad-server/internal/logger"
	"github.com/avoronov/notepad-server/internal/model"
)

// Auth implements registration, login and per-request identity resolution.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a user with a hashed password. The email pre-check is a
// fast path; the unique index on users.email is the actual safeguard against
// concurrent registrations, and a unique violation surfaces as the same
// conflict error.
func (a *Auth) Register(ctx context.Context, email, password string) (model.User, error) {
	a.logger.Debug("Auth service: registering user", "email", email)

	existing, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != 0 {
		a.logger.Info("Auth service: email already registered", "email", email)
		return model.User{}, apierrors.NewErrEmailIsTaken(email)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.User{}, apierrors.NewErrEmailIsTaken(email)
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "email", email, "user_id", user.ID)

	return user, nil
}

// Login verifies credentials and issues a bearer token for the user's email.
// An unknown email and a wrong password produce the same error.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: logging in user", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return "", apierrors.NewErrInvalidCredentials()
	}

	tokenString, err := a.tokenManager.Issue(user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "email", email)

	return tokenString, nil
}

// Authenticate resolves a bearer token to the user it represents. It composes
// token verification with the user lookup and runs once per protected
// request. Every failure cause collapses into one unauthorized error so
// callers cannot tell a stale token from a vanished account.
func (a *Auth) Authenticate(ctx context.Context, tokenString string) (model.User, error) {
	if tokenString == "" {
		return model.User{}, apierrors.NewErrUnauthorized(errors.New("missing token"))
	}

	subject, err := a.tokenManager.Parse(tokenString)
	if err != nil {
		a.logger.Debug("Auth service: token rejected", "error", err.Error())
		return model.User{}, apierrors.NewErrUnauthorized(err)
	}

	user, err := a.userStore.GetByEmail(ctx, subject)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Debug("Auth service: token subject does not resolve", "subject", subject)
		return model.User{}, apierrors.NewErrUnauthorized(err)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
