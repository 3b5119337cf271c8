// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/contactbook/contactbook/internal/auth"
	"github.com/contactbook/contactbook/internal/metrics"
	"github.com/contactbook/contactbook/internal/model"
	"github.com/contactbook/contactbook/internal/repository"
)

// Auth service errors.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnknownEmail       = errors.New("email not registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// UserStore is the persistence seam for users. *repository.Repository
// satisfies it; tests substitute in-memory doubles.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

// UserViewCache caches public user views. May be nil; every method call
// is then skipped.
type UserViewCache interface {
	GetUserView(ctx context.Context, id int64) (*model.PublicUser, error)
	SetUserView(ctx context.Context, view *model.PublicUser) error
}

// AuthService verifies credentials against the user store and issues and
// verifies bearer tokens.
type AuthService struct {
	users   UserStore
	tokens  *auth.TokenManager
	cache   UserViewCache
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService. cache may be nil.
func NewAuthService(users UserStore, tokens *auth.TokenManager, cache UserViewCache, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		users:   users,
		tokens:  tokens,
		cache:   cache,
		metrics: recorder,
	}
}

// SignUp registers a new user and returns a bearer token bound to it plus
// the public user view. The password is stored only as a salted hash.
// Returns ErrEmailTaken if the email is already registered.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (string, *model.PublicUser, error) {
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return "", nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", nil, fmt.Errorf("lookup user by email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		// Concurrent signup with the same email loses the race here.
		if errors.Is(err, repository.ErrEmailExists) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncUserSignedUp()
	return token, user.PublicView(), nil
}

// LogIn verifies the credentials and returns a bearer token bound to the
// user plus the public user view. Returns ErrUnknownEmail when no user
// has the email and ErrInvalidCredentials when the password does not
// verify against the stored hash.
func (s *AuthService) LogIn(ctx context.Context, email, password string) (string, *model.PublicUser, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrUnknownEmail
		}
		return "", nil, fmt.Errorf("lookup user by email: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLoginFailed()
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncUserLoggedIn()
	return token, user.PublicView(), nil
}

// Authenticate verifies a bearer token and returns the bound user id.
// Any token failure is reported as ErrUnauthenticated.
func (s *AuthService) Authenticate(_ context.Context, token string) (int64, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return 0, ErrUnauthenticated
	}
	return userID, nil
}

// GetCurrentUser returns the public view of the user behind an
// authenticated identity. Returns ErrUnauthenticated if the user no
// longer exists (e.g. deleted out-of-band).
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*model.PublicUser, error) {
	if s.cache != nil {
		if view, _ := s.cache.GetUserView(ctx, userID); view != nil {
			return view, nil
		}
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("lookup user by id: %w", err)
	}

	view := user.PublicView()
	if s.cache != nil {
		_ = s.cache.SetUserView(ctx, view)
	}

	return view, nil
}
