package service

import (
	"github.com/legally-ai/legally/internal/auth"
	"github.com/legally-ai/legally/internal/domain"
	"github.com/legally-ai/legally/internal/repository"
)

// AuthService handles registration, login and request authentication
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *auth.TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register creates an account and returns an access token for it.
// Returns domain.ErrUserExists when the username is taken.
func (s *AuthService) Register(username, password string) (*domain.TokenResponse, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Username: username, PasswordHash: hash}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueFor(username)
}

// Login verifies the credentials and returns an access token.
// Returns domain.ErrInvalidCredentials on unknown user or wrong password.
func (s *AuthService) Login(username, password string) (*domain.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueFor(username)
}

// Authenticate resolves a bearer token to a verified user. Both token
// validity and account existence are required: deleting an account
// silently invalidates tokens issued for it.
func (s *AuthService) Authenticate(token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

func (s *AuthService) issueFor(username string) (*domain.TokenResponse, error) {
	token, err := s.tokens.Issue(username)
	if err != nil {
		return nil, err
	}
	return &domain.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
