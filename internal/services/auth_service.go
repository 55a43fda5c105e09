package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/repositories"
	"bizdesk_backend/internal/validation"
	"bizdesk_backend/pkg/utils"
)

// --- Custom Service Errors ---
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// AuthResponse DTO
type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	ExpiresIn    int64        `json:"expires_in"`
}

// AdminPolicy decides which emails get the admin role.
type AdminPolicy func(email string) bool

// --- AuthService Interface ---
type AuthService interface {
	Register(ctx context.Context, form validation.RegisterForm) (*AuthResponse, error)
	Login(ctx context.Context, form validation.LoginForm) (*AuthResponse, error)
	RefreshToken(ctx context.Context, form validation.RefreshForm) (*AuthResponse, error)
	GetUserProfile(ctx context.Context, session models.Session) (*models.User, error)
}

type authService struct {
	authRepo repositories.AuthRepository
	tokens   *utils.TokenIssuer
	isAdmin  AdminPolicy
}

// NewAuthService creates a new instance of AuthService. isAdmin may be nil.
func NewAuthService(authRepo repositories.AuthRepository, tokens *utils.TokenIssuer, isAdmin AdminPolicy) AuthService {
	if isAdmin == nil {
		isAdmin = func(string) bool { return false }
	}
	return &authService{authRepo: authRepo, tokens: tokens, isAdmin: isAdmin}
}

func (s *authService) Register(ctx context.Context, form validation.RegisterForm) (*AuthResponse, error) {
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        form.Email,
		DisplayName:  form.DisplayName,
		PasswordHash: string(hashed),
		Role:         s.roleFor(form.Email),
	}
	if err := s.authRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return s.issue(user, true)
}

func (s *authService) Login(ctx context.Context, form validation.LoginForm) (*AuthResponse, error) {
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}

	user, err := s.authRepo.FindUserByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Admin membership is decided by configuration at every login.
	user.Role = s.roleFor(user.Email)
	return s.issue(user, true)
}

func (s *authService) RefreshToken(ctx context.Context, form validation.RefreshForm) (*AuthResponse, error) {
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}
	claims, err := s.tokens.ValidateRefreshToken(form.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	user, err := s.authRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load user for refresh: %w", err)
	}
	user.Role = s.roleFor(user.Email)
	return s.issue(user, false)
}

func (s *authService) GetUserProfile(ctx context.Context, session models.Session) (*models.User, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	user, err := s.authRepo.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	user.Role = s.roleFor(user.Email)
	return user, nil
}

func (s *authService) roleFor(email string) string {
	if s.isAdmin(email) {
		return models.RoleAdmin
	}
	return models.RoleUser
}

func (s *authService) issue(user *models.User, withRefresh bool) (*AuthResponse, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.DisplayName, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	resp := &AuthResponse{
		User:        user,
		AccessToken: access,
		ExpiresIn:   int64(s.tokens.AccessTTL() / time.Second),
	}
	if withRefresh {
		refresh, err := s.tokens.GenerateRefreshToken(user.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
		}
		resp.RefreshToken = refresh
	}
	return resp, nil
}
