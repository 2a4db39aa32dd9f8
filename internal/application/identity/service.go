// Package identity handles registration, login, token refresh and
// password changes.
package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/identity"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/auth"
)

// AuthResponse bundles the account and its fresh token pair.
type AuthResponse struct {
	User   *identity.User  `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// Service implements the auth flows.
type Service struct {
	users  identity.UserRepository
	tokens *auth.JWTService
	logger *zap.Logger
}

// NewService creates the identity service
func NewService(users identity.UserRepository, tokens *auth.JWTService, logger *zap.Logger) *Service {
	return &Service{users: users, tokens: tokens, logger: logger.Named("identity")}
}

// RegisterInput carries the signup payload
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register creates a customer account and signs it in
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewAlreadyExistsError("user", in.Email)
	}

	user, err := identity.NewUser(in.Name, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return s.issue(user)
}

// LoginInput carries the credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues tokens. Wrong email and wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthResponse, error) {
	invalid := shared.NewDomainError(shared.ErrCodeUnauthorized, "invalid email or password")

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, invalid
	}
	if !user.CheckPassword(in.Password) {
		return nil, invalid
	}
	return s.issue(user)
}

// Refresh exchanges a refresh token for a fresh pair
func (s *Service) Refresh(_ context.Context, refreshToken string) (*auth.TokenPair, error) {
	pair, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError(shared.ErrCodeUnauthorized, "invalid refresh token")
	}
	return pair, nil
}

// ChangePasswordInput carries the rotation payload
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// ChangePassword verifies the current password before storing a new hash
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, in ChangePasswordInput) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.CheckPassword(in.CurrentPassword) {
		return shared.NewInvalidInputError("current password is incorrect")
	}
	if err := user.SetPassword(in.NewPassword); err != nil {
		return err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}
	s.logger.Info("password changed", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *Service) issue(user *identity.User) (*AuthResponse, error) {
	pair, err := s.tokens.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: user, Tokens: pair}, nil
}
