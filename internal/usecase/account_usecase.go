package usecase

import (
	"context"

	"sarahkyoga/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput holds the fields a user can change on their own account.
type UpdateProfileInput struct {
	Name string
}

// ConfirmPasswordResetInput carries the reset token and the new password.
type ConfirmPasswordResetInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns the access token after a successful sign-in.
type AuthOutput struct {
	AccessToken string
	User        *entity.User
}

// AccountUsecase defines the self-service account operations.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GoogleLogin(ctx context.Context, idToken string) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	// RequestPasswordReset succeeds whether or not the email is registered.
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, input *ConfirmPasswordResetInput) error
}

// UserAdminUsecase defines the admin operations on user accounts.
type UserAdminUsecase interface {
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
