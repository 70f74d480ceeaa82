package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"sarahkyoga/config"
	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/domain/service"
	"sarahkyoga/internal/usecase"
	"sarahkyoga/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	resetTokenBytes         = 32
	defaultPasswordResetTTL = time.Hour
)

// accountService implements the AccountUsecase and UserAdminUsecase interfaces.
type accountService struct {
	userRepo          repository.UserRepository
	orderRepo         repository.OrderRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	emailSender       service.EmailSender
	resetTTL          time.Duration
	publicBaseURL     string
	now               func() time.Time
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo          repository.UserRepository
	OrderRepo         repository.OrderRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	EmailSender       service.EmailSender
	Config            *config.Config
	Logger            *slog.Logger
}

func newAccountService(params AccountServiceParams) *accountService {
	resetTTL := defaultPasswordResetTTL
	publicBaseURL := ""
	if params.Config != nil {
		if params.Config.Auth != nil && params.Config.Auth.PasswordResetTTL > 0 {
			resetTTL = params.Config.Auth.PasswordResetTTL
		}
		publicBaseURL = strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/")
	}

	return &accountService{
		userRepo:          params.UserRepo,
		orderRepo:         params.OrderRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		emailSender:       params.EmailSender,
		resetTTL:          resetTTL,
		publicBaseURL:     publicBaseURL,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// NewAccountService is the constructor for the self-service account operations.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return newAccountService(params)
}

// NewUserAdminService is the constructor for the admin user operations.
func NewUserAdminService(params AccountServiceParams) usecase.UserAdminUsecase {
	return newAccountService(params)
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a password account. A guest account provisioned at checkout is upgraded in place.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password rejected during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil && user.Role != entity.RoleGuest:
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
	case err == nil:
		user.Name = strings.TrimSpace(input.Name)
		user.PasswordHash = hashedPassword
		user.Role = entity.RoleUser
		if err := srv.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to upgrade guest account")
		}
		srv.log(ctx).Info("Upgraded guest account", slog.Any("userID", user.ID))
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{
			Email:        email,
			Name:         strings.TrimSpace(input.Name),
			PasswordHash: hashedPassword,
			Role:         entity.RoleUser,
		}
		if err := srv.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
			}

			return nil, errors.Wrap(err, "failed to create user during registration")
		}
	default:
		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issueToken(user)
}

// Login verifies the password and issues an access token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.HasPassword() || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	return srv.issueToken(user)
}

// GoogleLogin verifies a Google ID token and signs the matching account in, creating it on first use.
func (srv *accountService) GoogleLogin(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("google sign-in failed")
	}

	email := normalizeEmail(oauthUser.Email)
	user, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if user.Role == entity.RoleGuest {
			user.Role = entity.RoleUser
			if user.Name == "" {
				user.Name = oauthUser.Name
			}
			if err := srv.userRepo.Update(ctx, user); err != nil {
				return nil, errors.Wrap(err, "failed to upgrade guest account")
			}
		}
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{Email: email, Name: oauthUser.Name, Role: entity.RoleUser}
		if err := srv.userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user from google sign-in")
		}
		srv.log(ctx).Info("Created user from Google sign-in", slog.Any("userID", user.ID))
	default:
		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issueToken(user)
}

func (srv *accountService) issueToken(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{AccessToken: token, User: user}, nil
}

func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.Get(ctx, userID)
}

func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(input.Name)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// RequestPasswordReset stores a reset token and emails the link. Unknown emails are not revealed.
func (srv *accountService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find user")
	}

	token, err := util.RandomHex(resetTokenBytes)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}
	expiresAt := srv.now().Add(srv.resetTTL)
	user.ResetToken = token
	user.ResetTokenExpiresAt = &expiresAt

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	link := srv.publicBaseURL + "/reset-password?token=" + url.QueryEscape(token)
	msg := &service.EmailMessage{
		To:      user.Email,
		Subject: "Reset your password",
		Text:    "Use the link below to choose a new password. It expires in " + util.FormatDuration(srv.resetTTL) + ".\n\n" + link + "\n",
		HTML:    `<p>Use the link below to choose a new password. It expires in ` + util.FormatDuration(srv.resetTTL) + `.</p><p><a href="` + link + `">Reset password</a></p>`,
	}
	if err := srv.emailSender.Send(ctx, msg); err != nil {
		srv.log(ctx).Error("Failed to send password reset email", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	return nil
}

// ConfirmPasswordReset sets the new password and clears the token.
func (srv *accountService) ConfirmPasswordReset(ctx context.Context, input *usecase.ConfirmPasswordResetInput) error {
	user, err := srv.userRepo.FindByResetToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrResetTokenInvalid.WrapMessage("unknown reset token")
		}

		return errors.Wrap(err, "failed to find reset token")
	}
	if !user.ResetTokenValid(input.Token, srv.now()) {
		return domainerrors.ErrResetTokenInvalid.WrapMessage("reset token expired")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hashedPassword
	user.ResetToken = ""
	user.ResetTokenExpiresAt = nil
	if user.Role == entity.RoleGuest {
		user.Role = entity.RoleUser
	}
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store new password")
	}
	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

func (srv *accountService) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, repository.ListParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *accountService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage(id.String())
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *accountService) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	user, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update role")
	}
	srv.log(ctx).Info("User role changed", slog.Any("userID", id), slog.String("role", role.String()))

	return user, nil
}

// Delete removes a user without orders; their carts go with them.
func (srv *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := srv.orderRepo.CountByUser(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count user orders")
	}
	if count > 0 {
		return domainerrors.ErrUserHasOrders.WrapMessage(id.String())
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage(id.String())
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
