package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/coursewave/coursewave-app/internal/pkg/security"
	"github.com/coursewave/coursewave-app/pkg/config"
	"github.com/coursewave/coursewave-app/pkg/constant"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/domain/repository"
	"github.com/coursewave/coursewave-app/pkg/idgen"
)

// ErrBadCredentials is returned for any login failure so callers cannot
// probe which accounts exist.
var ErrBadCredentials = errors.New("incorrect username or password")

// AuthService covers registration, login and the token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	userRepo       repository.UserRepository
	tokenSvc       TokenService
	captchaSvc     CaptchaService
	captchaEnabled bool
}

// NewAuthService wires the auth service. Captcha checking on registration
// is controlled by configuration.
func NewAuthService(
	userRepo repository.UserRepository,
	tokenSvc TokenService,
	captchaSvc CaptchaService,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:       userRepo,
		tokenSvc:       tokenSvc,
		captchaSvc:     captchaSvc,
		captchaEnabled: cfg.GetBool(config.KeyRegisterCaptcha),
	}
}

// Register creates an account. The very first account on a fresh install
// becomes the admin; everyone after that starts as a student.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error) {
	if s.captchaEnabled && !s.captchaSvc.Verify(req.CaptchaID, req.CaptchaCode) {
		return nil, constant.NewValidationError("captcha verification failed")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, constant.NewValidationError("username is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, constant.NewValidationError("email is required")
	}
	if len(req.Password) < 8 {
		return nil, constant.NewValidationError("password must be at least 8 characters")
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, constant.NewValidationError("username is already taken")
	} else if !errors.Is(err, constant.ErrNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, constant.NewValidationError("email is already registered")
	} else if !errors.Is(err, constant.ErrNotFound) {
		return nil, err
	}

	existing, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	role := model.RoleStudent
	if existing == 0 {
		role = model.RoleAdmin
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		nickname = username
	}

	user, err := s.userRepo.Create(ctx, &repository.CreateUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Nickname:     nickname,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, constant.ErrConflict) {
			return nil, constant.NewValidationError("username or email is already taken")
		}
		return nil, err
	}

	if role == model.RoleAdmin {
		log.Printf("[auth] first account %q registered, granted admin role", username)
	}
	return toUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if user.Status == model.UserStatusBanned {
		return nil, constant.NewValidationError("this account is suspended")
	}
	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}

	pair, err := s.tokenSvc.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dbID, _, err := idgen.DecodePublicID(user.ID)
	if err == nil {
		if err := s.userRepo.UpdateLastLogin(ctx, dbID, now); err != nil {
			log.Printf("[auth] updating last login for %q failed: %v", user.Username, err)
		}
	}
	user.LastLoginAt = &now

	return &model.LoginResponse{TokenPair: *pair, User: toUserResponse(user)}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	userID, err := s.tokenSvc.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	dbID, entityType, err := idgen.DecodePublicID(userID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return nil, ErrInvalidToken
	}
	user, err := s.userRepo.FindByID(ctx, dbID)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if user.Status == model.UserStatusBanned {
		return nil, ErrInvalidToken
	}

	return s.tokenSvc.GenerateTokenPair(ctx, user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenSvc.Revoke(ctx, refreshToken)
}

func toUserResponse(u *model.User) *model.UserResponse {
	return &model.UserResponse{
		ID:          u.ID,
		CreatedAt:   u.CreatedAt,
		Username:    u.Username,
		Email:       u.Email,
		Nickname:    u.Nickname,
		Avatar:      u.Avatar,
		Role:        u.Role,
		Status:      u.Status,
		LastLoginAt: u.LastLoginAt,
	}
}
