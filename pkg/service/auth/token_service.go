package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/coursewave/coursewave-app/internal/pkg/auth"
	"github.com/coursewave/coursewave-app/pkg/config"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
)

const refreshKeyPrefix = "coursewave:refresh:"

// ErrInvalidToken covers expired, malformed and revoked tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies the JWT pair used by the API. Access
// tokens are stateless; refresh tokens are single-use and tracked in redis
// by their jti so they can be rotated and revoked.
type TokenService interface {
	GenerateTokenPair(ctx context.Context, user *model.User) (*model.TokenPair, error)
	ParseAccessToken(tokenStr string) (*auth.CustomClaims, error)
	// Refresh validates a refresh token, revokes it and returns the user
	// public ID it belonged to. The caller issues the next pair.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Revoke(ctx context.Context, refreshToken string) error
}

type tokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	rdb        *redis.Client
}

// NewTokenService reads the signing secret and lifetimes from configuration.
func NewTokenService(cfg *config.Config, rdb *redis.Client) (TokenService, error) {
	secret := cfg.GetString(config.KeyJWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("Auth.JWTSecret is not configured")
	}

	accessMinutes := cfg.GetInt(config.KeyAccessTokenTTLMin)
	if accessMinutes <= 0 {
		accessMinutes = 30
	}
	refreshHours := cfg.GetInt(config.KeyRefreshTokenTTLHrs)
	if refreshHours <= 0 {
		refreshHours = 24 * 7
	}

	return &tokenService{
		secret:     []byte(secret),
		accessTTL:  time.Duration(accessMinutes) * time.Minute,
		refreshTTL: time.Duration(refreshHours) * time.Hour,
		rdb:        rdb,
	}, nil
}

func (s *tokenService) GenerateTokenPair(ctx context.Context, user *model.User) (*model.TokenPair, error) {
	now := time.Now()

	accessClaims := &auth.CustomClaims{
		UserID:   user.ID,
		Role:     user.Role,
		Nickname: user.Nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	jti := uuid.NewString()
	refreshClaims := &jwt.RegisteredClaims{
		ID:        jti,
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}

	if err := s.rdb.Set(ctx, refreshKeyPrefix+jti, user.ID, s.refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("storing refresh token: %w", err)
	}

	return &model.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *tokenService) ParseAccessToken(tokenStr string) (*auth.CustomClaims, error) {
	claims := &auth.CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *tokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	key := refreshKeyPrefix + claims.ID
	userID, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("loading refresh token: %w", err)
	}

	// Single use: a refresh token that has been exchanged is dead.
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return "", fmt.Errorf("revoking refresh token: %w", err)
	}
	return userID, nil
}

func (s *tokenService) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return err
	}
	return s.rdb.Del(ctx, refreshKeyPrefix+claims.ID).Err()
}

func (s *tokenService) parseRefreshToken(tokenStr string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *tokenService) keyFunc(*jwt.Token) (interface{}, error) {
	return s.secret, nil
}
