package user

import (
	"context"

	"github.com/coursewave/coursewave-app/pkg/constant"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/domain/repository"
	"github.com/coursewave/coursewave-app/pkg/idgen"
)

// Service exposes account reads and the admin role management operation.
type Service interface {
	Get(ctx context.Context, publicID string) (*model.UserResponse, error)
	List(ctx context.Context) ([]*model.UserResponse, error)
	UpdateRole(ctx context.Context, publicID, role string) error
}

type serviceImpl struct {
	repo repository.UserRepository
}

func NewService(repo repository.UserRepository) Service {
	return &serviceImpl{repo: repo}
}

func (s *serviceImpl) Get(ctx context.Context, publicID string) (*model.UserResponse, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return nil, constant.ErrNotFound
	}
	u, err := s.repo.FindByID(ctx, dbID)
	if err != nil {
		return nil, err
	}
	return toResponse(u), nil
}

func (s *serviceImpl) List(ctx context.Context) ([]*model.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = toResponse(u)
	}
	return responses, nil
}

func (s *serviceImpl) UpdateRole(ctx context.Context, publicID, role string) error {
	switch role {
	case model.RoleAdmin, model.RoleInstructor, model.RoleStudent:
	default:
		return constant.NewValidationError("unknown role: " + role)
	}
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return constant.ErrNotFound
	}
	return s.repo.UpdateRole(ctx, dbID, role)
}

func toResponse(u *model.User) *model.UserResponse {
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
