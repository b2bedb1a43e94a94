package ent

import (
	"context"
	"time"

	"github.com/coursewave/coursewave-app/ent"
	"github.com/coursewave/coursewave-app/ent/user"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/domain/repository"
	"github.com/coursewave/coursewave-app/pkg/idgen"
)

type userRepo struct {
	db *ent.Client
}

// NewUserRepo constructs the ent-backed user repository.
func NewUserRepo(db *ent.Client) repository.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) toModel(u *ent.User) *model.User {
	if u == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(u.ID, idgen.EntityTypeUser)
	return &model.User{
		ID:           publicID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Nickname:     u.Nickname,
		Avatar:       u.Avatar,
		Role:         string(u.Role),
		Status:       string(u.Status),
		LastLoginAt:  u.LastLoginAt,
	}
}

func (r *userRepo) Create(ctx context.Context, params *repository.CreateUserParams) (*model.User, error) {
	creator := r.db.User.Create().
		SetUsername(params.Username).
		SetEmail(params.Email).
		SetPasswordHash(params.PasswordHash).
		SetNickname(params.Nickname)
	if params.Role != "" {
		creator.SetRole(user.Role(params.Role))
	}
	entity, err := creator.Save(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	entity, err := r.db.User.Query().Where(user.ID(id)).Only(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *userRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.User, error) {
	result := make(map[uint]*model.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	entities, err := r.db.User.Query().Where(user.IDIn(ids...)).All(ctx)
	if err != nil {
		return nil, err
	}
	for _, entity := range entities {
		result[entity.ID] = r.toModel(entity)
	}
	return result, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	entity, err := r.db.User.Query().Where(user.UsernameEQ(username)).Only(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	entity, err := r.db.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return r.toModel(entity), nil
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return translateError(r.db.User.UpdateOneID(id).
		SetLastLoginAt(at).
		SetUpdatedAt(time.Now()).
		Exec(ctx))
}

func (r *userRepo) UpdateRole(ctx context.Context, id uint, role string) error {
	return translateError(r.db.User.UpdateOneID(id).
		SetRole(user.Role(role)).
		SetUpdatedAt(time.Now()).
		Exec(ctx))
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	return r.db.User.Query().Count(ctx)
}

func (r *userRepo) List(ctx context.Context) ([]*model.User, error) {
	entities, err := r.db.User.Query().
		Order(ent.Asc(user.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	models := make([]*model.User, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models, nil
}
