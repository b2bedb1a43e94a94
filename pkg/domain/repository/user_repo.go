package repository

import (
	"context"
	"time"

	"github.com/coursewave/coursewave-app/pkg/domain/model"
)

// CreateUserParams bundles the data persisted when an account is registered.
type CreateUserParams struct {
	Username     string
	Email        string
	PasswordHash string
	Nickname     string
	Role         string
}

// UserRepository defines the persistence contract for accounts.
type UserRepository interface {
	Create(ctx context.Context, params *CreateUserParams) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	// FindByIDs resolves a batch of accounts keyed by database ID. Missing
	// IDs are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	UpdateRole(ctx context.Context, id uint, role string) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]*model.User, error)
}
