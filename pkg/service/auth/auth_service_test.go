package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/coursewave/coursewave-app/internal/pkg/auth"
	"github.com/coursewave/coursewave-app/pkg/config"
	"github.com/coursewave/coursewave-app/pkg/constant"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	"github.com/coursewave/coursewave-app/pkg/domain/repository"
	"github.com/coursewave/coursewave-app/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, params *repository.CreateUserParams) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == params.Username || u.Email == params.Email {
			return nil, constant.ErrConflict
		}
	}
	id := r.nextID
	r.nextID++
	publicID, _ := idgen.GeneratePublicID(id, idgen.EntityTypeUser)
	role := params.Role
	if role == "" {
		role = model.RoleStudent
	}
	u := &model.User{
		ID:           publicID,
		CreatedAt:    time.Now(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Nickname:     params.Nickname,
		Role:         role,
		Status:       model.UserStatusActive,
	}
	r.users[id] = u
	return u, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, constant.ErrNotFound
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []uint) (map[uint]*model.User, error) {
	out := make(map[uint]*model.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id uint, at time.Time) error {
	if u, ok := r.users[id]; ok {
		u.LastLoginAt = &at
		return nil
	}
	return constant.ErrNotFound
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id uint, role string) error {
	if u, ok := r.users[id]; ok {
		u.Role = role
		return nil
	}
	return constant.ErrNotFound
}

func (r *fakeUserRepo) Count(context.Context) (int, error) { return len(r.users), nil }

func (r *fakeUserRepo) List(context.Context) ([]*model.User, error) {
	out := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

// fakeTokenService hands out sequential opaque tokens and remembers which
// refresh tokens are live.
type fakeTokenService struct {
	counter int
	live    map[string]string
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{live: make(map[string]string)}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, user *model.User) (*model.TokenPair, error) {
	s.counter++
	refresh := "refresh-" + strconv.Itoa(s.counter)
	s.live[refresh] = user.ID
	return &model.TokenPair{
		AccessToken:  "access-" + strconv.Itoa(s.counter),
		RefreshToken: refresh,
	}, nil
}

func (s *fakeTokenService) ParseAccessToken(string) (*appauth.CustomClaims, error) {
	panic("not used")
}

func (s *fakeTokenService) Refresh(_ context.Context, refreshToken string) (string, error) {
	userID, ok := s.live[refreshToken]
	if !ok {
		return "", ErrInvalidToken
	}
	delete(s.live, refreshToken)
	return userID, nil
}

func (s *fakeTokenService) Revoke(_ context.Context, refreshToken string) error {
	delete(s.live, refreshToken)
	return nil
}

type fakeCaptcha struct {
	accept bool
}

func (c *fakeCaptcha) Generate() (string, string, error) { return "id", "img", nil }
func (c *fakeCaptcha) Verify(string, string) bool        { return c.accept }

func newTestAuthService(captchaEnabled, captchaAccepts bool) (AuthService, *fakeUserRepo, *fakeTokenService) {
	repo := newFakeUserRepo()
	tokens := newFakeTokenService()
	cfg := config.NewFromValues(map[string]string{
		config.KeyRegisterCaptcha: strconv.FormatBool(captchaEnabled),
	})
	svc := NewAuthService(repo, tokens, &fakeCaptcha{accept: captchaAccepts}, cfg)
	return svc, repo, tokens
}

func register(t *testing.T, svc AuthService, username string) *model.UserResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	return resp
}

func TestFirstRegisteredUserBecomesAdmin(t *testing.T) {
	svc, _, _ := newTestAuthService(false, false)

	first := register(t, svc, "alice")
	second := register(t, svc, "bob")

	assert.Equal(t, model.RoleAdmin, first.Role)
	assert.Equal(t, model.RoleStudent, second.Role)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _, _ := newTestAuthService(false, false)
	register(t, svc, "alice")

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "correct horse",
	})
	assert.True(t, constant.IsValidationError(err))

	_, err = svc.Register(context.Background(), &model.RegisterRequest{
		Username: "carol",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	assert.True(t, constant.IsValidationError(err))
}

func TestRegisterShortPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(false, false)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
	})
	assert.True(t, constant.IsValidationError(err))
}

func TestRegisterCaptchaGate(t *testing.T) {
	svc, _, _ := newTestAuthService(true, false)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	assert.True(t, constant.IsValidationError(err))

	accepting, _, _ := newTestAuthService(true, true)
	register(t, accepting, "alice")
}

func TestLoginAndRefresh(t *testing.T) {
	svc, _, tokens := newTestAuthService(false, false)
	register(t, svc, "alice")

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Username: "alice",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	require.NotNil(t, resp.User)
	assert.NotNil(t, resp.User.LastLoginAt)

	pair, err := svc.Refresh(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, pair.RefreshToken)

	// The exchanged refresh token is single use.
	_, err = svc.Refresh(context.Background(), resp.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, svc.Logout(context.Background(), pair.RefreshToken))
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, tokens.live)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(false, false)
	register(t, svc, "alice")

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Username: "alice",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrBadCredentials)
}
