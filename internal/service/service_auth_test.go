package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tahiry-dev/wildlife-atlas/internal/config"
	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/internal/store"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

// mockUserRepository lets each test plug in just the methods it needs.
type mockUserRepository struct {
	createUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	findUserByIDFunc    func(ctx context.Context, id int64) (models.User, error)
	emailExistsFunc     func(ctx context.Context, email string) (bool, error)
	usernameExistsFunc  func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.findUserByIDFunc(ctx, id)
}

func (m *mockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emailExistsFunc(ctx, email)
}

func (m *mockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return m.usernameExistsFunc(ctx, username)
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "wildlife-atlas",
		TokenDuration: time.Hour,
	}
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAppConfig(), logger.Nop())
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success hashes the password and assigns the user role", func(t *testing.T) {
		var created models.User
		repo := &mockUserRepository{
			emailExistsFunc:    func(ctx context.Context, email string) (bool, error) { return false, nil },
			usernameExistsFunc: func(ctx context.Context, username string) (bool, error) { return false, nil },
			createUserFunc: func(ctx context.Context, user models.User) (models.User, error) {
				created = user
				user.ID = 1
				return user, nil
			},
		}
		auth := newTestAuthService(repo)

		user, err := auth.Register(ctx, models.RegisterRequest{
			Username: "ranjo",
			Email:    "ranjo@example.com",
			Password: "s3cret",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, models.RoleUser, created.Role)
		assert.NotEqual(t, "s3cret", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret")))
	})

	t.Run("empty fields are rejected", func(t *testing.T) {
		auth := newTestAuthService(&mockUserRepository{})

		for _, req := range []models.RegisterRequest{
			{Email: "a@b.c", Password: "p"},
			{Username: "u", Password: "p"},
			{Username: "u", Email: "a@b.c"},
		} {
			_, err := auth.Register(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &mockUserRepository{
			emailExistsFunc: func(ctx context.Context, email string) (bool, error) { return true, nil },
		}
		auth := newTestAuthService(repo)

		_, err := auth.Register(ctx, models.RegisterRequest{Username: "u", Email: "a@b.c", Password: "p"})
		assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := &mockUserRepository{
			emailExistsFunc:    func(ctx context.Context, email string) (bool, error) { return false, nil },
			usernameExistsFunc: func(ctx context.Context, username string) (bool, error) { return true, nil },
		}
		auth := newTestAuthService(repo)

		_, err := auth.Register(ctx, models.RegisterRequest{Username: "u", Email: "a@b.c", Password: "p"})
		assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	})

	t.Run("constraint violation surfaces the store sentinel", func(t *testing.T) {
		repo := &mockUserRepository{
			emailExistsFunc:    func(ctx context.Context, email string) (bool, error) { return false, nil },
			usernameExistsFunc: func(ctx context.Context, username string) (bool, error) { return false, nil },
			createUserFunc: func(ctx context.Context, user models.User) (models.User, error) {
				return models.User{}, store.ErrEmailAlreadyExists
			},
		}
		auth := newTestAuthService(repo)

		_, err := auth.Register(ctx, models.RegisterRequest{Username: "u", Email: "a@b.c", Password: "p"})
		assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := models.User{
		ID:           7,
		Username:     "ranjo",
		Email:        "ranjo@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	t.Run("success", func(t *testing.T) {
		repo := &mockUserRepository{
			findUserByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
				return storedUser, nil
			},
		}
		auth := newTestAuthService(repo)

		user, err := auth.Login(ctx, models.LoginRequest{Email: "ranjo@example.com", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, storedUser.ID, user.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		unknownRepo := &mockUserRepository{
			findUserByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
				return models.User{}, store.ErrUserNotFound
			},
		}
		knownRepo := &mockUserRepository{
			findUserByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
				return storedUser, nil
			},
		}

		_, errUnknown := newTestAuthService(unknownRepo).Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "s3cret"})
		_, errWrongPass := newTestAuthService(knownRepo).Login(ctx, models.LoginRequest{Email: "ranjo@example.com", Password: "wrong"})

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		assert.Equal(t, errUnknown, errWrongPass)
	})

	t.Run("empty credentials are rejected", func(t *testing.T) {
		auth := newTestAuthService(&mockUserRepository{})

		_, err := auth.Login(ctx, models.LoginRequest{Email: "", Password: "p"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuthService(&mockUserRepository{})
	user := models.User{ID: 42, Email: "ranjo@example.com"}

	token, err := auth.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := auth.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuthService(&mockUserRepository{})

	_, err := auth.ParseToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	other := NewAuthService(&mockUserRepository{}, config.App{
		TokenSignKey:  "different-key",
		TokenIssuer:   "wildlife-atlas",
		TokenDuration: time.Hour,
	}, logger.Nop())
	token, err := other.CreateToken(ctx, models.User{ID: 1})
	require.NoError(t, err)

	_, err = auth.ParseToken(ctx, token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_UserByID(t *testing.T) {
	ctx := context.Background()
	repo := &mockUserRepository{
		findUserByIDFunc: func(ctx context.Context, id int64) (models.User, error) {
			if id != 7 {
				return models.User{}, store.ErrUserNotFound
			}
			return models.User{ID: 7, Username: "ranjo"}, nil
		},
	}
	auth := newTestAuthService(repo)

	user, err := auth.UserByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "ranjo", user.Username)

	_, err = auth.UserByID(ctx, 8)
	assert.True(t, errors.Is(err, store.ErrUserNotFound))
}
