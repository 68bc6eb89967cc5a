package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahiry-dev/wildlife-atlas/internal/service"
	"github.com/tahiry-dev/wildlife-atlas/internal/store"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

func TestRegisterEndpoint(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		auth := &mockAuthService{
			registerFunc: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
				return models.User{ID: 1, Username: req.Username, Email: req.Email, Role: models.RoleUser}, nil
			},
		}
		router := newTestRouter(t, &service.Services{Auth: auth}, nil)

		status, body := doRequest(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
			"username": "ranjo",
			"email":    "ranjo@example.com",
			"password": "s3cret",
		})

		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "User registered successfully", body["message"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		auth := &mockAuthService{
			registerFunc: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
				return models.User{}, store.ErrEmailAlreadyExists
			},
		}
		router := newTestRouter(t, &service.Services{Auth: auth}, nil)

		status, body := doRequest(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
			"username": "ranjo", "email": "taken@example.com", "password": "s3cret",
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Email already registered", body["error"])
	})

	t.Run("duplicate username", func(t *testing.T) {
		auth := &mockAuthService{
			registerFunc: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
				return models.User{}, store.ErrUsernameAlreadyExists
			},
		}
		router := newTestRouter(t, &service.Services{Auth: auth}, nil)

		status, body := doRequest(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
			"username": "taken", "email": "ranjo@example.com", "password": "s3cret",
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Username already taken", body["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		auth := &mockAuthService{
			registerFunc: func(ctx context.Context, req models.RegisterRequest) (models.User, error) {
				return models.User{}, service.ErrInvalidDataProvided
			},
		}
		router := newTestRouter(t, &service.Services{Auth: auth}, nil)

		status, body := doRequest(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
			"username": "ranjo",
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Username, email and password are required", body["error"])
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("successful login returns token and public user", func(t *testing.T) {
		auth := &mockAuthService{
			loginFunc: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{
					ID: 7, Username: "ranjo", Email: req.Email,
					PasswordHash: "$2a$10$secret", Role: models.RoleUser,
				}, nil
			},
			createTokenFunc: func(ctx context.Context, user models.User) (models.Token, error) {
				return models.Token{SignedString: "signed.jwt.token", UserID: user.ID}, nil
			},
		}
		router := newTestRouter(t, &service.Services{Auth: auth}, nil)

		status, body := doRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "ranjo@example.com", "password": "s3cret",
		})

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "signed.jwt.token", body["token"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok, "response must embed the user object")
		assert.Equal(t, float64(7), user["id"])
		assert.Equal(t, "ranjo", user["username"])
		assert.NotContains(t, user, "password_hash")
	})

	t.Run("bad credentials", func(t *testing.T) {
		auth := &mockAuthService{
			loginFunc: func(ctx context.Context, req models.LoginRequest) (models.User, error) {
				return models.User{}, service.ErrInvalidCredentials
			},
		}
		router := newTestRouter(t, &service.Services{Auth: auth}, nil)

		status, body := doRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "ranjo@example.com", "password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid email or password", body["error"])
	})
}

func TestCurrentUserEndpoint(t *testing.T) {
	t.Run("authenticated request returns the public profile", func(t *testing.T) {
		auth := &mockAuthService{}
		auth.grantAccess(7, models.RoleUser)
		router := newTestRouter(t, &service.Services{Auth: auth}, nil)

		status, body := doRequest(t, router, http.MethodGet, "/api/auth/user", "some-token", nil)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(7), body["id"])
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("missing authorization header", func(t *testing.T) {
		router := newTestRouter(t, &service.Services{Auth: &mockAuthService{}}, nil)

		status, body := doRequest(t, router, http.MethodGet, "/api/auth/user", "", nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), body["error"])
	})

	t.Run("invalid token", func(t *testing.T) {
		auth := &mockAuthService{
			parseTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
		}
		router := newTestRouter(t, &service.Services{Auth: auth}, nil)

		status, body := doRequest(t, router, http.MethodGet, "/api/auth/user", "garbage", nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, service.ErrTokenIsExpiredOrInvalid.Error(), body["error"])
	})
}
