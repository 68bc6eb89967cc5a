package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tahiry-dev/wildlife-atlas/internal/catalog"
	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/internal/service"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

// mockAuthService plugs test behavior into the handler one method at a time.
// Methods without a configured func must not be reached by the test.
type mockAuthService struct {
	registerFunc    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFunc       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFunc func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc  func(ctx context.Context, tokenString string) (models.Token, error)
	userByIDFunc    func(ctx context.Context, id int64) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

func (m *mockAuthService) UserByID(ctx context.Context, id int64) (models.User, error) {
	return m.userByIDFunc(ctx, id)
}

type mockRegionService struct {
	createFunc func(ctx context.Context, req models.RegionCreate) (models.Region, error)
	listFunc   func(ctx context.Context, page, perPage int) (models.RegionPage, error)
	updateFunc func(ctx context.Context, id int64, update models.RegionUpdate) error
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockRegionService) Create(ctx context.Context, req models.RegionCreate) (models.Region, error) {
	return m.createFunc(ctx, req)
}

func (m *mockRegionService) List(ctx context.Context, page, perPage int) (models.RegionPage, error) {
	return m.listFunc(ctx, page, perPage)
}

func (m *mockRegionService) Update(ctx context.Context, id int64, update models.RegionUpdate) error {
	return m.updateFunc(ctx, id, update)
}

func (m *mockRegionService) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

type mockAnimalService struct {
	createFunc func(ctx context.Context, req models.AnimalCreate) (models.Animal, error)
	updateFunc func(ctx context.Context, id int64, update models.AnimalUpdate) error
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockAnimalService) Create(ctx context.Context, req models.AnimalCreate) (models.Animal, error) {
	return m.createFunc(ctx, req)
}

func (m *mockAnimalService) Update(ctx context.Context, id int64, update models.AnimalUpdate) error {
	return m.updateFunc(ctx, id, update)
}

func (m *mockAnimalService) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

// grantAccess configures the auth mock so that any bearer token resolves to a
// user with the given role. Tests exercising the admin gate use this instead
// of issuing real JWTs.
func (m *mockAuthService) grantAccess(userID int64, role string) {
	m.parseTokenFunc = func(ctx context.Context, tokenString string) (models.Token, error) {
		return models.Token{UserID: userID}, nil
	}
	m.userByIDFunc = func(ctx context.Context, id int64) (models.User, error) {
		return models.User{ID: id, Username: "someone", Email: "someone@example.com", Role: role}, nil
	}
}

// newTestRouter builds the full chi router around mocked services and the
// given catalog snapshot.
func newTestRouter(t *testing.T, services *service.Services, snapshot *catalog.Snapshot) http.Handler {
	t.Helper()

	cat := catalog.NewCatalog()
	cat.Replace(snapshot)

	h := NewHandler(services, cat, t.TempDir(), logger.Nop())
	return h.Init()
}

// doRequest performs a request against the router and decodes the JSON
// response body into a generic map.
func doRequest(t *testing.T, router http.Handler, method, target, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))

	return rec.Code, decoded
}
