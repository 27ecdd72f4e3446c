package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/services"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type memoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (d *memoryDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[jti] = true
	return nil
}

func (d *memoryDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.revoked[jti], nil
}

func setupHandler() (*gin.Engine, *MockUserRepository, *services.TokenService) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockUserRepository)
	tokens := services.NewTokenService("handler-secret", "fitjournal-test", time.Hour, mockRepo, &memoryDenylist{revoked: map[string]bool{}})
	authService := services.NewAuthService(mockRepo, tokens)
	authHandler := NewAuthHandler(authService, tokens)

	router := gin.New()
	authHandler.RegisterRoutes(router.Group(""))

	return router, mockRepo, tokens
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success: Should return 201 and created user (No Password)", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()

		payload := map[string]string{
			"email":    "api_test@fitjournal.app",
			"password": "CorrectHorseBattery1!",
		}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		w := postJSON(router, "/auth/register", payload)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response userResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, payload["email"], response.Email)
		assert.NotEmpty(t, response.ID)
		assert.NotContains(t, w.Body.String(), "password")

		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail: Should return 400 for Bad JSON (Invalid Email)", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()

		w := postJSON(router, "/auth/register", map[string]string{"email": "not-an-email", "password": "Password123!"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should return 400 for Bad JSON (Password too short)", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()

		w := postJSON(router, "/auth/register", map[string]string{"email": "valid@email.com", "password": "short"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should return 409 Conflict if email exists", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrEmailAlreadyExists)

		w := postJSON(router, "/auth/register", map[string]string{"email": "duplicate@fitjournal.app", "password": "PasswordValidissima!"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "email already exists")
	})

	t.Run("Fail: Should return 500 Internal Server Error on DB failure", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db connection lost"))

		w := postJSON(router, "/auth/register", map[string]string{"email": "crash@fitjournal.app", "password": "PasswordValidissima!"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal server error")
	})
}

func TestAuthHandler_LoginLogout(t *testing.T) {
	user, err := domain.NewUser("user-1", "runner@fitjournal.app")
	require.NoError(t, err)
	require.NoError(t, user.SetPassword("CorrectHorseBattery1!"))

	t.Run("Success: login, logout, token rejected afterwards", func(t *testing.T) {
		router, mockRepo, tokens := setupHandler()
		mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
		mockRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

		w := postJSON(router, "/auth/login", map[string]string{"email": user.Email, "password": "CorrectHorseBattery1!"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp tokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)

		req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+resp.Token)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)

		_, err := tokens.ValidateToken(resp.Token)
		assert.Error(t, err)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: wrong password is 401", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()
		mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		w := postJSON(router, "/auth/login", map[string]string{"email": user.Email, "password": "nope-nope-nope"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid credentials")
	})

	t.Run("Fail: unknown email is 401", func(t *testing.T) {
		router, mockRepo, _ := setupHandler()
		mockRepo.On("GetByEmail", mock.Anything, "ghost@fitjournal.app").Return(nil, domain.ErrUserNotFound)

		w := postJSON(router, "/auth/login", map[string]string{"email": "ghost@fitjournal.app", "password": "whatever123"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Fail: logout without token is 401", func(t *testing.T) {
		router, _, _ := setupHandler()

		w := postJSON(router, "/auth/logout", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
