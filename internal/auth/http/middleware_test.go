package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/collabhub/collabhub/internal/auth/domain"
)

// mockTokenService is a mock implementation of TokenService for testing.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) Verify(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// mockGrantRepository is a mock implementation of GrantRepository for testing.
type mockGrantRepository struct {
	mock.Mock
}

func (m *mockGrantRepository) GlobalPermissions(
	ctx context.Context,
	userID uuid.UUID,
) ([]authDomain.PermissionKey, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]authDomain.PermissionKey), args.Error(1)
}

func (m *mockGrantRepository) ProjectPermissions(
	ctx context.Context,
	userID uuid.UUID,
	projectID uuid.UUID,
) ([]authDomain.ProjectPermissionKey, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]authDomain.ProjectPermissionKey), args.Error(1)
}

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// createTestLogger creates a test logger that discards output.
func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthenticationMiddleware_Success(t *testing.T) {
	mockTokenSvc := &mockTokenService{}
	logger := createTestLogger()

	userID := uuid.Must(uuid.NewV7())
	mockTokenSvc.On("Verify", "valid-token").Return(userID, nil).Once()

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockTokenSvc, logger))
	router.GET("/api/v1/projects", func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		require.True(t, ok, "identity should be in context")
		require.NotNil(t, identity)
		assert.Equal(t, userID, identity.UserID)

		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockTokenSvc.AssertExpectations(t)
}

func TestAuthenticationMiddleware_MissingHeader(t *testing.T) {
	mockTokenSvc := &mockTokenService{}
	logger := createTestLogger()

	handlerInvoked := false
	router := gin.New()
	router.Use(AuthenticationMiddleware(mockTokenSvc, logger))
	router.GET("/api/v1/projects", func(c *gin.Context) {
		handlerInvoked = true
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerInvoked, "handler must not run without credentials")
	mockTokenSvc.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestAuthenticationMiddleware_MalformedHeader(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{"NoBearerPrefix", "Basic dXNlcjpwYXNz"},
		{"MissingToken", "Bearer "},
		{"OnlyScheme", "Bearer"},
		{"GarbageHeader", "not a credential"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTokenSvc := &mockTokenService{}
			logger := createTestLogger()

			handlerInvoked := false
			router := gin.New()
			router.Use(AuthenticationMiddleware(mockTokenSvc, logger))
			router.GET("/api/v1/projects", func(c *gin.Context) {
				handlerInvoked = true
				c.JSON(http.StatusOK, gin.H{"message": "success"})
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
			req.Header.Set("Authorization", tc.header)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, handlerInvoked, "handler must not run with malformed credentials")
		})
	}
}

func TestAuthenticationMiddleware_InvalidToken(t *testing.T) {
	mockTokenSvc := &mockTokenService{}
	logger := createTestLogger()

	mockTokenSvc.On("Verify", "expired-token").
		Return(uuid.Nil, authDomain.ErrInvalidToken).Once()

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockTokenSvc, logger))
	router.GET("/api/v1/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockTokenSvc.AssertExpectations(t)
}

func TestAuthenticationMiddleware_CaseInsensitiveBearer(t *testing.T) {
	mockTokenSvc := &mockTokenService{}
	logger := createTestLogger()

	userID := uuid.Must(uuid.NewV7())
	mockTokenSvc.On("Verify", "valid-token").Return(userID, nil).Once()

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockTokenSvc, logger))
	router.GET("/api/v1/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set("Authorization", "bEaReR valid-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockTokenSvc.AssertExpectations(t)
}

func TestAuthenticationMiddleware_PublicRouteBypass(t *testing.T) {
	mockTokenSvc := &mockTokenService{}
	logger := createTestLogger()

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockTokenSvc, logger))
	router.POST("/api/v1/auth/sign-in", func(c *gin.Context) {
		// No identity is attached on public routes
		_, ok := GetIdentity(c.Request.Context())
		assert.False(t, ok, "public route must not carry an identity")

		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	// A garbage Authorization header must not matter on a public route
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", nil)
	req.Header.Set("Authorization", "Bearer complete-garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockTokenSvc.AssertNotCalled(t, "Verify", mock.Anything)
}
