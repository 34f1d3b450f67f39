package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apikeyDomain "github.com/collabhub/collabhub/internal/apikey/domain"
)

func TestAPIKeyAuthenticationMiddleware(t *testing.T) {
	t.Run("Success_StoresProjectInContext", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}
		projectID := uuid.Must(uuid.NewV7())

		mockUC.On("Authenticate", mock.Anything, "chk_valid").
			Return(&apikeyDomain.APIKey{
				ID:        uuid.Must(uuid.NewV7()),
				ProjectID: projectID,
				IsActive:  true,
			}, nil).Once()

		var gotProjectID uuid.UUID
		var found bool

		router := gin.New()
		router.Use(APIKeyAuthenticationMiddleware(mockUC, createTestLogger()))
		router.POST("/ingest", func(c *gin.Context) {
			gotProjectID, found = GetKeyProject(c.Request.Context())
			c.Status(http.StatusAccepted)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ingest", nil)
		req.Header.Set("X-API-Key", "chk_valid")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusAccepted, w.Code)
		assert.True(t, found)
		assert.Equal(t, projectID, gotProjectID)
		mockUC.AssertExpectations(t)
	})

	t.Run("Error_MissingHeader", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}

		router := gin.New()
		router.Use(APIKeyAuthenticationMiddleware(mockUC, createTestLogger()))
		router.POST("/ingest", func(c *gin.Context) {
			c.Status(http.StatusAccepted)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ingest", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUC.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("Error_UnknownKey", func(t *testing.T) {
		mockUC := &mockAPIKeyUseCase{}

		mockUC.On("Authenticate", mock.Anything, "chk_revoked").
			Return(nil, apikeyDomain.ErrAPIKeyInvalid).Once()

		router := gin.New()
		router.Use(APIKeyAuthenticationMiddleware(mockUC, createTestLogger()))
		router.POST("/ingest", func(c *gin.Context) {
			c.Status(http.StatusAccepted)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ingest", nil)
		req.Header.Set("X-API-Key", "chk_revoked")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUC.AssertExpectations(t)
	})
}

func TestGetKeyProject_Absent(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/ingest", nil)

	_, found := GetKeyProject(c.Request.Context())
	assert.False(t, found)
}
