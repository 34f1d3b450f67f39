package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	contributorDomain "github.com/collabhub/collabhub/internal/contributor/domain"
)

// mockContributorUseCase is a mock implementation of ContributorUseCase for testing.
type mockContributorUseCase struct {
	mock.Mock
}

func (m *mockContributorUseCase) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*contributorDomain.Contributor, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contributorDomain.Contributor), args.Error(1)
}

func (m *mockContributorUseCase) Rename(
	ctx context.Context,
	contributorID uuid.UUID,
	name string,
) (*contributorDomain.Contributor, error) {
	args := m.Called(ctx, contributorID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contributorDomain.Contributor), args.Error(1)
}

func (m *mockContributorUseCase) GetOrCreateByName(
	ctx context.Context,
	projectID uuid.UUID,
	name string,
) (*contributorDomain.Contributor, error) {
	args := m.Called(ctx, projectID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contributorDomain.Contributor), args.Error(1)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestContributorHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUC := &mockContributorUseCase{}
		handler := NewContributorHandler(mockUC, createTestLogger())

		projectID := uuid.Must(uuid.NewV7())
		contributors := []*contributorDomain.Contributor{
			{ID: uuid.Must(uuid.NewV7()), ProjectID: projectID, Name: "alice", CreatedAt: time.Now().UTC()},
			{ID: uuid.Must(uuid.NewV7()), ProjectID: projectID, Name: "bob", CreatedAt: time.Now().UTC()},
		}
		mockUC.On("ListByProject", mock.Anything, projectID).Return(contributors, nil).Once()

		router := gin.New()
		router.GET("/api/v1/contributors", handler.ListHandler)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/contributors?project_id="+projectID.String(), nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response["data"], 2)
		mockUC.AssertExpectations(t)
	})

	t.Run("Error_MissingProjectID", func(t *testing.T) {
		mockUC := &mockContributorUseCase{}
		handler := NewContributorHandler(mockUC, createTestLogger())

		router := gin.New()
		router.GET("/api/v1/contributors", handler.ListHandler)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/contributors", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUC.AssertNotCalled(t, "ListByProject", mock.Anything, mock.Anything)
	})
}

func TestContributorHandler_Rename(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUC := &mockContributorUseCase{}
		handler := NewContributorHandler(mockUC, createTestLogger())

		contributorID := uuid.Must(uuid.NewV7())
		renamed := &contributorDomain.Contributor{
			ID:        contributorID,
			ProjectID: uuid.Must(uuid.NewV7()),
			Name:      "alice-renamed",
			CreatedAt: time.Now().UTC(),
		}
		mockUC.On("Rename", mock.Anything, contributorID, "alice-renamed").
			Return(renamed, nil).Once()

		router := gin.New()
		router.PUT("/api/v1/contributors/:id", handler.RenameHandler)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/contributors/"+contributorID.String(),
			strings.NewReader(`{"name":"alice-renamed"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "alice-renamed", response["name"])
		mockUC.AssertExpectations(t)
	})

	t.Run("Error_BlankName", func(t *testing.T) {
		mockUC := &mockContributorUseCase{}
		handler := NewContributorHandler(mockUC, createTestLogger())

		router := gin.New()
		router.PUT("/api/v1/contributors/:id", handler.RenameHandler)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut,
			"/api/v1/contributors/"+uuid.Must(uuid.NewV7()).String(),
			strings.NewReader(`{"name":"  "}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUC.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_NameUsed", func(t *testing.T) {
		mockUC := &mockContributorUseCase{}
		handler := NewContributorHandler(mockUC, createTestLogger())

		contributorID := uuid.Must(uuid.NewV7())
		mockUC.On("Rename", mock.Anything, contributorID, "taken").
			Return(nil, contributorDomain.ErrContributorNameUsed).Once()

		router := gin.New()
		router.PUT("/api/v1/contributors/:id", handler.RenameHandler)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/contributors/"+contributorID.String(),
			strings.NewReader(`{"name":"taken"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockUC.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		mockUC := &mockContributorUseCase{}
		handler := NewContributorHandler(mockUC, createTestLogger())

		contributorID := uuid.Must(uuid.NewV7())
		mockUC.On("Rename", mock.Anything, contributorID, "ghost").
			Return(nil, contributorDomain.ErrContributorNotFound).Once()

		router := gin.New()
		router.PUT("/api/v1/contributors/:id", handler.RenameHandler)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/contributors/"+contributorID.String(),
			strings.NewReader(`{"name":"ghost"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockUC.AssertExpectations(t)
	})
}
