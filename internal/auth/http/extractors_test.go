package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// runExtractor executes an extractor inside a real gin request.
func runExtractor(
	t *testing.T,
	extractor ResourceIDExtractor,
	register func(router *gin.Engine, handler gin.HandlerFunc),
	request *http.Request,
) (uuid.UUID, bool) {
	t.Helper()

	var gotID uuid.UUID
	var gotOK bool

	router := gin.New()
	register(router, func(c *gin.Context) {
		gotID, gotOK = extractor(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, request)

	return gotID, gotOK
}

func TestProjectIDFromParam(t *testing.T) {
	projectID := uuid.Must(uuid.NewV7())

	t.Run("ValidUUID", func(t *testing.T) {
		id, ok := runExtractor(t, ProjectIDFromParam("id"),
			func(router *gin.Engine, handler gin.HandlerFunc) {
				router.GET("/projects/:id", handler)
			},
			httptest.NewRequest(http.MethodGet, "/projects/"+projectID.String(), nil))

		assert.True(t, ok)
		assert.Equal(t, projectID, id)
	})

	t.Run("MalformedUUID", func(t *testing.T) {
		id, ok := runExtractor(t, ProjectIDFromParam("id"),
			func(router *gin.Engine, handler gin.HandlerFunc) {
				router.GET("/projects/:id", handler)
			},
			httptest.NewRequest(http.MethodGet, "/projects/not-a-uuid", nil))

		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, id)
	})
}

func TestProjectIDFromQuery(t *testing.T) {
	projectID := uuid.Must(uuid.NewV7())

	t.Run("ValidUUID", func(t *testing.T) {
		id, ok := runExtractor(t, ProjectIDFromQuery("project_id"),
			func(router *gin.Engine, handler gin.HandlerFunc) {
				router.GET("/contributors", handler)
			},
			httptest.NewRequest(http.MethodGet, "/contributors?project_id="+projectID.String(), nil))

		assert.True(t, ok)
		assert.Equal(t, projectID, id)
	})

	t.Run("MissingParameter", func(t *testing.T) {
		id, ok := runExtractor(t, ProjectIDFromQuery("project_id"),
			func(router *gin.Engine, handler gin.HandlerFunc) {
				router.GET("/contributors", handler)
			},
			httptest.NewRequest(http.MethodGet, "/contributors", nil))

		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, id)
	})
}

func TestProjectIDFromBody(t *testing.T) {
	projectID := uuid.Must(uuid.NewV7())

	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/project-groups", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	register := func(router *gin.Engine, handler gin.HandlerFunc) {
		router.POST("/project-groups", handler)
	}

	t.Run("ValidField", func(t *testing.T) {
		id, ok := runExtractor(t, ProjectIDFromBody("project_id"), register,
			newRequest(`{"project_id":"`+projectID.String()+`","name":"reviewers"}`))

		assert.True(t, ok)
		assert.Equal(t, projectID, id)
	})

	t.Run("MissingField", func(t *testing.T) {
		id, ok := runExtractor(t, ProjectIDFromBody("project_id"), register,
			newRequest(`{"name":"reviewers"}`))

		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		id, ok := runExtractor(t, ProjectIDFromBody("project_id"), register,
			newRequest(`{not json`))

		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("NonStringField", func(t *testing.T) {
		id, ok := runExtractor(t, ProjectIDFromBody("project_id"), register,
			newRequest(`{"project_id":42}`))

		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, id)
	})
}
