package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectIDFromParam extracts the project ID from a path parameter.
func ProjectIDFromParam(name string) ResourceIDExtractor {
	return func(c *gin.Context) (uuid.UUID, bool) {
		id, err := uuid.Parse(c.Param(name))
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	}
}

// ProjectIDFromQuery extracts the project ID from a query parameter.
func ProjectIDFromQuery(name string) ResourceIDExtractor {
	return func(c *gin.Context) (uuid.UUID, bool) {
		id, err := uuid.Parse(c.Query(name))
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	}
}

// ProjectIDFromBody extracts the project ID from a JSON body field.
//
// The body is read through ShouldBindBodyWithJSON, which buffers it on the
// gin context, so the handler behind this extractor must also read the body
// with ShouldBindBodyWithJSON or the second read will see nothing.
func ProjectIDFromBody(field string) ResourceIDExtractor {
	return func(c *gin.Context) (uuid.UUID, bool) {
		var body map[string]any
		if err := c.ShouldBindBodyWithJSON(&body); err != nil {
			return uuid.Nil, false
		}
		raw, ok := body[field].(string)
		if !ok {
			return uuid.Nil, false
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	}
}
