package resputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/orbit/pkg/apierr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(handler func(c *gin.Context)) (*httptest.ResponseRecorder, Response[json.RawMessage]) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	handler(c)

	var resp Response[json.RawMessage]
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func TestSuccess(t *testing.T) {
	w, resp := record(func(c *gin.Context) {
		Success(c, gin.H{"name": "orbit"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, OK, resp.Code)
	assert.Empty(t, resp.Msg)
	assert.JSONEq(t, `{"name":"orbit"}`, string(resp.Data))
}

func TestCreated(t *testing.T) {
	w, resp := record(func(c *gin.Context) {
		Created(c, gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, OK, resp.Code)
}

func TestNoContent(t *testing.T) {
	w, _ := record(NoContent)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestBadRequestError(t *testing.T) {
	w, resp := record(func(c *gin.Context) {
		BadRequestError(c, "missing field")
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, InvalidRequest, resp.Code)
	assert.Equal(t, "missing field", resp.Msg)
}

func TestWrapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		httpCode int
		code     ErrorCode
	}{
		{"invalid", apierr.Invalid("bad"), http.StatusBadRequest, InvalidRequest},
		{"unauthenticated", apierr.Unauthenticated("no token"), http.StatusUnauthorized, TokenInvalid},
		{"forbidden", apierr.Forbidden("denied"), http.StatusForbidden, UserNotAllowed},
		{"not found", apierr.NotFound("gone"), http.StatusNotFound, ResourceNotFound},
		{"conflict", apierr.Conflict("dup"), http.StatusConflict, ResourceConflict},
		{"internal", apierr.Internal("boom"), http.StatusInternalServerError, ServiceError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := record(func(c *gin.Context) {
				WrapServiceError(c, tt.err)
			})

			require.Equal(t, tt.httpCode, w.Code)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.err.Error(), resp.Msg)
		})
	}
}
