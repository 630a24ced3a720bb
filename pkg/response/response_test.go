package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("request_id", "req-1")
	return c, w
}

func TestError(t *testing.T) {
	c, w := newContext()
	Error(c, 0, "bad", map[string]string{"username": "is required"})

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(400), body["status"])
	assert.Equal(t, "req-1", body["request_id"])
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "bad", body["message"])
	assert.Equal(t, map[string]any{"username": "is required"}, body["error"])
	assert.NotContains(t, body, "loggedOut")
}

func TestUnauthorized(t *testing.T) {
	c, w := newContext()
	Unauthorized(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["loggedOut"])
}

func TestJSON_DefaultsTo200(t *testing.T) {
	c, w := newContext()
	JSON(c, 0, []string{"a"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["a"]`, w.Body.String())
}
