package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund-backoffice/pkg/jwt"
)

func newRouter(tokens *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery(), CORS([]string{"https://admin.fund.io"}))

	authed := r.Group("", AuthMiddleware(tokens))
	authed.GET("/me", func(c *gin.Context) {
		userID, err := GetUserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID.String())
	})
	authed.GET("/admin", AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	r := newRouter(tokens)
	userID := uuid.New()

	token, err := tokens.GenerateAccessToken(userID, "maker@fund.io", jwt.RoleCreator)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := get(r, "/me", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID.String(), w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := get(r, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("foreign secret", func(t *testing.T) {
		other, err := jwt.NewManager("other-secret", time.Hour).GenerateAccessToken(userID, "", jwt.RoleAdmin)
		require.NoError(t, err)

		w := get(r, "/me", other)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	r := newRouter(tokens)

	creator, err := tokens.GenerateAccessToken(uuid.New(), "", jwt.RoleCreator)
	require.NoError(t, err)
	admin, err := tokens.GenerateAccessToken(uuid.New(), "", jwt.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", creator).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", admin).Code)
}

func TestRequestID(t *testing.T) {
	r := newRouter(jwt.NewManager("test-secret", time.Hour))

	w := get(r, "/me", "")
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	r := newRouter(jwt.NewManager("test-secret", time.Hour))

	w := get(r, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORS(t *testing.T) {
	r := newRouter(jwt.NewManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodOptions, "/me", nil)
	req.Header.Set("Origin", "https://admin.fund.io")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://admin.fund.io", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetUserID_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserID(c)

	assert.ErrorIs(t, err, ErrNoUser)
}
