package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stagelink/middleware"
	"stagelink/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/secure")
	group.Use(middleware.JWTAuthMiddleware())
	if len(roles) > 0 {
		group.Use(middleware.RequireRole(roles...))
	}
	group.GET("", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	token, err := utils.GenerateToken("hotel-42", "hotel", time.Minute)
	require.NoError(t, err)

	rec := doGet(protectedRouter(), token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hotel-42")
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec := doGet(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_GarbageToken(t *testing.T) {
	rec := doGet(protectedRouter(), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken("hotel-42", "hotel", -time.Minute)
	require.NoError(t, err)

	rec := doGet(protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	token, err := utils.GenerateToken("booking-service", "service", time.Minute)
	require.NoError(t, err)

	rec := doGet(protectedRouter("service", "admin"), token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_RejectsOtherRoles(t *testing.T) {
	token, err := utils.GenerateToken("hotel-42", "hotel", time.Minute)
	require.NoError(t, err)

	rec := doGet(protectedRouter("service", "admin"), token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
