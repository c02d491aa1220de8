package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"carelog-http-service/config"
	"carelog-http-service/models"
	"carelog-http-service/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) (services.InterfaceJWTService, services.InterfaceSessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecretKey: "test-secret", SessionTTLDays: 30}
	jwtSvc := services.NewJWTService(cfg)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionSvc := services.NewSessionService(client, cfg)

	InitAuthMiddleware(jwtSvc, sessionSvc)
	return jwtSvc, sessionSvc
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthenticateStaff(), func(c *gin.Context) {
		info, _ := GetSessionInfo(c)
		c.JSON(http.StatusOK, gin.H{"name": info.StaffName, "role": info.Role})
	})
	r.GET("/admin", AuthenticateStaff(), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthenticateStaffWithJWT(t *testing.T) {
	jwtSvc, _ := setupAuthTest(t)
	r := newAuthRouter()

	token, err := jwtSvc.GenerateToken(1, "佐藤", models.RoleCaregiver)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "佐藤")
}

func TestAuthenticateStaffWithSessionCookie(t *testing.T) {
	_, sessionSvc := setupAuthTest(t)
	r := newAuthRouter()

	sessionID, err := sessionSvc.Create(context.Background(), services.SessionData{
		StaffID:   2,
		StaffName: "山田",
		Role:      models.RoleAdmin,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateStaffRejectsAnonymous(t *testing.T) {
	setupAuthTest(t)
	r := newAuthRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 过期或伪造的cookie同样拒绝
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminRejectsCaregiver(t *testing.T) {
	jwtSvc, _ := setupAuthTest(t)
	r := newAuthRouter()

	token, err := jwtSvc.GenerateToken(3, "佐藤", models.RoleCaregiver)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
