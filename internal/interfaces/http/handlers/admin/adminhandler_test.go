package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/admin/usecases"
	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/testutil"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/auth"
	"github.com/officeless-platform/officeless-self-service-portal/internal/interfaces/http/middleware"
	sharedConfig "github.com/officeless-platform/officeless-self-service-portal/internal/shared/config"
)

func newAdminTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	nop := testutil.NewNopLogger()
	companyRepo := testutil.NewMockCompanyRepository()
	subscriptionRepo := testutil.NewMockSubscriptionRepository()
	actionRepo := testutil.NewMockAdminActionRepository()

	passwordHash, err := auth.HashPassword("s3cret-admin")
	require.NoError(t, err)
	adminCfg := &sharedConfig.AdminConfig{
		Username:     "admin",
		PasswordHash: passwordHash,
		JWT: sharedConfig.JWTConfig{
			Secret:           "test-secret",
			AccessExpMinutes: 5,
		},
	}
	jwtService := auth.NewJWTService(&adminCfg.JWT)

	handler := NewAdminHandler(
		adminCfg,
		jwtService,
		usecases.NewApproveSubscriptionUseCase(subscriptionRepo, companyRepo, nop),
		usecases.NewPauseSubscriptionUseCase(subscriptionRepo, actionRepo, nop),
		usecases.NewBackupSubscriptionUseCase(subscriptionRepo, actionRepo, nop),
		usecases.NewDestroySubscriptionUseCase(subscriptionRepo, companyRepo, actionRepo, nop),
		usecases.NewListSubscriptionsUseCase(subscriptionRepo, companyRepo, nop),
		usecases.NewListAdminActionsUseCase(actionRepo, nop),
		nop,
	)

	authMiddleware := middleware.NewAdminAuthMiddleware(jwtService, nop)

	engine := gin.New()
	engine.POST("/api/admin/login", handler.Login)
	engine.GET("/api/admin/subscriptions", authMiddleware.RequireAdmin(), handler.ListSubscriptions)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAdminHandler_Login(t *testing.T) {
	engine := newAdminTestEngine(t)

	w := postJSON(t, engine, "/api/admin/login", gin.H{
		"username": "admin",
		"password": "s3cret-admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/subscriptions", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_Login_BadCredentials(t *testing.T) {
	engine := newAdminTestEngine(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"wrong password", gin.H{"username": "admin", "password": "nope"}},
		{"wrong username", gin.H{"username": "root", "password": "s3cret-admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, engine, "/api/admin/login", tt.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAdminHandler_ProtectedWithoutToken(t *testing.T) {
	engine := newAdminTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/subscriptions", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/subscriptions", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
