package onboarding

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/testutil"
	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/usecases"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/endpoints"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/pricing"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/terraform"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	nop := testutil.NewNopLogger()
	companyRepo := testutil.NewMockCompanyRepository()
	subscriptionRepo := testutil.NewMockSubscriptionRepository()
	termsRepo := testutil.NewMockTermsAcceptanceRepository()

	planGen, err := terraform.NewPlanGenerator()
	require.NoError(t, err)
	estimator, err := pricing.NewEstimator()
	require.NoError(t, err)

	handler := NewOnboardingHandler(
		usecases.NewStartOnboardingUseCase(companyRepo, subscriptionRepo, nop),
		usecases.NewSelectPackageUseCase(subscriptionRepo, nop),
		usecases.NewSelectInfraProfileUseCase(subscriptionRepo, nop),
		usecases.NewSelectAWSModeUseCase(subscriptionRepo, nop),
		usecases.NewGeneratePlanUseCase(subscriptionRepo, planGen, estimator, nop),
		usecases.NewSubmitForApprovalUseCase(subscriptionRepo, termsRepo, nop),
		usecases.NewBeginProvisioningUseCase(subscriptionRepo, nop),
		usecases.NewCompleteProvisioningUseCase(subscriptionRepo, endpoints.NewBuilder("http://localhost:8080"), nop),
		usecases.NewGetSubscriptionUseCase(subscriptionRepo, companyRepo, nop),
		nop,
	)

	engine := gin.New()
	engine.POST("/api/onboarding/start", handler.Start)
	engine.POST("/api/onboarding/:id/package", handler.SelectPackage)
	engine.POST("/api/onboarding/:id/generate-plan", handler.GeneratePlan)
	engine.POST("/api/onboarding/:id/submit", handler.SubmitForApproval)
	engine.GET("/api/subscriptions/:id", handler.GetSubscription)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func startOnboarding(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/onboarding/start", gin.H{
		"legalName":          "PT Maju Jaya",
		"registrationNumber": "1234567890",
		"address":            "Jl. Sudirman No. 1, Jakarta",
		"billingContact":     "billing@majujaya.co.id",
		"technicalContact":   "tech@majujaya.co.id",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Subscription struct {
				ID string `json:"id"`
			} `json:"subscription"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data.Subscription.ID)
	return resp.Data.Subscription.ID
}

func TestOnboardingHandler_Start(t *testing.T) {
	engine := newTestEngine(t)
	sid := startOnboarding(t, engine)

	w := doJSON(t, engine, http.MethodGet, "/api/subscriptions/"+sid, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Subscription struct {
				Status       string `json:"status"`
				StatusHealth string `json:"statusHealth"`
			} `json:"subscription"`
			Company struct {
				LegalName string `json:"legalName"`
			} `json:"company"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "draft", resp.Data.Subscription.Status)
	assert.Equal(t, "amber", resp.Data.Subscription.StatusHealth)
	assert.Equal(t, "PT Maju Jaya", resp.Data.Company.LegalName)
}

func TestOnboardingHandler_Start_MissingFields(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/api/onboarding/start", gin.H{
		"legalName": "PT Maju Jaya",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOnboardingHandler_SelectPackage_GuardErrors(t *testing.T) {
	engine := newTestEngine(t)
	sid := startOnboarding(t, engine)

	w := doJSON(t, engine, http.MethodPost, "/api/onboarding/"+sid+"/package", gin.H{
		"packageId":      "platinum",
		"contractMonths": 6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/onboarding/unknown/package", gin.H{
		"packageId":      "growth",
		"contractMonths": 6,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOnboardingHandler_SubmitFlow(t *testing.T) {
	engine := newTestEngine(t)
	sid := startOnboarding(t, engine)

	w := doJSON(t, engine, http.MethodPost, "/api/onboarding/"+sid+"/generate-plan", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/onboarding/"+sid+"/submit", gin.H{"acceptTerms": true})
	require.Equal(t, http.StatusOK, w.Code)

	// A second submit conflicts with the pending_approval state.
	w = doJSON(t, engine, http.MethodPost, "/api/onboarding/"+sid+"/submit", gin.H{"acceptTerms": true})
	assert.Equal(t, http.StatusConflict, w.Code)
}
