package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/testutil"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/endpoints"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
)

const testBaseURL = "http://localhost:8080"

func seedApprovedSubscription(t *testing.T, repo *testutil.MockSubscriptionRepository) *subscription.Subscription {
	t.Helper()
	sub := seedDraftSubscription(t, repo)
	require.NoError(t, sub.SubmitForApproval())
	require.NoError(t, sub.Approve())
	require.NoError(t, repo.Update(context.Background(), sub))
	return sub
}

func TestBeginProvisioningUseCase_Execute_Success(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	sub := seedApprovedSubscription(t, repo)
	uc := NewBeginProvisioningUseCase(repo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), BeginProvisioningCommand{SubscriptionSID: sub.SID()})

	require.NoError(t, err)
	assert.Equal(t, "provisioning", result.Status)
}

func TestBeginProvisioningUseCase_Execute_NotApproved(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	sub := seedDraftSubscription(t, repo)
	uc := NewBeginProvisioningUseCase(repo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), BeginProvisioningCommand{SubscriptionSID: sub.SID()})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsGuardViolationError(err))
}

func TestCompleteProvisioningUseCase_Execute_Success(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	sub := seedApprovedSubscription(t, repo)
	require.NoError(t, sub.BeginProvisioning())
	require.NoError(t, repo.Update(context.Background(), sub))

	uc := NewCompleteProvisioningUseCase(repo, endpoints.NewBuilder(testBaseURL), testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), CompleteProvisioningCommand{SubscriptionSID: sub.SID()})

	require.NoError(t, err)
	assert.Equal(t, "ready", result.Status)
	require.NotNil(t, result.Endpoints)
	assert.Equal(t, testBaseURL+"/onboarding/status?id="+sub.SID(), result.Endpoints.DashboardURL)
	assert.Equal(t, testBaseURL+"/api/env/"+sub.EnvName(), result.Endpoints.APIEndpoint)
	assert.NotNil(t, result.InitialSetupShownAt)
	assert.Equal(t, "green", result.StatusHealth)
	assert.Equal(t, "green", result.APIHealth)
}

func TestCompleteProvisioningUseCase_Execute_NotProvisioning(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	sub := seedApprovedSubscription(t, repo)
	uc := NewCompleteProvisioningUseCase(repo, endpoints.NewBuilder(testBaseURL), testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), CompleteProvisioningCommand{SubscriptionSID: sub.SID()})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsGuardViolationError(err))
}
