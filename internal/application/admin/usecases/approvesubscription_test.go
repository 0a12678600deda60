package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/testutil"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/company"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
)

type adminTestEnv struct {
	companyRepo      *testutil.MockCompanyRepository
	subscriptionRepo *testutil.MockSubscriptionRepository
	actionRepo       *testutil.MockAdminActionRepository
	company          *company.Company
	subscription     *subscription.Subscription
}

// newAdminTestEnv seeds a company with a pending_approval subscription.
func newAdminTestEnv(t *testing.T) *adminTestEnv {
	t.Helper()

	owner, err := company.NewCompany(
		"co_testowner01",
		"PT Maju Jaya",
		"1234567890",
		"Jl. Sudirman No. 1, Jakarta",
		"billing@majujaya.co.id",
		"tech@majujaya.co.id",
	)
	require.NoError(t, err)

	sub, err := subscription.NewSubscription("sub_testpend001", owner.SID(), "env-alpha")
	require.NoError(t, err)
	require.NoError(t, sub.SubmitForApproval())

	env := &adminTestEnv{
		companyRepo:      testutil.NewMockCompanyRepository(),
		subscriptionRepo: testutil.NewMockSubscriptionRepository(),
		actionRepo:       testutil.NewMockAdminActionRepository(),
		company:          owner,
		subscription:     sub,
	}
	require.NoError(t, env.companyRepo.Create(context.Background(), owner))
	require.NoError(t, env.subscriptionRepo.Create(context.Background(), sub))
	return env
}

func TestApproveSubscriptionUseCase_Execute_Approve(t *testing.T) {
	env := newAdminTestEnv(t)
	uc := NewApproveSubscriptionUseCase(env.subscriptionRepo, env.companyRepo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), ApproveSubscriptionCommand{
		SubscriptionSID: env.subscription.SID(),
		Approved:        true,
	})

	require.NoError(t, err)
	assert.Equal(t, "approved", result.Status)

	owner, err := env.companyRepo.GetBySID(context.Background(), env.company.SID())
	require.NoError(t, err)
	assert.Equal(t, "approved", owner.VerificationStatus().String())
}

func TestApproveSubscriptionUseCase_Execute_Reject(t *testing.T) {
	env := newAdminTestEnv(t)
	uc := NewApproveSubscriptionUseCase(env.subscriptionRepo, env.companyRepo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), ApproveSubscriptionCommand{
		SubscriptionSID: env.subscription.SID(),
		Approved:        false,
	})

	require.NoError(t, err)
	assert.Equal(t, "rejected", result.Status)

	// Rejection leaves the company unverified.
	owner, err := env.companyRepo.GetBySID(context.Background(), env.company.SID())
	require.NoError(t, err)
	assert.Equal(t, "pending", owner.VerificationStatus().String())
}

func TestApproveSubscriptionUseCase_Execute_NotPending(t *testing.T) {
	env := newAdminTestEnv(t)
	require.NoError(t, env.subscription.Approve())
	require.NoError(t, env.subscriptionRepo.Update(context.Background(), env.subscription))

	uc := NewApproveSubscriptionUseCase(env.subscriptionRepo, env.companyRepo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), ApproveSubscriptionCommand{
		SubscriptionSID: env.subscription.SID(),
		Approved:        true,
	})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsGuardViolationError(err))
}

func TestApproveSubscriptionUseCase_Execute_NotFound(t *testing.T) {
	env := newAdminTestEnv(t)
	uc := NewApproveSubscriptionUseCase(env.subscriptionRepo, env.companyRepo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), ApproveSubscriptionCommand{
		SubscriptionSID: "sub_missing00001",
		Approved:        true,
	})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
