package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/testutil"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
)

func TestSubmitForApprovalUseCase_Execute_Success(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	termsRepo := testutil.NewMockTermsAcceptanceRepository()
	sub := seedDraftSubscription(t, repo)
	uc := NewSubmitForApprovalUseCase(repo, termsRepo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), SubmitForApprovalCommand{
		SubscriptionSID: sub.SID(),
		AcceptTerms:     true,
		IPHash:          "a1b2c3",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending_approval", result.Status)

	acceptances, err := termsRepo.ListBySubscription(context.Background(), sub.SID())
	require.NoError(t, err)
	require.Len(t, acceptances, 1)
	assert.Equal(t, "2025-06-01", acceptances[0].TermsVersion())
}

func TestSubmitForApprovalUseCase_Execute_TermsNotAccepted(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	termsRepo := testutil.NewMockTermsAcceptanceRepository()
	sub := seedDraftSubscription(t, repo)
	uc := NewSubmitForApprovalUseCase(repo, termsRepo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), SubmitForApprovalCommand{
		SubscriptionSID: sub.SID(),
		AcceptTerms:     false,
	})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))

	acceptances, err := termsRepo.ListBySubscription(context.Background(), sub.SID())
	require.NoError(t, err)
	assert.Empty(t, acceptances)
}

func TestSubmitForApprovalUseCase_Execute_AlreadySubmitted(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	termsRepo := testutil.NewMockTermsAcceptanceRepository()
	sub := seedDraftSubscription(t, repo)
	uc := NewSubmitForApprovalUseCase(repo, termsRepo, testutil.NewNopLogger())

	_, err := uc.Execute(context.Background(), SubmitForApprovalCommand{
		SubscriptionSID: sub.SID(),
		AcceptTerms:     true,
	})
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), SubmitForApprovalCommand{
		SubscriptionSID: sub.SID(),
		AcceptTerms:     true,
	})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsGuardViolationError(err))

	// The failed resubmission must not add a second acceptance record.
	acceptances, err := termsRepo.ListBySubscription(context.Background(), sub.SID())
	require.NoError(t, err)
	assert.Len(t, acceptances, 1)
}
