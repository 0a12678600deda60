package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/testutil"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
)

func seedDraftSubscription(t *testing.T, repo *testutil.MockSubscriptionRepository) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription("sub_testdraft01", "co_testowner01", "env-alpha")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), sub))
	return sub
}

func TestSelectPackageUseCase_Execute_Success(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	sub := seedDraftSubscription(t, repo)
	uc := NewSelectPackageUseCase(repo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), SelectPackageCommand{
		SubscriptionSID: sub.SID(),
		PackageID:       "growth",
		AddOns:          []string{"sso", "audit-log"},
		ContractMonths:  12,
	})

	require.NoError(t, err)
	assert.Equal(t, "growth", result.PackageID)
	assert.Equal(t, []string{"sso", "audit-log"}, result.AddOns)
	assert.Equal(t, 12, result.ContractMonths)
}

func TestSelectPackageUseCase_Execute_OverwritesPriorSelection(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	sub := seedDraftSubscription(t, repo)
	uc := NewSelectPackageUseCase(repo, testutil.NewNopLogger())

	_, err := uc.Execute(context.Background(), SelectPackageCommand{
		SubscriptionSID: sub.SID(),
		PackageID:       "starter",
		ContractMonths:  6,
	})
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), SelectPackageCommand{
		SubscriptionSID: sub.SID(),
		PackageID:       "pro",
		ContractMonths:  24,
	})

	require.NoError(t, err)
	assert.Equal(t, "pro", result.PackageID)
	assert.Equal(t, 24, result.ContractMonths)
}

func TestSelectPackageUseCase_Execute_Invalid(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	sub := seedDraftSubscription(t, repo)
	uc := NewSelectPackageUseCase(repo, testutil.NewNopLogger())

	tests := []struct {
		name string
		cmd  SelectPackageCommand
	}{
		{"unknown package", SelectPackageCommand{SubscriptionSID: sub.SID(), PackageID: "platinum", ContractMonths: 6}},
		{"contract too short", SelectPackageCommand{SubscriptionSID: sub.SID(), PackageID: "growth", ContractMonths: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tt.cmd)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestSelectPackageUseCase_Execute_NotFound(t *testing.T) {
	uc := NewSelectPackageUseCase(testutil.NewMockSubscriptionRepository(), testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), SelectPackageCommand{
		SubscriptionSID: "sub_missing00001",
		PackageID:       "growth",
		ContractMonths:  6,
	})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSelectInfraProfileUseCase_Execute(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	sub := seedDraftSubscription(t, repo)
	uc := NewSelectInfraProfileUseCase(repo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), SelectInfraProfileCommand{
		SubscriptionSID: sub.SID(),
		InfraProfileID:  "P2",
	})

	require.NoError(t, err)
	assert.Equal(t, "P2", result.InfraProfileID)

	_, err = uc.Execute(context.Background(), SelectInfraProfileCommand{
		SubscriptionSID: sub.SID(),
		InfraProfileID:  "P9",
	})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSelectAWSModeUseCase_Execute(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	sub := seedDraftSubscription(t, repo)
	uc := NewSelectAWSModeUseCase(repo, testutil.NewNopLogger())

	roleARN := "arn:aws:iam::111122223333:role/officeless-provisioner"
	accountID := "111122223333"
	region := "ap-southeast-1"

	result, err := uc.Execute(context.Background(), SelectAWSModeCommand{
		SubscriptionSID: sub.SID(),
		Mode:            "A",
		AWSRoleARN:      &roleARN,
		AWSAccountID:    &accountID,
		AWSRegion:       &region,
	})

	require.NoError(t, err)
	assert.Equal(t, "A", result.AWSMode)
	require.NotNil(t, result.AWSRoleARN)
	assert.Equal(t, roleARN, *result.AWSRoleARN)
	require.NotNil(t, result.AWSRegion)
	assert.Equal(t, "ap-southeast-1", *result.AWSRegion)
}

func TestSelectAWSModeUseCase_Execute_Invalid(t *testing.T) {
	repo := testutil.NewMockSubscriptionRepository()
	sub := seedDraftSubscription(t, repo)
	uc := NewSelectAWSModeUseCase(repo, testutil.NewNopLogger())

	badRegion := "mars-north-1"
	badAccountID := "not-twelve-digits"
	shortAccountID := "12345"
	badRoleARN := "definitely-not-an-arn"
	wrongService := "arn:aws:s3::111122223333:role/officeless-provisioner"
	tests := []struct {
		name string
		cmd  SelectAWSModeCommand
	}{
		{"unknown mode", SelectAWSModeCommand{SubscriptionSID: sub.SID(), Mode: "Z"}},
		{"unknown region", SelectAWSModeCommand{SubscriptionSID: sub.SID(), Mode: "C", AWSRegion: &badRegion}},
		{"non-numeric account id", SelectAWSModeCommand{SubscriptionSID: sub.SID(), Mode: "C", AWSAccountID: &badAccountID}},
		{"short account id", SelectAWSModeCommand{SubscriptionSID: sub.SID(), Mode: "A", AWSAccountID: &shortAccountID}},
		{"malformed role arn", SelectAWSModeCommand{SubscriptionSID: sub.SID(), Mode: "C", AWSRoleARN: &badRoleARN}},
		{"non-iam role arn", SelectAWSModeCommand{SubscriptionSID: sub.SID(), Mode: "C", AWSRoleARN: &wrongService}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tt.cmd)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}
