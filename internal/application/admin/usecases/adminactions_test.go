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

// readyEnv advances the seeded subscription through approval and
// provisioning to ready.
func readyEnv(t *testing.T) *adminTestEnv {
	t.Helper()
	env := newAdminTestEnv(t)
	sub := env.subscription
	require.NoError(t, sub.Approve())
	require.NoError(t, sub.BeginProvisioning())
	require.NoError(t, sub.CompleteProvisioning(subscription.Endpoints{
		DashboardURL: "http://localhost:8080/onboarding/status?id=" + sub.SID(),
		APIEndpoint:  "http://localhost:8080/api/env/" + sub.EnvName(),
	}))
	require.NoError(t, env.subscriptionRepo.Update(context.Background(), sub))
	return env
}

func TestPauseSubscriptionUseCase_Execute_Toggle(t *testing.T) {
	env := readyEnv(t)
	uc := NewPauseSubscriptionUseCase(env.subscriptionRepo, env.actionRepo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), PauseSubscriptionCommand{SubscriptionSID: env.subscription.SID()})

	require.NoError(t, err)
	assert.True(t, result.Subscription.Paused)
	assert.Equal(t, "amber", result.Subscription.StatusHealth)
	assert.Equal(t, "pause", result.Action.Action)
	assert.Equal(t, "completed", result.Action.Status)
	require.NotNil(t, result.Action.CompletedAt)
	assert.Equal(t, true, result.Action.Details["paused"])

	result, err = uc.Execute(context.Background(), PauseSubscriptionCommand{SubscriptionSID: env.subscription.SID()})

	require.NoError(t, err)
	assert.False(t, result.Subscription.Paused)
	assert.Equal(t, "green", result.Subscription.StatusHealth)

	actions, err := env.actionRepo.List(context.Background(), subscription.AdminActionFilter{})
	require.NoError(t, err)
	assert.Len(t, actions, 2)
}

func TestPauseSubscriptionUseCase_Execute_RejectedBlocked(t *testing.T) {
	env := newAdminTestEnv(t)
	require.NoError(t, env.subscription.Reject())
	require.NoError(t, env.subscriptionRepo.Update(context.Background(), env.subscription))

	uc := NewPauseSubscriptionUseCase(env.subscriptionRepo, env.actionRepo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), PauseSubscriptionCommand{SubscriptionSID: env.subscription.SID()})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsGuardViolationError(err))

	// A blocked toggle writes no audit record.
	actions, listErr := env.actionRepo.List(context.Background(), subscription.AdminActionFilter{})
	require.NoError(t, listErr)
	assert.Empty(t, actions)
}

func TestBackupSubscriptionUseCase_Execute_Success(t *testing.T) {
	env := readyEnv(t)
	uc := NewBackupSubscriptionUseCase(env.subscriptionRepo, env.actionRepo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), BackupSubscriptionCommand{SubscriptionSID: env.subscription.SID()})

	require.NoError(t, err)
	require.NotNil(t, result.Subscription.LastBackup)
	assert.Contains(t, result.Subscription.LastBackup.Location, "s3://officeless-backups/"+env.subscription.EnvName()+"/")
	assert.Equal(t, "backup", result.Action.Action)
	assert.Equal(t, "completed", result.Action.Status)
	assert.Equal(t, 180, result.Action.Details["s3_lifecycle_expiration_days"])
}

func TestBackupSubscriptionUseCase_Execute_OverwritesLastBackup(t *testing.T) {
	env := readyEnv(t)
	uc := NewBackupSubscriptionUseCase(env.subscriptionRepo, env.actionRepo, testutil.NewNopLogger())

	first, err := uc.Execute(context.Background(), BackupSubscriptionCommand{SubscriptionSID: env.subscription.SID()})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), BackupSubscriptionCommand{SubscriptionSID: env.subscription.SID()})
	require.NoError(t, err)

	stored, err := env.subscriptionRepo.GetBySID(context.Background(), env.subscription.SID())
	require.NoError(t, err)
	require.NotNil(t, stored.LastBackup())
	assert.False(t, stored.LastBackup().CompletedAt.Before(first.Subscription.LastBackup.CompletedAt))
	assert.Equal(t, second.Subscription.LastBackup.Location, stored.LastBackup().Location)

	// Each run appends its own audit record even though the pointer on
	// the subscription only keeps the latest.
	actions, err := env.actionRepo.List(context.Background(), subscription.AdminActionFilter{})
	require.NoError(t, err)
	assert.Len(t, actions, 2)
}

func TestDestroySubscriptionUseCase_Execute_Success(t *testing.T) {
	env := readyEnv(t)
	uc := NewDestroySubscriptionUseCase(env.subscriptionRepo, env.companyRepo, env.actionRepo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), DestroySubscriptionCommand{
		SubscriptionSID:    env.subscription.SID(),
		ConfirmCompanyName: "PT Maju Jaya",
	})

	require.NoError(t, err)
	assert.True(t, result.Subscription.Destroyed)
	assert.Equal(t, "red", result.Subscription.StatusHealth)
	assert.Equal(t, "red", result.Subscription.APIHealth)
	assert.Equal(t, "destroy", result.Action.Action)
	assert.Equal(t, "completed", result.Action.Status)
	assert.Equal(t, "PT Maju Jaya", result.Action.Details["confirmCompanyName"])
}

func TestDestroySubscriptionUseCase_Execute_ConfirmationMismatch(t *testing.T) {
	tests := []struct {
		name    string
		confirm string
	}{
		{"wrong name", "PT Salah Nama"},
		{"case mismatch", "pt maju jaya"},
		{"trailing space", "PT Maju Jaya "},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := readyEnv(t)
			uc := NewDestroySubscriptionUseCase(env.subscriptionRepo, env.companyRepo, env.actionRepo, testutil.NewNopLogger())

			result, err := uc.Execute(context.Background(), DestroySubscriptionCommand{
				SubscriptionSID:    env.subscription.SID(),
				ConfirmCompanyName: tt.confirm,
			})

			assert.Nil(t, result)
			assert.True(t, apperrors.IsGuardViolationError(err))

			stored, getErr := env.subscriptionRepo.GetBySID(context.Background(), env.subscription.SID())
			require.NoError(t, getErr)
			assert.False(t, stored.Destroyed())

			actions, listErr := env.actionRepo.List(context.Background(), subscription.AdminActionFilter{})
			require.NoError(t, listErr)
			assert.Empty(t, actions)
		})
	}
}

func TestDestroySubscriptionUseCase_Execute_AlreadyDestroyed(t *testing.T) {
	env := readyEnv(t)
	uc := NewDestroySubscriptionUseCase(env.subscriptionRepo, env.companyRepo, env.actionRepo, testutil.NewNopLogger())

	_, err := uc.Execute(context.Background(), DestroySubscriptionCommand{
		SubscriptionSID:    env.subscription.SID(),
		ConfirmCompanyName: "PT Maju Jaya",
	})
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), DestroySubscriptionCommand{
		SubscriptionSID:    env.subscription.SID(),
		ConfirmCompanyName: "PT Maju Jaya",
	})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsGuardViolationError(err))
}

func TestListAdminActionsUseCase_Execute_Filters(t *testing.T) {
	env := readyEnv(t)
	pause := NewPauseSubscriptionUseCase(env.subscriptionRepo, env.actionRepo, testutil.NewNopLogger())
	backup := NewBackupSubscriptionUseCase(env.subscriptionRepo, env.actionRepo, testutil.NewNopLogger())
	list := NewListAdminActionsUseCase(env.actionRepo, testutil.NewNopLogger())

	_, err := pause.Execute(context.Background(), PauseSubscriptionCommand{SubscriptionSID: env.subscription.SID()})
	require.NoError(t, err)
	_, err = backup.Execute(context.Background(), BackupSubscriptionCommand{SubscriptionSID: env.subscription.SID()})
	require.NoError(t, err)

	all, err := list.Execute(context.Background(), ListAdminActionsCommand{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	backups, err := list.Execute(context.Background(), ListAdminActionsCommand{Kind: "backup"})
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, "backup", backups[0].Action)

	none, err := list.Execute(context.Background(), ListAdminActionsCommand{SubscriptionSID: "sub_other0000001"})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = list.Execute(context.Background(), ListAdminActionsCommand{Kind: "reboot"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestListSubscriptionsUseCase_Execute(t *testing.T) {
	env := newAdminTestEnv(t)
	other, err := subscription.NewSubscription("sub_testother01", env.company.SID(), "env-beta")
	require.NoError(t, err)
	require.NoError(t, env.subscriptionRepo.Create(context.Background(), other))

	uc := NewListSubscriptionsUseCase(env.subscriptionRepo, env.companyRepo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	// Most recently updated first, each entry carrying its owner.
	assert.False(t, result[0].Subscription.UpdatedAt.Before(result[1].Subscription.UpdatedAt))
	for _, entry := range result {
		require.NotNil(t, entry.Company)
		assert.Equal(t, env.company.LegalName(), entry.Company.LegalName)
	}
}
