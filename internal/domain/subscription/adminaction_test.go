package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
)

func TestNewAdminAction(t *testing.T) {
	action, err := NewAdminAction("act_test123", "sub_test123", vo.ActionBackup)
	require.NoError(t, err)

	assert.Equal(t, vo.ActionStatusPending, action.Status())
	assert.Equal(t, vo.ActionBackup, action.Kind())
	assert.False(t, action.RequestedAt().IsZero())
	assert.Nil(t, action.CompletedAt())
}

func TestNewAdminAction_InvalidKind(t *testing.T) {
	_, err := NewAdminAction("act_x", "sub_x", "reboot")
	assert.ErrorIs(t, err, ErrInvalidActionKind)
}

func TestAdminAction_Complete(t *testing.T) {
	action, err := NewAdminAction("act_test123", "sub_test123", vo.ActionPause)
	require.NoError(t, err)

	details := map[string]interface{}{"description": "Scale node group to 0"}
	require.NoError(t, action.Complete(details))

	assert.Equal(t, vo.ActionStatusCompleted, action.Status())
	require.NotNil(t, action.CompletedAt())
	assert.Equal(t, details, action.Details())

	// completed records are immutable
	assert.ErrorIs(t, action.Complete(nil), ErrActionFinalized)
	assert.ErrorIs(t, action.Fail(nil), ErrActionFinalized)
}

func TestAdminAction_Fail(t *testing.T) {
	action, err := NewAdminAction("act_test123", "sub_test123", vo.ActionDestroy)
	require.NoError(t, err)

	require.NoError(t, action.Fail(map[string]interface{}{"reason": "confirmation mismatch"}))
	assert.Equal(t, vo.ActionStatusFailed, action.Status())
	assert.NotNil(t, action.CompletedAt())
}

func TestReconstructAdminAction(t *testing.T) {
	completedAt := time.Now()
	action, err := ReconstructAdminAction("act_abc", "sub_abc", vo.ActionBackup, vo.ActionStatusCompleted,
		completedAt.Add(-time.Minute), &completedAt, map[string]interface{}{"backup_id": "backup-123"})
	require.NoError(t, err)

	assert.Equal(t, vo.ActionStatusCompleted, action.Status())
	assert.Equal(t, "backup-123", action.Details()["backup_id"])
}
