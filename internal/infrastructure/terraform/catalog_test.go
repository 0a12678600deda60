package terraform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePlan(t *testing.T) {
	generator, err := NewPlanGenerator()
	require.NoError(t, err)

	plan, err := generator.GeneratePlan("P1", "env-abc123")
	require.NoError(t, err)

	assert.Greater(t, plan.Summary.TotalResources, 0)
	assert.Len(t, plan.Resources, plan.Summary.TotalResources)

	total := 0
	for _, count := range plan.Summary.ByModule {
		total += count
	}
	assert.Equal(t, plan.Summary.TotalResources, total)

	assert.Equal(t, "officeless-env-abc123-cluster", plan.Summary.Outputs["cluster_name"])
	assert.Equal(t, "https://mock-env-abc123.eks.ap-southeast-1.amazonaws.com", plan.Summary.Outputs["cluster_endpoint"])

	overrides := plan.Summary.VariableOverrides
	assert.Equal(t, 2, overrides["eks_node_desired"])
	assert.Equal(t, true, overrides["nat_enabled"])
	assert.Equal(t, false, overrides["vpn_enabled"])
}

func TestGeneratePlan_Deterministic(t *testing.T) {
	generator, err := NewPlanGenerator()
	require.NoError(t, err)

	first, err := generator.GeneratePlan("P3", "env-same")
	require.NoError(t, err)
	second, err := generator.GeneratePlan("P3", "env-same")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGeneratePlan_SkipsVPNModule(t *testing.T) {
	generator, err := NewPlanGenerator()
	require.NoError(t, err)

	for _, profileID := range []string{"P0", "P1", "P2", "P3", "P4"} {
		plan, err := generator.GeneratePlan(profileID, "env-x")
		require.NoError(t, err)

		_, hasVPN := plan.Summary.ByModule["vpn_optional"]
		assert.False(t, hasVPN, "profile %s should not plan VPN resources", profileID)
	}
}

func TestGeneratePlan_UnknownProfile(t *testing.T) {
	generator, err := NewPlanGenerator()
	require.NoError(t, err)

	_, err = generator.GeneratePlan("P9", "env-x")
	assert.Error(t, err)
}
