package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateForProfile_Deterministic(t *testing.T) {
	estimator, err := NewEstimator()
	require.NoError(t, err)

	first, err := estimator.EstimateForProfile("P2")
	require.NoError(t, err)
	second, err := estimator.EstimateForProfile("P2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEstimateForProfile_AllProfiles(t *testing.T) {
	estimator, err := NewEstimator()
	require.NoError(t, err)

	for _, profileID := range []string{"P0", "P1", "P2", "P3", "P4"} {
		result, err := estimator.EstimateForProfile(profileID)
		require.NoError(t, err, "profile %s", profileID)

		assert.Greater(t, result.TotalLowUSD, 0.0)
		assert.GreaterOrEqual(t, result.TotalHighUSD, result.TotalLowUSD)
		assert.Equal(t, result.FixedMonthlyUSD, result.TotalLowUSD)
		assert.NotEmpty(t, result.Drivers)
	}
}

func TestEstimateForProfile_Unknown(t *testing.T) {
	estimator, err := NewEstimator()
	require.NoError(t, err)

	_, err = estimator.EstimateForProfile("P9")
	assert.Error(t, err)
}

func TestEstimate_OptionalDrivers(t *testing.T) {
	estimator, err := NewEstimator()
	require.NoError(t, err)

	withoutAddOns := estimator.Estimate(EstimateInput{
		NodeInstanceType:  "t3a.medium",
		NodeCount:         1,
		DiskSizeGBPerNode: 50,
	})
	assert.Len(t, withoutAddOns.Drivers, 3)
	assert.Equal(t, 0.0, withoutAddOns.VariableMonthlyUSD)
	assert.Equal(t, withoutAddOns.TotalLowUSD, withoutAddOns.TotalHighUSD)

	withAddOns := estimator.Estimate(EstimateInput{
		NodeInstanceType:  "t3a.large",
		NodeCount:         2,
		DiskSizeGBPerNode: 100,
		NATEnabled:        true,
		ALBEnabled:        true,
		EFSEnabled:        true,
		EFSSizeGB:         50,
	})
	assert.Len(t, withAddOns.Drivers, 6)
	assert.Equal(t, 35.0, withAddOns.VariableMonthlyUSD)
}

func TestEstimate_UnknownInstanceTypeFallsBack(t *testing.T) {
	estimator, err := NewEstimator()
	require.NoError(t, err)

	known := estimator.Estimate(EstimateInput{
		NodeInstanceType:  "t3a.medium",
		NodeCount:         1,
		DiskSizeGBPerNode: 50,
	})
	unknown := estimator.Estimate(EstimateInput{
		NodeInstanceType:  "z9.mega",
		NodeCount:         1,
		DiskSizeGBPerNode: 50,
	})

	assert.Equal(t, known.TotalHighUSD, unknown.TotalHighUSD)
}

func TestEstimate_CapExceeded(t *testing.T) {
	estimator, err := NewEstimator()
	require.NoError(t, err)

	result := estimator.Estimate(EstimateInput{
		NodeInstanceType:  "t3a.xlarge",
		NodeCount:         12,
		DiskSizeGBPerNode: 500,
		NATEnabled:        true,
		ALBEnabled:        true,
	})

	assert.False(t, result.UnderCap)
	assert.Contains(t, result.CapReason, "exceeds $1000 monthly cap")
}

func TestEstimate_CapBoundaryIsInclusive(t *testing.T) {
	estimator, err := NewEstimator()
	require.NoError(t, err)

	result, err := estimator.EstimateForProfile("P4")
	require.NoError(t, err)

	// largest stock profile still fits under the trial cap
	assert.True(t, result.UnderCap)
	assert.Empty(t, result.CapReason)
	assert.LessOrEqual(t, result.TotalHighUSD, 1000.0)
}
