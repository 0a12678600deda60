package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackages(t *testing.T) {
	pkgs := Packages()
	require.Len(t, pkgs, 7)

	assert.Equal(t, "student", pkgs[0].ID)
	assert.Equal(t, "enterprise", pkgs[6].ID)

	student, ok := PackageByID("student")
	require.True(t, ok)
	require.NotNil(t, student.MonthlyPriceIDR)
	assert.Equal(t, int64(0), *student.MonthlyPriceIDR)

	enterprise, ok := PackageByID("enterprise")
	require.True(t, ok)
	assert.Nil(t, enterprise.MonthlyPriceIDR)

	assert.False(t, IsValidPackageID("platinum"))
}

func TestInfraProfiles(t *testing.T) {
	profiles := InfraProfiles()
	require.Len(t, profiles, 5)

	for _, p := range profiles {
		spec, ok := InfraProfileSpecByID(p.ID)
		require.True(t, ok, "profile %s has no spec", p.ID)
		assert.NotEmpty(t, spec.InstanceTypes)
		assert.GreaterOrEqual(t, spec.DesiredNodes, spec.MinNodes)
		assert.LessOrEqual(t, spec.DesiredNodes, spec.MaxNodes)
	}

	p0, ok := InfraProfileSpecByID("P0")
	require.True(t, ok)
	assert.Equal(t, 1, p0.DesiredNodes)
	assert.False(t, p0.NATEnabled)
	assert.False(t, p0.EFSEnabled)

	p4, ok := InfraProfileSpecByID("P4")
	require.True(t, ok)
	assert.Equal(t, []string{"t3a.large"}, p4.InstanceTypes)
	assert.Equal(t, 6, p4.MaxNodes)
	assert.True(t, p4.EFSEnabled)

	assert.False(t, IsValidInfraProfileID("P9"))
}

func TestAWSModes(t *testing.T) {
	modes := AWSModes()
	require.Len(t, modes, 3)

	assert.True(t, IsValidAWSMode("A"))
	assert.True(t, IsValidAWSMode("B"))
	assert.True(t, IsValidAWSMode("C"))
	assert.False(t, IsValidAWSMode("D"))
}

func TestAWSRegions(t *testing.T) {
	regions := AWSRegions()
	require.Len(t, regions, 10)

	assert.True(t, IsValidAWSRegion("ap-southeast-1"))
	assert.False(t, IsValidAWSRegion("mars-central-1"))
}
