package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	builder := NewBuilder("https://portal.example")

	region := "ap-southeast-1"
	eps := builder.Build("sub_abc123", "env-abc123", &region)

	assert.Equal(t, "https://portal.example/onboarding/status?id=sub_abc123", eps.DashboardURL)
	assert.Equal(t, "https://portal.example/api/env/env-abc123", eps.APIEndpoint)
	assert.Equal(t, "https://123456789012.signin.aws.amazon.com/console", eps.AWSConsoleURL)
	assert.Equal(t, "123456789012", eps.AccountID)
	assert.Equal(t, "ap-southeast-1", eps.Region)
}

func TestBuild_DefaultRegion(t *testing.T) {
	builder := NewBuilder("https://portal.example")

	eps := builder.Build("sub_abc123", "env-abc123", nil)
	assert.Equal(t, "us-east-1", eps.Region)

	empty := ""
	eps = builder.Build("sub_abc123", "env-abc123", &empty)
	assert.Equal(t, "us-east-1", eps.Region)
}

func TestBuild_Deterministic(t *testing.T) {
	builder := NewBuilder("https://portal.example")

	first := builder.Build("sub_abc123", "env-abc123", nil)
	second := builder.Build("sub_abc123", "env-abc123", nil)
	assert.Equal(t, first, second)
}
