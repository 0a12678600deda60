package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	for _, length := range []int{1, 8, DefaultLength, 32} {
		got, err := Generate(length)
		require.NoError(t, err)
		assert.Len(t, got, length)
	}
}

func TestGenerate_DefaultsOnNonPositiveLength(t *testing.T) {
	got, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerate_AlphabetOnly(t *testing.T) {
	got, err := Generate(64)
	require.NoError(t, err)
	for _, r := range got {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	got, err := GenerateWithPrefix(PrefixSubscription, DefaultLength)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "sub_"))

	prefix, short, err := ParsePrefixedID(got)
	require.NoError(t, err)
	assert.Equal(t, PrefixSubscription, prefix)
	assert.Len(t, short, DefaultLength)
}

func TestParsePrefixedID_Invalid(t *testing.T) {
	for _, input := range []string{"", "nodelimiter", "_abc", "sub_"} {
		_, _, err := ParsePrefixedID(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestValidatePrefix(t *testing.T) {
	assert.NoError(t, ValidatePrefix("co_abc123", PrefixCompany))
	assert.Error(t, ValidatePrefix("co_abc123", PrefixSubscription))
}

func TestEntitySIDs(t *testing.T) {
	assert.True(t, strings.HasPrefix(NewCompanySID(), "co_"))
	assert.True(t, strings.HasPrefix(NewSubscriptionSID(), "sub_"))
	assert.True(t, strings.HasPrefix(NewAdminActionSID(), "act_"))
	assert.True(t, strings.HasPrefix(NewTermsAcceptanceSID(), "tac_"))
}
