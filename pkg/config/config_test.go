package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHashScheme(t *testing.T) {
	testCases := []struct {
		input   string
		want    HashScheme
		wantErr bool
	}{
		{"mimc", HashSchemeMiMC, false},
		{"", HashSchemeMiMC, false},
		{"keccak256", HashSchemeKeccak, false},
		{"keccak", HashSchemeKeccak, false},
		{"poseidon", HashSchemeUnknown, true},
		{"sha256", HashSchemeUnknown, true},
	}

	for _, tc := range testCases {
		got, err := ParseHashScheme(tc.input)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.input)
		} else {
			require.NoError(t, err, "input %q", tc.input)
		}
		require.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestTreeToolConfigValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cfg := &TreeToolConfig{Depth: 8, HashScheme: HashSchemeMiMC}
		require.NoError(t, cfg.Validate())
	})

	t.Run("Depth too small", func(t *testing.T) {
		cfg := &TreeToolConfig{Depth: 0, HashScheme: HashSchemeMiMC}
		require.Error(t, cfg.Validate())
	})

	t.Run("Depth too large", func(t *testing.T) {
		cfg := &TreeToolConfig{Depth: 33, HashScheme: HashSchemeKeccak}
		require.Error(t, cfg.Validate())
	})

	t.Run("Bad scheme", func(t *testing.T) {
		cfg := &TreeToolConfig{Depth: 8, HashScheme: HashScheme("sha1")}
		err := cfg.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "hashScheme")
	})
}
