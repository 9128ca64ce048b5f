package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfs/update-version/pkg/version"
)

func TestValidate(t *testing.T) {
	t.Run("AcceptsReleaseVersions", func(t *testing.T) {
		valid := []string{
			"1.2.3",
			"0.1.0",
			"10.20.30",
			"01.2.3", // leading zeros are kept verbatim, not rejected
			"1.2.3-alpha",
			"1.2.3-pre.1",
			"1.2.3-rc.1-hotfix",
			"1.2.3-0.3.7",
		}
		for _, v := range valid {
			assert.NoError(t, version.Validate(v), "expected %q to validate", v)
		}
	})

	t.Run("RejectsMalformedVersions", func(t *testing.T) {
		invalid := []string{
			"",
			"1",
			"1.2",
			"1.2.3.4",
			"v1.2.3",
			"1.2.x",
			"1.x.3",
			" 1.2.3",
			"1.2.3 ",
			"1.2.3-",
			"1.2.3-beta!",
			"1.2.3_beta",
			"one.two.three",
		}
		for _, v := range invalid {
			err := version.Validate(v)
			require.Error(t, err, "expected %q to be rejected", v)
			assert.ErrorIs(t, err, version.ErrInvalidFormat)
		}
	})

	t.Run("ErrorNamesTheInput", func(t *testing.T) {
		err := version.Validate("v1.2.3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "v1.2.3")
	})
}

func TestIncrement(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		proposed string
		want     string
	}{
		{"Major", "1.2.3", "2.0.0", "major"},
		{"Minor", "1.2.3", "1.3.0", "minor"},
		{"Patch", "1.2.3", "1.2.4", "patch"},
		{"Prerelease", "1.2.3", "1.2.3-rc.1", "prerelease"},
		{"Same", "1.2.3", "1.2.3", "-"},
		{"NoCurrent", "-", "1.0.0", "initial"},
		{"EmptyCurrent", "", "1.0.0", "initial"},
		{"UnparseableCurrent", "garbage", "1.0.0", "update"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, version.Increment(tc.current, tc.proposed))
		})
	}
}
