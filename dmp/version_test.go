package dmp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rda-dmp-common/madmp/dmp"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	for _, version := range []string{"1.0", "1.1"} {
		b, err := dmp.Select(version)
		require.NoError(t, err)
		assert.Equal(t, version, b.Version())
	}
}

func TestSelectUnknown(t *testing.T) {
	t.Parallel()

	_, err := dmp.Select("1.5")
	require.EqualError(t, err, `unknown schema version "1.5", supported versions: 1.0, 1.1`)

	var uerr *dmp.UnknownVersionError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "1.5", uerr.Version)
	assert.Equal(t, []string{"1.0", "1.1"}, uerr.Supported)
}

func TestVersions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"1.0", "1.1"}, dmp.Versions())
}

func TestBundlesAreIsolated(t *testing.T) {
	t.Parallel()

	b10, err := dmp.Select("1.0")
	require.NoError(t, err)
	b11, err := dmp.Select("1.1")
	require.NoError(t, err)

	// The status vocabulary differs per revision; a bundle must never see
	// the tokens of another one.
	assert.False(t, b10.Member(dmp.VocabFundingStatus, "rejected"))
	assert.True(t, b11.Member(dmp.VocabFundingStatus, "rejected"))
}

// TestDefaultLifecycle covers the settable-once semantics of the shared
// default, so its steps are deliberately sequential.
func TestDefaultLifecycle(t *testing.T) {
	require.NoError(t, dmp.SetDefault(dmp.DefaultVersion))
	assert.Equal(t, dmp.DefaultVersion, dmp.Default().Version())

	// Repinning the same revision is a no-op.
	require.NoError(t, dmp.SetDefault(dmp.DefaultVersion))

	// A different revision is refused once pinned.
	require.EqualError(t, dmp.SetDefault("1.0"), "default schema version already pinned to 1.1")

	// Unknown revisions are rejected before pinning.
	var uerr *dmp.UnknownVersionError
	require.ErrorAs(t, dmp.SetDefault("2.0"), &uerr)
}
