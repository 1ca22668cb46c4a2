package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/realmgen/internal/codegen"
	"github.com/roach88/realmgen/internal/manifest"
)

func TestFixturesAreConsistent(t *testing.T) {
	assert.Empty(t, codegen.ValidateRealm(EchoRealm()))
	assert.Empty(t, codegen.ValidateRealm(MockRealm()))
}

func TestWriteManifestRoundTrips(t *testing.T) {
	want := MockRealm()
	path := WriteManifest(t, want)

	got, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
