package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/realmgen/internal/ir"
	"github.com/roach88/realmgen/internal/testutil"
)

func TestValidate_ValidManifest(t *testing.T) {
	manifest := testutil.WriteManifest(t, testutil.EchoRealm())

	stdout, _, err := runCommand(t, "validate", manifest)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓")
	assert.Contains(t, stdout, "valid realm manifest")
}

func TestValidate_InvalidManifest(t *testing.T) {
	realm := testutil.EchoRealm()
	realm.Protocols = append(realm.Protocols, ir.ProtocolRoute{
		Name: "P", Source: "ghost", Targets: []string{"nobody"},
	})
	manifest := testutil.WriteManifest(t, realm)

	stdout, _, err := runCommand(t, "validate", manifest)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "✗ Validation failed")
	assert.Contains(t, stdout, `unknown component "ghost"`)
	assert.Contains(t, stdout, `unknown component "nobody"`)
}

func TestValidate_JSONFormat(t *testing.T) {
	realm := testutil.EchoRealm()
	realm.Protocols = append(realm.Protocols, ir.ProtocolRoute{
		Name: "P", Source: "ghost", Targets: []string{"self"},
	})
	manifest := testutil.WriteManifest(t, realm)

	stdout, _, err := runCommand(t, "--format", "json", "validate", manifest)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, data["valid"])
}

func TestValidate_MissingManifest(t *testing.T) {
	stdout, _, err := runCommand(t, "validate", filepath.Join(t.TempDir(), "absent.cue"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E002]")
}
