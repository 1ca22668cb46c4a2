// Package testutil provides shared realm fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/roach88/realmgen/internal/ir"
)

// EchoRealm returns a small consistent realm: a packaged client and
// server with one protocol route and one test case.
func EchoRealm() *ir.Realm {
	return &ir.Realm{
		ComponentUnderTest: "echo_client",
		Components: []ir.Component{
			{Name: "echo_client", URL: "fuchsia-pkg://fuchsia.com/echo-client#meta/echo-client.cm"},
			{Name: "echo_server", URL: "fuchsia-pkg://fuchsia.com/echo-server#meta/echo-server.cm"},
		},
		Protocols: []ir.ProtocolRoute{
			{Name: "fuchsia.example.Echo", Source: "echo_server", Targets: []string{"self"}},
		},
		Tests: []string{"fuchsia.example.Echo"},
	}
}

// MockRealm returns a realm whose dependency is a mock component.
func MockRealm() *ir.Realm {
	return &ir.Realm{
		ComponentUnderTest: "log_client",
		Components: []ir.Component{
			{Name: "log_client", URL: "fuchsia-pkg://fuchsia.com/log-client#meta/log-client.cm"},
			{Name: "logger", Mock: true},
		},
		Protocols: []ir.ProtocolRoute{
			{Name: "fuchsia.logger.LogSink", Source: "logger", Targets: []string{"self"}},
		},
		Tests: []string{"fuchsia.logger.LogSink"},
	}
}

// WriteManifest serializes a realm as a YAML manifest into a temp
// directory and returns the file path.
func WriteManifest(t *testing.T, realm *ir.Realm) string {
	t.Helper()

	data, err := yaml.Marshal(map[string]*ir.Realm{"realm": realm})
	if err != nil {
		t.Fatalf("marshaling realm manifest: %v", err)
	}

	path := filepath.Join(t.TempDir(), "realm.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing realm manifest: %v", err)
	}
	return path
}
