package harness

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/realmgen/internal/codegen"
	"github.com/roach88/realmgen/internal/manifest"
)

// RunWithGolden generates the harness for a scenario's manifest and
// compares the emitted bytes against testdata/golden/{scenario.Name}.golden.
//
// Returns an error if the manifest cannot be loaded or describes an
// invalid topology. A mismatch against the golden file fails the test via
// goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	realm, err := manifest.Load(scenario.ManifestPath())
	if err != nil {
		return err
	}

	code, err := codegen.Generate(realm)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	gen := codegen.Generator{Code: code}
	if err := gen.WriteFile(&buf); err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, buf.Bytes())

	return nil
}
