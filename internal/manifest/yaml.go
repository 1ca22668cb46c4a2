package manifest

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/realmgen/internal/ir"
)

// yamlManifest is the file-level wrapper around the realm struct.
type yamlManifest struct {
	Realm *ir.Realm `yaml:"realm"`
}

// LoadYAML reads and parses a YAML realm manifest. Unknown fields are
// rejected so typos surface as errors instead of silently dropped facts.
func LoadYAML(path string) (*ir.Realm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m yamlManifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing manifest YAML: %w", err)
	}

	if m.Realm == nil {
		return nil, &ManifestError{
			Field:   "realm",
			Message: "top-level realm struct is required",
		}
	}
	if m.Realm.ComponentUnderTest == "" {
		return nil, &ManifestError{
			Field:   "realm.component_under_test",
			Message: "component_under_test is required",
		}
	}

	return m.Realm, nil
}
