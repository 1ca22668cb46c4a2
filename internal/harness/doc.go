// Package harness runs end-to-end generation scenarios against golden
// files.
//
// A scenario is a small YAML file naming a realm manifest; running it
// loads the manifest, generates the harness text, and compares the bytes
// against testdata/golden/<name>.golden via goldie. The golden files are
// the source of truth for the generator's output shape.
//
// To regenerate golden files after an intentional output change, run:
//
//	go test ./internal/harness -update
package harness
