package codegen

import (
	_ "embed"
	"strings"
)

// Fixed skeleton templates. Substitution is plain placeholder
// replacement; the fragments carry no conditional structure.

//go:embed templates/mock_function.tmpl
var mockFuncTemplate string

//go:embed templates/test_function.tmpl
var testFuncTemplate string

// trimTemplate drops the template file's trailing newline so rendered
// fragments compose with the emitter's own separators.
func trimTemplate(t string) string {
	return strings.TrimRight(t, "\n")
}
