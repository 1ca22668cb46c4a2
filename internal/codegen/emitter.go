package codegen

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// The fixed frame of the realm-construction function. Every generated
// harness exposes create_realm with this exact signature.
const (
	realmFuncPrologue = `pub async fn create_realm() -> Result<RealmInstance, Error> {
    let builder = RealmBuilder::new().await?;
`
	realmFuncEpilogue = `
    let instance = builder.build().await?;
    Ok(instance)
}

`
)

// Generator serializes one populated TestCode into harness source text.
// Consuming the builder is a one-way transition; the same TestCode cannot
// be mutated or emitted again.
type Generator struct {
	Code *TestCode
}

// WriteFile renders the five harness sections and writes them to w as a
// single write, so a sink error never leaves partial output behind.
// Sink errors are returned unmodified.
func (g *Generator) WriteFile(w io.Writer) error {
	g.Code.consume()
	_, err := w.Write(g.render())
	return err
}

// render produces the complete file: imports, constants, create_realm,
// mock skeletons, test cases, separated by one blank line. Rendering is a
// pure function of builder contents; identical contents produce identical
// bytes.
func (g *Generator) render() []byte {
	var buf bytes.Buffer

	for _, symbol := range g.Code.sortedImports() {
		fmt.Fprintf(&buf, "use %s;\n", symbol)
	}
	buf.WriteString("\n")

	for _, constant := range g.Code.constants {
		buf.WriteString(constant)
		buf.WriteString("\n")
	}
	buf.WriteString("\n")

	buf.WriteString(realmFuncPrologue)
	for _, snippet := range g.Code.realmSnippets {
		buf.WriteString(snippet)
		buf.WriteString("\n")
	}
	buf.WriteString(realmFuncEpilogue)

	if len(g.Code.mockFunctions) > 0 {
		buf.WriteString(strings.Join(g.Code.mockFunctions, "\n\n"))
		buf.WriteString("\n\n")
	}

	if len(g.Code.testCases) > 0 {
		buf.WriteString(strings.Join(g.Code.testCases, "\n\n"))
		buf.WriteString("\n")
	}

	return buf.Bytes()
}
