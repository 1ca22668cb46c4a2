package codegen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyTopology(t *testing.T) {
	code := New("solo")
	var buf bytes.Buffer
	gen := Generator{Code: code}
	require.NoError(t, gen.WriteFile(&buf))

	want := "\n" + // import section separator
		"\n" + // constant section separator
		"pub async fn create_realm() -> Result<RealmInstance, Error> {\n" +
		"    let builder = RealmBuilder::new().await?;\n" +
		"\n" +
		"    let instance = builder.build().await?;\n" +
		"    Ok(instance)\n" +
		"}\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestSectionOrder(t *testing.T) {
	code := New("under_test")
	code.AddImport("anyhow::Error")
	require.NoError(t, code.AddComponent("dep", "url://dep", false))
	require.NoError(t, code.AddComponent("mocked", "", true))
	code.AddMockImpl("mocked", "P")
	code.AddProtocol("P", "mocked", []string{"self"})
	code.AddTestCase("P")

	var buf bytes.Buffer
	gen := Generator{Code: code}
	require.NoError(t, gen.WriteFile(&buf))
	out := buf.String()

	importIdx := strings.Index(out, "use anyhow::Error;")
	constIdx := strings.Index(out, "const DEP:")
	realmIdx := strings.Index(out, "pub async fn create_realm")
	mockIdx := strings.Index(out, "async fn mocked_impl")
	testIdx := strings.Index(out, "async fn test_pmarker")

	for _, idx := range []int{importIdx, constIdx, realmIdx, mockIdx, testIdx} {
		require.GreaterOrEqual(t, idx, 0)
	}
	assert.Less(t, importIdx, constIdx)
	assert.Less(t, constIdx, realmIdx)
	assert.Less(t, realmIdx, mockIdx)
	assert.Less(t, mockIdx, testIdx)
}

func TestMockSectionOmittedWhenEmpty(t *testing.T) {
	code := New("c")
	require.NoError(t, code.AddComponent("dep", "url://dep", false))

	var buf bytes.Buffer
	gen := Generator{Code: code}
	require.NoError(t, gen.WriteFile(&buf))

	assert.NotContains(t, buf.String(), "_impl(")
	assert.True(t, strings.HasSuffix(buf.String(), "}\n\n"),
		"realm function keeps its trailing separator when nothing follows")
}

func TestEndToEndScenario(t *testing.T) {
	code := New("under-test")
	require.NoError(t, code.AddComponent("dep", "fuchsia-pkg://dep#meta/dep.cm", false))
	code.AddProtocol("fuchsia.example.Echo", "dep", []string{"self"})
	code.AddTestCase("fuchsia.example.Echo")

	var buf bytes.Buffer
	gen := Generator{Code: code}
	require.NoError(t, gen.WriteFile(&buf))
	out := buf.String()

	// One constant for dep's URL.
	assert.Equal(t, 1, strings.Count(out, `const DEP: &str = "fuchsia-pkg://dep#meta/dep.cm";`))
	// One route adding dep.
	assert.Equal(t, 1, strings.Count(out, `builder.add_child(`))
	// One route wiring Echo from dep to the component under test.
	assert.Equal(t, 1, strings.Count(out, `protocol_by_name("fuchsia.example.Echo")`))
	assert.Contains(t, out, ".from(&dep)")
	assert.Contains(t, out, ".to(&under-test)")
	// One test-case body referencing Echo.
	assert.Equal(t, 1, strings.Count(out, "async fn test_fuchsia.example.echomarker()"))
}

// failingWriter always returns a fixed error.
type failingWriter struct{ err error }

func (w *failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestWriteFile_SinkErrorPropagatedUnmodified(t *testing.T) {
	sinkErr := errors.New("disk full")
	code := New("c")
	gen := Generator{Code: code}

	err := gen.WriteFile(&failingWriter{err: sinkErr})
	assert.Equal(t, sinkErr, err)
}
