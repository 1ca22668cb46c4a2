package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/realmgen/internal/ir"
)

// TestCode accumulates the topology of one test realm and the pre-rendered
// text fragments derived from it. One instance is created per generated
// file, populated through the Add* operations, handed once to a Generator,
// and discarded.
//
// Mutating a TestCode after a Generator has consumed it is a programming
// error and panics.
type TestCode struct {
	componentUnderTest string

	// imports is membership-unique; emission is in sorted order, so the
	// order callers discover imports never shows in the output.
	imports map[string]struct{}

	// All remaining sequences are emitted in insertion order.
	constants     []string
	realmSnippets []string
	mockFunctions []string
	testCases     []string

	consumed bool
}

// TopologyError reports a builder precondition violated by the caller.
// It aborts generation of the current file; nothing is retried.
type TopologyError struct {
	Component string
	Message   string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("invalid topology: component %q: %s", e.Component, e.Message)
}

// New constructs an empty builder. The component under test is fixed for
// the builder's lifetime; routes refer to it via the "self" token.
func New(componentUnderTest string) *TestCode {
	return &TestCode{
		componentUnderTest: componentUnderTest,
		imports:            make(map[string]struct{}),
	}
}

// ComponentUnderTest returns the distinguished component name supplied at
// construction.
func (c *TestCode) ComponentUnderTest() string {
	return c.componentUnderTest
}

// AddImport records one fully-qualified symbol for the import section.
// Adding the same symbol twice is a no-op.
func (c *TestCode) AddImport(symbol string) *TestCode {
	c.mustBeOpen()
	c.imports[symbol] = struct{}{}
	return c
}

// AddComponent records one component of the realm.
//
// A mock component gets a realm-construction step wiring a local child to
// the generated "<name>_impl" entry point; no constant is recorded and url
// is ignored. A non-mock component requires url: its value is captured in
// a constant named by ConstName, and the construction step adds a packaged
// child referencing that constant.
//
// Component names are trusted to be unique; the builder does not check.
func (c *TestCode) AddComponent(name, url string, mock bool) error {
	c.mustBeOpen()
	if mock {
		c.realmSnippets = append(c.realmSnippets,
			fmt.Sprintf(mockChildSnippet, name, MockFuncName(name)))
		return nil
	}
	if url == "" {
		return &TopologyError{Component: name, Message: "non-mock component requires a url"}
	}
	constVar := ConstName(name)
	c.constants = append(c.constants, fmt.Sprintf("const %s: &str = %q;", constVar, url))
	c.realmSnippets = append(c.realmSnippets,
		fmt.Sprintf(packagedChildSnippet, name, constVar))
	return nil
}

// AddMockImpl records one mock implementation skeleton for a component.
// The embedded function name must match the one referenced by the route
// AddComponent generated for the same component; both sides derive it with
// MockFuncName, and that string identity is the only link between them.
//
// The protocol argument documents what the mock is expected to serve; it
// is not validated against the topology.
func (c *TestCode) AddMockImpl(componentName, protocol string) *TestCode {
	c.mustBeOpen()
	_ = protocol
	skeleton := strings.ReplaceAll(trimTemplate(mockFuncTemplate),
		"FUNCTION_NAME", MockFuncName(componentName))
	c.mockFunctions = append(c.mockFunctions, skeleton)
	return c
}

// AddProtocol records a route carrying the named protocol capability from
// source to each target, one to(...) clause per target in target order.
// Source and targets are "root", "self", or a component name taken
// verbatim; referenced components are not checked to exist.
func (c *TestCode) AddProtocol(protocol, source string, targets []string) *TestCode {
	c.mustBeOpen()
	capability := fmt.Sprintf("Capability::protocol_by_name(%q)", protocol)
	c.addRoute(capability, c.refExpr(source), targets)
	return c
}

// AddDirectory records a route offering the named directory capability
// from the realm boundary to each target. Directory routes carry a fixed
// read-write rights annotation.
func (c *TestCode) AddDirectory(name, path string, targets []string) *TestCode {
	c.mustBeOpen()
	capability := fmt.Sprintf("Capability::directory(%q).path(%q).rights(\"fio::RW_STAR_DIR\")", name, path)
	c.addRoute(capability, "Ref::parent()", targets)
	return c
}

// AddStorage records a route offering the named storage capability from
// the realm boundary to each target.
func (c *TestCode) AddStorage(name, path string, targets []string) *TestCode {
	c.mustBeOpen()
	capability := fmt.Sprintf("Capability::storage(%q).path(%q)", name, path)
	c.addRoute(capability, "Ref::parent()", targets)
	return c
}

// AddTestCase records one end-to-end test body for the named protocol.
// The fixed template gets three substitutions: the lowercased marker
// variable name, the marker type name, and the protocol name itself.
func (c *TestCode) AddTestCase(protocol string) *TestCode {
	c.mustBeOpen()
	body := trimTemplate(testFuncTemplate)
	body = strings.ReplaceAll(body, "MARKER_VAR_NAME", markerVarName(protocol))
	body = strings.ReplaceAll(body, "MARKER", markerName(protocol))
	body = strings.ReplaceAll(body, "PROTOCOL", protocol)
	c.testCases = append(c.testCases, body)
	return c
}

// refExpr resolves a route source or target token to generated text.
func (c *TestCode) refExpr(ref string) string {
	switch ref {
	case ir.RefRoot:
		return "Ref::parent()"
	case ir.RefSelf:
		return "&" + c.componentUnderTest
	default:
		return "&" + ref
	}
}

// addRoute appends one realm-construction step routing a capability to
// every target, one clause per line in target-list order.
func (c *TestCode) addRoute(capability, from string, targets []string) {
	to := make([]string, 0, len(targets))
	for _, t := range targets {
		to = append(to, toClauseIndent+".to("+c.refExpr(t)+")")
	}
	c.realmSnippets = append(c.realmSnippets,
		fmt.Sprintf(routeSnippet, capability, from, strings.Join(to, "\n")))
}

// sortedImports returns the import set in canonical (lexicographic) order.
func (c *TestCode) sortedImports() []string {
	symbols := make([]string, 0, len(c.imports))
	for s := range c.imports {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// consume transitions the builder from open to consumed. Called by the
// Generator; calling twice panics, as does any later mutation.
func (c *TestCode) consume() {
	c.mustBeOpen()
	c.consumed = true
}

func (c *TestCode) mustBeOpen() {
	if c.consumed {
		panic("codegen: TestCode used after being consumed by a Generator")
	}
}
