package ir

// Ref tokens recognized as route sources and targets. Any other string is
// treated verbatim as a component name; the generator does not resolve it
// against the component list.
const (
	// RefRoot resolves to the realm's parent (the external boundary).
	RefRoot = "root"
	// RefSelf resolves to the component under test.
	RefSelf = "self"
)

// Realm describes one test realm: the component under test, its
// dependencies and mocks, and the capability routes connecting them.
type Realm struct {
	// ComponentUnderTest is the distinguished component the generated
	// harness exercises. Routes refer to it via the "self" token.
	ComponentUnderTest string `json:"component_under_test" yaml:"component_under_test"`

	// Imports lists extra fully-qualified symbols the generated harness
	// needs beyond the fixed base set.
	Imports []string `json:"imports,omitempty" yaml:"imports,omitempty"`

	// Components in declaration order. Order determines both the
	// realm-construction steps and the constant declarations.
	Components []Component `json:"components,omitempty" yaml:"components,omitempty"`

	// Protocols, Directories and Storage are the capability routes,
	// each kept in declaration order.
	Protocols   []ProtocolRoute  `json:"protocols,omitempty" yaml:"protocols,omitempty"`
	Directories []DirectoryRoute `json:"directories,omitempty" yaml:"directories,omitempty"`
	Storage     []StorageRoute   `json:"storage,omitempty" yaml:"storage,omitempty"`

	// Tests lists the protocols to generate one test case for.
	Tests []string `json:"tests,omitempty" yaml:"tests,omitempty"`
}

// Component identifies one component in the realm.
type Component struct {
	// Name must be unique within the realm.
	Name string `json:"name" yaml:"name"`

	// URL is the component's backing package URL. Required unless Mock
	// is set; mocks are backed by generated skeleton code instead.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Mock marks a test-local stand-in wired to a generated
	// "<name>_impl" entry point.
	Mock bool `json:"mock,omitempty" yaml:"mock,omitempty"`
}

// ProtocolRoute routes a named protocol capability from one source to
// one or more targets.
type ProtocolRoute struct {
	Name    string   `json:"name" yaml:"name"`
	Source  string   `json:"source" yaml:"source"`
	Targets []string `json:"targets" yaml:"targets"`
}

// DirectoryRoute routes a directory capability from the realm boundary
// to one or more targets. Directories carry read-write access rights.
type DirectoryRoute struct {
	Name    string   `json:"name" yaml:"name"`
	Path    string   `json:"path" yaml:"path"`
	Targets []string `json:"targets" yaml:"targets"`
}

// StorageRoute routes a storage capability from the realm boundary to
// one or more targets.
type StorageRoute struct {
	Name    string   `json:"name" yaml:"name"`
	Path    string   `json:"path" yaml:"path"`
	Targets []string `json:"targets" yaml:"targets"`
}
