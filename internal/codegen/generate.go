package codegen

import (
	"github.com/roach88/realmgen/internal/ir"
)

// baseImports are needed by every generated harness.
var baseImports = []string{
	"anyhow::Error",
	"fuchsia_async as fasync",
	"fuchsia_component_test::{Capability, ChildOptions, RealmBuilder, RealmInstance, Ref, Route}",
}

// mockImports are added only when the realm contains a mock component.
var mockImports = []string{
	"fuchsia_component::server::ServiceFs",
	"fuchsia_component_test::LocalComponentHandles",
	"futures::prelude::*",
}

// Generate walks a realm description in declaration order and drives one
// TestCode builder with it: imports, components (with a mock skeleton per
// mock component), protocol, directory and storage routes, then tests.
//
// The returned builder is still open; hand it to a Generator to emit.
func Generate(realm *ir.Realm) (*TestCode, error) {
	code := New(realm.ComponentUnderTest)

	for _, symbol := range baseImports {
		code.AddImport(symbol)
	}
	if hasMock(realm) {
		for _, symbol := range mockImports {
			code.AddImport(symbol)
		}
	}
	for _, symbol := range realm.Imports {
		code.AddImport(symbol)
	}

	for _, component := range realm.Components {
		if err := code.AddComponent(component.Name, component.URL, component.Mock); err != nil {
			return nil, err
		}
		if component.Mock {
			code.AddMockImpl(component.Name, servedProtocol(realm, component.Name))
		}
	}

	for _, route := range realm.Protocols {
		code.AddProtocol(route.Name, route.Source, route.Targets)
	}
	for _, route := range realm.Directories {
		code.AddDirectory(route.Name, route.Path, route.Targets)
	}
	for _, route := range realm.Storage {
		code.AddStorage(route.Name, route.Path, route.Targets)
	}

	for _, protocol := range realm.Tests {
		code.AddTestCase(protocol)
	}

	return code, nil
}

func hasMock(realm *ir.Realm) bool {
	for _, component := range realm.Components {
		if component.Mock {
			return true
		}
	}
	return false
}

// servedProtocol returns the first protocol routed from the named
// component, for documentation in its mock skeleton. Empty when the
// component sources no protocol route.
func servedProtocol(realm *ir.Realm, component string) string {
	for _, route := range realm.Protocols {
		if route.Source == component {
			return route.Name
		}
	}
	return ""
}
