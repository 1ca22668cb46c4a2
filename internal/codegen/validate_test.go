package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/realmgen/internal/ir"
)

func validRealm() *ir.Realm {
	return &ir.Realm{
		ComponentUnderTest: "client",
		Components: []ir.Component{
			{Name: "client", URL: "url://client"},
			{Name: "logger", Mock: true},
		},
		Protocols: []ir.ProtocolRoute{
			{Name: "P", Source: "logger", Targets: []string{"self", "client"}},
		},
		Directories: []ir.DirectoryRoute{
			{Name: "config", Path: "/config", Targets: []string{"root", "client"}},
		},
		Storage: []ir.StorageRoute{
			{Name: "data", Path: "/data", Targets: []string{"self"}},
		},
		Tests: []string{"P"},
	}
}

func TestValidateRealm_Valid(t *testing.T) {
	assert.Empty(t, ValidateRealm(validRealm()))
}

func TestValidateRealm_Errors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ir.Realm)
		wantField string
	}{
		{
			name:      "missing component under test",
			mutate:    func(r *ir.Realm) { r.ComponentUnderTest = "" },
			wantField: "component_under_test",
		},
		{
			name: "duplicate component name",
			mutate: func(r *ir.Realm) {
				r.Components = append(r.Components, ir.Component{Name: "logger", Mock: true})
			},
			wantField: "components[2]",
		},
		{
			name: "non-mock component without url",
			mutate: func(r *ir.Realm) {
				r.Components = append(r.Components, ir.Component{Name: "bare"})
			},
			wantField: "components[2]",
		},
		{
			name: "component without name",
			mutate: func(r *ir.Realm) {
				r.Components = append(r.Components, ir.Component{URL: "url://x"})
			},
			wantField: "components[2]",
		},
		{
			name: "protocol source unknown",
			mutate: func(r *ir.Realm) {
				r.Protocols = append(r.Protocols, ir.ProtocolRoute{
					Name: "Q", Source: "ghost", Targets: []string{"self"},
				})
			},
			wantField: "protocols[1].source",
		},
		{
			name: "protocol target unknown",
			mutate: func(r *ir.Realm) {
				r.Protocols[0].Targets = append(r.Protocols[0].Targets, "ghost")
			},
			wantField: "protocols[0].targets[2]",
		},
		{
			name: "directory target unknown",
			mutate: func(r *ir.Realm) {
				r.Directories[0].Targets = []string{"ghost"}
			},
			wantField: "directories[0].targets[0]",
		},
		{
			name: "storage target unknown",
			mutate: func(r *ir.Realm) {
				r.Storage[0].Targets = []string{"ghost"}
			},
			wantField: "storage[0].targets[0]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			realm := validRealm()
			tc.mutate(realm)

			errs := ValidateRealm(realm)
			require.NotEmpty(t, errs)

			fields := make([]string, len(errs))
			for i, e := range errs {
				fields[i] = e.Field
			}
			assert.Contains(t, fields, tc.wantField)
		})
	}
}

func TestValidateRealm_CollectsAllErrors(t *testing.T) {
	realm := &ir.Realm{
		Components: []ir.Component{
			{Name: "dup"},
			{Name: "dup"},
		},
	}
	errs := ValidateRealm(realm)
	// missing CUT, missing url twice, duplicate name
	require.GreaterOrEqual(t, len(errs), 3)
}
