package codegen

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ConstName derives the constant identifier holding a non-mock component's
// package URL. Names are NFC normalized, uppercased, and every rune that is
// not an ASCII letter or digit becomes an underscore, so "echo-server"
// yields "ECHO_SERVER". A leading digit gets an underscore prefix.
func ConstName(component string) string {
	name := norm.NFC.String(component)

	var b strings.Builder
	b.Grow(len(name) + 1)
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// MockFuncName derives the mock entry-point function name for a component.
// AddComponent's mock branch and AddMockImpl both use this derivation; the
// generated route and the generated skeleton are connected only by this
// name matching.
func MockFuncName(component string) string {
	return component + "_impl"
}

// markerName derives the protocol marker type name used in test cases.
func markerName(protocol string) string {
	return protocol + "Marker"
}

// markerVarName derives the lowercased variable name holding a connected
// protocol proxy in a generated test case.
func markerVarName(protocol string) string {
	return strings.ToLower(markerName(protocol))
}
