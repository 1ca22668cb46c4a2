// Package codegen turns a realm topology into integration-test harness
// source text.
//
// Two pieces, strictly producer to consumer:
//
//   - TestCode is a mutable builder accumulating topology facts one call at
//     a time: imports, components, capability routes, mock skeletons and
//     test cases. Callers issue one call per fact, in the order the facts
//     appear in the realm description.
//   - Generator serializes a populated TestCode into the five fixed sections
//     of the harness: imports, constants, the create_realm function, mock
//     implementation skeletons and test-case bodies.
//
// Output is deterministic: identical builder contents always emit
// byte-identical text. Imports are emitted in sorted order regardless of
// insertion order; every other sequence is emitted in insertion order.
//
// The builder trusts its caller. Component names, route references and the
// coupling between a mock route and its skeleton are not cross-checked on
// the default path; ValidateRealm offers those checks as an opt-in pass
// over the realm description before generation.
package codegen
