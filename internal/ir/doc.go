// Package ir provides the realm description types for realmgen.
//
// This package contains type definitions only. All other internal packages
// import ir; ir imports nothing internal. This ensures the realm description
// remains the foundational layer with no circular dependencies.
//
// A Realm is an ordered set of topology facts: the component under test, the
// components around it, and the capability routes between them. Declaration
// order is significant everywhere: the generator emits realm-construction
// steps, mock skeletons and test cases in exactly the order the facts appear.
package ir
