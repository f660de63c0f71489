// Package dsl provides the schema constructors: primitives, literal and enum
// nodes, Optional/Default wrappers, a fluent object builder, and discriminated
// unions. Every constructor returns a node implementing skemareg.Schema; the
// registry package consumes these nodes through the root contracts only.
package dsl
