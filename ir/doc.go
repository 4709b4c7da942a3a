// Package ir provides the in-memory representation of TOML documents.
//
// # Overview
//
// A document is a tree of Node values. Node is a tagged union: the Type
// field selects the active variant (table, array, string, integer, float,
// bool, date, time, date-time) and the corresponding payload fields. The
// tag is fixed at construction.
//
// Containers exclusively own their children. There is no sharing and no
// cycles; Clone deep-copies and the array algorithms move child storage
// rather than aliasing it.
//
// # Creating Nodes
//
// Use the constructor functions:
//
//	s := ir.FromString("hello")
//	n := ir.FromInt(42)
//	t := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	a := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Tables
//
// Tables preserve insertion order; Keys[i] is the key for Values[i] and
// keys are unique (Set replaces in place). The Inline flag distinguishes
// `{ k = v }` tables from `[section]` tables at serialization time and is
// fixed at construction.
//
// # Arrays
//
// Arrays preserve insertion order through every operation. Beyond the
// plain mutators (Append, Insert, Erase) the package carries the
// structural algorithms: IsHomogeneous, TotalLeafCount, Flatten and deep
// Equal. An empty array is never homogeneous, and mixed element types are
// legal data, not an error.
//
// # Thread Safety
//
// Node trees are not thread-safe. A tree must not be mutated while
// another goroutine reads or encodes it; callers needing concurrent
// access must synchronize externally.
//
// # Related Packages
//
//   - github.com/signadot/toml-format/go-toml/encode - encodes trees to text
//   - github.com/signadot/toml-format/go-toml/token - scalar text primitives
package ir
