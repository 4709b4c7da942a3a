// Package encode serializes ir node trees to canonical TOML text.
//
// # Usage
//
//	tbl := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(tbl, os.Stdout)
//
//	// with options
//	err = encode.Encode(tbl, w,
//	    encode.WithFlags(format.DefaultFlags&^format.Indentation),
//	    encode.WithIndent("  "))
//
// Output is deterministic and round-trippable: table entries appear in
// insertion order, all of a table's own values precede its nested section
// headers, and arrays wrap to one element per line when their estimated
// inline width reaches 120 columns.
//
// # Related Packages
//
//   - github.com/signadot/toml-format/go-toml/ir - the document model
//   - github.com/signadot/toml-format/go-toml/format - flags and hints
package encode
