package encode

import (
	"io"
	"strings"

	"github.com/signadot/toml-format/go-toml/debug"
	"github.com/signadot/toml-format/go-toml/format"
	"github.com/signadot/toml-format/go-toml/ir"
	"github.com/signadot/toml-format/go-toml/token"
)

// EncState carries the walk state: the immutable flag set and indent
// unit, the indent level and key-path stack (push on descent, pop on
// return), the pending blank-separator bit, and the depth guard.
type EncState struct {
	flags     format.Flags
	indentStr string

	indent     int
	depth      int
	keyPath    []string
	pendingSep bool
	nakedNL    bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as canonical TOML, ending with a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if debug.Encode() {
		debug.Logf("encode %s flags=%s", node.Type, es.flags)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	// an empty standalone root table emits nothing, not a bare newline
	return es.printNewline(w, false)
}

// EncodeResult encodes a parse result. A failed result's diagnostic is
// written verbatim; it is not valid TOML, but it gives the caller
// something to log.
func EncodeResult(res *ir.Result, w io.Writer, opts ...EncodeOption) error {
	if res.Failed() {
		return writeString(w, res.Diagnostic)
	}
	return Encode(res.Root, w, opts...)
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		flags:     format.DefaultFlags,
		indentStr: format.DefaultIndent,
		nakedNL:   true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.TableType:
		if node.Inline {
			return printInlineTable(node, w, es)
		}
		// root key/value pairs and top-level table headers share the
		// same indent level
		es.indent--
		return printTable(node, w, es)
	case ir.ArrayType:
		return printArray(node, w, es)
	default:
		return printValue(node, w, es)
	}
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) write(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	es.nakedNL = false
	return writeString(w, s)
}

func (es *EncState) printNewline(w io.Writer, force bool) error {
	if !force && es.nakedNL {
		return nil
	}
	es.nakedNL = true
	return writeString(w, "\n")
}

func (es *EncState) printIndent(w io.Writer) error {
	for i := 0; i < es.indent; i++ {
		if err := es.write(w, es.indentStr); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) increaseIndent() {
	if es.flags.Has(format.Indentation) {
		es.indent++
	}
}

func (es *EncState) decreaseIndent() {
	if es.flags.Has(format.Indentation) {
		es.indent--
	}
}

func (es *EncState) printPendingSep(w io.Writer) error {
	if !es.pendingSep {
		return nil
	}
	es.pendingSep = false
	if err := es.printNewline(w, true); err != nil {
		return err
	}
	return es.printNewline(w, true)
}

func (es *EncState) printKeySegment(w io.Writer, k string) error {
	return es.write(w, applyColor(es, ir.TableType, FieldColor, token.QuoteKey(k)))
}

func (es *EncState) printKeyPath(w io.Writer) error {
	for i, seg := range es.keyPath {
		if i > 0 {
			if err := es.write(w, applyColor(es, ir.TableType, SepColor, ".")); err != nil {
				return err
			}
		}
		if err := es.printKeySegment(w, seg); err != nil {
			return err
		}
	}
	return nil
}

// Layout classification

func isStandaloneTable(n *ir.Node) bool {
	return n.Type == ir.TableType && !n.Inline
}

func isNonInlineArrayOfTables(n *ir.Node) bool {
	return ir.IsArrayOfTables(n) && !n.Values[0].Inline
}

// onlySubTables reports whether tbl contains nothing but standalone
// tables and table arrays, in which case its own header line would be a
// redundant empty section and is suppressed.
func onlySubTables(tbl *ir.Node) bool {
	valueCount, tableCount, tableArrayCount := 0, 0, 0
	for _, v := range tbl.Values {
		switch {
		case isStandaloneTable(v):
			tableCount++
		case isNonInlineArrayOfTables(v):
			tableArrayCount++
		default:
			valueCount++
		}
	}
	return valueCount == 0 && (tableCount > 0 || tableArrayCount > 0)
}

// printTable emits a standalone table in three passes: direct key/value
// entries first, then nested standalone tables with their dotted headers,
// then arrays of tables. The format requires all of a table's own values
// to appear before any nested section header.
func printTable(tbl *ir.Node, w io.Writer, es *EncState) error {
	es.depth++
	defer func() { es.depth-- }()
	if es.depth > ir.MaxDepth {
		return depthErr()
	}

	for i, k := range tbl.Keys {
		v := tbl.Values[i]
		if isStandaloneTable(v) || isNonInlineArrayOfTables(v) {
			continue
		}
		es.pendingSep = true
		if err := es.printNewline(w, false); err != nil {
			return err
		}
		if err := es.printIndent(w); err != nil {
			return err
		}
		if err := es.printKeySegment(w, k); err != nil {
			return err
		}
		if err := es.write(w, applyColor(es, ir.TableType, SepColor, " = ")); err != nil {
			return err
		}
		if err := printKeyedValue(v, w, es); err != nil {
			return err
		}
	}

	for i, k := range tbl.Keys {
		v := tbl.Values[i]
		if !isStandaloneTable(v) {
			continue
		}
		skipSelf := onlySubTables(v)
		es.keyPath = append(es.keyPath, k)
		if !skipSelf {
			if err := es.printPendingSep(w); err != nil {
				return err
			}
			es.increaseIndent()
			if err := es.printIndent(w); err != nil {
				return err
			}
			if err := es.write(w, applyColor(es, ir.TableType, HeaderColor, "[")); err != nil {
				return err
			}
			if err := es.printKeyPath(w); err != nil {
				return err
			}
			if err := es.write(w, applyColor(es, ir.TableType, HeaderColor, "]")); err != nil {
				return err
			}
			es.pendingSep = true
		}
		if err := printTable(v, w, es); err != nil {
			return err
		}
		es.keyPath = es.keyPath[:len(es.keyPath)-1]
		if !skipSelf {
			es.decreaseIndent()
		}
	}

	for i, k := range tbl.Keys {
		v := tbl.Values[i]
		if !isNonInlineArrayOfTables(v) {
			continue
		}
		es.increaseIndent()
		es.keyPath = append(es.keyPath, k)
		for _, elem := range v.Values {
			if err := es.printPendingSep(w); err != nil {
				return err
			}
			if err := es.printIndent(w); err != nil {
				return err
			}
			if err := es.write(w, applyColor(es, ir.TableType, HeaderColor, "[[")); err != nil {
				return err
			}
			if err := es.printKeyPath(w); err != nil {
				return err
			}
			if err := es.write(w, applyColor(es, ir.TableType, HeaderColor, "]]")); err != nil {
				return err
			}
			es.pendingSep = true
			if err := printTable(elem, w, es); err != nil {
				return err
			}
		}
		es.keyPath = es.keyPath[:len(es.keyPath)-1]
		es.decreaseIndent()
	}
	return nil
}

// printKeyedValue renders the right-hand side of a key = value line.
// Tables reaching here are inline by construction of the table passes.
func printKeyedValue(v *ir.Node, w io.Writer, es *EncState) error {
	switch v.Type {
	case ir.TableType:
		return printInlineTable(v, w, es)
	case ir.ArrayType:
		return printArray(v, w, es)
	default:
		return printValue(v, w, es)
	}
}

func printInlineTable(tbl *ir.Node, w io.Writer, es *EncState) error {
	es.depth++
	defer func() { es.depth-- }()
	if es.depth > ir.MaxDepth {
		return depthErr()
	}
	if len(tbl.Keys) == 0 {
		return es.write(w, applyColor(es, ir.TableType, SepColor, "{}"))
	}
	if err := es.write(w, applyColor(es, ir.TableType, SepColor, "{ ")); err != nil {
		return err
	}
	for i, k := range tbl.Keys {
		if i > 0 {
			if err := es.write(w, applyColor(es, ir.TableType, SepColor, ", ")); err != nil {
				return err
			}
		}
		if err := es.printKeySegment(w, k); err != nil {
			return err
		}
		if err := es.write(w, applyColor(es, ir.TableType, SepColor, " = ")); err != nil {
			return err
		}
		if err := printKeyedValue(tbl.Values[i], w, es); err != nil {
			return err
		}
	}
	return es.write(w, applyColor(es, ir.TableType, SepColor, " }"))
}

func printArray(arr *ir.Node, w io.Writer, es *EncState) error {
	es.depth++
	defer func() { es.depth-- }()
	if es.depth > ir.MaxDepth {
		return depthErr()
	}
	if len(arr.Values) == 0 {
		return es.write(w, applyColor(es, ir.ArrayType, SepColor, "[]"))
	}

	originalIndent := es.indent
	bias := 0
	if originalIndent > 0 {
		bias = len(es.indentStr) * originalIndent
	}
	multiline := forcesMultiline(arr, bias)
	if debug.Layout() {
		debug.Logf("array len=%d bias=%d multiline=%t", len(arr.Values), bias, multiline)
	}

	if err := es.write(w, applyColor(es, ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	if multiline {
		if originalIndent < 0 {
			es.indent = 0
		}
		es.increaseIndent()
	} else {
		if err := es.write(w, " "); err != nil {
			return err
		}
	}

	for i, v := range arr.Values {
		if i > 0 {
			sep := ","
			if !multiline {
				sep = ", "
			}
			if err := es.write(w, applyColor(es, ir.ArrayType, SepColor, sep)); err != nil {
				return err
			}
		}
		if multiline {
			if err := es.printNewline(w, true); err != nil {
				return err
			}
			if err := es.printIndent(w); err != nil {
				return err
			}
		}
		if err := printKeyedValue(v, w, es); err != nil {
			return err
		}
	}

	if multiline {
		es.indent = originalIndent
		if err := es.printNewline(w, true); err != nil {
			return err
		}
		if err := es.printIndent(w); err != nil {
			return err
		}
	} else {
		if err := es.write(w, " "); err != nil {
			return err
		}
	}
	return es.write(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

// Scalar encoding

func printValue(v *ir.Node, w io.Writer, es *EncState) error {
	switch v.Type {
	case ir.StringType:
		return printString(v, w, es)
	case ir.IntegerType:
		base := 10
		if es.flags.Has(format.AllowValueFormatFlags) {
			base = v.Format.Base()
		}
		return es.write(w, applyValueColor(es, ir.IntegerType, token.FormatInt(v.Int64, base)))
	case ir.FloatType:
		hexFloat := es.flags.Has(format.AllowValueFormatFlags) && v.Format == format.FormatHexFloat
		return es.write(w, applyValueColor(es, ir.FloatType, token.FormatFloat(v.Float64, hexFloat)))
	case ir.BoolType:
		return es.write(w, applyValueColor(es, ir.BoolType, token.FormatBool(v.Bool)))
	case ir.DateType:
		return es.write(w, applyValueColor(es, ir.DateType, v.Date.String()))
	case ir.TimeType:
		return es.write(w, applyValueColor(es, ir.TimeType, v.Time.String()))
	case ir.DateTimeType:
		return es.write(w, applyValueColor(es, ir.DateTimeType, v.DateTime.String()))
	default:
		panic("type")
	}
}

func printString(v *ir.Node, w io.Writer, es *EncState) error {
	s := v.String
	multiline := strings.Contains(s, "\n")
	var out string
	attr := ValueColor
	switch {
	case multiline && es.flags.Has(format.AllowMultiLineStrings):
		if es.flags.Has(format.AllowLiteralStrings) && token.CanMultiLineLiteral(s) {
			out = token.QuoteMultiLineLiteral(s)
			attr = LiteralColor
		} else {
			out = token.QuoteMultiLine(s)
		}
	case !multiline && es.flags.Has(format.AllowLiteralStrings) && token.CanLiteral(s):
		out = token.QuoteLiteral(s)
		attr = LiteralColor
	default:
		out = token.Quote(s)
	}
	return es.write(w, applyColor(es, ir.StringType, attr, out))
}

// Color application helpers

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func applyValueColor(es *EncState, t ir.Type, v string) string {
	return applyColor(es, t, ValueColor, v)
}
