package encode

import (
	"math"

	"github.com/signadot/toml-format/go-toml/ir"
)

// lineWrapCols is the soft wrap width: a container whose estimated inline
// width reaches it is rendered in block form.
const lineWrapCols = 120

// countInlineColumns is a cheap upper-bound estimate of the columns a node
// would occupy rendered inline. It is deliberately approximate (the float
// weight ignores exponent digits) and short-circuits once the running
// total reaches the wrap width, so it never scans a large structure that
// is clearly over budget.
func countInlineColumns(n *ir.Node, depth int) int {
	if depth >= ir.MaxDepth {
		return lineWrapCols
	}
	switch n.Type {
	case ir.TableType:
		if len(n.Keys) == 0 {
			return 2 // "{}"
		}
		weight := 3 // "{ }"
		for i, k := range n.Keys {
			weight += len(k) + countInlineColumns(n.Values[i], depth+1) + 2 // + ", "
			if weight >= lineWrapCols {
				break
			}
		}
		return weight
	case ir.ArrayType:
		if len(n.Values) == 0 {
			return 2 // "[]"
		}
		weight := 3 // "[ ]"
		for _, v := range n.Values {
			weight += countInlineColumns(v, depth+1) + 2 // + ", "
			if weight >= lineWrapCols {
				break
			}
		}
		return weight
	case ir.StringType:
		return len(n.String) + 2 // + ""
	case ir.IntegerType:
		v := n.Int64
		if v == 0 {
			return 1
		}
		weight := 0
		var mag uint64
		if v < 0 {
			weight++
			mag = uint64(-(v + 1)) + 1
		} else {
			mag = uint64(v)
		}
		return weight + digits10(mag)
	case ir.FloatType:
		v := n.Float64
		if v == 0 {
			return 3 // "0.0"
		}
		weight := 2 // ".0"
		if v < 0 {
			weight++
			v = -v
		}
		if v < 1 {
			return weight + 1
		}
		return weight + int(math.Log10(v)) + 1
	case ir.BoolType:
		return 5
	case ir.DateType, ir.TimeType:
		return 10
	case ir.DateTimeType:
		return 30
	default:
		panic("type")
	}
}

func digits10(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

func forcesMultiline(n *ir.Node, startingColumnBias int) bool {
	return countInlineColumns(n, 0)+startingColumnBias >= lineWrapCols
}
