package ir

import (
	"github.com/signadot/toml-format/go-toml/format"
)

// Node is the unit of the document tree, a tagged union over the variant
// set returned by Types. The Type tag selects which payload fields are
// meaningful:
//
//   - TableType: Keys and Values in insertion order, plus Inline
//   - ArrayType: Values in insertion order
//   - StringType: String
//   - IntegerType: Int64, Format
//   - FloatType: Float64, Format
//   - BoolType: Bool
//   - DateType: Date
//   - TimeType: Time
//   - DateTimeType: DateTime
//
// Containers exclusively own their children: a child node has exactly one
// owner and the tree has no back-edges. Algorithms that need a child's
// storage (flattening, erase) move ownership, never alias it.
type Node struct {
	Type Type

	// Keys and Values hold table entries pairwise; for arrays only
	// Values is populated.
	Keys   []string
	Values []*Node

	// Inline marks a table as `{ k = v }` rather than `[section]`
	// syntax. Fixed at construction.
	Inline bool

	// Format is an optional per-value rendering hint.
	Format format.ValueFormat

	String   string
	Bool     bool
	Int64    int64
	Float64  float64
	Date     Date
	Time     Time
	DateTime DateTime
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromDate(v Date) *Node {
	return &Node{Type: DateType, Date: v}
}

func FromTime(v Time) *Node {
	return &Node{Type: TimeType, Time: v}
}

func FromDateTime(v DateTime) *Node {
	return &Node{Type: DateTimeType, DateTime: v}
}

// WithFormat sets a per-value rendering hint and returns the node.
func (n *Node) WithFormat(f format.ValueFormat) *Node {
	n.Format = f
	return n
}

// Clone returns a deep copy: every owned child is cloned, nothing is
// aliased between the two trees.
func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	*dst = *n
	if n.DateTime.Offset != nil {
		off := *n.DateTime.Offset
		dst.DateTime.Offset = &off
	}
	if n.Keys != nil {
		dst.Keys = make([]string, len(n.Keys))
		copy(dst.Keys, n.Keys)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Visit walks the tree in document order, calling f before and after each
// node's children. Returning dive false skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
