package ir

// Equal reports deep structural equality of two nodes. Types never
// coerce: an integer 1 and a float 1.0 are unequal. The walk uses an
// explicit work stack, so nesting depth is not bounded by the call stack.
func Equal(a, b *Node) bool {
	type pair struct {
		a, b *Node
	}
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == p.b {
			continue
		}
		if p.a == nil || p.b == nil {
			return false
		}
		if p.a.Type != p.b.Type {
			return false
		}
		switch p.a.Type {
		case StringType:
			if p.a.String != p.b.String {
				return false
			}
		case IntegerType:
			if p.a.Int64 != p.b.Int64 {
				return false
			}
		case FloatType:
			if p.a.Float64 != p.b.Float64 {
				return false
			}
		case BoolType:
			if p.a.Bool != p.b.Bool {
				return false
			}
		case DateType:
			if p.a.Date != p.b.Date {
				return false
			}
		case TimeType:
			if p.a.Time != p.b.Time {
				return false
			}
		case DateTimeType:
			if !equalDateTimes(p.a.DateTime, p.b.DateTime) {
				return false
			}
		case ArrayType:
			if len(p.a.Values) != len(p.b.Values) {
				return false
			}
			for i := range p.a.Values {
				stack = append(stack, pair{p.a.Values[i], p.b.Values[i]})
			}
		case TableType:
			if len(p.a.Keys) != len(p.b.Keys) {
				return false
			}
			for i := range p.a.Keys {
				if p.a.Keys[i] != p.b.Keys[i] {
					return false
				}
				stack = append(stack, pair{p.a.Values[i], p.b.Values[i]})
			}
		default:
			panic("type")
		}
	}
	return true
}

func equalDateTimes(a, b DateTime) bool {
	if a.Date != b.Date || a.Time != b.Time {
		return false
	}
	if a.Offset == nil || b.Offset == nil {
		return a.Offset == b.Offset
	}
	return *a.Offset == *b.Offset
}
