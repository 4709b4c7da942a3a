package ir

// NewArray returns an empty array node.
func NewArray() *Node {
	return &Node{Type: ArrayType}
}

// FromSlice returns an array node owning the given elements.
func FromSlice(elems []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(elems))
	copy(res.Values, elems)
	return res
}

// Len returns the number of entries of a container node.
func (n *Node) Len() int {
	return len(n.Values)
}

// At returns the element at index i.
func (n *Node) At(i int) *Node {
	return n.Values[i]
}

func (n *Node) mustArray() {
	if n.Type != ArrayType {
		panic("array")
	}
}

// Append adds elements at the end of the array.
func (n *Node) Append(elems ...*Node) {
	n.mustArray()
	n.Values = append(n.Values, elems...)
}

// Insert places elements at index i, shifting the tail right.
func (n *Node) Insert(i int, elems ...*Node) {
	n.mustArray()
	if len(elems) == 0 {
		return
	}
	n.preinsertionResize(i, len(elems))
	copy(n.Values[i:], elems)
}

// Erase removes the element at index i, preserving the order of the rest.
func (n *Node) Erase(i int) {
	n.mustArray()
	copy(n.Values[i:], n.Values[i+1:])
	n.Values[len(n.Values)-1] = nil
	n.Values = n.Values[:len(n.Values)-1]
}

// preinsertionResize grows the array by count slots at index idx, shifting
// existing elements at or after idx rightward. The vacated slots are nil
// until the caller fills them. idx > len or count < 1 is a caller contract
// violation.
func (n *Node) preinsertionResize(idx, count int) {
	if idx > len(n.Values) {
		panic("index")
	}
	if count < 1 {
		panic("count")
	}
	oldSize := len(n.Values)
	n.Values = append(n.Values, make([]*Node, count)...)
	if idx == oldSize {
		return
	}
	// back-to-front so nothing is overwritten before it moves
	for left, right := oldSize-1, oldSize+count-1; left >= idx; left, right = left-1, right-1 {
		n.Values[right] = n.Values[left]
		n.Values[left] = nil
	}
}

// IsHomogeneous reports whether every element has the given type. With
// NoneType the expected type is inferred from the first element. An empty
// array is never homogeneous.
func (n *Node) IsHomogeneous(expected Type) bool {
	ok, _ := n.IsHomogeneousFirst(expected)
	return ok
}

// IsHomogeneousFirst is IsHomogeneous returning also the first mismatching
// element, for diagnostics.
func (n *Node) IsHomogeneousFirst(expected Type) (bool, *Node) {
	n.mustArray()
	if len(n.Values) == 0 {
		return false, nil
	}
	if expected == NoneType {
		expected = n.Values[0].Type
	}
	for _, v := range n.Values {
		if v.Type != expected {
			return false, v
		}
	}
	return true, nil
}

// IsArrayOfTables reports whether n is a non-empty array whose every
// element is a table.
func IsArrayOfTables(n *Node) bool {
	return n.Type == ArrayType && n.IsHomogeneous(TableType)
}

// TotalLeafCount returns the number of non-array values reachable by
// recursively unwrapping array elements. It is the exact element count an
// array has after flattening.
func (n *Node) TotalLeafCount() int {
	n.mustArray()
	leaves := 0
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range cur.Values {
			if v.Type == ArrayType {
				stack = append(stack, v)
			} else {
				leaves++
			}
		}
	}
	return leaves
}

// Flatten rewrites the array in place so no element is an array: leaves of
// nested arrays are pulled up in depth-first order and empty sub-arrays
// vanish. Arrays nested beyond the depth limit yield ErrTooDeep.
func (n *Node) Flatten() error {
	n.mustArray()
	if len(n.Values) == 0 {
		return nil
	}

	requiresFlattening := false
	sizeAfterFlattening := len(n.Values)
	for i := len(n.Values) - 1; i >= 0; i-- {
		v := n.Values[i]
		if v.Type != ArrayType {
			continue
		}
		sizeAfterFlattening-- // discount the array itself
		leafCount := v.TotalLeafCount()
		if leafCount > 0 {
			requiresFlattening = true
			sizeAfterFlattening += leafCount
		} else {
			n.Erase(i)
		}
	}

	if !requiresFlattening {
		return nil
	}

	// reserve the final size up front so the shuffle below never
	// reallocates mid-move
	values := make([]*Node, len(n.Values), sizeAfterFlattening)
	copy(values, n.Values)
	n.Values = values

	i := 0
	for i < len(n.Values) {
		v := n.Values[i]
		if v.Type != ArrayType {
			i++
			continue
		}
		leafCount := v.TotalLeafCount()
		if leafCount > 1 {
			n.preinsertionResize(i+1, leafCount-1)
		}
		if err := n.flattenChild(v, &i, 0); err != nil {
			return err
		}
	}
	return nil
}

// flattenChild moves child's leaves into n starting at *dest, advancing
// the cursor. Nested arrays flatten into the same destination run.
func (n *Node) flattenChild(child *Node, dest *int, depth int) error {
	if depth >= MaxDepth {
		return ErrTooDeep
	}
	for _, v := range child.Values {
		if v.Type == ArrayType {
			if len(v.Values) == 0 {
				continue
			}
			if err := n.flattenChild(v, dest, depth+1); err != nil {
				return err
			}
			continue
		}
		n.Values[*dest] = v
		*dest++
	}
	child.Values = nil
	return nil
}
