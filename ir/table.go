package ir

// NewTable returns an empty standalone table.
func NewTable() *Node {
	return &Node{Type: TableType}
}

// NewInlineTable returns an empty table that renders as `{ k = v }`.
func NewInlineTable() *Node {
	return &Node{Type: TableType, Inline: true}
}

// KeyVal pairs a key with its value for table construction.
type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a standalone table preserving the given entry order.
// Later duplicates overwrite earlier ones in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewTable()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func (n *Node) mustTable() {
	if n.Type != TableType {
		panic("table")
	}
}

// Set inserts or replaces the entry for key. Insertion order is preserved
// and a replaced key keeps its original position; this is where key
// uniqueness is upheld.
func (n *Node) Set(key string, v *Node) {
	n.mustTable()
	for i, k := range n.Keys {
		if k == key {
			n.Values[i] = v
			return
		}
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, v)
}

// Get returns the value for key, nil when absent.
func (n *Node) Get(key string) *Node {
	for i, k := range n.Keys {
		if k == key {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) Has(key string) bool {
	return n.Get(key) != nil
}

// Delete removes the entry for key, reporting whether it was present.
func (n *Node) Delete(key string) bool {
	n.mustTable()
	for i, k := range n.Keys {
		if k != key {
			continue
		}
		copy(n.Keys[i:], n.Keys[i+1:])
		n.Keys = n.Keys[:len(n.Keys)-1]
		copy(n.Values[i:], n.Values[i+1:])
		n.Values[len(n.Values)-1] = nil
		n.Values = n.Values[:len(n.Values)-1]
		return true
	}
	return false
}
