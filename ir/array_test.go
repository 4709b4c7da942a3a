package ir

import (
	"errors"
	"testing"
)

func ints(vs ...int64) []*Node {
	res := make([]*Node, len(vs))
	for i, v := range vs {
		res[i] = FromInt(v)
	}
	return res
}

func TestIsHomogeneous(t *testing.T) {
	tests := []struct {
		name     string
		arr      *Node
		expected Type
		ok       bool
	}{
		{"empty never homogeneous", NewArray(), NoneType, false},
		{"empty with explicit type", NewArray(), IntegerType, false},
		{"ints inferred", FromSlice(ints(1, 2, 3)), NoneType, true},
		{"ints explicit", FromSlice(ints(1, 2, 3)), IntegerType, true},
		{"ints wrong explicit", FromSlice(ints(1, 2, 3)), StringType, false},
		{"mixed", FromSlice([]*Node{FromInt(1), FromString("a")}), NoneType, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arr.IsHomogeneous(tt.expected); got != tt.ok {
				t.Errorf("IsHomogeneous(%v) = %v, want %v", tt.expected, got, tt.ok)
			}
		})
	}
}

func TestIsHomogeneousFirstMismatch(t *testing.T) {
	str := FromString("a")
	arr := FromSlice([]*Node{FromInt(1), str, FromString("b")})
	ok, first := arr.IsHomogeneousFirst(NoneType)
	if ok {
		t.Fatal("mixed array reported homogeneous")
	}
	if first != str {
		t.Errorf("first mismatch = %v, want the string element", first)
	}
	if ok, first := FromSlice(ints(1, 2)).IsHomogeneousFirst(NoneType); !ok || first != nil {
		t.Errorf("homogeneous array: got (%v, %v)", ok, first)
	}
}

func TestTotalLeafCount(t *testing.T) {
	tests := []struct {
		name string
		arr  *Node
		want int
	}{
		{"empty", NewArray(), 0},
		{"flat", FromSlice(ints(1, 2, 3)), 3},
		{"nested", FromSlice([]*Node{
			FromInt(1),
			FromSlice(ints(2, 3)),
			NewArray(),
			FromSlice([]*Node{FromInt(4), FromSlice(ints(5))}),
		}), 5},
		{"only empties", FromSlice([]*Node{NewArray(), FromSlice([]*Node{NewArray()})}), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arr.TotalLeafCount(); got != tt.want {
				t.Errorf("TotalLeafCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		arr  *Node
		want []int64
	}{
		{"already flat", FromSlice(ints(1, 2, 3)), []int64{1, 2, 3}},
		{"mixed nesting", FromSlice([]*Node{
			FromInt(1),
			FromSlice(ints(2, 3)),
			NewArray(),
			FromSlice([]*Node{FromInt(4), FromSlice(ints(5))}),
		}), []int64{1, 2, 3, 4, 5}},
		{"only nested empties", FromSlice([]*Node{
			NewArray(),
			FromSlice([]*Node{NewArray(), NewArray()}),
		}), nil},
		{"leading nested", FromSlice([]*Node{
			FromSlice(ints(1, 2)),
			FromInt(3),
		}), []int64{1, 2, 3}},
		{"deeply nested single", FromSlice([]*Node{
			FromSlice([]*Node{FromSlice([]*Node{FromSlice(ints(7))})}),
		}), []int64{7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantLeaves := tt.arr.TotalLeafCount()
			if err := tt.arr.Flatten(); err != nil {
				t.Fatalf("Flatten() = %v", err)
			}
			if got := tt.arr.Len(); got != wantLeaves {
				t.Errorf("len after flatten = %d, want leaf count %d", got, wantLeaves)
			}
			if got := tt.arr.Len(); got != len(tt.want) {
				t.Fatalf("len after flatten = %d, want %d", got, len(tt.want))
			}
			for i, want := range tt.want {
				v := tt.arr.At(i)
				if v.Type == ArrayType {
					t.Fatalf("element %d is still an array", i)
				}
				if v.Type != IntegerType || v.Int64 != want {
					t.Errorf("element %d = %v (%v), want %d", i, v.Int64, v.Type, want)
				}
			}
		})
	}
}

func TestFlattenTooDeep(t *testing.T) {
	arr := FromSlice(ints(1))
	for i := 0; i < MaxDepth+8; i++ {
		arr = FromSlice([]*Node{arr})
	}
	if err := arr.Flatten(); !errors.Is(err, ErrTooDeep) {
		t.Errorf("Flatten() = %v, want ErrTooDeep", err)
	}
}

func TestPreinsertionResize(t *testing.T) {
	arr := FromSlice(ints(1, 2, 3))
	arr.preinsertionResize(1, 2)
	if arr.Len() != 5 {
		t.Fatalf("len = %d, want 5", arr.Len())
	}
	if arr.At(1) != nil || arr.At(2) != nil {
		t.Error("new slots not placed at requested index")
	}
	for i, want := range map[int]int64{0: 1, 3: 2, 4: 3} {
		if v := arr.At(i); v == nil || v.Int64 != want {
			t.Errorf("element %d = %v, want %d", i, v, want)
		}
	}

	// appending at the end needs no shuffle
	end := FromSlice(ints(1))
	end.preinsertionResize(1, 3)
	if end.Len() != 4 || end.At(0).Int64 != 1 {
		t.Errorf("resize at end: len=%d first=%v", end.Len(), end.At(0))
	}
}

func TestPreinsertionResizeContract(t *testing.T) {
	for _, tt := range []struct {
		name       string
		idx, count int
	}{
		{"index out of bounds", 3, 1},
		{"zero count", 0, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			FromSlice(ints(1, 2)).preinsertionResize(tt.idx, tt.count)
		})
	}
}

func TestInsertErase(t *testing.T) {
	arr := FromSlice(ints(1, 4))
	arr.Insert(1, FromInt(2), FromInt(3))
	got := []int64{}
	for i := 0; i < arr.Len(); i++ {
		got = append(got, arr.At(i).Int64)
	}
	for i, want := range []int64{1, 2, 3, 4} {
		if got[i] != want {
			t.Fatalf("after insert: %v", got)
		}
	}
	arr.Erase(0)
	arr.Erase(arr.Len() - 1)
	if arr.Len() != 2 || arr.At(0).Int64 != 2 || arr.At(1).Int64 != 3 {
		t.Errorf("after erase: len=%d", arr.Len())
	}
}

func TestEqual(t *testing.T) {
	offPlus := &TimeOffset{Minutes: 60}
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"ints equal", FromInt(1), FromInt(1), true},
		{"ints unequal", FromInt(1), FromInt(2), false},
		{"no numeric coercion", FromInt(1), FromFloat(1.0), false},
		{"strings", FromString("a"), FromString("a"), true},
		{"bools", FromBool(true), FromBool(false), false},
		{"arrays equal", FromSlice(ints(1, 2)), FromSlice(ints(1, 2)), true},
		{"arrays length", FromSlice(ints(1)), FromSlice(ints(1, 2)), false},
		{"arrays nested", FromSlice([]*Node{FromSlice(ints(1))}), FromSlice([]*Node{FromSlice(ints(1))}), true},
		{"tables equal",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			true},
		{"tables key order significant",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(2)}, {Key: "a", Val: FromInt(1)}}),
			false},
		{"dates", FromDate(Date{2024, 1, 5}), FromDate(Date{2024, 1, 5}), true},
		{"naive vs offset date-time",
			FromDateTime(DateTime{Date: Date{2024, 1, 5}, Time: Time{12, 0, 0, 0}}),
			FromDateTime(DateTime{Date: Date{2024, 1, 5}, Time: Time{12, 0, 0, 0}, Offset: offPlus}),
			false},
	}
	t.Run("same node", func(t *testing.T) {
		arr := FromSlice(ints(1, 2, 3))
		if !Equal(arr, arr) {
			t.Error("Equal(a, a) = false")
		}
	})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			// symmetry
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.want)
			}
			if !Equal(tt.a, tt.a) || !Equal(tt.b, tt.b) {
				t.Error("Equal not reflexive")
			}
		})
	}
}
