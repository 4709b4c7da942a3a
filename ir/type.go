package ir

import "fmt"

// Type discriminates the variants of a Node. The tag is fixed at
// construction and never changes.
type Type int

const (
	// NoneType is not a valid node type; it stands for "unspecified"
	// where an expected type may be inferred, as in IsHomogeneous.
	NoneType Type = iota
	TableType
	ArrayType
	StringType
	IntegerType
	FloatType
	BoolType
	DateType
	TimeType
	DateTimeType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NoneType:     "None",
		TableType:    "Table",
		ArrayType:    "Array",
		StringType:   "String",
		IntegerType:  "Integer",
		FloatType:    "Float",
		BoolType:     "Bool",
		DateType:     "Date",
		TimeType:     "Time",
		DateTimeType: "DateTime",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"None":     NoneType,
		"Table":    TableType,
		"Array":    ArrayType,
		"String":   StringType,
		"Integer":  IntegerType,
		"Float":    FloatType,
		"Bool":     BoolType,
		"Date":     DateType,
		"Time":     TimeType,
		"DateTime": DateTimeType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		TableType,
		ArrayType,
		StringType,
		IntegerType,
		FloatType,
		BoolType,
		DateType,
		TimeType,
		DateTimeType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case TableType, ArrayType:
		return false
	default:
		return true
	}
}
