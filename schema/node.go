package schema

// TypeInfo carries the attributes common to every schema node, whether
// primitive or group.
type TypeInfo struct {
	Name          string
	Repetition    *Repetition // nil only for the root group
	ConvertedType *ConvertedType
	LogicalType   *LogicalType
	ID            *int32
}

// ParquetType is a tagged union over the two kinds of schema node: a
// Primitive leaf that maps directly to a column, or a Group of child nodes.
//
// Exactly one of Primitive/Group is non-nil on a given value; IsPrimitive
// reports which.
type ParquetType struct {
	Info TypeInfo

	primitive *PrimitiveType
	group     *GroupType
}

// PrimitiveType is the payload of a Primitive-variant ParquetType.
type PrimitiveType struct {
	Physical   PhysicalType
	TypeLength int32 // -1 if absent
	Scale      int32 // -1 if absent
	Precision  int32 // -1 if absent
}

// GroupType is the payload of a Group-variant ParquetType.
type GroupType struct {
	Fields []ParquetType
}

// NewPrimitive constructs a Primitive-variant node.
func NewPrimitive(info TypeInfo, physical PhysicalType, typeLength, scale, precision int32) ParquetType {
	return ParquetType{
		Info: info,
		primitive: &PrimitiveType{
			Physical:   physical,
			TypeLength: typeLength,
			Scale:      scale,
			Precision:  precision,
		},
	}
}

// NewGroup constructs a Group-variant node.
func NewGroup(info TypeInfo, fields []ParquetType) ParquetType {
	return ParquetType{Info: info, group: &GroupType{Fields: fields}}
}

// IsPrimitive reports whether t is the Primitive variant.
func (t *ParquetType) IsPrimitive() bool { return t.primitive != nil }

// Primitive returns the Primitive payload and true, or the zero value and
// false if t is a Group.
func (t *ParquetType) Primitive() (PrimitiveType, bool) {
	if t.primitive == nil {
		return PrimitiveType{}, false
	}
	return *t.primitive, true
}

// Group returns the Group payload and true, or the zero value and false if t
// is a Primitive.
func (t *ParquetType) Group() (*GroupType, bool) {
	if t.group == nil {
		return nil, false
	}
	return t.group, true
}

// Repetition returns the node's repetition, defaulting to Required for the
// root group (whose IDL repetition is always cleared, per §4.2).
func (t *ParquetType) Repetition() Repetition {
	if t.Info.Repetition == nil {
		return RequiredRepetition
	}
	return *t.Info.Repetition
}
