package schema

// ColumnDescriptor is the derived, per-leaf summary the rest of the decode
// pipeline keys off of: the leaf's own Primitive type node, the maximum
// definition and repetition levels a value of this column can carry, and its
// dotted path from the schema root.
//
// Column descriptors are immutable once built and are shared, read-only, by
// every ColumnChunkMetadata that references the same leaf across row
// groups — callers must treat the pointee as read-only.
type ColumnDescriptor struct {
	PrimitiveType ParquetType // always the Primitive variant
	MaxDefLevel   int16
	MaxRepLevel   int16
	Path          ColumnPath
}

// SchemaDescriptor is the materialized schema: the root Group node, the
// ordered list of leaf descriptors (pre-order, i.e. the order columns are
// laid out in each row group), and a parallel index mapping each leaf back
// to the root-level field it descends from.
type SchemaDescriptor struct {
	Root       ParquetType // always the Group variant
	Leaves     []*ColumnDescriptor
	LeafToBase []int
}

// NumLeaves returns the number of leaf columns in the schema.
func (s *SchemaDescriptor) NumLeaves() int { return len(s.Leaves) }

// Leaf returns the column descriptor for leaf i.
func (s *SchemaDescriptor) Leaf(i int) *ColumnDescriptor { return s.Leaves[i] }
