package schema

import (
	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/internal/errs"
)

// Build consumes the flat, pre-order list of schema elements a parquet
// footer carries (elements[0] is always the root group) and produces a
// typed tree plus the derived leaf descriptors.
//
// The recursive descent consumes the list exactly once; if any elements are
// left over (or too few were present to satisfy every group's declared
// NumChildren), Build returns InvalidFormat rather than silently truncating
// the tree.
func Build(elements []format.SchemaElement) (*SchemaDescriptor, error) {
	if len(elements) == 0 {
		return nil, errs.New(errs.InvalidFormat, "schema has no elements")
	}

	root, consumed, err := buildNode(elements, 0, true)
	if err != nil {
		return nil, err
	}
	if consumed != len(elements) {
		return nil, errs.New(errs.InvalidFormat,
			"expected exactly one root node consuming all %d schema elements, consumed %d", len(elements), consumed)
	}

	group, _ := root.Group()
	b := &treeBuilder{}
	for i := range group.Fields {
		b.walk(&group.Fields[i], 0, 0, i)
		b.popPath()
	}

	return &SchemaDescriptor{
		Root:       root,
		Leaves:     b.leaves,
		LeafToBase: b.leafToBase,
	}, nil
}

// buildNode builds the node rooted at elements[i], returning it along with
// the number of elements consumed (itself plus its whole subtree).
func buildNode(elements []format.SchemaElement, i int, isRoot bool) (ParquetType, int, error) {
	el := &elements[i]

	info, err := buildTypeInfo(el, isRoot)
	if err != nil {
		return ParquetType{}, 0, err
	}

	if el.GetNumChildren() <= 0 && !isRoot {
		// Primitive leaf.
		if el.RepetitionType == nil {
			return ParquetType{}, 0, errs.New(errs.InvalidFormat,
				"schema element %q: primitive node is missing a repetition type", el.Name)
		}
		if el.Type == nil {
			return ParquetType{}, 0, errs.New(errs.InvalidFormat,
				"schema element %q: primitive node is missing a physical type", el.Name)
		}
		physical, err := PhysicalTypeFromFormat(el.GetType())
		if err != nil {
			return ParquetType{}, 0, err
		}
		node := NewPrimitive(info, physical, el.GetTypeLength(), el.GetScale(), el.GetPrecision())
		if info.LogicalType != nil && info.LogicalType.Kind == LogicalUUID {
			primitive, _ := node.Primitive()
			if err := validateUUID(primitive); err != nil {
				return ParquetType{}, 0, err
			}
		}
		return node, 1, nil
	}

	// Group.
	n := int(el.GetNumChildren())
	fields := make([]ParquetType, n)
	consumed := 1
	for c := 0; c < n; c++ {
		if i+consumed >= len(elements) {
			return ParquetType{}, 0, errs.New(errs.InvalidFormat,
				"schema element %q: declares %d children but only %d elements remain", el.Name, n, len(elements)-(i+consumed))
		}
		field, childConsumed, err := buildNode(elements, i+consumed, false)
		if err != nil {
			return ParquetType{}, 0, err
		}
		fields[c] = field
		consumed += childConsumed
	}

	return NewGroup(info, fields), consumed, nil
}

func buildTypeInfo(el *format.SchemaElement, isRoot bool) (TypeInfo, error) {
	info := TypeInfo{Name: el.Name}

	if el.ConvertedType != nil {
		ct, err := ConvertedTypeFromFormat(*el.ConvertedType)
		if err != nil {
			return TypeInfo{}, err
		}
		info.ConvertedType = &ct
	}

	if el.LogicalType != nil {
		lt, err := LogicalTypeFromFormat(el.LogicalType)
		if err != nil {
			return TypeInfo{}, err
		}
		info.LogicalType = lt
	}

	if el.FieldID != nil {
		id := el.GetFieldID()
		info.ID = &id
	}

	if isRoot {
		// The format allows the root's repetition to be omitted, and some
		// writers emit REQUIRED or REPEATED anyway; it is cleared
		// regardless of what was present on the wire (§4.2).
		info.Repetition = nil
		return info, nil
	}

	if el.RepetitionType != nil {
		rep, err := RepetitionFromFormat(*el.RepetitionType)
		if err != nil {
			return TypeInfo{}, err
		}
		info.Repetition = &rep
	}
	return info, nil
}

// treeBuilder performs the single pre-order walk that turns the typed tree
// into leaf descriptors, maintaining a path stack that is popped once per
// child return rather than once per group, per §4.2.
type treeBuilder struct {
	path       ColumnPath
	leaves     []*ColumnDescriptor
	leafToBase []int
}

func (b *treeBuilder) popPath() {
	b.path = b.path[:len(b.path)-1]
}

func (b *treeBuilder) walk(node *ParquetType, maxDef, maxRep int16, rootFieldIndex int) {
	b.path = append(b.path, node.Info.Name)

	switch node.Repetition() {
	case OptionalRepetition:
		maxDef++
	case RepeatedRepetition:
		maxDef++
		maxRep++
	}

	if node.IsPrimitive() {
		path := make(ColumnPath, len(b.path))
		copy(path, b.path)
		b.leaves = append(b.leaves, &ColumnDescriptor{
			PrimitiveType: *node,
			MaxDefLevel:   maxDef,
			MaxRepLevel:   maxRep,
			Path:          path,
		})
		b.leafToBase = append(b.leafToBase, rootFieldIndex)
		return
	}

	group, _ := node.Group()
	for i := range group.Fields {
		b.walk(&group.Fields[i], maxDef, maxRep, rootFieldIndex)
		b.popPath()
	}
}
