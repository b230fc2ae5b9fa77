package schema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/schema"
)

func ptr[T any](v T) *T { return &v }

func TestBuildFlatSchema(t *testing.T) {
	elements := []format.SchemaElement{
		{Name: "root", NumChildren: ptr(int32(2))},
		{Name: "id", Type: ptrType(format.Int64), RepetitionType: ptrRep(format.Required)},
		{Name: "name", Type: ptrType(format.ByteArray), RepetitionType: ptrRep(format.Optional)},
	}

	descr, err := schema.Build(elements)
	require.NoError(t, err)
	require.Equal(t, 2, descr.NumLeaves())

	assert.Equal(t, schema.ColumnPath{"id"}, descr.Leaf(0).Path)
	assert.Equal(t, int16(0), descr.Leaf(0).MaxDefLevel)
	assert.Equal(t, int16(0), descr.Leaf(0).MaxRepLevel)

	assert.Equal(t, schema.ColumnPath{"name"}, descr.Leaf(1).Path)
	assert.Equal(t, int16(1), descr.Leaf(1).MaxDefLevel)
	assert.Equal(t, int16(0), descr.Leaf(1).MaxRepLevel)

	assert.Equal(t, []int{0, 1}, descr.LeafToBase)
}

// TestBuildDepth3Paths guards against the path-stack bug flagged in the
// design notes: a schema deep enough that popping once per child (not once
// per group) could plausibly misattribute a path if the pop discipline were
// wrong.
func TestBuildDepth3Paths(t *testing.T) {
	elements := []format.SchemaElement{
		{Name: "root", NumChildren: ptr(int32(1))},
		{Name: "a", NumChildren: ptr(int32(1)), RepetitionType: ptrRep(format.Required)},
		{Name: "b", NumChildren: ptr(int32(2)), RepetitionType: ptrRep(format.Optional)},
		{Name: "c1", Type: ptrType(format.Int32), RepetitionType: ptrRep(format.Required)},
		{Name: "c2", Type: ptrType(format.Int32), RepetitionType: ptrRep(format.Repeated)},
	}

	descr, err := schema.Build(elements)
	require.NoError(t, err)
	require.Equal(t, 2, descr.NumLeaves())

	assert.Equal(t, schema.ColumnPath{"a", "b", "c1"}, descr.Leaf(0).Path)
	assert.Equal(t, int16(1), descr.Leaf(0).MaxDefLevel) // b is Optional
	assert.Equal(t, int16(0), descr.Leaf(0).MaxRepLevel)

	assert.Equal(t, schema.ColumnPath{"a", "b", "c2"}, descr.Leaf(1).Path)
	assert.Equal(t, int16(2), descr.Leaf(1).MaxDefLevel) // b Optional + c2 Repeated
	assert.Equal(t, int16(1), descr.Leaf(1).MaxRepLevel)

	// The full set of leaf paths, compared structurally rather than one
	// leaf at a time: catches a leaf being dropped, duplicated, or reordered
	// in ways the per-leaf assertions above would not.
	wantPaths := []schema.ColumnPath{{"a", "b", "c1"}, {"a", "b", "c2"}}
	gotPaths := make([]schema.ColumnPath, descr.NumLeaves())
	for i := range gotPaths {
		gotPaths[i] = descr.Leaf(i).Path
	}
	if diff := cmp.Diff(wantPaths, gotPaths); diff != "" {
		t.Errorf("leaf paths mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEmptyRootGroup(t *testing.T) {
	elements := []format.SchemaElement{
		{Name: "root"},
	}
	descr, err := schema.Build(elements)
	require.NoError(t, err)
	assert.Equal(t, 0, descr.NumLeaves())
	group, ok := descr.Root.Group()
	require.True(t, ok)
	assert.Len(t, group.Fields, 0)
}

func TestBuildRootRepetitionIsCleared(t *testing.T) {
	elements := []format.SchemaElement{
		{Name: "root", RepetitionType: ptrRep(format.Repeated)},
	}
	descr, err := schema.Build(elements)
	require.NoError(t, err)
	assert.Equal(t, schema.RequiredRepetition, descr.Root.Repetition())
}

func TestBuildNoElements(t *testing.T) {
	_, err := schema.Build(nil)
	require.Error(t, err)
}

func TestBuildMissingRepetitionOnPrimitive(t *testing.T) {
	elements := []format.SchemaElement{
		{Name: "root", NumChildren: ptr(int32(1))},
		{Name: "leaf", Type: ptrType(format.Int32)},
	}
	_, err := schema.Build(elements)
	require.Error(t, err)
}

func TestBuildMissingPhysicalTypeOnPrimitive(t *testing.T) {
	elements := []format.SchemaElement{
		{Name: "root", NumChildren: ptr(int32(1))},
		{Name: "leaf", RepetitionType: ptrRep(format.Required)},
	}
	_, err := schema.Build(elements)
	require.Error(t, err)
}

func TestBuildPartialConsumption(t *testing.T) {
	elements := []format.SchemaElement{
		{Name: "root", NumChildren: ptr(int32(1))},
		{Name: "a", Type: ptrType(format.Int32), RepetitionType: ptrRep(format.Required)},
		{Name: "b", Type: ptrType(format.Int32), RepetitionType: ptrRep(format.Required)},
	}
	_, err := schema.Build(elements)
	require.Error(t, err)
}

func ptrType(t format.Type) *format.Type { return &t }
func ptrRep(r format.FieldRepetitionType) *format.FieldRepetitionType { return &r }
