package schema

import "strings"

// ColumnPath is the ordered, dotted path from a root field to a leaf,
// e.g. ["document", "links", "backward"].
type ColumnPath []string

func (path ColumnPath) append(name string) ColumnPath {
	return append(path[:len(path):len(path)], name)
}

// String renders the path the way parquet tools conventionally print it.
func (path ColumnPath) String() string {
	return strings.Join(path, ".")
}

// Equal reports whether path and other name the same sequence of fields.
func (path ColumnPath) Equal(other ColumnPath) bool {
	if len(path) != len(other) {
		return false
	}
	for i := range path {
		if path[i] != other[i] {
			return false
		}
	}
	return true
}
