package format

import "sort"

// SortKeyValueMetadata sorts the slice of KeyValue entries by key, then by
// value, so that the resulting order is deterministic regardless of the
// order a writer emitted them in.
func SortKeyValueMetadata(kv []KeyValue) {
	sort.Slice(kv, func(i, j int) bool {
		switch {
		case kv[i].Key < kv[j].Key:
			return true
		case kv[i].Key > kv[j].Key:
			return false
		default:
			return valueOf(kv[i].Value) < valueOf(kv[j].Value)
		}
	})
}

func valueOf(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
