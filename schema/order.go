package schema

// SortOrderOf derives the SortOrder of a leaf from its logical type,
// converted type, and physical type, in that precedence (§4.3).
func SortOrderOf(leaf *ColumnDescriptor) SortOrder {
	primitive, _ := leaf.PrimitiveType.Primitive()
	info := leaf.PrimitiveType.Info

	if info.LogicalType != nil {
		if order, ok := sortOrderFromLogical(info.LogicalType); ok {
			return order
		}
	}
	if info.ConvertedType != nil {
		if order, ok := sortOrderFromConverted(*info.ConvertedType); ok {
			return order
		}
	}
	return sortOrderFromPhysical(primitive.Physical)
}

func sortOrderFromLogical(lt *LogicalType) (SortOrder, bool) {
	switch lt.Kind {
	case LogicalString, LogicalEnum, LogicalJson, LogicalBson, LogicalUUID:
		return SortUnsigned, true
	case LogicalInteger:
		if lt.Integer.IsSigned {
			return SortSigned, true
		}
		return SortUnsigned, true
	case LogicalDecimal, LogicalDate, LogicalTime, LogicalTimestamp:
		return SortSigned, true
	case LogicalMap, LogicalList, LogicalUnknown:
		return SortUndefined, true
	default:
		return SortUndefined, false
	}
}

func sortOrderFromConverted(ct ConvertedType) (SortOrder, bool) {
	switch ct {
	case ConvertedUtf8, ConvertedJson, ConvertedBson, ConvertedEnum:
		return SortUnsigned, true
	case ConvertedInt8, ConvertedInt16, ConvertedInt32, ConvertedInt64:
		return SortSigned, true
	case ConvertedUint8, ConvertedUint16, ConvertedUint32, ConvertedUint64:
		return SortUnsigned, true
	case ConvertedDecimal, ConvertedDate,
		ConvertedTimeMillis, ConvertedTimeMicros,
		ConvertedTimestampMillis, ConvertedTimestampMicros:
		return SortSigned, true
	case ConvertedInterval, ConvertedList, ConvertedMap, ConvertedMapKeyValue:
		return SortUndefined, true
	default:
		return SortUndefined, false
	}
}

func sortOrderFromPhysical(t PhysicalType) SortOrder {
	switch t {
	case Boolean:
		return SortUnsigned
	case Int32, Int64, Float, Double:
		return SortSigned
	case Int96:
		return SortUndefined
	case ByteArray, FixedLenByteArray:
		return SortUnsigned
	default:
		return SortUndefined
	}
}

// ColumnOrdersFor derives a ColumnOrder per leaf. It is the caller's
// responsibility (metadata.Build and metadata.Decode) to decide whether the file
// carries column orders at all (§4.3: "emit... when the file carries any
// column_orders, else omit").
func ColumnOrdersFor(leaves []*ColumnDescriptor) []ColumnOrder {
	orders := make([]ColumnOrder, len(leaves))
	for i, leaf := range leaves {
		orders[i] = ColumnOrder{Defined: true, Order: SortOrderOf(leaf)}
	}
	return orders
}
