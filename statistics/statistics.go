// Package statistics projects the optional min/max/null/distinct summary a
// parquet writer may attach to a page or column chunk into the leaf's native
// numeric type.
package statistics

import (
	"encoding/binary"
	"math"

	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/internal/errs"
	"github.com/znly/pq-core/schema"
)

// ValueStatistics is the typed summary of a set of column values.
type ValueStatistics[T any] struct {
	Min                *T
	Max                *T
	DistinctCount      *uint64
	NullCount          uint64
	IsMinMaxDeprecated bool
}

// Kind discriminates the Statistics sum type.
type Kind int8

const (
	NoStatistics Kind = iota
	BooleanStatistics
	Int32Statistics
	Int64Statistics
	FloatStatistics
	DoubleStatistics
)

// Statistics is a closed sum type over ValueStatistics for the physical
// types whose min/max this core can decode (Boolean, Int32, Int64, Float,
// Double). Int96, ByteArray, and FixedLenByteArray report NoStatistics,
// matching §4.4 ("return 'no statistics' (None) in this core").
type Statistics struct {
	Kind    Kind
	Boolean ValueStatistics[bool]
	Int32   ValueStatistics[int32]
	Int64   ValueStatistics[int64]
	Float   ValueStatistics[float32]
	Double  ValueStatistics[float64]
}

// FromFormat decodes the optional IDL statistics struct for a leaf of the
// given physical type. A nil input with no statistics present yields
// (nil, nil).
func FromFormat(stats *format.Statistics, physical schema.PhysicalType) (*Statistics, error) {
	if stats == nil {
		return nil, nil
	}

	var nullCount uint64
	if stats.NullCount != nil {
		if *stats.NullCount < 0 {
			return nil, errs.New(errs.InvalidFormat, "statistics: negative null_count %d", *stats.NullCount)
		}
		nullCount = uint64(*stats.NullCount)
	}

	var distinctCount *uint64
	if stats.DistinctCount != nil {
		if *stats.DistinctCount < 0 {
			return nil, errs.New(errs.InvalidFormat, "statistics: negative distinct_count %d", *stats.DistinctCount)
		}
		dc := uint64(*stats.DistinctCount)
		distinctCount = &dc
	}

	deprecated := stats.MinValue == nil && stats.MaxValue == nil
	minBytes, maxBytes := stats.MinValue, stats.MaxValue
	if deprecated {
		minBytes, maxBytes = stats.Min, stats.Max
	}

	switch physical {
	case schema.Boolean:
		return decodeTyped(nullCount, distinctCount, deprecated, minBytes, maxBytes, decodeBoolean, func(s *Statistics, v ValueStatistics[bool]) {
			s.Kind, s.Boolean = BooleanStatistics, v
		})
	case schema.Int32:
		return decodeTyped(nullCount, distinctCount, deprecated, minBytes, maxBytes, decodeInt32, func(s *Statistics, v ValueStatistics[int32]) {
			s.Kind, s.Int32 = Int32Statistics, v
		})
	case schema.Int64:
		return decodeTyped(nullCount, distinctCount, deprecated, minBytes, maxBytes, decodeInt64, func(s *Statistics, v ValueStatistics[int64]) {
			s.Kind, s.Int64 = Int64Statistics, v
		})
	case schema.Float:
		return decodeTyped(nullCount, distinctCount, deprecated, minBytes, maxBytes, decodeFloat, func(s *Statistics, v ValueStatistics[float32]) {
			s.Kind, s.Float = FloatStatistics, v
		})
	case schema.Double:
		return decodeTyped(nullCount, distinctCount, deprecated, minBytes, maxBytes, decodeDouble, func(s *Statistics, v ValueStatistics[float64]) {
			s.Kind, s.Double = DoubleStatistics, v
		})
	default:
		// Int96, ByteArray, FixedLenByteArray: no statistics in this core.
		return nil, nil
	}
}

func decodeTyped[T any](
	nullCount uint64,
	distinctCount *uint64,
	deprecated bool,
	minBytes, maxBytes []byte,
	decode func([]byte) (T, error),
	set func(*Statistics, ValueStatistics[T]),
) (*Statistics, error) {
	v := ValueStatistics[T]{
		NullCount:          nullCount,
		DistinctCount:      distinctCount,
		IsMinMaxDeprecated: deprecated,
	}
	if len(minBytes) > 0 {
		min, err := decode(minBytes)
		if err != nil {
			return nil, err
		}
		v.Min = &min
	}
	if len(maxBytes) > 0 {
		max, err := decode(maxBytes)
		if err != nil {
			return nil, err
		}
		v.Max = &max
	}
	s := &Statistics{}
	set(s, v)
	return s, nil
}

func decodeBoolean(b []byte) (bool, error) {
	return b[0] != 0, nil
}

func decodeInt32(b []byte) (int32, error) {
	const size = 4
	if len(b) < size {
		return 0, errs.New(errs.InvalidFormat, "statistics: expected %d bytes for INT32, got %d", size, len(b))
	}
	return int32(binary.LittleEndian.Uint32(b[:size])), nil
}

func decodeInt64(b []byte) (int64, error) {
	const size = 8
	if len(b) < size {
		return 0, errs.New(errs.InvalidFormat, "statistics: expected %d bytes for INT64, got %d", size, len(b))
	}
	return int64(binary.LittleEndian.Uint64(b[:size])), nil
}

func decodeFloat(b []byte) (float32, error) {
	const size = 4
	if len(b) < size {
		return 0, errs.New(errs.InvalidFormat, "statistics: expected %d bytes for FLOAT, got %d", size, len(b))
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b[:size])), nil
}

func decodeDouble(b []byte) (float64, error) {
	const size = 8
	if len(b) < size {
		return 0, errs.New(errs.InvalidFormat, "statistics: expected %d bytes for DOUBLE, got %d", size, len(b))
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:size])), nil
}
