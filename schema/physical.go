// Package schema materializes the flat, pre-order schema list a parquet
// footer carries into a typed tree, and derives the per-leaf column
// descriptors (path, max definition level, max repetition level) that the
// rest of the decode pipeline keys off of.
package schema

import (
	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/internal/errs"
)

func newEnumError(kind string, tag int32) *errs.Error {
	return errs.New(errs.InvalidFormat, "%s: tag %d out of range", kind, tag)
}

// PhysicalType is the closed set of on-disk value representations.
type PhysicalType int8

const (
	Boolean PhysicalType = iota
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

func (t PhysicalType) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN_PHYSICAL_TYPE"
	}
}

// physicalTypes is indexed by format.Type and range-checked by
// PhysicalTypeFromFormat; any value outside this table is a format error, not
// a silently-defaulted one.
var physicalTypes = [...]PhysicalType{
	format.Boolean:           Boolean,
	format.Int32:             Int32,
	format.Int64:             Int64,
	format.Int96:             Int96,
	format.Float:             Float,
	format.Double:            Double,
	format.ByteArray:         ByteArray,
	format.FixedLenByteArray: FixedLenByteArray,
}

// PhysicalTypeFromFormat range-checks and converts a raw IDL Type tag.
func PhysicalTypeFromFormat(t format.Type) (PhysicalType, error) {
	if t < 0 || int(t) >= len(physicalTypes) {
		return 0, newEnumError("physical type", int32(t))
	}
	return physicalTypes[t], nil
}

// Repetition is the closed set of field multiplicities.
type Repetition int8

const (
	RequiredRepetition Repetition = iota
	OptionalRepetition
	RepeatedRepetition
)

func (r Repetition) String() string {
	switch r {
	case RequiredRepetition:
		return "REQUIRED"
	case OptionalRepetition:
		return "OPTIONAL"
	case RepeatedRepetition:
		return "REPEATED"
	default:
		return "UNKNOWN_REPETITION"
	}
}

var repetitions = [...]Repetition{
	format.Required: RequiredRepetition,
	format.Optional: OptionalRepetition,
	format.Repeated: RepeatedRepetition,
}

// RepetitionFromFormat range-checks and converts a raw IDL
// FieldRepetitionType tag.
func RepetitionFromFormat(r format.FieldRepetitionType) (Repetition, error) {
	if r < 0 || int(r) >= len(repetitions) {
		return 0, newEnumError("repetition type", int32(r))
	}
	return repetitions[r], nil
}

// ConvertedType is the legacy logical-annotation enum.
type ConvertedType int8

const (
	ConvertedUtf8 ConvertedType = iota
	ConvertedMap
	ConvertedMapKeyValue
	ConvertedList
	ConvertedEnum
	ConvertedDecimal
	ConvertedDate
	ConvertedTimeMillis
	ConvertedTimeMicros
	ConvertedTimestampMillis
	ConvertedTimestampMicros
	ConvertedUint8
	ConvertedUint16
	ConvertedUint32
	ConvertedUint64
	ConvertedInt8
	ConvertedInt16
	ConvertedInt32
	ConvertedInt64
	ConvertedJson
	ConvertedBson
	ConvertedInterval
)

var convertedTypes = [...]ConvertedType{
	format.Utf8:            ConvertedUtf8,
	format.Map:              ConvertedMap,
	format.MapKeyValue:      ConvertedMapKeyValue,
	format.List:             ConvertedList,
	format.Enum:             ConvertedEnum,
	format.Decimal:          ConvertedDecimal,
	format.Date:             ConvertedDate,
	format.TimeMillis:       ConvertedTimeMillis,
	format.TimeMicros:       ConvertedTimeMicros,
	format.TimestampMillis:  ConvertedTimestampMillis,
	format.TimestampMicros:  ConvertedTimestampMicros,
	format.Uint8:            ConvertedUint8,
	format.Uint16:           ConvertedUint16,
	format.Uint32:           ConvertedUint32,
	format.Uint64:           ConvertedUint64,
	format.Int8:             ConvertedInt8,
	format.Int16:            ConvertedInt16,
	format.Int32Converted:   ConvertedInt32,
	format.Int64Converted:   ConvertedInt64,
	format.Json:             ConvertedJson,
	format.Bson:             ConvertedBson,
	format.Interval:         ConvertedInterval,
}

// ConvertedTypeFromFormat range-checks and converts a raw IDL ConvertedType
// tag.
func ConvertedTypeFromFormat(c format.ConvertedType) (ConvertedType, error) {
	if c < 0 || int(c) >= len(convertedTypes) {
		return 0, newEnumError("converted type", int32(c))
	}
	return convertedTypes[c], nil
}

// TimeUnit is the closed set of units LogicalType's Time/Timestamp variants
// may carry.
type TimeUnit int8

const (
	Millis TimeUnit = iota
	Micros
	Nanos
)

// LogicalType is the newer type annotation, carrying parameters for a subset
// of its variants.
type LogicalType struct {
	Kind      LogicalKind
	Decimal   DecimalParams
	Time      TimeParams
	Timestamp TimeParams
	Integer   IntegerParams
}

type LogicalKind int8

const (
	LogicalString LogicalKind = iota
	LogicalMap
	LogicalList
	LogicalEnum
	LogicalDecimal
	LogicalDate
	LogicalTime
	LogicalTimestamp
	LogicalInteger
	LogicalUnknown
	LogicalJson
	LogicalBson
	LogicalUUID
)

type DecimalParams struct {
	Scale     int32
	Precision int32
}

type TimeParams struct {
	IsAdjustedToUTC bool
	Unit            TimeUnit
}

type IntegerParams struct {
	BitWidth int8
	IsSigned bool
}

// LogicalTypeFromFormat projects a decoded Thrift LogicalType union into the
// internal sum type. A nil input yields (nil, nil): no logical type was set.
func LogicalTypeFromFormat(lt *format.LogicalType) (*LogicalType, error) {
	if lt == nil {
		return nil, nil
	}
	switch {
	case lt.String != nil:
		return &LogicalType{Kind: LogicalString}, nil
	case lt.Map != nil:
		return &LogicalType{Kind: LogicalMap}, nil
	case lt.List != nil:
		return &LogicalType{Kind: LogicalList}, nil
	case lt.Enum != nil:
		return &LogicalType{Kind: LogicalEnum}, nil
	case lt.Decimal != nil:
		return &LogicalType{Kind: LogicalDecimal, Decimal: DecimalParams{
			Scale:     lt.Decimal.Scale,
			Precision: lt.Decimal.Precision,
		}}, nil
	case lt.Date != nil:
		return &LogicalType{Kind: LogicalDate}, nil
	case lt.Time != nil:
		unit, err := timeUnitFromFormat(lt.Time.Unit)
		if err != nil {
			return nil, err
		}
		return &LogicalType{Kind: LogicalTime, Time: TimeParams{
			IsAdjustedToUTC: lt.Time.IsAdjustedToUTC,
			Unit:            unit,
		}}, nil
	case lt.Timestamp != nil:
		unit, err := timeUnitFromFormat(lt.Timestamp.Unit)
		if err != nil {
			return nil, err
		}
		return &LogicalType{Kind: LogicalTimestamp, Timestamp: TimeParams{
			IsAdjustedToUTC: lt.Timestamp.IsAdjustedToUTC,
			Unit:            unit,
		}}, nil
	case lt.Integer != nil:
		return &LogicalType{Kind: LogicalInteger, Integer: IntegerParams{
			BitWidth: lt.Integer.BitWidth,
			IsSigned: lt.Integer.IsSigned,
		}}, nil
	case lt.Unknown != nil:
		return &LogicalType{Kind: LogicalUnknown}, nil
	case lt.Json != nil:
		return &LogicalType{Kind: LogicalJson}, nil
	case lt.Bson != nil:
		return &LogicalType{Kind: LogicalBson}, nil
	case lt.UUID != nil:
		return &LogicalType{Kind: LogicalUUID}, nil
	default:
		return nil, newEnumError("logical type union", -1)
	}
}

func timeUnitFromFormat(u format.TimeUnit) (TimeUnit, error) {
	switch {
	case u.Millis != nil:
		return Millis, nil
	case u.Micros != nil:
		return Micros, nil
	case u.Nanos != nil:
		return Nanos, nil
	default:
		return 0, newEnumError("time unit", -1)
	}
}
