package schema

import (
	"github.com/google/uuid"

	"github.com/znly/pq-core/internal/errs"
)

// UUIDTypeLength is the fixed byte width the format requires for a
// FixedLenByteArray leaf annotated with the UUID logical type.
const UUIDTypeLength = 16

// validateUUID checks that a leaf whose LogicalType is LogicalUUID carries
// the physical representation the format requires: FIXED_LEN_BYTE_ARRAY(16).
// The format spec fixes this pairing; a writer that set the UUID
// annotation on anything else produced an invalid file.
func validateUUID(primitive PrimitiveType) error {
	if primitive.Physical != FixedLenByteArray || primitive.TypeLength != UUIDTypeLength {
		return errs.New(errs.InvalidFormat,
			"UUID logical type requires FIXED_LEN_BYTE_ARRAY(%d), got %s(%d)",
			UUIDTypeLength, primitive.Physical, primitive.TypeLength)
	}
	return nil
}

// DecodeUUID parses a leaf's raw 16-byte value into a uuid.UUID. Statistics
// projection (§4.4) stops at "no statistics" for FixedLenByteArray, so this
// is the one hook where a caller holding raw value bytes for a UUID leaf —
// e.g. a dictionary page entry — can render them.
func DecodeUUID(b []byte) (uuid.UUID, error) {
	if len(b) != UUIDTypeLength {
		return uuid.UUID{}, errs.New(errs.InvalidFormat, "UUID value must be %d bytes, got %d", UUIDTypeLength, len(b))
	}
	return uuid.FromBytes(b)
}
