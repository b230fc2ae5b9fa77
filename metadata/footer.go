package metadata

import (
	"encoding/binary"

	"github.com/znly/pq-core/internal/errs"
	"github.com/znly/pq-core/source"
)

const (
	footerTrailerSize = 8
	magic             = "PAR1"
)

// LocateFooterMetadata validates the trailing 8-byte trailer of src
// (metadata_length:i32 LE || "PAR1") and returns the file-absolute byte
// range of the encoded FileMetaData that precedes it (§4.1).
func LocateFooterMetadata(src source.Source) (offset, length int64, err error) {
	n := src.Len()
	if n < footerTrailerSize {
		return 0, 0, errs.New(errs.InvalidFormat, "file is %d bytes, too small to hold a footer trailer", n)
	}

	trailer, err := src.ReadRange(n-footerTrailerSize, footerTrailerSize)
	if err != nil {
		return 0, 0, err
	}

	if string(trailer[4:8]) != magic {
		return 0, 0, errs.New(errs.InvalidFormat, "corrupt footer: trailer magic is %q, not %q", trailer[4:8], magic)
	}

	metadataLength := int64(int32(binary.LittleEndian.Uint32(trailer[0:4])))
	if metadataLength < 0 {
		return 0, 0, errs.New(errs.InvalidFormat, "corrupt footer: negative metadata length %d", metadataLength)
	}
	if metadataLength+footerTrailerSize > n {
		return 0, 0, errs.New(errs.InvalidFormat,
			"reported metadata length %d larger than file (%d bytes)", metadataLength, n)
	}

	return n - footerTrailerSize - metadataLength, metadataLength, nil
}
