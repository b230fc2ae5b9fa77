package page

import (
	"bytes"

	"github.com/znly/pq-core/compress"
	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/internal/errs"
	"github.com/znly/pq-core/schema"
	"github.com/znly/pq-core/statistics"
)

// decodePage implements §4.7's decode_page: it optionally decompresses body
// (accounting for data-page-v2's uncompressed rep/def-level prefix) and
// projects the IDL page header into a typed Page.
func decodePage(header *format.PageHeader, body []byte, physical schema.PhysicalType, decompressor compress.BufferDecompressor) (*Page, error) {
	prefixLen := int32(0)
	canDecompress := true
	if v2 := header.DataPageHeaderV2; v2 != nil {
		prefixLen = v2.DefinitionLevelsByteLength + v2.RepetitionLevelsByteLength
		canDecompress = v2.GetIsCompressed()
	}

	buffer := body
	if decompressor != nil && canDecompress {
		if int32(len(body)) < prefixLen {
			return nil, errs.New(errs.InvalidFormat, "page body shorter than its level prefix: %d < %d", len(body), prefixLen)
		}
		out := bytes.NewBuffer(make([]byte, 0, header.UncompressedPageSize))
		out.Write(body[:prefixLen])
		n, err := decompressor.Decompress(out, body[prefixLen:], int(header.UncompressedPageSize-prefixLen))
		if err != nil {
			return nil, err
		}
		if int32(prefixLen)+int32(n) != header.UncompressedPageSize {
			return nil, errs.New(errs.InvalidFormat,
				"decompressed page size %d does not match header's uncompressed_page_size %d", prefixLen+int32(n), header.UncompressedPageSize)
		}
		buffer = out.Bytes()
	}

	pageType, err := schema.PageTypeFromFormat(header.Type)
	if err != nil {
		return nil, err
	}

	switch pageType {
	case schema.DictionaryPage:
		h := header.DictionaryPageHeader
		if h == nil {
			return nil, errs.New(errs.InvalidFormat, "dictionary page: missing dictionary_page_header")
		}
		encoding, err := schema.EncodingFromFormat(h.Encoding)
		if err != nil {
			return nil, err
		}
		return &Page{
			Kind:      DictionaryPage,
			Buffer:    buffer,
			NumValues: h.NumValues,
			Encoding:  encoding,
			IsSorted:  h.GetIsSorted(),
		}, nil

	case schema.DataPageV1:
		h := header.DataPageHeader
		if h == nil {
			return nil, errs.New(errs.InvalidFormat, "data page: missing data_page_header")
		}
		encoding, err := schema.EncodingFromFormat(h.Encoding)
		if err != nil {
			return nil, err
		}
		defEnc, err := schema.EncodingFromFormat(h.DefinitionLevelEncoding)
		if err != nil {
			return nil, err
		}
		repEnc, err := schema.EncodingFromFormat(h.RepetitionLevelEncoding)
		if err != nil {
			return nil, err
		}
		stats, err := statistics.FromFormat(h.Statistics, physical)
		if err != nil {
			return nil, err
		}
		return &Page{
			Kind:                    DataPage,
			Buffer:                  buffer,
			NumValues:               h.NumValues,
			Encoding:                encoding,
			DefinitionLevelEncoding: defEnc,
			RepetitionLevelEncoding: repEnc,
			Statistics:              stats,
		}, nil

	case schema.DataPageV2:
		h := header.DataPageHeaderV2
		if h == nil {
			return nil, errs.New(errs.InvalidFormat, "data page v2: missing data_page_header_v2")
		}
		encoding, err := schema.EncodingFromFormat(h.Encoding)
		if err != nil {
			return nil, err
		}
		stats, err := statistics.FromFormat(h.Statistics, physical)
		if err != nil {
			return nil, err
		}
		return &Page{
			Kind:                DataPageV2,
			Buffer:              buffer,
			NumValues:           h.NumValues,
			Encoding:            encoding,
			NumNulls:            h.NumNulls,
			NumRows:             h.NumRows,
			DefLevelsByteLength: h.DefinitionLevelsByteLength,
			RepLevelsByteLength: h.RepetitionLevelsByteLength,
			IsCompressed:        h.GetIsCompressed(),
			Statistics:          stats,
		}, nil

	default:
		// IndexPage never reaches decodePage: the iterator skips it before
		// calling in (§4.7 step 5).
		return nil, errs.New(errs.InvalidFormat, "unexpected page type %s in decode_page", pageType)
	}
}
