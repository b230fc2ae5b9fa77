package page

import (
	"io"

	"github.com/znly/pq-core/compress"
	"github.com/znly/pq-core/format"
	"github.com/znly/pq-core/internal/errs"
	"github.com/znly/pq-core/internal/idl"
	"github.com/znly/pq-core/metadata"
	"github.com/znly/pq-core/schema"
	"github.com/znly/pq-core/source"
)

// Iterator walks one column chunk's byte range, parsing page headers and
// emitting decoded pages. It implements only the Values state of §4.7; the
// offset-index-driven Pages state is an optional extension this core does
// not build.
//
// An Iterator is not safe for concurrent use; the byte Source it reads from
// must be.
type Iterator struct {
	src          source.Source
	physical     schema.PhysicalType
	decompressor compress.BufferDecompressor

	cursor    int64
	remaining int64

	peeked      *format.PageHeader
	peekedBytes int64

	err error
}

// NewIterator constructs an Iterator over chunk's byte range within src.
// decompressor may be nil, meaning pages are never decompressed (the chunk
// is known to be Uncompressed).
func NewIterator(src source.Source, chunk *metadata.ColumnChunkMetadata, decompressor compress.BufferDecompressor) *Iterator {
	br := chunk.ByteRange()
	return &Iterator{
		src:          src,
		physical:     chunk.ColumnType,
		decompressor: decompressor,
		cursor:       br.Offset,
		remaining:    br.Length,
	}
}

// readHeader parses one page header starting at it.cursor, tracking exactly
// how many bytes the compact-protocol decoder consumed (§4.7 step 3, Design
// Note "Header-size tracking").
func (it *Iterator) readHeader() (*format.PageHeader, int64, error) {
	r := it.src.NewReader(it.cursor, it.remaining)
	dec := idl.NewDecoder(r)
	var header format.PageHeader
	n, err := dec.Decode(&header)
	if err != nil {
		if err == io.EOF {
			return nil, n, errs.Wrap(errs.Eof, err, "reading page header at offset %d", it.cursor)
		}
		return nil, n, errs.Wrap(errs.InvalidFormat, err, "decoding page header at offset %d", it.cursor)
	}
	return &header, n, nil
}

// GetNextPage returns the next page in the chunk, or (nil, nil) when the
// chunk is exhausted. Once it returns an error the iterator is inert: every
// subsequent call returns the same error (§7).
func (it *Iterator) GetNextPage() (*Page, error) {
	if it.err != nil {
		return nil, it.err
	}
	page, err := it.getNextPage()
	if err != nil {
		it.err = err
	}
	return page, err
}

func (it *Iterator) getNextPage() (*Page, error) {
	for {
		if it.remaining == 0 {
			return nil, nil
		}

		header, bodyOffset, err := it.nextHeader()
		if err != nil {
			return nil, err
		}

		dataLen := int64(header.CompressedPageSize)
		if dataLen < 0 {
			return nil, errs.New(errs.InvalidFormat, "negative compressed_page_size %d", header.CompressedPageSize)
		}
		if dataLen > it.remaining {
			return nil, errs.New(errs.Eof, "page body of %d bytes exceeds %d remaining in chunk", dataLen, it.remaining)
		}

		it.cursor += dataLen
		it.remaining -= dataLen

		if header.Type == format.IndexPage {
			continue
		}

		body, err := it.src.ReadRange(bodyOffset, dataLen)
		if err != nil {
			return nil, err
		}
		return decodePage(header, body, it.physical, it.decompressor)
	}
}

// nextHeader consumes the peeked header if one is cached, else parses one
// at the current cursor. Either way it advances cursor/remaining by the
// header's byte size and returns the file-absolute offset the page body
// begins at.
func (it *Iterator) nextHeader() (*format.PageHeader, int64, error) {
	if it.peeked != nil {
		header := it.peeked
		it.cursor += it.peekedBytes
		it.remaining -= it.peekedBytes
		it.peeked, it.peekedBytes = nil, 0
		return header, it.cursor, nil
	}

	header, n, err := it.readHeader()
	if err != nil {
		return nil, 0, err
	}
	it.cursor += n
	it.remaining -= n
	return header, it.cursor, nil
}

// PeekNextPage parses the next page's header without consuming its body and
// reports a summary of it. Calling GetNextPage (or SkipNextPage)
// immediately afterwards resumes from the cached header.
func (it *Iterator) PeekNextPage() (*Metadata, error) {
	if it.err != nil {
		return nil, it.err
	}
	if it.remaining == 0 {
		return nil, nil
	}
	if it.peeked == nil {
		header, n, err := it.readHeader()
		if err != nil {
			it.err = err
			return nil, err
		}
		it.peeked, it.peekedBytes = header, n
	}
	return pageMetadata(it.peeked), nil
}

func pageMetadata(header *format.PageHeader) *Metadata {
	switch {
	case header.DictionaryPageHeader != nil:
		return &Metadata{IsDict: true}
	case header.DataPageHeaderV2 != nil:
		return &Metadata{NumRows: header.DataPageHeaderV2.NumRows}
	case header.DataPageHeader != nil:
		return &Metadata{NumRows: header.DataPageHeader.NumValues}
	default:
		return &Metadata{}
	}
}

// SkipNextPage advances past the next page (header and body) without
// decoding it. Unlike GetNextPage, it never emits IndexPage as a special
// case — every page, index or otherwise, is simply skipped.
func (it *Iterator) SkipNextPage() error {
	if it.err != nil {
		return it.err
	}
	if it.remaining == 0 {
		return nil
	}

	header, _, err := it.nextHeader()
	if err != nil {
		it.err = err
		return err
	}

	dataLen := int64(header.CompressedPageSize)
	if dataLen < 0 {
		err := errs.New(errs.InvalidFormat, "negative compressed_page_size %d", header.CompressedPageSize)
		it.err = err
		return err
	}
	if dataLen > it.remaining {
		err := errs.New(errs.Eof, "page body of %d bytes exceeds %d remaining in chunk", dataLen, it.remaining)
		it.err = err
		return err
	}

	it.cursor += dataLen
	it.remaining -= dataLen
	return nil
}
