package ustar

import "github.com/pkg/errors"

// ReadHeaders scans archive from offset 0 and returns its headers in
// archive order. Scanning stops at the first block whose typeflag is
// neither regular file nor directory, which covers the terminating zero
// blocks as well as any unsupported record kind. Every returned header
// has a verified checksum; a mismatch aborts the scan with ErrChecksum
// naming the entry. Corruption that turns a numeric field into
// non-octal text is caught before the checksum runs and surfaces as
// ErrInvalidHeader instead.
//
// An archive holding only the two terminator blocks yields no headers.
func ReadHeaders(archive []byte) ([]Header, error) {
	headers := []Header{}
	for offset := int64(0); offset+blockSize <= int64(len(archive)); {
		b := archive[offset : offset+blockSize]
		hdr, err := decodeHeader(b)
		if err != nil {
			return nil, errors.Wrapf(err, "header at offset %d", offset)
		}
		if hdr.Typeflag != TypeReg && hdr.Typeflag != TypeDir {
			break
		}
		if sum := blockChecksum(b); sum != hdr.Checksum {
			return nil, errors.Wrapf(ErrChecksum, "entry %q: stored %#o, computed %#o",
				hdr.Path(), hdr.Checksum, sum)
		}
		next := nextOffset(offset, hdr.Size)
		if next > int64(len(archive)) {
			return nil, errors.Wrapf(ErrTruncated, "entry %q needs %d bytes, archive has %d",
				hdr.Path(), next, len(archive))
		}
		headers = append(headers, hdr)
		offset = next
	}
	return headers, nil
}
