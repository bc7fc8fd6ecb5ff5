package ustar

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// putASCII writes s at the field offset. The remaining field bytes are
// assumed pre-zeroed, which NUL-terminates the value.
func putASCII(b []byte, f headerField, s string) {
	copy(b[f.off:f.off+f.len], s)
}

// putOctal writes v as a zero-padded octal number of the given digit
// count. The field's last byte stays zero as terminator. Values that
// are negative or need more digits than the field holds are rejected,
// never truncated.
func putOctal(b []byte, f headerField, v int64, digits int) error {
	if v < 0 || v >= 1<<uint(3*digits) {
		return errors.Wrapf(ErrFieldTooLong, "field %s: %d does not fit %d octal digits", f.name, v, digits)
	}
	copy(b[f.off:f.off+f.len], fmt.Sprintf("%0*o", digits, v))
	return nil
}

func slashed(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

type headerDefaults struct {
	uid      int64
	gid      int64
	fileMode int64
	dirMode  int64
	uname    string
	gname    string
}

// encodeHeader writes the UStar header for e into the 512 pre-zeroed
// bytes at b[0:512], checksum included. The produced block re-decodes
// to the same field values.
func encodeHeader(b []byte, e *EntryStat, def *headerDefaults) error {
	if len(e.Name) > maxNameLen {
		return errors.Wrapf(ErrPathSplit, "name %q exceeds %d bytes", e.Name, maxNameLen)
	}
	if len(e.Prefix) > maxPrefixLen {
		return errors.Wrapf(ErrPathSplit, "prefix %q exceeds %d bytes", e.Prefix, maxPrefixLen)
	}
	if e.Typeflag != TypeReg && e.Typeflag != TypeDir {
		return errors.Wrapf(ErrUnsupportedType, "typeflag %q", e.Typeflag)
	}

	mode := def.fileMode
	size := e.Size
	if e.Typeflag == TypeDir {
		mode = def.dirMode
		size = 0
	}

	putASCII(b, headerFields[fieldName], slashed(e.Name))
	if err := putOctal(b, headerFields[fieldMode], mode, 7); err != nil {
		return err
	}
	if err := putOctal(b, headerFields[fieldUID], def.uid, 7); err != nil {
		return err
	}
	if err := putOctal(b, headerFields[fieldGID], def.gid, 7); err != nil {
		return err
	}
	if err := putOctal(b, headerFields[fieldSize], size, 11); err != nil {
		return err
	}
	if err := putOctal(b, headerFields[fieldMtime], e.ModTime, 11); err != nil {
		return err
	}
	b[offTypeflag] = e.Typeflag
	putASCII(b, headerFields[fieldMagic], magic)
	putASCII(b, headerFields[fieldVersion], version)
	putASCII(b, headerFields[fieldUname], def.uname)
	putASCII(b, headerFields[fieldGname], def.gname)
	if err := putOctal(b, headerFields[fieldDevmajor], 0, 7); err != nil {
		return err
	}
	if err := putOctal(b, headerFields[fieldDevminor], 0, 7); err != nil {
		return err
	}
	putASCII(b, headerFields[fieldPrefix], slashed(e.Prefix))

	// Checksum last: 6 octal digits, NUL, space.
	copy(b[offChecksum:], fmt.Sprintf("%06o\x00 ", blockChecksum(b)))
	return nil
}

// blockChecksum sums the 512 header bytes with the checksum field
// bytes substituted by ASCII spaces.
func blockChecksum(b []byte) int64 {
	var sum int64
	for i := 0; i < int(blockSize); i++ {
		if i >= offChecksum && i < offChecksum+lenChecksum {
			sum += ' '
			continue
		}
		sum += int64(b[i])
	}
	return sum
}

// cstring returns the field bytes up to the first NUL.
func cstring(b []byte, f headerField) string {
	v := b[f.off : f.off+f.len]
	if i := bytes.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	return string(v)
}

// parseOctal parses a NUL- or space-padded octal field. An empty field
// parses to 0; anything else non-octal rejects the header.
func parseOctal(b []byte, f headerField) (int64, error) {
	s := strings.Trim(cstring(b, f), " ")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 8, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidHeader, "field %s: %q is not octal", f.name, s)
	}
	return v, nil
}

// Indexes into headerFields, in schema order.
const (
	fieldName = iota
	fieldMode
	fieldUID
	fieldGID
	fieldSize
	fieldMtime
	fieldChecksum
	fieldTypeflag
	fieldLinkname
	fieldMagic
	fieldVersion
	fieldUname
	fieldGname
	fieldDevmajor
	fieldDevminor
	fieldPrefix
)

// decodeHeader reads the 512-byte block at b[0:512] back into a Header.
// It does not verify the checksum; callers do that against
// blockChecksum to distinguish corruption from a terminator block.
func decodeHeader(b []byte) (Header, error) {
	var hdr Header
	for _, f := range headerFields {
		switch f.kind {
		case fieldASCII:
			s := cstring(b, f)
			switch f.off {
			case offName:
				hdr.Name = s
			case offTypeflag:
				if len(s) > 0 {
					hdr.Typeflag = s[0]
				}
			case offLinkname:
				hdr.Linkname = s
			case offMagic:
				hdr.Magic = s
			case offVersion:
				hdr.Version = s
			case offUname:
				hdr.Uname = s
			case offGname:
				hdr.Gname = s
			case offPrefix:
				hdr.Prefix = s
			}
		case fieldOctal:
			v, err := parseOctal(b, f)
			if err != nil {
				return Header{}, err
			}
			switch f.off {
			case offMode:
				hdr.Mode = v
			case offUID:
				hdr.UID = v
			case offGID:
				hdr.GID = v
			case offSize:
				hdr.Size = v
			case offMtime:
				hdr.ModTime = v
			case offChecksum:
				hdr.Checksum = v
			case offDevmajor:
				hdr.Devmajor = v
			case offDevminor:
				hdr.Devminor = v
			}
		}
	}
	return hdr, nil
}
