package ustar

import "errors"

var (
	// ErrChecksum is returned when a header's stored checksum does not
	// match the sum recomputed over its block.
	ErrChecksum = errors.New("header checksum mismatch")
	// ErrInvalidHeader is returned when a numeric header field cannot
	// be parsed as octal.
	ErrInvalidHeader = errors.New("invalid header")
	// ErrUnsupportedType is returned by Extract for typeflags other
	// than regular file and directory.
	ErrUnsupportedType = errors.New("unsupported entry type")
	// ErrFieldTooLong is returned when a numeric value is negative or
	// does not fit its fixed-width octal header field.
	ErrFieldTooLong = errors.New("header field too long")
	// ErrPathTooLong is returned for paths over 255 bytes.
	ErrPathTooLong = errors.New("path too long")
	// ErrPathSplit is returned when a path cannot be split into a
	// 100-byte name and a 155-byte prefix.
	ErrPathSplit = errors.New("path does not fit name/prefix fields")
	// ErrTruncated is returned when an entry's content would run past
	// the end of the archive buffer.
	ErrTruncated = errors.New("archive truncated")
)
