package ustar

// Field encodings. ASCII fields are NUL-terminated text, octal fields
// hold a zero-padded base-8 number in ASCII.
const (
	fieldASCII = iota
	fieldOctal
)

type headerField struct {
	name string
	off  int
	len  int
	kind int
}

// Byte offsets of the fields the codec addresses directly.
const (
	offName     = 0
	offMode     = 100
	offUID      = 108
	offGID      = 116
	offSize     = 124
	offMtime    = 136
	offChecksum = 148
	offTypeflag = 156
	offLinkname = 157
	offMagic    = 257
	offVersion  = 263
	offUname    = 265
	offGname    = 297
	offDevmajor = 329
	offDevminor = 337
	offPrefix   = 345

	lenChecksum = 8
)

// headerFields is the UStar header schema: 16 non-overlapping fields,
// all within the first 500 bytes of the 512-byte block. The remaining
// 12 bytes are always zero.
var headerFields = [16]headerField{
	{"name", offName, 100, fieldASCII},
	{"mode", offMode, 8, fieldOctal},
	{"uid", offUID, 8, fieldOctal},
	{"gid", offGID, 8, fieldOctal},
	{"size", offSize, 12, fieldOctal},
	{"mtime", offMtime, 12, fieldOctal},
	{"chksum", offChecksum, lenChecksum, fieldOctal},
	{"typeflag", offTypeflag, 1, fieldASCII},
	{"linkname", offLinkname, 100, fieldASCII},
	{"magic", offMagic, 6, fieldASCII},
	{"version", offVersion, 2, fieldASCII},
	{"uname", offUname, 32, fieldASCII},
	{"gname", offGname, 32, fieldASCII},
	{"devmajor", offDevmajor, 8, fieldOctal},
	{"devminor", offDevminor, 8, fieldOctal},
	{"prefix", offPrefix, 155, fieldASCII},
}
