// Package ustar reads and writes POSIX UStar tar archives held entirely
// in memory. It walks archives block by block: every header occupies one
// 512-byte block, file content follows zero-padded to the next block
// boundary, and two all-zero blocks terminate the archive.
package ustar

const (
	blockSize int64 = 512

	// footerSize is the two zero blocks closing every archive.
	footerSize = blockSize * 2

	magic   = "ustar"
	version = "00"

	maxNameLen   = 100
	maxPrefixLen = 155
	maxPathLen   = 255
)

// Entry typeflags. Links, devices and extended headers are not supported.
const (
	TypeReg byte = '0'
	TypeDir byte = '5'
)

type block [blockSize]byte

var zeroBlock block

// Header is one decoded 512-byte UStar header block.
type Header struct {
	Name     string
	Mode     int64
	UID      int64
	GID      int64
	Size     int64
	ModTime  int64 // seconds since the Unix epoch
	Checksum int64
	Typeflag byte
	Linkname string
	Magic    string
	Version  string
	Uname    string
	Gname    string
	Devmajor int64
	Devminor int64
	Prefix   string
}

// Path joins prefix and name back into the entry's relative path.
func (h *Header) Path() string {
	if h.Prefix == "" {
		return h.Name
	}
	return h.Prefix + "/" + h.Name
}

// EntryStat is the staged metadata for one archive entry, produced by
// stat collection and consumed by Create. Name and Prefix are the
// split relative path, Size is 0 for directories.
type EntryStat struct {
	Name     string
	Prefix   string
	Typeflag byte
	Size     int64
	ModTime  int64 // seconds since the Unix epoch
}

func (e *EntryStat) path() string {
	if e.Prefix == "" {
		return e.Name
	}
	return e.Prefix + "/" + e.Name
}

// paddedSize rounds size up to the next block boundary.
func paddedSize(size int64) int64 {
	if size%blockSize == 0 {
		return size
	}
	return (size/blockSize + 1) * blockSize
}

// nextOffset returns the offset of the header following the entry at
// offset with the given content size. Reader, Writer and Extractor all
// share this formula.
func nextOffset(offset, size int64) int64 {
	return offset + blockSize + paddedSize(size)
}

// entrySize is the number of archive bytes the entry occupies: one
// header block plus, for regular files, the padded content.
func entrySize(e *EntryStat) int64 {
	if e.Typeflag == TypeReg {
		return blockSize + paddedSize(e.Size)
	}
	return blockSize
}

// archiveSize is the exact byte length of the archive holding entries,
// including the terminating zero blocks.
func archiveSize(entries []EntryStat) int64 {
	total := footerSize
	for i := range entries {
		total += entrySize(&entries[i])
	}
	return total
}
