package ustar

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Option adjusts the fixed header values Create writes.
type Option interface {
	applyOption(def *headerDefaults)
}

type setUIDOption struct{ uid int64 }

func (opt setUIDOption) applyOption(def *headerDefaults) { def.uid = opt.uid }

// OptUID sets the uid written into every header.
func OptUID(uid int64) Option { return setUIDOption{uid: uid} }

type setGIDOption struct{ gid int64 }

func (opt setGIDOption) applyOption(def *headerDefaults) { def.gid = opt.gid }

// OptGID sets the gid written into every header.
func OptGID(gid int64) Option { return setGIDOption{gid: gid} }

type setFileModeOption struct{ mode int64 }

func (opt setFileModeOption) applyOption(def *headerDefaults) { def.fileMode = opt.mode }

// OptFileMode sets the mode written for regular file entries.
func OptFileMode(mode int64) Option { return setFileModeOption{mode: mode} }

type setDirModeOption struct{ mode int64 }

func (opt setDirModeOption) applyOption(def *headerDefaults) { def.dirMode = opt.mode }

// OptDirMode sets the mode written for directory entries.
func OptDirMode(mode int64) Option { return setDirModeOption{mode: mode} }

type setOwnerOption struct{ uname, gname string }

func (opt setOwnerOption) applyOption(def *headerDefaults) {
	def.uname = opt.uname
	def.gname = opt.gname
}

// OptOwner sets the uname and gname written into every header.
func OptOwner(uname, gname string) Option { return setOwnerOption{uname: uname, gname: gname} }

func newHeaderDefaults(opts ...Option) *headerDefaults {
	def := &headerDefaults{
		uid:      0,
		gid:      0,
		fileMode: 0o644,
		dirMode:  0o755,
	}
	for _, opt := range opts {
		opt.applyOption(def)
	}
	return def
}

// Create serializes entries into a single archive buffer. Entry order
// is preserved. File content is read from baseDir joined with the
// entry's prefix and name; a file that cannot be read, or whose size on
// disk no longer matches its EntryStat, fails the whole call.
func Create(baseDir string, entries []EntryStat, opts ...Option) ([]byte, error) {
	def := newHeaderDefaults(opts...)
	buf := make([]byte, archiveSize(entries))
	offset := int64(0)
	for i := range entries {
		e := &entries[i]
		if err := encodeHeader(buf[offset:offset+blockSize], e, def); err != nil {
			return nil, errors.Wrapf(err, "entry %q", e.path())
		}
		size := int64(0)
		if e.Typeflag == TypeReg {
			content, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(e.path())))
			if err != nil {
				return nil, err
			}
			if int64(len(content)) != e.Size {
				return nil, errors.Errorf("entry %q: expected %d bytes, file has %d",
					e.path(), e.Size, len(content))
			}
			copy(buf[offset+blockSize:], content)
			size = e.Size
		}
		offset = nextOffset(offset, size)
	}
	return buf, nil
}
