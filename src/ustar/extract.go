package ustar

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Extract materializes the archive's entries under dest. Directories
// are created as encountered (a pre-existing directory is fine), files
// are written with their exact content, overwriting existing files.
//
// Parents of nested entries must appear as directory entries earlier in
// the archive; Extract does not create missing ancestors. Archives
// produced by Create always satisfy this.
func Extract(archive []byte, dest string) error {
	headers, err := ReadHeaders(archive)
	if err != nil {
		return err
	}
	offset := int64(0)
	for i := range headers {
		hdr := &headers[i]
		target := filepath.Join(dest, filepath.FromSlash(hdr.Path()))
		switch hdr.Typeflag {
		case TypeDir:
			if err := os.Mkdir(target, 0o755); err != nil && !os.IsExist(err) {
				return err
			}
		case TypeReg:
			start := offset + blockSize
			if err := os.WriteFile(target, archive[start:start+hdr.Size], 0o644); err != nil {
				return err
			}
		default:
			return errors.Wrapf(ErrUnsupportedType, "entry %q: typeflag %q", hdr.Path(), hdr.Typeflag)
		}
		offset = nextOffset(offset, hdr.Size)
	}
	return nil
}
