package scan

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/tarforge/ustar/src/ustar"
)

// CollectStats stats every path relative to baseDir and stages it for
// archiving: directories classify as ustar.TypeDir with size 0, regular
// files as ustar.TypeReg with their byte length. The name/prefix split
// happens here, so overlong paths fail before any archive bytes exist.
func CollectStats(baseDir string, paths []string) ([]ustar.EntryStat, error) {
	stats := make([]ustar.EntryStat, 0, len(paths))
	for _, p := range paths {
		name, prefix, err := ustar.SplitPath(p)
		if err != nil {
			return nil, err
		}
		fi, err := os.Stat(filepath.Join(baseDir, filepath.FromSlash(p)))
		if err != nil {
			return nil, err
		}
		entry := ustar.EntryStat{
			Name:    name,
			Prefix:  prefix,
			ModTime: fi.ModTime().Unix(),
		}
		switch {
		case fi.IsDir():
			entry.Typeflag = ustar.TypeDir
		case fi.Mode().IsRegular():
			entry.Typeflag = ustar.TypeReg
			entry.Size = fi.Size()
		default:
			return nil, errors.Wrapf(ErrUnsupportedFile, "%q", p)
		}
		stats = append(stats, entry)
	}
	return stats, nil
}
