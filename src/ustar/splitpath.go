package ustar

import (
	"strings"

	"github.com/pkg/errors"
)

// SplitPath splits a relative entry path into the UStar name and prefix
// fields. Paths of 100 bytes or less go entirely into name. Longer
// paths are split at a segment boundary, keeping as many trailing
// segments in name as fit; the leading segments become the prefix. A
// directory path keeps its trailing slash on the name side.
//
// All limits are byte counts, matching the fixed header field widths.
func SplitPath(path string) (name, prefix string, err error) {
	if len(path) <= maxNameLen {
		return path, "", nil
	}
	if len(path) > maxPathLen {
		return "", "", errors.Wrapf(ErrPathTooLong, "%q is %d bytes", path, len(path))
	}

	trimmed := strings.TrimSuffix(path, "/")
	dirMark := ""
	if trimmed != path {
		dirMark = "/"
	}

	segs := strings.Split(trimmed, "/")
	name = segs[len(segs)-1] + dirMark
	split := len(segs) - 1
	for i := len(segs) - 2; i >= 0; i-- {
		if len(segs[i])+1+len(name) > maxNameLen {
			break
		}
		name = segs[i] + "/" + name
		split = i
	}
	prefix = strings.Join(segs[:split], "/")

	if name == "" || len(name) > maxNameLen || len(prefix) > maxPrefixLen {
		return "", "", errors.Wrapf(ErrPathSplit, "%q", path)
	}
	return name, prefix, nil
}
