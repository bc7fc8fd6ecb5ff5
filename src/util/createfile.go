package util

import "os"

// CreateFile creates filename for writing, refusing to overwrite an
// existing file.
func CreateFile(filename string) (*os.File, error) {
	return os.OpenFile(filename, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0640)
}
