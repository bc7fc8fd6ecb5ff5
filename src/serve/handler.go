// Package serve delivers UStar archives of directory trees over HTTP.
// The archive buffer is built in memory before the response starts, so
// Content-Length is always exact.
package serve

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/tarforge/ustar/src/scan"
	"github.com/tarforge/ustar/src/ustar"
)

// TarHandler serves a tar archive of a sub-directory of SourceDir. The
// request path selects the sub-directory.
type TarHandler struct {
	SourceDir string
	Log       *logrus.Logger
	Options   []ustar.Option
}

func (handler *TarHandler) log() *logrus.Logger {
	if handler.Log != nil {
		return handler.Log
	}
	return logrus.StandardLogger()
}

func (handler *TarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if len(r.URL.Path) == 0 {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	dir := filepath.Join(handler.SourceDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	stat, err := os.Stat(dir)
	if err != nil || !stat.IsDir() {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	buf, err := handler.buildArchive(dir)
	if err != nil {
		handler.log().WithError(err).WithField("dir", dir).Error("creating tar")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/tar")
	w.Header().Add("Content-Disposition", "inline; filename=\"data.tar\"")
	w.Header().Add("Content-Length", strconv.Itoa(len(buf)))
	if _, err := w.Write(buf); err != nil {
		handler.log().WithError(err).Error("writing tar response")
	}
}

func (handler *TarHandler) buildArchive(dir string) ([]byte, error) {
	paths, err := scan.EntryPaths(dir)
	if err != nil {
		return nil, err
	}
	baseDir := filepath.Dir(dir)
	stats, err := scan.CollectStats(baseDir, paths)
	if err != nil {
		return nil, err
	}
	return ustar.Create(baseDir, stats, handler.Options...)
}

// Serve runs an HTTP server delivering tars of sourceDir's
// sub-directories under prefix.
func Serve(address, prefix, sourceDir string) error {
	handler := &TarHandler{SourceDir: sourceDir}
	mux := http.NewServeMux()
	mux.Handle(prefix, http.StripPrefix(prefix, handler))
	return http.ListenAndServe(address, mux)
}
