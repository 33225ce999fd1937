package server

import (
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const indexPage = "index.html"

type fileHandler struct {
	fsys  afero.Fs
	types *ContentTypes
	files http.Handler
}

// NewHandler serves fsys over HTTP with content types taken from types.
// Everything else (index documents, listings, redirects, 404s, path
// cleaning) is left to http.FileServer, except that an index.html asked
// for by name is served as-is instead of being redirected to its directory.
func NewHandler(fsys afero.Fs, types *ContentTypes) http.Handler {
	return &fileHandler{
		fsys:  fsys,
		types: types,
		files: http.FileServer(afero.NewHttpFs(fsys).Dir("/")),
	}
}

func (h *fileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "405 - Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	upath := r.URL.Path
	if strings.HasSuffix(upath, "/") {
		h.files.ServeHTTP(w, r)
		return
	}

	// Same name httpDir resolves, so the Stat sees the file FileServer opens.
	name := filepath.Join("/", filepath.FromSlash(path.Clean("/"+upath)))
	info, err := h.fsys.Stat(name)
	if err != nil || !info.Mode().IsRegular() {
		h.files.ServeHTTP(w, r)
		return
	}

	// FileServer keeps a preset Content-Type on success and overwrites it
	// in http.Error, so error pages stay text/plain.
	if typ := h.types.Lookup(upath); typ != "" {
		w.Header().Set("Content-Type", typ)
	}

	if path.Base(upath) == indexPage {
		h.serveFile(w, r, name)
		return
	}
	h.files.ServeHTTP(w, r)
}

func (h *fileHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	f, err := h.fsys.Open(name)
	if err != nil {
		h.files.ServeHTTP(w, r)
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("Failed to close file", "path", name, "error", cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
