package server

import (
	"mime"
	"path"
	"strings"
)

// DefaultOverrides are the types a browser needs to be exact about when
// loading a Go wasm build: instantiateStreaming rejects anything but
// application/wasm.
func DefaultOverrides() map[string]string {
	return map[string]string{
		".wasm": "application/wasm",
		".js":   "application/javascript",
	}
}

// ContentTypes maps file extensions to MIME types. Overrides win over the
// platform table. The value is never modified after NewContentTypes returns.
type ContentTypes struct {
	overrides map[string]string
}

// NewContentTypes copies overrides; keys may omit the dot and are case-insensitive.
func NewContentTypes(overrides map[string]string) *ContentTypes {
	m := make(map[string]string, len(overrides))
	for ext, typ := range overrides {
		m[normalizeExt(ext)] = typ
	}
	return &ContentTypes{overrides: m}
}

// Lookup returns the content type for name based on its extension, or ""
// when neither the overrides nor the platform know it.
func (c *ContentTypes) Lookup(name string) string {
	ext := path.Ext(name)
	if ext == "" {
		return ""
	}
	if typ, ok := c.overrides[strings.ToLower(ext)]; ok {
		return typ
	}
	return mime.TypeByExtension(ext)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
