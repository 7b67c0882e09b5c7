// Package mediatype resolves file extensions to media types using a fixed table.
//
// Unlike mime.TypeByExtension the result never depends on the host's
// mime.types files, so the same file gets the same Content-Type everywhere.
package mediatype

import (
	"path"
	"strings"
)

// Default is used for extensions missing from the table.
const Default = "application/octet-stream"

var byExtension = map[string]string{
	// text
	".html":        "text/html; charset=utf-8",
	".htm":         "text/html; charset=utf-8",
	".css":         "text/css; charset=utf-8",
	".csv":         "text/csv; charset=utf-8",
	".txt":         "text/plain; charset=utf-8",
	".md":          "text/markdown; charset=utf-8",
	".xml":         "application/xml",
	".js":          "text/javascript; charset=utf-8",
	".mjs":         "text/javascript; charset=utf-8",
	".json":        "application/json; charset=utf-8",
	".map":         "application/json; charset=utf-8",
	".jsonld":      "application/ld+json",
	".webmanifest": "application/manifest+json",
	".ts":          "text/typescript; charset=utf-8",
	".tsx":         "text/tsx; charset=utf-8",
	".jsx":         "text/jsx; charset=utf-8",
	".yaml":        "text/yaml; charset=utf-8",
	".yml":         "text/yaml; charset=utf-8",
	".ics":         "text/calendar; charset=utf-8",

	// images
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".avif": "image/avif",
	".svg":  "image/svg+xml",
	".ico":  "image/vnd.microsoft.icon",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",

	// fonts
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".eot":   "application/vnd.ms-fontobject",

	// audio and video
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",

	// documents and archives
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".gz":   "application/gzip",
	".br":   "application/x-brotli",
	".tar":  "application/x-tar",
	".wasm": "application/wasm",
	".rtf":  "application/rtf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ByExtension returns the media type for ext. The leading dot is optional
// and matching is case-insensitive.
func ByExtension(ext string) (string, bool) {
	if ext == "" {
		return "", false
	}
	ext = strings.ToLower(ext)
	if ext[0] != '.' {
		ext = "." + ext
	}
	t, ok := byExtension[ext]
	return t, ok
}

// ByPath returns the media type for the extension of name, or Default.
func ByPath(name string) string {
	if t, ok := ByExtension(path.Ext(name)); ok {
		return t
	}
	return Default
}

// ContentType turns a type hint into a Content-Type header value.
// Full media types ("text/plain") are returned as is; extensions with or
// without the dot ("html", ".png") are looked up. Unknown hints yield "".
func ContentType(hint string) string {
	if hint == "" {
		return ""
	}
	if strings.Contains(hint, "/") {
		return hint
	}
	t, _ := ByExtension(hint)
	return t
}
