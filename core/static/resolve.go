package static

import (
	"net/url"
	"path"
	"strings"

	"github.com/dmitrymomot/ctxkit/core/httperr"
)

// resolvePath turns an escaped request path into a cleaned, root-relative
// name. The second result reports whether the path ended with a slash.
//
// The path is decoded exactly once, so "%252e%252e" names a literal file
// and never becomes a parent reference. Paths that still climb above the
// root after cleaning are rejected rather than clamped.
func resolvePath(nominal string) (string, bool, error) {
	decoded, err := url.PathUnescape(nominal)
	if err != nil {
		return "", false, httperr.ErrBadRequest.WithMessage("Malformed path").WithError(err)
	}
	if strings.IndexByte(decoded, 0) >= 0 {
		return "", false, httperr.ErrBadRequest.WithMessage("Malicious path")
	}

	// Backslashes are separators on Windows; treat them the same everywhere.
	decoded = strings.ReplaceAll(decoded, `\`, "/")
	trailing := strings.HasSuffix(decoded, "/")

	name := path.Clean(strings.TrimLeft(decoded, "/"))
	if name == ".." || strings.HasPrefix(name, "../") {
		return "", false, httperr.ErrForbidden
	}
	if name == "." {
		name = ""
	}
	return name, trailing, nil
}

// isHidden reports whether any segment of name starts with a dot.
func isHidden(name string) bool {
	for seg := range strings.SplitSeq(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

// sourceName joins the root prefix used by custom sources with name.
func sourceName(root, name string) string {
	prefix := strings.Trim(path.Clean("/"+strings.ReplaceAll(root, `\`, "/")), "/")
	return path.Join(prefix, name)
}
