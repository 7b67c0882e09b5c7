// Package static delivers files from a directory (or another Source) as
// response bodies.
//
// Send resolves a request path against a root, stats the file, and binds a
// lazily read stream to the response together with Content-Length,
// Content-Type, Last-Modified and Cache-Control headers. It never writes
// to the wire itself: the response is rendered later by whoever owns it.
//
// # Features
//
//   - Traversal protection: paths are decoded once and cleaned; anything
//     still climbing above the root is rejected with 403, never clamped
//   - Dot-files hidden by default (404)
//   - Index files for trailing-slash paths, and optionally for bare
//     directory paths (Format)
//   - Extension fallbacks ("/about" → "about.html")
//   - Precompressed .br and .gz siblings chosen from Accept-Encoding
//   - If-Modified-Since handling with 304 responses
//   - Pluggable Source: local directory, fs.FS (embed.FS), or remote stores
//
// # Basic Usage
//
//	name, err := static.Send(ctx, req, res, static.Options{
//		Root:   "./public",
//		Index:  "index.html",
//		MaxAge: 24 * time.Hour,
//	})
//	if err != nil {
//		return err // httperr.HTTPError: 400, 403, 404 or 500
//	}
//
// req and res only need the small Request and Response interfaces defined
// here; core/request and core/response satisfy them.
//
// # Serving Embedded Filesystems
//
//	//go:embed dist
//	var dist embed.FS
//
//	static.Send(ctx, req, res, static.Options{
//		Root:   "dist",
//		Source: static.FS(dist),
//	})
//
// With a custom Source, Root is treated as a slash-separated prefix inside
// the source rather than a local directory.
//
// # Error Mapping
//
//	400 Bad Request            malformed percent-encoding, NUL bytes
//	403 Forbidden              path escapes the root, permission denied
//	404 Not Found              missing file, hidden file, directory without index
//	500 Internal Server Error  any other source failure (cause attached)
//
// On error the response is left exactly as it was.
//
// # Resource Ownership
//
// The bound body is an open file. It is closed by response.Render, or by
// response.Destroy when the response is dropped without rendering. Sending
// again into the same response closes the previous file.
//
// # Symbolic Links
//
// Dir follows symbolic links wherever they point. When untrusted users can
// write below Root, set Confine (or use ConfinedDir) so links resolving
// outside Root are answered with 403.
package static
