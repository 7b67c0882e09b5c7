package static

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dmitrymomot/ctxkit/core/httperr"
	"github.com/dmitrymomot/ctxkit/core/mediatype"
)

// Request is the part of an incoming request Send reads.
type Request interface {
	Method() string
	EscapedPath() string
	Header() http.Header
	AcceptsEncodings(offers ...string) string
}

// Response is the part of an outgoing response Send writes.
type Response interface {
	Header() http.Header
	Status() int
	SetStatus(status int)
	SetBody(body any)
	SetType(typ string)
}

// Send resolves the request path (or opts.Path) against opts.Root and binds
// the file to res as a lazily read body. It returns the root-relative name
// of the file that was served.
//
// Failures are returned as httperr values: BadRequest for undecodable
// paths, Forbidden for paths escaping the root, NotFound for missing,
// hidden or directory targets, InternalServerError for anything else.
// res is left untouched unless Send succeeds.
//
// The caller owns the bound body and must release it, normally through
// the response's Destroy or Render.
func Send(ctx context.Context, req Request, res Response, opts Options) (string, error) {
	if opts.Root == "" {
		return "", ErrRootRequired
	}

	nominal := opts.Path
	if nominal == "" {
		nominal = req.EscapedPath()
	}

	name, trailing, err := resolvePath(nominal)
	if err != nil {
		return "", err
	}
	if trailing && opts.Index != "" {
		name = path.Join(name, opts.Index)
	}
	if !opts.Hidden && isHidden(name) {
		return "", httperr.ErrNotFound
	}

	src, key := opts.Source, func(n string) string { return n }
	if src == nil {
		if opts.Confine {
			src = ConfinedDir(opts.Root)
		} else {
			src = Dir(opts.Root)
		}
	} else {
		key = func(n string) string { return sourceName(opts.Root, n) }
	}

	if len(opts.Extensions) > 0 && name != "" && path.Ext(name) == "" && !isFile(ctx, src, key(name)) {
		for _, ext := range opts.Extensions {
			candidate := name + "." + strings.TrimPrefix(ext, ".")
			if isFile(ctx, src, key(candidate)) {
				name = candidate
				break
			}
		}
	}

	served, encoding := name, ""
	if name != "" {
		switch {
		case opts.Brotli && req.AcceptsEncodings("br", "identity") == "br" && isFile(ctx, src, key(name+".br")):
			served, encoding = name+".br", "br"
		case opts.Gzip && req.AcceptsEncodings("gzip", "identity") == "gzip" && isFile(ctx, src, key(name+".gz")):
			served, encoding = name+".gz", "gzip"
		}
	}

	info, err := src.Stat(ctx, key(served))
	if err != nil {
		return "", sourceError(err)
	}
	if info.IsDir() {
		if !opts.Format || opts.Index == "" {
			return "", httperr.ErrNotFound
		}
		name = path.Join(name, opts.Index)
		served = name
		if info, err = src.Stat(ctx, key(served)); err != nil {
			return "", sourceError(err)
		}
		if info.IsDir() {
			return "", httperr.ErrNotFound
		}
	}

	modTime := info.ModTime()
	method := req.Method()
	notModified := (method == http.MethodGet || method == http.MethodHead) &&
		notModifiedSince(req.Header(), modTime)

	var body io.ReadCloser
	if !notModified && method != http.MethodHead {
		if body, err = src.Open(ctx, key(served)); err != nil {
			return "", sourceError(err)
		}
		// The file may have been replaced since Stat: describe what was opened.
		if f, ok := body.(interface{ Stat() (fs.FileInfo, error) }); ok {
			if fi, err := f.Stat(); err == nil && !fi.IsDir() {
				info, modTime = fi, fi.ModTime()
			}
		}
	}

	h := res.Header()
	h.Set("Content-Type", mediatype.ByPath(name))
	if opts.Brotli || opts.Gzip {
		addVary(h, "Accept-Encoding")
	}
	if encoding != "" {
		h.Set("Content-Encoding", encoding)
	}
	if h.Get("Last-Modified") == "" && !modTime.IsZero() {
		h.Set("Last-Modified", modTime.UTC().Format(http.TimeFormat))
	}
	if h.Get("Cache-Control") == "" {
		h.Set("Cache-Control", cacheControl(opts.MaxAge, opts.Immutable))
	}
	res.SetType(path.Ext(name))

	switch {
	case notModified:
		h.Del("Content-Length")
		res.SetStatus(http.StatusNotModified)
	case body == nil:
		h.Set("Content-Length", strconv.FormatInt(info.Size(), 10))
		if res.Status() == 0 {
			res.SetStatus(http.StatusOK)
		}
	default:
		h.Set("Content-Length", strconv.FormatInt(info.Size(), 10))
		res.SetBody(body)
	}

	return served, nil
}

// addVary appends field to Vary unless it is already listed.
func addVary(h http.Header, field string) {
	for _, v := range h.Values("Vary") {
		for part := range strings.SplitSeq(v, ",") {
			if p := strings.TrimSpace(part); p == "*" || strings.EqualFold(p, field) {
				return
			}
		}
	}
	h.Add("Vary", field)
}

func isFile(ctx context.Context, src Source, name string) bool {
	info, err := src.Stat(ctx, name)
	return err == nil && !info.IsDir()
}

// sourceError maps a Source failure onto an HTTP error kind.
func sourceError(err error) error {
	switch {
	case errors.Is(err, ErrOutsideRoot), errors.Is(err, fs.ErrPermission):
		return httperr.ErrForbidden
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrInvalid),
		errors.Is(err, syscall.ENOTDIR),
		errors.Is(err, syscall.ENAMETOOLONG):
		return httperr.ErrNotFound
	default:
		return httperr.ErrInternalServerError.WithError(err)
	}
}

// notModifiedSince reports whether If-Modified-Since covers modTime.
// If-None-Match takes precedence and disables the check.
func notModifiedSince(h http.Header, modTime time.Time) bool {
	if modTime.IsZero() || h.Get("If-None-Match") != "" {
		return false
	}
	ims := h.Get("If-Modified-Since")
	if ims == "" {
		return false
	}
	t, err := http.ParseTime(ims)
	if err != nil {
		return false
	}
	return !modTime.Truncate(time.Second).After(t)
}

func cacheControl(maxAge time.Duration, immutable bool) string {
	v := "max-age=" + strconv.FormatInt(max(int64(maxAge/time.Second), 0), 10)
	if immutable {
		v += ", immutable"
	}
	return v
}
