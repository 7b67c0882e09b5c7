package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"go.uber.org/multierr"

	"github.com/dmitrymomot/ctxkit/core/mediatype"
)

// copyBufferSize is the chunk size used when streaming reader bodies.
const copyBufferSize = 32 * 1024

// Response accumulates status, headers and body for one request until
// Render writes them to the client.
type Response struct {
	status int
	header http.Header
	body   any
	typ    string

	rendered bool
	released bool // the current body was released
	closeErr error
}

// New returns an empty response.
func New() *Response {
	return &Response{header: make(http.Header)}
}

// Header returns the mutable response headers.
func (r *Response) Header() http.Header {
	return r.header
}

// Status returns the status set so far, or 0 when none was set.
func (r *Response) Status() int {
	return r.status
}

// SetStatus sets the response status code.
func (r *Response) SetStatus(status int) {
	r.status = status
}

// Body returns the current body value.
func (r *Response) Body() any {
	return r.body
}

// SetBody replaces the body. Supported values are nil, []byte, string,
// io.Reader (streamed, closed after rendering when it is an io.Closer)
// and anything else, which is encoded as JSON.
//
// A previously bound io.Closer body is closed when it is replaced by a
// different value.
func (r *Response) SetBody(body any) {
	if sameValue(r.body, body) {
		return
	}
	_ = r.releaseBody()
	r.body = body
	r.released = false
	r.closeErr = nil
}

// Type returns the type hint recorded for the body, such as ".html".
func (r *Response) Type() string {
	return r.typ
}

// SetType records a type hint: an extension (".html", "json") or a full
// media type. Render uses it when no Content-Type header was set.
func (r *Response) SetType(typ string) {
	r.typ = typ
}

// Redirect points the client at url. The status becomes 302 Found unless a
// redirect status was already set.
func (r *Response) Redirect(url string) {
	r.header.Set("Location", url)
	if r.status < 300 || r.status >= 400 {
		r.status = http.StatusFound
	}
	r.typ = ".txt"
	r.SetBody("Redirecting to " + url + ".")
}

// Reset drops everything set so far and releases the current body.
// Error handlers use it to replace a half-built response. The header map
// is cleared in place, so references obtained from Header stay valid.
func (r *Response) Reset() error {
	err := r.Destroy()
	r.status = 0
	clear(r.header)
	r.body = nil
	r.released = false
	r.closeErr = nil
	r.typ = ""
	return err
}

// Destroy releases the body when it holds a resource such as an open file.
// It is safe to call more than once; a body bound after Destroy is
// released by the next call.
func (r *Response) Destroy() error {
	return r.releaseBody()
}

// releaseBody closes the current body at most once and remembers the result.
func (r *Response) releaseBody() error {
	if r.released {
		return r.closeErr
	}
	r.released = true
	if c, ok := r.body.(io.Closer); ok {
		r.closeErr = c.Close()
	}
	return r.closeErr
}

// sameValue reports whether a and b hold the same comparable value.
func sameValue(a, b any) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta == nil {
		return true
	}
	return ta.Comparable() && a == b
}

// Render writes the response to w and releases the body afterwards.
//
// A reader body is streamed in chunks. When ctx is canceled mid-stream
// the copy stops and Render returns nil: the client is gone and there is
// nobody left to report to. Write failures are returned together with any
// error from releasing the body.
func (r *Response) Render(ctx context.Context, w http.ResponseWriter) (err error) {
	if r.rendered {
		return ErrAlreadyRendered
	}
	r.rendered = true

	defer func() {
		err = multierr.Append(err, r.Destroy())
	}()

	status := r.status
	if status == 0 {
		if r.body != nil {
			status = http.StatusOK
		} else {
			status = http.StatusNotFound
		}
	}

	if r.header.Get("Content-Type") == "" {
		if ct := mediatype.ContentType(r.typ); ct != "" {
			r.header.Set("Content-Type", ct)
		}
	}

	payload, stream, err := r.encodeBody()
	if err != nil {
		return err
	}

	dst := w.Header()
	for k, v := range r.header {
		dst[k] = v
	}

	if !bodyAllowed(status) {
		dst.Del("Content-Length")
		w.WriteHeader(status)
		return nil
	}

	if payload != nil {
		dst.Set("Content-Length", strconv.Itoa(len(payload)))
	}
	w.WriteHeader(status)

	switch {
	case payload != nil:
		if _, err := w.Write(payload); err != nil {
			return fmt.Errorf("%w: %w", ErrBodyWrite, err)
		}
	case stream != nil:
		buf := make([]byte, copyBufferSize)
		if _, err := io.CopyBuffer(w, &contextReader{ctx: ctx, r: stream}, buf); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("%w: %w", ErrBodyWrite, err)
		}
	}
	return nil
}

// encodeBody returns either an in-memory payload or a stream to copy.
// It fills in a default Content-Type when none is known.
func (r *Response) encodeBody() ([]byte, io.Reader, error) {
	setDefault := func(ct string) {
		if r.header.Get("Content-Type") == "" {
			r.header.Set("Content-Type", ct)
		}
	}

	switch b := r.body.(type) {
	case nil:
		return nil, nil, nil
	case []byte:
		setDefault(mediatype.Default)
		return b, nil, nil
	case string:
		setDefault("text/plain; charset=utf-8")
		return []byte(b), nil, nil
	case io.Reader:
		setDefault(mediatype.Default)
		return nil, b, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrBodyEncode, err)
		}
		setDefault("application/json; charset=utf-8")
		return data, nil, nil
	}
}

// bodyAllowed reports whether status permits a response body.
func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}

// contextReader stops reading once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
