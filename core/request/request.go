// Package request wraps the inbound *http.Request with the read-only surface
// a request context exposes to handlers.
package request

import (
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Request is a thin, read-mostly view over an *http.Request.
type Request struct {
	r *http.Request
}

// New wraps r. It panics if r is nil.
func New(r *http.Request) *Request {
	if r == nil {
		panic("request: nil *http.Request")
	}
	return &Request{r: r}
}

// Raw returns the underlying *http.Request.
func (r *Request) Raw() *http.Request {
	return r.r
}

// Method returns the HTTP method.
func (r *Request) Method() string {
	return r.r.Method
}

// URL returns the parsed request URL.
func (r *Request) URL() *url.URL {
	return r.r.URL
}

// Path returns the decoded URL path.
func (r *Request) Path() string {
	return r.r.URL.Path
}

// EscapedPath returns the URL path as sent on the wire, still percent-encoded.
func (r *Request) EscapedPath() string {
	return r.r.URL.EscapedPath()
}

// Header returns the request headers.
func (r *Request) Header() http.Header {
	return r.r.Header
}

// Host returns the host the request was addressed to.
func (r *Request) Host() string {
	return r.r.Host
}

// Body returns the request body. It is never nil for server requests.
func (r *Request) Body() io.ReadCloser {
	return r.r.Body
}

// HasBody reports whether the request carries a body.
func (r *Request) HasBody() bool {
	if r.r.Body == nil || r.r.Body == http.NoBody {
		return false
	}
	if r.r.ContentLength > 0 {
		return true
	}
	// Unknown length with chunked transfer encoding still has a body.
	return r.r.ContentLength < 0 || len(r.r.TransferEncoding) > 0
}

// Secure reports whether the request arrived over TLS, directly or
// through a proxy that set X-Forwarded-Proto.
func (r *Request) Secure() bool {
	if r.r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.r.Header.Get("X-Forwarded-Proto"), "https")
}

// IP returns the remote address without the port.
func (r *Request) IP() string {
	host, _, err := net.SplitHostPort(r.r.RemoteAddr)
	if err != nil {
		return r.r.RemoteAddr
	}
	return host
}

// AcceptsEncodings returns the first of the offered content codings the
// client accepts, honoring q-values. It returns "" when none is acceptable.
// A missing Accept-Encoding header accepts only "identity".
func (r *Request) AcceptsEncodings(offers ...string) string {
	header := r.r.Header.Get("Accept-Encoding")
	if header == "" {
		for _, o := range offers {
			if strings.EqualFold(o, "identity") {
				return o
			}
		}
		return ""
	}

	weights := parseAcceptEncoding(header)
	best, bestQ := "", 0.0
	for _, o := range offers {
		q, ok := weights[strings.ToLower(o)]
		if !ok {
			q, ok = weights["*"]
		}
		if !ok && strings.EqualFold(o, "identity") {
			q, ok = 1, true
		}
		if ok && q > bestQ {
			best, bestQ = o, q
		}
	}
	return best
}

// parseAcceptEncoding turns "gzip;q=0.8, br" into {"gzip":0.8, "br":1}.
func parseAcceptEncoding(header string) map[string]float64 {
	weights := make(map[string]float64)
	for part := range strings.SplitSeq(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		q := 1.0
		for p := range strings.SplitSeq(params, ";") {
			k, v, found := strings.Cut(strings.TrimSpace(p), "=")
			if found && strings.EqualFold(k, "q") {
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					q = f
				}
			}
		}
		weights[name] = q
	}
	return weights
}
