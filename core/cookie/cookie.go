package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

// MaxCookieSize is the default maximum size for a serialized cookie (4KB).
const MaxCookieSize = 4096

// Cookies reads cookies from one request's headers and writes Set-Cookie
// headers into the matching response. It keeps no storage of its own.
type Cookies struct {
	req             http.Header
	res             http.Header
	keys            [][]byte
	defaults        Options
	maxSize         int
	secureTransport bool
}

// New binds an accessor to the request and response headers.
// Defaults are Path=/, HttpOnly and SameSite=Lax.
func New(req, res http.Header, opts ...CookiesOption) *Cookies {
	c := &Cookies{
		req: req,
		res: res,
		defaults: Options{
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		maxSize: MaxCookieSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value of the named request cookie.
func (c *Cookies) Get(name string) (string, error) {
	r := http.Request{Header: c.req}
	ck, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return ck.Value, nil
}

// Has reports whether the request carries the named cookie.
func (c *Cookies) Has(name string) bool {
	_, err := c.Get(name)
	return err == nil
}

// Set adds a Set-Cookie header for name, replacing one already queued for
// the same name in this response.
func (c *Cookies) Set(name, value string, opts ...Option) error {
	options := applyOptions(c.defaults, opts)

	if options.Secure && !c.secureTransport {
		return ErrInsecureTransport
	}

	ck := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Expires:  options.Expires,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
	if err := ck.Valid(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidName, err)
	}

	header := ck.String()
	if len(header) > c.maxSize {
		return ErrCookieTooLarge{
			Name: name,
			Size: len(header),
			Max:  c.maxSize,
		}
	}

	c.replace(name, header)
	return nil
}

// Delete expires the named cookie on the client.
func (c *Cookies) Delete(name string, opts ...Option) error {
	opts = append(opts, WithMaxAge(-1), WithExpires(time.Unix(0, 0)))
	return c.Set(name, "", opts...)
}

// SetSigned stores value together with an HMAC-SHA256 signature made with
// the first configured key.
func (c *Cookies) SetSigned(name, value string, opts ...Option) error {
	if len(c.keys) == 0 {
		return ErrNoKeys
	}
	return c.Set(name, c.sign(name, value), opts...)
}

// GetSigned returns the value of a signed cookie after verifying it
// against every configured key.
func (c *Cookies) GetSigned(name string) (string, error) {
	if len(c.keys) == 0 {
		return "", ErrNoKeys
	}
	signed, err := c.Get(name)
	if err != nil {
		return "", err
	}
	return c.verify(name, signed)
}

// replace drops queued Set-Cookie headers for name and appends header.
func (c *Cookies) replace(name, header string) {
	prefix := name + "="
	kept := slices.DeleteFunc(c.res.Values("Set-Cookie"), func(v string) bool {
		return strings.HasPrefix(v, prefix)
	})
	c.res.Del("Set-Cookie")
	for _, v := range kept {
		c.res.Add("Set-Cookie", v)
	}
	c.res.Add("Set-Cookie", header)
}

// sign binds the signature to the cookie name so a signed value cannot be
// replayed under another name.
func (c *Cookies) sign(name, value string) string {
	sig := mac(c.keys[0], name, value)
	return base64.RawURLEncoding.EncodeToString([]byte(value)) + "." + base64.RawURLEncoding.EncodeToString(sig)
}

func (c *Cookies) verify(name, signed string) (string, error) {
	encodedValue, encodedSig, ok := strings.Cut(signed, ".")
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.RawURLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}
	sig, err := base64.RawURLEncoding.DecodeString(encodedSig)
	if err != nil {
		return "", ErrInvalidFormat
	}

	valid := slices.ContainsFunc(c.keys, func(key []byte) bool {
		return subtle.ConstantTimeCompare(sig, mac(key, name, string(value))) == 1
	})
	if !valid {
		return "", ErrInvalidSignature
	}
	return string(value), nil
}

func mac(key []byte, name, value string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(value))
	return h.Sum(nil)
}
