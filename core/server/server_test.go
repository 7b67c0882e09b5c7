package server_test

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io"
	"log/slog"
	"math/big"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ctxkit/core/logger"
	"github.com/dmitrymomot/ctxkit/core/server"
)

var hello = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = io.WriteString(w, "hello")
})

// serve runs srv in the background and waits until it is bound.
func serve(t *testing.T, srv *server.Server, unbound string) (context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, hello)()
	}()

	require.Eventually(t, func() bool {
		return srv.Addr() != unbound
	}, 2*time.Second, 5*time.Millisecond)

	return cancel, done
}

func TestServer_Run(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	srv := server.New("127.0.0.1:0",
		server.WithLogger(logger.New(logger.WithOutput(&buf))),
		server.WithShutdownTimeout(time.Second),
	)
	cancel, done := serve(t, srv, "127.0.0.1:0")

	resp, err := http.Get("http://" + srv.Addr() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "hello", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Contains(t, buf.String(), "starting server")
	assert.Contains(t, buf.String(), "server stopped")
	assert.Contains(t, buf.String(), "component=server")
}

func TestServer_AlreadyRunning(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	cancel, done := serve(t, srv, "127.0.0.1:0")
	defer func() {
		cancel()
		<-done
	}()

	err := srv.Start(context.Background(), hello)
	assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)
}

func TestServer_AddressInUse(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := server.New(ln.Addr().String())
	err = srv.Start(context.Background(), hello)
	assert.ErrorIs(t, err, server.ErrListen)

	// A failed bind leaves the server stopped.
	assert.NoError(t, srv.Stop())
}

func TestServer_StopWhenNotRunning(t *testing.T) {
	t.Parallel()

	srv := server.New(":0")
	assert.NoError(t, srv.Stop())
	assert.Equal(t, ":0", srv.Addr())
}

func TestServer_WithTLS(t *testing.T) {
	t.Parallel()

	certFile, keyFile := writeCert(t)
	srv, err := server.NewFromConfig(server.Config{
		Addr:        "127.0.0.1:0",
		TLSCertFile: certFile,
		TLSKeyFile:  keyFile,
	}, server.WithShutdownTimeout(time.Second))
	require.NoError(t, err)

	cancel, done := serve(t, srv, "127.0.0.1:0")
	defer func() {
		cancel()
		<-done
	}()

	client := &http.Client{Transport: &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // self-signed test certificate
	}}
	resp, err := client.Get("https://" + srv.Addr() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, resp.TLS)
	assert.GreaterOrEqual(t, resp.TLS.Version, uint16(tls.VersionTLS12))
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing address", func(t *testing.T) {
		t.Parallel()
		_, err := server.NewFromConfig(server.Config{})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("missing certificate", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		_, err := server.NewFromConfig(server.Config{
			Addr:        ":8443",
			TLSCertFile: filepath.Join(dir, "cert.pem"),
			TLSKeyFile:  filepath.Join(dir, "key.pem"),
		})
		assert.ErrorIs(t, err, server.ErrFailedLoadCert)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		srv, err := server.NewFromConfig(server.DefaultConfig(), server.WithLogger(slog.New(slog.DiscardHandler)))
		require.NoError(t, err)
		assert.Equal(t, ":8080", srv.Addr())
	})

	t.Run("only one TLS file is ignored", func(t *testing.T) {
		t.Parallel()
		_, err := server.NewFromConfig(server.Config{Addr: ":8443", TLSCertFile: "cert.pem"})
		assert.NoError(t, err)
	})
}

func writeCert(t *testing.T) (string, string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "127.0.0.1"},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	dir := t.TempDir()
	certFile := filepath.Join(dir, "cert.pem")
	keyFile := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certFile, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600))
	return certFile, keyFile
}
