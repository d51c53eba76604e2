package httpserve

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello world"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "data.json"), []byte(`{"a":1}`), 0o600))

	s, err := New(Config{Dir: dir})
	require.NoError(t, err)
	return s, dir
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNew(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := New(Config{Dir: filepath.Join(t.TempDir(), "absent")})
		require.ErrorIs(t, err, errors.ErrNotADirectory)
	})

	t.Run("defaults", func(t *testing.T) {
		s, err := New(Config{Dir: t.TempDir()})
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8080", s.cfg.Addr)
		assert.Positive(t, s.cfg.ReadHeaderTimeout)
		assert.Positive(t, s.cfg.ShutdownTimeout)
		assert.True(t, filepath.IsAbs(s.Root()))
	})
}

func TestServeFile(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	t.Run("existing file", func(t *testing.T) {
		rec := get(t, h, "/hello.txt")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hello world", rec.Body.String())
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("nested file", func(t *testing.T) {
		rec := get(t, h, "/sub/data.json")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"a":1}`, rec.Body.String())
	})

	t.Run("missing file", func(t *testing.T) {
		rec := get(t, h, "/nope.txt")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "nope.txt not found")
	})

	t.Run("directory is not a file", func(t *testing.T) {
		rec := get(t, h, "/sub")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("traversal", func(t *testing.T) {
		rec := get(t, h, "/../secret.txt")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("root redirects to listing", func(t *testing.T) {
		rec := get(t, h, "/")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/fs/", rec.Header().Get("Location"))
	})
}

func TestFileServerRoute(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s.Handler(), "/fs/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello.txt")

	rec = get(t, s.Handler(), "/fs/hello.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestSymlinkEscape(t *testing.T) {
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("top secret"), 0o600))

	s, dir := newTestServer(t)
	require.NoError(t, os.Symlink(filepath.Join(outside, "secret.txt"), filepath.Join(dir, "leak.txt")))
	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "leakdir")))
	require.NoError(t, os.Symlink("hello.txt", filepath.Join(dir, "alias.txt")))

	for _, target := range []string{"/leak.txt", "/leakdir/secret.txt", "/fs/leak.txt", "/fs/leakdir/secret.txt"} {
		t.Run(target, func(t *testing.T) {
			rec := get(t, s.Handler(), target)
			assert.NotEqual(t, http.StatusOK, rec.Code)
			assert.NotContains(t, rec.Body.String(), "top secret")
		})
	}

	t.Run("link within the directory", func(t *testing.T) {
		rec := get(t, s.Handler(), "/alias.txt")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hello world", rec.Body.String())

		rec = get(t, s.Handler(), "/fs/alias.txt")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hello world", rec.Body.String())
	})
}

func TestMetricsRoute(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	get(t, h, "/hello.txt")
	get(t, h, "/nope.txt")

	rec := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `rcli_http_requests_total{method="GET",route="/*",status="200"} 1`)
	assert.Contains(t, body, `rcli_http_requests_total{method="GET",route="/*",status="404"} 1`)
	assert.Contains(t, body, "rcli_http_response_bytes_total")
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(Config{Dir: t.TempDir()}, WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)

	get(t, s.Handler(), "/missing")
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"path":"/missing"`)
}

func TestServe_GracefulShutdown(t *testing.T) {
	s, _ := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/hello.txt")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "hello world", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
