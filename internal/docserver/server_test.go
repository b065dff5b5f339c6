package docserver

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/featuredesk/internal/domain"
	"github.com/shhac/featuredesk/internal/logging"
)

const testIndex = "<html><body>ML Feature Engineering API</body></html>"

func newTestServer(t *testing.T) *DocServer {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(testIndex), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "css", "style.css"), []byte("body{}"), 0o644))

	return New(Config{Addr: "127.0.0.1:0", Root: root}, logging.NewNopLogger())
}

func get(t *testing.T, s *DocServer, path string) (*http.Response, string) {
	t.Helper()
	resp, err := s.Router().Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, string(body)
}

func TestDocServer_IndexRoutes(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/", "/docs"} {
		t.Run(path, func(t *testing.T) {
			resp, body := get(t, s, path)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, testIndex, body)
		})
	}
}

func TestDocServer_Health(t *testing.T) {
	s := newTestServer(t)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 500_000_000, time.UTC)
	s.now = func() time.Time { return fixed }

	resp, body := get(t, s, HealthPath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var health domain.HealthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, HealthMessage, health.Message)
	assert.Equal(t, "2025-06-01T12:00:00.500Z", health.Timestamp)
}

func TestDocServer_StaticAssets(t *testing.T) {
	s := newTestServer(t)

	resp, body := get(t, s, "/css/style.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "body{}", body)

	resp, _ = get(t, s, "/missing.js")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDocServer_CORS(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, HealthPath, nil)
	req.Header.Set("Origin", "http://example.test")
	resp, err := s.Router().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestDocServer_RunFailsWhenPortTaken(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(testIndex), 0o644))

	s := New(Config{Addr: l.Addr().String(), Root: root}, logging.NewNopLogger())
	err = s.Run()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingIndex)
}

func TestDocServer_RunFailsWithoutIndex(t *testing.T) {
	s := New(Config{Addr: "127.0.0.1:0", Root: t.TempDir()}, logging.NewNopLogger())
	assert.ErrorIs(t, s.Run(), ErrMissingIndex)
}

func TestResolveRoot(t *testing.T) {
	exeDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(exeDir, "docs", "public"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(exeDir, "docs", "public", "index.html"), []byte(testIndex), 0o644))

	t.Run("falls back to executable dir", func(t *testing.T) {
		t.Chdir(t.TempDir())
		assert.Equal(t, filepath.Join(exeDir, "docs", "public"), resolveRoot(DefaultRoot, exeDir))
	})

	t.Run("prefers working dir", func(t *testing.T) {
		t.Chdir(exeDir)
		assert.Equal(t, DefaultRoot, resolveRoot(DefaultRoot, filepath.Join(exeDir, "elsewhere")))
	})

	t.Run("absolute root unchanged", func(t *testing.T) {
		abs := t.TempDir()
		assert.Equal(t, abs, resolveRoot(abs, exeDir))
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Chdir(t.TempDir())
		assert.Equal(t, DefaultRoot, resolveRoot(DefaultRoot, t.TempDir()))
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":5002", cfg.Addr)
	assert.Equal(t, DefaultRoot, cfg.Root)
	assert.Equal(t, "http://localhost:5002", baseURL(cfg.Addr))
	assert.Equal(t, "http://127.0.0.1:9000", baseURL("127.0.0.1:9000"))
}
