package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// mockServer creates a test HTTP server that simulates the Threadly backend
func mockServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.HandleFunc(path, handler)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// pngHeader is enough of a PNG file for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func writePicture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	//nolint:gosec // G306: Test file permissions are acceptable
	if err := os.WriteFile(path, pngHeader, 0644); err != nil {
		t.Fatalf("write picture: %v", err)
	}
	return path
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	client, err := New(url)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return client
}
