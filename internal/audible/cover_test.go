// file: internal/audible/cover_test.go
// version: 1.0.0
// guid: d1e2f3a4-b5c6-7d8e-9f0a-1b2c3d4e5f6a

package audible

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadCover_FallsBackToAvailableResolution(t *testing.T) {
	image := bytes.Repeat([]byte("x"), 4096)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only the 3000px render exists; larger ones come back as tiny
		// placeholders.
		if strings.Contains(r.URL.Path, "_SL3000_") {
			w.Write(image)
			return
		}
		w.Write([]byte("placeholder"))
	}))
	defer srv.Close()

	c := NewClient()
	dest := filepath.Join(t.TempDir(), "cover.jpg")
	err := c.DownloadCover(context.Background(), srv.URL+"/images/abc._SL5000_.jpg", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, image, data)
}

func TestDownloadCover_AllPlaceholders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tiny"))
	}))
	defer srv.Close()

	c := NewClient()
	dest := filepath.Join(t.TempDir(), "cover.jpg")
	err := c.DownloadCover(context.Background(), srv.URL+"/images/abc._SL5000_.jpg", dest)
	assert.Error(t, err)
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no file should be written")
}

func TestDownloadCover_EmptyURL(t *testing.T) {
	c := NewClient()
	assert.Error(t, c.DownloadCover(context.Background(), "", "out.jpg"))
}
