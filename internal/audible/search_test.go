// file: internal/audible/search_test.go
// version: 1.1.0
// guid: b9c0d1e2-f3a4-5b6c-7d8e-9f0a1b2c3d4e

package audible

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPage = `<!DOCTYPE html>
<html><body>
<ul>
  <li class="productListItem">
    <h3 class="bc-heading"><a class="bc-link" href="/pd/Dune-Audiobook/B002V1OF70?qid=123&sr=1-1">Dune</a></h3>
    <ul>
      <li class="subtitle">Book One</li>
      <li class="authorLabel">By: <a class="bc-link" href="/author/fh">Frank Herbert</a></li>
      <li class="narratorLabel">Narrated by: <a class="bc-link" href="/n/sb">Scott Brick</a></li>
      <li class="runtimeLabel">Length: 21 hrs and 2 mins</li>
      <li class="releaseDateLabel">Release date: 12-31-06</li>
    </ul>
  </li>
  <li class="productListItem">
    <h3 class="bc-heading"><a class="bc-link" href="/pd/Dune-Messiah/B002V8LCS2">Dune Messiah</a></h3>
    <ul>
      <li class="authorLabel">By: <a class="bc-link" href="/author/fh">Frank Herbert</a></li>
      <li class="runtimeLabel">Length: 8 hrs and 58 mins</li>
      <li class="releaseDateLabel">Release date: 05-15-2008</li>
    </ul>
  </li>
  <li class="productListItem">
    <div>no title here</div>
  </li>
</ul>
</body></html>`

func TestSearch_ParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "keywords=dune")
		w.Write([]byte(searchPage))
	}))
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	results, err := c.Search(context.Background(), "dune")
	require.NoError(t, err)
	require.Len(t, results, 2, "titleless rows are dropped")

	first := results[0]
	assert.Equal(t, "Dune", first.Title)
	assert.Equal(t, "Book One", first.Subtitle)
	assert.Equal(t, "Frank Herbert", first.Author)
	assert.Equal(t, "Scott Brick", first.Narrator)
	assert.Equal(t, "21:02:00", first.Duration)
	assert.Equal(t, "2006", first.Year)
	assert.Equal(t, srv.URL+"/pd/Dune-Audiobook/B002V1OF70?"+urlOverrides, first.URL)

	second := results[1]
	assert.Equal(t, "Dune Messiah", second.Title)
	assert.Empty(t, second.Narrator)
	assert.Equal(t, "08:58:00", second.Duration)
	assert.Equal(t, "2008", second.Year)
}

func TestSearch_Cached(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(searchPage))
	}))
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	_, err := c.Search(context.Background(), "dune")
	require.NoError(t, err)
	_, err = c.Search(context.Background(), "dune")
	require.NoError(t, err)
	assert.Equal(t, 1, hits, "second search should come from cache")
}

func TestSearch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	_, err := c.Search(context.Background(), "dune")
	assert.Error(t, err)
}

func TestCompressDuration(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"11 hrs and 41 mins", "11:41:00"},
		{"1 hr and 2 mins", "01:02:00"},
		{"45 mins", "00:45:00"},
		{"10 hrs", "10:00:00"},
		{"", ""},
		{"unknown", ""},
	}
	for _, tt := range tests {
		if got := compressDuration(tt.input); got != tt.want {
			t.Errorf("compressDuration(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"12-31-06", "2006"},
		{"12-31-74", "1974"},
		{"05-15-2008", "2008"},
		{"Published 1997", "1997"},
		{"soon", ""},
	}
	for _, tt := range tests {
		if got := extractYear(tt.input); got != tt.want {
			t.Errorf("extractYear(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
