package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEssayFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body>
<nav>Menu</nav>
<article>
  <p>Primeiro   parágrafo.</p>
  <p>Segundo parágrafo.</p>
</article>
<footer>Rodapé</footer>
</body></html>`))
	}))
	defer server.Close()

	essay, err := ReadEssayFromURL(context.Background(), server.URL, URLOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Primeiro parágrafo.\n\nSegundo parágrafo.", essay.Text)
	assert.Equal(t, FormatURL, essay.Format)
	assert.Equal(t, server.URL, essay.Path)
	assert.Len(t, essay.Hash, 64)
}

func TestReadEssayFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := ReadEssayFromURL(context.Background(), server.URL, URLOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestReadEssayFromURL_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>render()</script></body></html>`))
	}))
	defer server.Close()

	_, err := ReadEssayFromURL(context.Background(), server.URL, URLOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContentExtractionFailed)
}

func TestExtractHTMLTextWith_SelectorOrder(t *testing.T) {
	html := `<html><body><div class="post-body"><p>Texto do blog.</p></div><article><p>Outro.</p></article></body></html>`

	text, err := ExtractHTMLTextWith(html, []string{".post-body", "article"})
	require.NoError(t, err)
	assert.Equal(t, "Texto do blog.", text)
}
