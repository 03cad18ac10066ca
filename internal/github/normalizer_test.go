package github

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmplhub/catalogd/internal/domain"
)

type stubFetcher struct {
	resp    *domain.Response
	err     error
	fetched []string
}

func (s *stubFetcher) Fetch(_ context.Context, rawURL string) (*domain.Response, error) {
	s.fetched = append(s.fetched, rawURL)
	return s.resp, s.err
}

func (s *stubFetcher) Close() error { return nil }

func newContent() *domain.ScrapedContent {
	return &domain.ScrapedContent{Metadata: domain.Metadata{}}
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestApplies(t *testing.T) {
	t.Parallel()

	assert.True(t, Applies("github.com"))
	assert.True(t, Applies("GitHub.com"))
	assert.True(t, Applies("raw.githubusercontent.com"))
	assert.False(t, Applies("gitlab.com"))
	assert.False(t, Applies("example.com"))
}

func TestNormalizeRawURL(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(&stubFetcher{}, time.Second, nil)
	content := newContent()
	resp := &domain.Response{Body: []byte("# Title\n\nBody")}

	n.Normalize(context.Background(),
		content,
		mustParse(t, "https://raw.githubusercontent.com/octo/repo/main/docs/guide.md"),
		nil, resp)

	assert.Equal(t, "github", content.Metadata["source"])
	assert.Equal(t, domain.Repository{Owner: "octo", Name: "repo"}, content.Metadata["repository"])
	assert.Equal(t, "main", content.Metadata["branch"])
	assert.Equal(t, "docs/guide.md", content.Metadata["filePath"])
	assert.Equal(t, "md", content.Metadata["fileExtension"])
	assert.Equal(t, true, content.Metadata["isRaw"])
	assert.Equal(t, true, content.Metadata["rawContent"])
	assert.Equal(t, "# Title\n\nBody", content.Content)
	assert.Equal(t, "guide.md", content.Title)
}

func TestNormalizeBlobPrefersMarkdownBody(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{}
	n := NewNormalizer(fetcher, time.Second, nil)

	longText := strings.Repeat("rendered readme text ", 40)
	doc := docFrom(t, `<html><body><div class="markdown-body"><p>`+longText+`</p>
		<pre><code class="language-go">package main</code></pre></div></body></html>`)

	content := newContent()
	n.Normalize(context.Background(),
		content,
		mustParse(t, "https://github.com/octo/repo/blob/main/README.md"),
		doc, nil)

	assert.Equal(t, domain.Repository{Owner: "octo", Name: "repo"}, content.Metadata["repository"])
	assert.Equal(t, "main", content.Metadata["branch"])
	assert.Equal(t, "README.md", content.Metadata["filePath"])
	assert.Equal(t, "https://raw.githubusercontent.com/octo/repo/main/README.md", content.Metadata["rawUrl"])
	assert.Contains(t, content.Content, "rendered readme text")
	require.Len(t, content.CodeBlocks, 1)
	assert.Equal(t, "go", content.CodeBlocks[0].Language)

	// Content was long enough, so no raw fetch happened.
	assert.Empty(t, fetcher.fetched)
	assert.NotContains(t, content.Metadata, "rawContentFetched")
}

func TestNormalizeBlobThinContentFallsBackToRaw(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{resp: &domain.Response{
		StatusCode: 200,
		Body:       []byte("full raw file contents"),
	}}
	n := NewNormalizer(fetcher, time.Second, nil)

	doc := docFrom(t, `<html><body><div class="markdown-body"><p>thin</p></div></body></html>`)

	content := newContent()
	n.Normalize(context.Background(),
		content,
		mustParse(t, "https://github.com/octo/repo/blob/main/config.json"),
		doc, nil)

	require.Len(t, fetcher.fetched, 1)
	assert.Equal(t, "https://raw.githubusercontent.com/octo/repo/main/config.json", fetcher.fetched[0])
	assert.Equal(t, "full raw file contents", content.Content)
	assert.Equal(t, true, content.Metadata["rawContentFetched"])
}

func TestNormalizeBlobFallbackFailureKeepsContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fetcher *stubFetcher
	}{
		{
			name:    "fetch error",
			fetcher: &stubFetcher{err: domain.ErrTimeout},
		},
		{
			name:    "error status",
			fetcher: &stubFetcher{resp: &domain.Response{StatusCode: 404, Body: []byte("not found")}},
		},
		{
			name:    "html response",
			fetcher: &stubFetcher{resp: &domain.Response{StatusCode: 200, Body: []byte("<!DOCTYPE html>"), IsHTML: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n := NewNormalizer(tt.fetcher, time.Second, nil)
			doc := docFrom(t, `<html><body><div class="markdown-body"><p>thin</p></div></body></html>`)

			content := newContent()
			n.Normalize(context.Background(),
				content,
				mustParse(t, "https://github.com/octo/repo/blob/main/file.md"),
				doc, nil)

			assert.Len(t, tt.fetcher.fetched, 1)
			assert.Equal(t, "thin", content.Content)
			assert.NotContains(t, content.Metadata, "rawContentFetched")
		})
	}
}

func TestNormalizeTree(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(&stubFetcher{}, time.Second, nil)
	content := newContent()

	n.Normalize(context.Background(),
		content,
		mustParse(t, "https://github.com/octo/repo/tree/develop"),
		docFrom(t, `<html><body></body></html>`), nil)

	assert.Equal(t, domain.Repository{Owner: "octo", Name: "repo"}, content.Metadata["repository"])
	assert.Equal(t, "develop", content.Metadata["branch"])
}

func TestNormalizeRepoRoot(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<a href="/octo/repo/blob/main/README.md">README.md</a>
		<a href="/octo/repo/blob/main/src/main.go">main.go</a>
		<a href="/octo/repo/blob/main/README.md">duplicate</a>
		<a href="/octo/repo/tree/main/src">src</a>
		<a href="/octo/repo/issues">issues</a>
	</body></html>`

	n := NewNormalizer(&stubFetcher{}, time.Second, nil)
	content := newContent()

	n.Normalize(context.Background(),
		content,
		mustParse(t, "https://github.com/octo/repo"),
		docFrom(t, html), nil)

	assert.Equal(t, true, content.Metadata["isRepoRoot"])

	structure, ok := content.Metadata["repoStructure"].([]domain.RepoEntry)
	require.True(t, ok)
	require.Len(t, structure, 3)

	assert.Equal(t, domain.RepoEntry{
		Name: "README.md",
		Path: "README.md",
		Type: "file",
		URL:  "https://github.com/octo/repo/blob/main/README.md",
	}, structure[0])
	assert.Equal(t, "src/main.go", structure[1].Path)
	assert.Equal(t, "file", structure[1].Type)
	assert.Equal(t, "src", structure[2].Path)
	assert.Equal(t, "directory", structure[2].Type)
}
