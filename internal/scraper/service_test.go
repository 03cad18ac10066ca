package scraper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmplhub/catalogd/internal/analyzer"
	"github.com/tmplhub/catalogd/internal/domain"
	"github.com/tmplhub/catalogd/internal/extractor"
	"github.com/tmplhub/catalogd/internal/github"
)

type stubFetcher struct {
	resp *domain.Response
	err  error
}

func (s *stubFetcher) Fetch(_ context.Context, _ string) (*domain.Response, error) {
	return s.resp, s.err
}

func (s *stubFetcher) Close() error { return nil }

func newTestService(fetcher domain.Fetcher) *Service {
	return NewService(
		fetcher,
		extractor.New(nil),
		github.NewNormalizer(fetcher, 0, nil),
		analyzer.New(nil, "test-model", nil),
		nil,
	)
}

func TestScrapeRawBody(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{resp: &domain.Response{
		StatusCode:  200,
		Body:        []byte("# Title\n\nBody"),
		ContentType: "text/plain",
		URL:         "https://example.com/notes.md",
		IsHTML:      false,
	}}
	svc := newTestService(fetcher)

	result, err := svc.Scrape(context.Background(), "https://example.com/notes.md", false)
	require.NoError(t, err)

	assert.Equal(t, "# Title\n\nBody", result.Content.Content)
	assert.Equal(t, "notes.md", result.Content.Title)
	assert.Equal(t, true, result.Content.Metadata["isRaw"])
	assert.Equal(t, "https://example.com/notes.md", result.Content.Metadata["url"])
	assert.Nil(t, result.Analysis)
}

func TestScrapeHTMLBody(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html><html><head><title>Docs</title></head>
		<body><main><p>page body</p></main></body></html>`
	fetcher := &stubFetcher{resp: &domain.Response{
		StatusCode:  200,
		Body:        []byte(html),
		ContentType: "text/html",
		URL:         "https://example.com/docs",
		IsHTML:      true,
	}}
	svc := newTestService(fetcher)

	result, err := svc.Scrape(context.Background(), "https://example.com/docs", false)
	require.NoError(t, err)

	assert.Equal(t, "Docs", result.Content.Title)
	assert.Contains(t, result.Content.Content, "page body")
}

func TestScrapeFetchErrorPropagates(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{err: domain.ErrTimeout}
	svc := newTestService(fetcher)

	_, err := svc.Scrape(context.Background(), "https://example.com", false)
	assert.ErrorIs(t, err, domain.ErrTimeout)
}

func TestScrapeUpstreamStatusBecomesFetchError(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{resp: &domain.Response{
		StatusCode: 404,
		Body:       []byte("not found"),
		URL:        "https://example.com/missing",
	}}
	svc := newTestService(fetcher)

	_, err := svc.Scrape(context.Background(), "https://example.com/missing", false)
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 404, fetchErr.StatusCode)
}

func TestScrapeGitHubNormalization(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{resp: &domain.Response{
		StatusCode:  200,
		Body:        []byte("raw file contents"),
		ContentType: "text/plain",
		URL:         "https://raw.githubusercontent.com/octo/repo/main/README.md",
		IsHTML:      false,
	}}
	svc := newTestService(fetcher)

	result, err := svc.Scrape(context.Background(),
		"https://raw.githubusercontent.com/octo/repo/main/README.md", false)
	require.NoError(t, err)

	assert.Equal(t, "github", result.Content.Metadata["source"])
	assert.Equal(t, domain.Repository{Owner: "octo", Name: "repo"}, result.Content.Metadata["repository"])
	assert.Equal(t, "raw file contents", result.Content.Content)
}

func TestScrapeWithAIAlwaysYieldsAnalysis(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{resp: &domain.Response{
		StatusCode: 200,
		Body:       []byte("plain text"),
		URL:        "https://example.com/file.txt",
	}}
	svc := newTestService(fetcher)

	result, err := svc.Scrape(context.Background(), "https://example.com/file.txt", true)
	require.NoError(t, err)

	require.NotNil(t, result.Analysis)
	assert.True(t, result.Analysis.Degraded)
	assert.Equal(t, "low", result.Analysis.Validation.DataQuality)
}
