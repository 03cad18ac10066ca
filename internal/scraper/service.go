// Package scraper orchestrates the scrape pipeline: fetch, extract,
// source-specific normalization, and optional AI analysis.
package scraper

import (
	"context"
	"net/url"
	"path"

	"github.com/PuerkitoBio/goquery"

	"github.com/tmplhub/catalogd/internal/analyzer"
	"github.com/tmplhub/catalogd/internal/domain"
	"github.com/tmplhub/catalogd/internal/extractor"
	"github.com/tmplhub/catalogd/internal/github"
	"github.com/tmplhub/catalogd/internal/utils"
)

// Service runs the scrape pipeline for a single URL.
type Service struct {
	fetcher    domain.Fetcher
	extractor  *extractor.Extractor
	normalizer *github.Normalizer
	analyzer   *analyzer.Analyzer
	log        *utils.Logger
}

// Result is the pipeline output. Analysis is nil unless AI analysis was
// requested.
type Result struct {
	Content  *domain.ScrapedContent
	Analysis *domain.AIAnalysis
}

// NewService wires the pipeline stages together.
func NewService(fetcher domain.Fetcher, ext *extractor.Extractor, normalizer *github.Normalizer, anl *analyzer.Analyzer, log *utils.Logger) *Service {
	if log == nil {
		log = utils.NopLogger()
	}
	return &Service{
		fetcher:    fetcher,
		extractor:  ext,
		normalizer: normalizer,
		analyzer:   anl,
		log:        log.WithComponent("scraper"),
	}
}

// Scrape fetches rawURL and runs it through extraction, normalization, and
// optional analysis. Fetch-stage failures propagate; the analysis stage
// never fails.
func (s *Service) Scrape(ctx context.Context, rawURL string, useAI bool) (*Result, error) {
	resp, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	// Upstream 4xx statuses carried through by the fetcher become fetch
	// errors here so the caller can map them onto its own responses.
	if resp.StatusCode >= 400 {
		return nil, &domain.FetchError{URL: resp.URL, StatusCode: resp.StatusCode}
	}

	finalURL, err := url.Parse(resp.URL)
	if err != nil {
		return nil, &domain.FetchError{URL: resp.URL, Err: err}
	}

	var (
		content *domain.ScrapedContent
		doc     *goquery.Document
	)
	if resp.IsHTML {
		doc, err = s.extractor.Parse(resp.Body)
		if err != nil {
			return nil, err
		}
		content = s.extractor.Extract(doc, resp.URL, resp.ContentType)
	} else {
		content = rawContent(resp)
	}

	if github.Applies(finalURL.Host) {
		s.normalizer.Normalize(ctx, content, finalURL, doc, resp)
	}

	result := &Result{Content: content}
	if useAI {
		result.Analysis = s.analyzer.Analyze(ctx, content)
	}

	s.log.Info().
		Str("url", rawURL).
		Bool("html", resp.IsHTML).
		Bool("ai", useAI).
		Int("contentLength", len(content.Content)).
		Msg("scrape completed")

	return result, nil
}

// rawContent wraps a non-HTML body verbatim, titling it after the last URL
// path segment.
func rawContent(resp *domain.Response) *domain.ScrapedContent {
	content := &domain.ScrapedContent{
		Content:  string(resp.Body),
		Metadata: extractor.BaseMetadata(resp.URL, resp.ContentType),
	}
	content.Metadata["isRaw"] = true

	if u, err := url.Parse(resp.URL); err == nil {
		if base := path.Base(u.Path); base != "" && base != "/" && base != "." {
			content.Title = base
		}
	}
	return content
}
