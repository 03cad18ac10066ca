// Package github enriches generically-extracted content with GitHub-specific
// structure. Rendered GitHub HTML is an unstable source of truth, so the
// normalizer prefers the most structured or raw representation available and
// only keeps the generic extraction when nothing better exists.
package github

import (
	"context"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/tmplhub/catalogd/internal/domain"
	"github.com/tmplhub/catalogd/internal/extractor"
	"github.com/tmplhub/catalogd/internal/utils"
)

const (
	hostGitHub = "github.com"
	hostRaw    = "raw.githubusercontent.com"

	// rawFallbackThreshold is the post-extraction content length below
	// which the one-shot raw fetch is attempted for blob URLs.
	rawFallbackThreshold = 500

	// maxRepoEntries caps the repository structure listing.
	maxRepoEntries = 50
)

// Normalizer applies GitHub-specific enrichment to scraped content.
type Normalizer struct {
	fetcher         domain.Fetcher
	fallbackTimeout time.Duration
	log             *utils.Logger
}

// NewNormalizer creates a new GitHub normalizer. The fetcher is used only
// for the single raw-content fallback fetch on blob URLs.
func NewNormalizer(fetcher domain.Fetcher, fallbackTimeout time.Duration, log *utils.Logger) *Normalizer {
	if fallbackTimeout <= 0 {
		fallbackTimeout = 10 * time.Second
	}
	if log == nil {
		log = utils.NopLogger()
	}
	return &Normalizer{
		fetcher:         fetcher,
		fallbackTimeout: fallbackTimeout,
		log:             log.WithComponent("github"),
	}
}

// Applies reports whether the host is GitHub-served content.
func Applies(host string) bool {
	host = strings.ToLower(host)
	return host == hostGitHub || host == hostRaw
}

// Normalize mutates content in place with GitHub-specific metadata and,
// where a more structured representation exists, replaces the generic
// extraction. doc may be nil for raw responses.
func (n *Normalizer) Normalize(ctx context.Context, content *domain.ScrapedContent, pageURL *url.URL, doc *goquery.Document, resp *domain.Response) {
	content.Metadata["source"] = "github"
	segments := utils.PathSegments(pageURL)

	if strings.EqualFold(pageURL.Host, hostRaw) {
		n.normalizeRaw(content, segments, resp)
		return
	}

	switch {
	case containsSegment(segments, "blob"):
		n.normalizeBlob(ctx, content, segments, doc)
	case containsSegment(segments, "tree"):
		normalizeTree(content, segments)
	case len(segments) >= 2:
		normalizeRepoRoot(content, segments, doc)
	}
}

// normalizeRaw handles raw.githubusercontent.com URLs with the path shape
// /{owner}/{repo}/{branch}/{filePath...}. The fetcher already classified
// the body as raw text, so the verbatim body becomes the content.
func (n *Normalizer) normalizeRaw(content *domain.ScrapedContent, segments []string, resp *domain.Response) {
	if len(segments) < 3 {
		return
	}

	content.Metadata["repository"] = domain.Repository{Owner: segments[0], Name: segments[1]}
	content.Metadata["branch"] = segments[2]
	content.Metadata["isRaw"] = true

	if len(segments) > 3 {
		filePath := strings.Join(segments[3:], "/")
		content.Metadata["filePath"] = filePath
		content.Metadata["fileExtension"] = fileExtension(filePath)
		if content.Title == "" {
			content.Title = path.Base(filePath)
		}
	}

	content.Content = string(resp.Body)
	content.Metadata["rawContent"] = true
}

// normalizeBlob handles /owner/repo/blob/branch/path URLs: it records file
// metadata, prefers the rendered .markdown-body element over the generic
// extraction, and falls back to one raw fetch when the result is thin.
func (n *Normalizer) normalizeBlob(ctx context.Context, content *domain.ScrapedContent, segments []string, doc *goquery.Document) {
	idx := indexOfSegment(segments, "blob")
	if idx != 2 || len(segments) < idx+2 {
		return
	}

	owner, repo := segments[0], segments[1]
	branch := segments[idx+1]
	filePath := strings.Join(segments[idx+2:], "/")

	content.Metadata["repository"] = domain.Repository{Owner: owner, Name: repo}
	content.Metadata["branch"] = branch
	if filePath != "" {
		content.Metadata["filePath"] = filePath
		content.Metadata["fileExtension"] = fileExtension(filePath)
	}

	rawURL := ""
	if filePath != "" {
		rawURL = "https://" + hostRaw + "/" + owner + "/" + repo + "/" + branch + "/" + filePath
		content.Metadata["rawUrl"] = rawURL
	}

	if doc != nil {
		if body := doc.Find(".markdown-body").First(); body.Length() > 0 {
			if text := extractor.CleanText(body.Text()); text != "" {
				content.Content = text
				content.CodeBlocks = extractor.CodeBlocksIn(body)
			}
		}
	}

	// One-shot raw fallback: triggers if and only if the extracted content
	// is thin and a raw URL was computed. Failure keeps the HTML-derived
	// content and never raises.
	if len(content.Content) >= rawFallbackThreshold || rawURL == "" {
		return
	}

	fctx, cancel := context.WithTimeout(ctx, n.fallbackTimeout)
	defer cancel()

	resp, err := n.fetcher.Fetch(fctx, rawURL)
	if err != nil || resp.StatusCode >= 400 || resp.IsHTML {
		n.log.Debug().Str("rawUrl", rawURL).Err(err).Msg("raw content fallback failed")
		return
	}

	content.Content = string(resp.Body)
	content.Metadata["rawContentFetched"] = true
}

// normalizeTree records repository identity for /owner/repo/tree/branch URLs.
func normalizeTree(content *domain.ScrapedContent, segments []string) {
	if len(segments) < 2 {
		return
	}
	content.Metadata["repository"] = domain.Repository{Owner: segments[0], Name: segments[1]}
	if idx := indexOfSegment(segments, "tree"); idx == 2 && len(segments) > 3 {
		content.Metadata["branch"] = segments[3]
	}
}

// normalizeRepoRoot marks a repository root page and scans its anchors into
// an ordered file/directory listing.
func normalizeRepoRoot(content *domain.ScrapedContent, segments []string, doc *goquery.Document) {
	content.Metadata["repository"] = domain.Repository{Owner: segments[0], Name: segments[1]}
	content.Metadata["isRepoRoot"] = true

	if doc == nil {
		return
	}
	if structure := scanRepoStructure(doc); len(structure) > 0 {
		content.Metadata["repoStructure"] = structure
	}
}

func scanRepoStructure(doc *goquery.Document) []domain.RepoEntry {
	var entries []domain.RepoEntry
	seen := make(map[string]bool)

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")

		entryType := ""
		if strings.Contains(href, "/blob/") {
			entryType = "file"
		} else if strings.Contains(href, "/tree/") {
			entryType = "directory"
		}
		if entryType == "" {
			return true
		}

		entryPath := pathAfterRef(href)
		if entryPath == "" || seen[entryPath] {
			return true
		}
		seen[entryPath] = true

		entryURL := href
		if resolved, err := utils.ResolveURL("https://"+hostGitHub+"/", href); err == nil {
			entryURL = resolved
		}

		entries = append(entries, domain.RepoEntry{
			Name: path.Base(entryPath),
			Path: entryPath,
			Type: entryType,
			URL:  entryURL,
		})
		return len(entries) < maxRepoEntries
	})

	return entries
}

// pathAfterRef extracts the in-repo path from an href like
// /owner/repo/blob/main/src/file.go, skipping the ref segment.
func pathAfterRef(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	idx := indexOfSegment(segments, "blob")
	if idx == -1 {
		idx = indexOfSegment(segments, "tree")
	}
	// Need at least a ref and one path segment after the marker.
	if idx == -1 || len(segments) < idx+3 {
		return ""
	}
	return strings.Join(segments[idx+2:], "/")
}

func fileExtension(filePath string) string {
	return strings.TrimPrefix(path.Ext(filePath), ".")
}

func containsSegment(segments []string, marker string) bool {
	return indexOfSegment(segments, marker) != -1
}

func indexOfSegment(segments []string, marker string) int {
	for i, seg := range segments {
		if seg == marker {
			return i
		}
	}
	return -1
}
