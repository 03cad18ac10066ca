package extractor

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/tmplhub/catalogd/internal/domain"
	"github.com/tmplhub/catalogd/internal/utils"
)

// candidateRoots are tried in priority order when selecting the content root.
var candidateRoots = []string{
	"main",
	"article",
	".content",
	".markdown-body",
	"#readme",
}

// removalSelectors are stripped from the cloned content root before the
// remaining text is taken as the body.
var removalSelectors = []string{
	"script",
	"style",
	"noscript",
	"nav",
	"header",
	"footer",
	".sidebar",
	"#sidebar",
	".menu",
	"#menu",
	".ads",
	".ad",
	".comments",
	"#comments",
}

// maxLinks caps the number of anchors captured into metadata.
const maxLinks = 20

// Extractor parses HTML documents into the content model.
type Extractor struct {
	log *utils.Logger
}

// New creates a new extractor
func New(log *utils.Logger) *Extractor {
	if log == nil {
		log = utils.NopLogger()
	}
	return &Extractor{log: log.WithComponent("extractor")}
}

// Parse converts a fetched HTML body to UTF-8 and parses it.
func (e *Extractor) Parse(body []byte) (*goquery.Document, error) {
	utf8Body, err := ConvertToUTF8(body)
	if err != nil {
		utf8Body = body
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(utf8Body))
}

// Extract builds a ScrapedContent from a parsed document.
func (e *Extractor) Extract(doc *goquery.Document, pageURL, contentType string) *domain.ScrapedContent {
	content := &domain.ScrapedContent{
		Title:       extractTitle(doc),
		Description: extractDescription(doc),
		Content:     e.extractBody(doc, pageURL),
		CodeBlocks:  ExtractCodeBlocks(doc),
		Metadata:    BaseMetadata(pageURL, contentType),
	}

	if headings := extractHeadings(doc); len(headings) > 0 {
		content.Metadata["headings"] = headings
	}
	if links := extractLinks(doc, pageURL); len(links) > 0 {
		content.Metadata["links"] = links
	}
	if ogTitle, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && ogTitle != "" {
		content.Metadata["ogTitle"] = strings.TrimSpace(ogTitle)
	}
	if ogDesc, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok && ogDesc != "" {
		content.Metadata["ogDescription"] = strings.TrimSpace(ogDesc)
	}

	return content
}

// extractBody selects the content root, strips non-content elements from a
// clone, and returns the cleaned text. Falls back to readability when the
// selected root yields nothing.
func (e *Extractor) extractBody(doc *goquery.Document, pageURL string) string {
	root := doc.Find("body")
	for _, sel := range candidateRoots {
		if candidate := doc.Find(sel).First(); candidate.Length() > 0 {
			root = candidate
			break
		}
	}

	clone := root.Clone()
	for _, sel := range removalSelectors {
		clone.Find(sel).Remove()
	}

	text := CleanText(clone.Text())
	if text != "" {
		return text
	}

	return e.readabilityFallback(doc, pageURL)
}

func (e *Extractor) readabilityFallback(doc *goquery.Document, pageURL string) string {
	if len(doc.Nodes) == 0 {
		return ""
	}
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		parsedURL = &url.URL{Scheme: "https", Host: "localhost"}
	}
	article, err := readability.FromDocument(doc.Nodes[0], parsedURL)
	if err != nil {
		e.log.Debug().Err(err).Msg("readability fallback failed")
		return ""
	}
	return CleanText(article.TextContent)
}

// extractTitle returns the first of <title>, <h1>, <h2>.
func extractTitle(doc *goquery.Document) string {
	for _, sel := range []string{"title", "h1", "h2"} {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func extractDescription(doc *goquery.Document) string {
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		return strings.TrimSpace(desc)
	}
	return ""
}

func extractHeadings(doc *goquery.Document) []string {
	var headings []string
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			headings = append(headings, text)
		}
	})
	return headings
}

func extractLinks(doc *goquery.Document, pageURL string) []domain.Link {
	var links []domain.Link
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "javascript:") ||
			strings.HasPrefix(href, "mailto:") {
			return true
		}
		if resolved, err := utils.ResolveURL(pageURL, href); err == nil {
			href = resolved
		}
		links = append(links, domain.Link{
			Text: strings.TrimSpace(sel.Text()),
			Href: href,
		})
		return len(links) < maxLinks
	})
	return links
}

// BaseMetadata returns the metadata every scrape carries regardless of
// whether the body was HTML or raw text.
func BaseMetadata(pageURL, contentType string) domain.Metadata {
	return domain.Metadata{
		"url":         pageURL,
		"domain":      utils.GetDomain(pageURL),
		"contentType": contentType,
		"scrapedAt":   time.Now().UTC(),
	}
}

var blankLineRe = regexp.MustCompile(`\n{3,}`)

// CleanText trims each line, drops runs of blank lines, and trims the result.
func CleanText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	joined := strings.Join(lines, "\n")
	joined = blankLineRe.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}
