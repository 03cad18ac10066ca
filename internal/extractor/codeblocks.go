package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tmplhub/catalogd/internal/domain"
)

var (
	languageClassRe  = regexp.MustCompile(`(?:^|\s)language-([A-Za-z0-9_+#.-]+)`)
	highlightClassRe = regexp.MustCompile(`(?:^|\s)highlight-source-([A-Za-z0-9_+#.-]+)`)
)

// ExtractCodeBlocks captures every pre>code or bare code element with
// non-empty trimmed text. Language defaults to "text".
func ExtractCodeBlocks(doc *goquery.Document) []domain.CodeBlock {
	return CodeBlocksIn(doc.Selection)
}

// CodeBlocksIn captures code blocks within a selection.
func CodeBlocksIn(root *goquery.Selection) []domain.CodeBlock {
	var blocks []domain.CodeBlock
	root.Find("code").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		blocks = append(blocks, domain.CodeBlock{
			Language: ResolveLanguage(sel),
			Content:  text,
		})
	})
	return blocks
}

// ResolveLanguage resolves a code element's language by trying, in order:
// a language-X class on the element, a data-lang/lang attribute, a
// language-X class on the enclosing pre, and a highlight-source-X class on
// an enclosing highlight wrapper.
func ResolveLanguage(sel *goquery.Selection) string {
	if lang := matchClass(sel, languageClassRe); lang != "" {
		return lang
	}
	if lang, ok := sel.Attr("data-lang"); ok && strings.TrimSpace(lang) != "" {
		return strings.ToLower(strings.TrimSpace(lang))
	}
	if lang, ok := sel.Attr("lang"); ok && strings.TrimSpace(lang) != "" {
		return strings.ToLower(strings.TrimSpace(lang))
	}
	if pre := sel.Closest("pre"); pre.Length() > 0 {
		if lang := matchClass(pre, languageClassRe); lang != "" {
			return lang
		}
	}
	if wrapper := sel.Closest(`[class*="highlight"]`); wrapper.Length() > 0 {
		if lang := matchClass(wrapper, highlightClassRe); lang != "" {
			return lang
		}
	}
	return "text"
}

func matchClass(sel *goquery.Selection, re *regexp.Regexp) string {
	class, ok := sel.Attr("class")
	if !ok {
		return ""
	}
	if m := re.FindStringSubmatch(class); m != nil {
		return strings.ToLower(m[1])
	}
	return ""
}
