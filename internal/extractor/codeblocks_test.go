package extractor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestResolveLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "language class on code",
			html:     `<pre><code class="language-go">x</code></pre>`,
			expected: "go",
		},
		{
			name:     "data-lang attribute",
			html:     `<pre><code data-lang="Python">x</code></pre>`,
			expected: "python",
		},
		{
			name:     "lang attribute",
			html:     `<pre><code lang="ruby">x</code></pre>`,
			expected: "ruby",
		},
		{
			name:     "language class on enclosing pre",
			html:     `<pre class="language-rust"><code>x</code></pre>`,
			expected: "rust",
		},
		{
			name:     "github highlight wrapper",
			html:     `<div class="highlight highlight-source-shell"><pre><code>x</code></pre></div>`,
			expected: "shell",
		},
		{
			name:     "code class beats wrapper",
			html:     `<div class="highlight highlight-source-shell"><pre><code class="language-go">x</code></pre></div>`,
			expected: "go",
		},
		{
			name:     "default text",
			html:     `<pre><code>x</code></pre>`,
			expected: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := docFrom(t, tt.html)
			sel := doc.Find("code").First()
			assert.Equal(t, tt.expected, ResolveLanguage(sel))
		})
	}
}

func TestExtractCodeBlocks(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<pre><code class="language-go">fmt.Println("hi")</code></pre>
		<pre><code>   </code></pre>
		<code>inline snippet</code>
	</body></html>`

	blocks := ExtractCodeBlocks(docFrom(t, html))
	require.Len(t, blocks, 2)
	assert.Equal(t, "go", blocks[0].Language)
	assert.Equal(t, `fmt.Println("hi")`, blocks[0].Content)
	assert.Equal(t, "text", blocks[1].Language)
	assert.Equal(t, "inline snippet", blocks[1].Content)
}
