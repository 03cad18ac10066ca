package generator

import (
	"os"
	"path/filepath"
	"sort"
)

const (
	// maxExemplars bounds how many catalog documents are quoted per prompt.
	maxExemplars     = 3
	maxExemplarChars = 2000

	maxPracticesChars = 5000

	// maxSourceChars bounds the quoted scraped-source excerpt.
	maxSourceChars = 8000
)

// exemplar is one existing catalog document quoted in the prompt.
type exemplar struct {
	Path    string
	Content string
}

// loadExemplars picks at most one document from each category directory of
// the requested type, up to maxExemplars. An unreadable catalog yields no
// exemplars rather than an error.
func (g *Generator) loadExemplars(componentType string) []exemplar {
	typeDir := filepath.Join(g.catalogDir, componentType)
	categories, err := os.ReadDir(typeDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range categories {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var exemplars []exemplar
	for _, category := range names {
		if len(exemplars) >= maxExemplars {
			break
		}
		if ex, ok := g.firstDocument(filepath.Join(typeDir, category)); ok {
			exemplars = append(exemplars, ex)
		}
	}
	return exemplars
}

// firstDocument returns the first readable document under dir, descending
// one level into skill directories.
func (g *Generator) firstDocument(dir string) (exemplar, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return exemplar{}, false
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			full = filepath.Join(full, "SKILL.md")
		}
		data, err := os.ReadFile(full)
		if err != nil {
			continue
		}
		rel, relErr := filepath.Rel(g.catalogDir, full)
		if relErr != nil {
			rel = full
		}
		return exemplar{
			Path:    filepath.ToSlash(rel),
			Content: truncate(string(data), maxExemplarChars),
		}, true
	}
	return exemplar{}, false
}

// loadBestPractices reads docs/best-practices.md from the catalog, falling
// back to the embedded default.
func (g *Generator) loadBestPractices() string {
	data, err := os.ReadFile(filepath.Join(g.catalogDir, "docs", "best-practices.md"))
	if err != nil {
		return truncate(defaultBestPractices, maxPracticesChars)
	}
	return truncate(string(data), maxPracticesChars)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n[truncated]"
}
