package analyzer

import (
	"fmt"
	"strings"

	"github.com/tmplhub/catalogd/internal/domain"
)

// Prompt budgets. Scraped pages can be arbitrarily large; the prompt is not.
const (
	maxContentChars   = 8000
	maxFilePaths      = 10
	maxDirPaths       = 5
	maxCodeBlocks     = 3
	maxCodeBlockChars = 500
	maxReferenceChars = 3000
)

const analysisSystemPrompt = `You are a classifier for a developer tooling catalog. ` +
	`You receive scraped web content and decide which catalog component type it best maps to. ` +
	`Respond with a single JSON object and nothing else.`

// BuildPrompt renders the user message for a classification call.
func BuildPrompt(content *domain.ScrapedContent) string {
	var b strings.Builder

	b.WriteString("Classify the following scraped content into one of the catalog component types.\n\n")
	b.WriteString(referenceSection())

	b.WriteString("## Scraped content\n\n")
	if content.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", content.Title)
	}
	if content.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", content.Description)
	}
	if url, ok := content.Metadata["url"].(string); ok && url != "" {
		fmt.Fprintf(&b, "URL: %s\n", url)
	}
	b.WriteString("\n")
	b.WriteString(truncate(content.Content, maxContentChars))
	b.WriteString("\n")

	if section := repoStructureSection(content.Metadata); section != "" {
		b.WriteString("\n## Repository structure\n\n")
		b.WriteString(section)
	}

	if section := codeBlocksSection(content.CodeBlocks); section != "" {
		b.WriteString("\n## Code samples\n\n")
		b.WriteString(section)
	}

	b.WriteString("\n## Response format\n\n")
	b.WriteString(`Respond with JSON of this shape:
{
  "suggestedComponentType": "one of: agents, commands, mcps, settings, hooks, skills",
  "confidence": 0.0,
  "suggestedCategory": "kebab-case category",
  "suggestedName": "kebab-case name",
  "extractedMetadata": {
    "description": "",
    "purpose": "",
    "features": [],
    "tools": [],
    "model": ""
  },
  "repositoryInsights": "",
  "validation": {
    "dataQuality": "high|medium|low",
    "missingFields": [],
    "recommendations": [],
    "warnings": []
  },
  "reasoning": ""
}
`)

	return b.String()
}

// repoStructureSection lists a bounded sample of file and directory paths
// from a normalized repository root scrape.
func repoStructureSection(metadata domain.Metadata) string {
	entries, ok := metadata["repoStructure"].([]domain.RepoEntry)
	if !ok || len(entries) == 0 {
		return ""
	}

	var files, dirs []string
	for _, entry := range entries {
		switch entry.Type {
		case "file":
			if len(files) < maxFilePaths {
				files = append(files, entry.Path)
			}
		case "directory":
			if len(dirs) < maxDirPaths {
				dirs = append(dirs, entry.Path)
			}
		}
	}

	var b strings.Builder
	for _, d := range dirs {
		fmt.Fprintf(&b, "- %s/\n", d)
	}
	for _, f := range files {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return b.String()
}

func codeBlocksSection(blocks []domain.CodeBlock) string {
	if len(blocks) == 0 {
		return ""
	}
	if len(blocks) > maxCodeBlocks {
		blocks = blocks[:maxCodeBlocks]
	}

	var b strings.Builder
	for _, block := range blocks {
		fmt.Fprintf(&b, "```%s\n%s\n```\n", block.Language, truncate(block.Content, maxCodeBlockChars))
	}
	return b.String()
}

func referenceSection() string {
	ref := truncate(componentTypeReference, maxReferenceChars)
	return "## Component types\n\n" + ref + "\n"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n[truncated]"
}
