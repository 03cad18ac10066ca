package generator

import (
	"fmt"
	"strings"

	"github.com/tmplhub/catalogd/internal/catalog"
)

// Prompt section rendering for synthesis calls. The exemplar and source
// excerpts are bounded in exemplars.go.

const generateSystemPrompt = `You author components for a developer tooling catalog. ` +
	`Produce exactly one complete document, ready to save as a file. ` +
	`Output only the document itself, with no surrounding commentary.`

// typeInstructions gives per-type authoring guidance appended to the prompt.
var typeInstructions = map[string]string{
	catalog.TypeAgents: `Write a Markdown agent definition with YAML frontmatter
(name, description, optional model and tools) followed by the agent's system
prompt in second person.`,
	catalog.TypeCommands: `Write a Markdown slash command with YAML frontmatter
(name, description) followed by precise task instructions. Use $ARGUMENTS
where user input is substituted.`,
	catalog.TypeMCPs: `Write a JSON document with a top-level "mcpServers"
object. Each server entry needs a command, args, and any required env keys.
Output valid JSON only.`,
	catalog.TypeSettings: `Write a JSON settings document with flat,
well-named keys. Output valid JSON only.`,
	catalog.TypeHooks: `Write a JSON hooks document mapping lifecycle event
names to matcher and command entries. Output valid JSON only.`,
	catalog.TypeSkills: `Write a SKILL.md Markdown document with YAML
frontmatter (name, description) followed by sections explaining when the
skill applies and how to execute it.`,
}

const defaultBestPractices = `# Catalog authoring guidelines

- Keep documents focused on a single purpose.
- Descriptions state what the component does and when to use it.
- Markdown components carry YAML frontmatter with at least name and description.
- JSON components must be strictly valid JSON with no comments.
- Prefer concrete instructions over general advice.
- Name tools and commands exactly as they are invoked.`

// buildPrompt renders the user message for a synthesis call.
func buildPrompt(req Request, exemplars []exemplar, practices string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a new %q component.\n\n", req.ComponentType)
	fmt.Fprintf(&b, "Description of what it should do:\n%s\n\n", req.Description)
	if req.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", req.Name)
	}
	if req.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", req.Category)
	}
	if req.DocumentationURL != "" {
		fmt.Fprintf(&b, "Documentation URL: %s\n", req.DocumentationURL)
	}

	if sc := req.ScrapedContent; sc != nil {
		b.WriteString("\n## Scraped source material\n\n")
		if sc.Title != "" {
			fmt.Fprintf(&b, "Title: %s\n", sc.Title)
		}
		if sc.Description != "" {
			fmt.Fprintf(&b, "Description: %s\n", sc.Description)
		}
		b.WriteString("\n")
		b.WriteString(truncate(sc.Content, maxSourceChars))
		b.WriteString("\n")
	}

	b.WriteString("\n## Authoring guidelines\n\n")
	b.WriteString(practices)
	b.WriteString("\n")

	if instructions, ok := typeInstructions[req.ComponentType]; ok {
		b.WriteString("\n## Format\n\n")
		b.WriteString(instructions)
		b.WriteString("\n")
	}

	if len(exemplars) > 0 {
		b.WriteString("\n## Existing examples\n")
		for _, ex := range exemplars {
			fmt.Fprintf(&b, "\n### %s\n\n%s\n", ex.Path, ex.Content)
		}
	}

	b.WriteString("\nRespond with the complete document and nothing else.\n")
	return b.String()
}
