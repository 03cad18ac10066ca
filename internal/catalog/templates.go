package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatter is the YAML header written to markdown-backed artifacts.
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category,omitempty"`
}

// RenderTemplate produces a default artifact body for a type when the
// caller supplies no content.
func RenderTemplate(componentType, category, name, description string) string {
	switch componentType {
	case TypeAgents:
		return markdownTemplate(name, description, category,
			"You are a specialized assistant. Describe the responsibilities, "+
				"constraints, and tone for this agent here.")
	case TypeCommands:
		return markdownTemplate(name, description, category,
			"Describe the steps this command performs when invoked.")
	case TypeSkills:
		return markdownTemplate(name, description, "",
			"Explain when this skill applies and how to use it.")
	case TypeMCPs, TypeSettings, TypeHooks:
		return DefaultDocument(componentType, name, description)
	}
	return ""
}

// DefaultDocument returns the type-specific default JSON document, used
// both for omitted content and as the fallback when supplied JSON does not
// parse.
func DefaultDocument(componentType, name, description string) string {
	var doc any
	switch componentType {
	case TypeMCPs:
		doc = map[string]any{
			"mcpServers": map[string]any{
				name: map[string]any{
					"command":     "npx",
					"args":        []string{"-y", name},
					"description": description,
				},
			},
		}
	case TypeSettings:
		doc = map[string]any{
			"description": description,
			"settings":    map[string]any{},
		}
	case TypeHooks:
		doc = map[string]any{
			"description": description,
			"hooks":       map[string]any{},
		}
	default:
		return ""
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data) + "\n"
}

// NormalizeJSON re-serializes a JSON body with stable indentation. Returns
// ok=false when the input does not parse.
func NormalizeJSON(content string) (string, bool) {
	var doc any
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return "", false
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", false
	}
	return string(data) + "\n", true
}

func markdownTemplate(name, description, category, body string) string {
	fm := frontmatter{
		Name:        name,
		Description: description,
		Category:    category,
	}

	header, err := yaml.Marshal(&fm)
	if err != nil {
		header = []byte(fmt.Sprintf("name: %s\ndescription: %s\n", name, description))
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(header)
	sb.WriteString("---\n\n")
	sb.WriteString("# " + name + "\n\n")
	sb.WriteString(description + "\n\n")
	sb.WriteString(body + "\n")
	return sb.String()
}
