package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplateMarkdownTypes(t *testing.T) {
	t.Parallel()

	for _, componentType := range []string{TypeAgents, TypeCommands, TypeSkills} {
		rendered := RenderTemplate(componentType, "review", "pr-reviewer", "Reviews pull requests")
		assert.True(t, strings.HasPrefix(rendered, "---\n"), "type %s", componentType)
		assert.Contains(t, rendered, "name: pr-reviewer")
		assert.Contains(t, rendered, "description: Reviews pull requests")
	}
}

func TestRenderTemplateJSONTypes(t *testing.T) {
	t.Parallel()

	for _, componentType := range []string{TypeMCPs, TypeSettings, TypeHooks} {
		rendered := RenderTemplate(componentType, "misc", "thing", "A thing")

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(rendered), &doc), "type %s", componentType)
	}
}

func TestDefaultDocumentMCPShape(t *testing.T) {
	t.Parallel()

	rendered := DefaultDocument(TypeMCPs, "web-search", "Search server")

	var doc struct {
		MCPServers map[string]struct {
			Command string   `json:"command"`
			Args    []string `json:"args"`
		} `json:"mcpServers"`
	}
	require.NoError(t, json.Unmarshal([]byte(rendered), &doc))

	server, ok := doc.MCPServers["web-search"]
	require.True(t, ok)
	assert.Equal(t, "npx", server.Command)
	assert.Contains(t, server.Args, "web-search")
}

func TestNormalizeJSON(t *testing.T) {
	t.Parallel()

	normalized, ok := NormalizeJSON(`{"b":2,"a":1}`)
	require.True(t, ok)
	assert.Contains(t, normalized, "  \"a\": 1")
	assert.True(t, strings.HasSuffix(normalized, "\n"))

	_, ok = NormalizeJSON("not json")
	assert.False(t, ok)
}

func TestPathFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "agents/review/pr-reviewer.md", PathFor(TypeAgents, "review", "pr-reviewer"))
	assert.Equal(t, "mcps/search/web-search.json", PathFor(TypeMCPs, "search", "web-search"))
	assert.Equal(t, "skills/docs/changelog/SKILL.md", PathFor(TypeSkills, "docs", "changelog"))
}

func TestCheckType(t *testing.T) {
	t.Parallel()

	for _, componentType := range Types() {
		assert.NoError(t, CheckType(componentType))
	}
	assert.Error(t, CheckType("plugins"))
	assert.Error(t, CheckType("widgets"))
	assert.Error(t, CheckType(""))
}
