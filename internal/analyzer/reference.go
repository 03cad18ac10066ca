package analyzer

// componentTypeReference is the embedded description of each catalog
// component type, included in every classification prompt.
const componentTypeReference = `### agents
Markdown documents defining an AI assistant persona: a system prompt, the
tools it may use, and the model it targets. Typical signals: "you are",
persona descriptions, tool lists, instructions addressed to an assistant.

### commands
Markdown documents defining a reusable slash command or workflow prompt.
Typical signals: imperative task descriptions, argument placeholders,
step-by-step instructions for a single repeatable task.

### mcps
JSON documents configuring a Model Context Protocol server. Typical
signals: an "mcpServers" object, npx/uvx invocations, server transport
settings, environment variable mappings.

### settings
JSON documents carrying editor or assistant configuration: permissions,
environment defaults, feature toggles. Typical signals: flat key/value
configuration with no prose.

### hooks
JSON documents wiring shell commands to lifecycle events such as
pre-tool-use or post-edit. Typical signals: event names mapped to command
arrays or matcher objects.

### skills
Markdown skill definitions stored as SKILL.md inside a named directory,
with frontmatter describing when the skill applies. Typical signals:
"when to use" sections, capability descriptions, supporting file lists.`
