package domain

import "time"

// ScrapedContent is the normalized representation of a fetched page.
// It is built once by the extractor and may be adjusted in place by the
// source normalizer before later stages read it.
type ScrapedContent struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Content     string      `json:"content"`
	CodeBlocks  []CodeBlock `json:"codeBlocks"`
	Metadata    Metadata    `json:"metadata"`
}

// CodeBlock is a code element captured during extraction. Content is never
// empty after trimming; empty blocks are dropped at extraction time.
type CodeBlock struct {
	Language string `json:"language"`
	Content  string `json:"content"`
}

// Metadata is an open mapping attached to scraped content. It always
// carries url, domain, contentType and scrapedAt.
type Metadata map[string]any

// Repository identifies a GitHub repository.
type Repository struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// RepoEntry is a single file or directory discovered on a repository root page.
type RepoEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"` // "file" or "directory"
	URL  string `json:"url"`
}

// Link is an anchor captured from the page body.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// AIAnalysis is the classifier's structured suggestion for a scraped page.
// A degraded instance (Degraded=true, Confidence=0, DataQuality "low") is
// produced on any classifier failure; the pipeline never aborts on one.
type AIAnalysis struct {
	SuggestedComponentType string            `json:"suggestedComponentType"`
	Confidence             float64           `json:"confidence"`
	SuggestedCategory      string            `json:"suggestedCategory"`
	SuggestedName          string            `json:"suggestedName"`
	ExtractedMetadata      ExtractedMetadata `json:"extractedMetadata"`
	RepositoryInsights     string            `json:"repositoryInsights,omitempty"`
	Validation             Validation        `json:"validation"`
	Reasoning              string            `json:"reasoning,omitempty"`
	Metadata               AnalysisMetadata  `json:"metadata"`
	Degraded               bool              `json:"degraded,omitempty"`
	Error                  string            `json:"error,omitempty"`
}

// ExtractedMetadata carries the classifier's content-level findings.
type ExtractedMetadata struct {
	Description string   `json:"description"`
	Purpose     string   `json:"purpose"`
	Features    []string `json:"features"`
	Tools       []string `json:"tools"`
	Model       string   `json:"model,omitempty"`
}

// Validation is the classifier's data-quality verdict.
type Validation struct {
	DataQuality     string   `json:"dataQuality"` // high, medium, low
	MissingFields   []string `json:"missingFields"`
	Recommendations []string `json:"recommendations"`
	Warnings        []string `json:"warnings"`
}

// AnalysisMetadata records provenance of a single analysis run.
type AnalysisMetadata struct {
	AnalyzedAt time.Time `json:"analyzedAt"`
	Model      string    `json:"model"`
	TokensUsed int       `json:"tokensUsed"`
}

// ComponentArtifact is a persisted catalog entry. It is created once by the
// writer and never mutated; its path is deterministic given
// (type, category, name).
type ComponentArtifact struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Content  string `json:"-"`
	Path     string `json:"path"`
}

// =============================================================================
// LLM Types
// =============================================================================

// MessageRole represents the role in a conversation
type MessageRole string

const (
	// RoleSystem represents a system message
	RoleSystem MessageRole = "system"
	// RoleUser represents a user message
	RoleUser MessageRole = "user"
	// RoleAssistant represents an assistant message
	RoleAssistant MessageRole = "assistant"
)

// LLMMessage represents a message in the conversation
type LLMMessage struct {
	Role    MessageRole
	Content string
}

// LLMRequest represents a completion request
type LLMRequest struct {
	Messages    []LLMMessage
	MaxTokens   int      // 0 = use provider default
	Temperature *float64 // nil = use provider default
}

// LLMResponse represents the LLM response
type LLMResponse struct {
	Content      string
	Model        string
	FinishReason string
	Usage        LLMUsage
}

// LLMUsage contains token usage statistics
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
