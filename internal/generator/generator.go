// Package generator synthesizes catalog component documents with an AI
// model, steered by exemplars drawn from the existing catalog.
package generator

import (
	"context"
	"fmt"

	"github.com/tmplhub/catalogd/internal/catalog"
	"github.com/tmplhub/catalogd/internal/config"
	"github.com/tmplhub/catalogd/internal/domain"
	"github.com/tmplhub/catalogd/internal/llm"
	"github.com/tmplhub/catalogd/internal/utils"
)

// generateMaxTokens is the output budget for a synthesis call.
const generateMaxTokens = 4000

// Request describes the component to synthesize. ScrapedContent and
// DocumentationURL are optional seeds, typically the output of a prior
// scrape.
type Request struct {
	ComponentType    string                 `json:"componentType"`
	Name             string                 `json:"name,omitempty"`
	Category         string                 `json:"category,omitempty"`
	Description      string                 `json:"description"`
	ScrapedContent   *domain.ScrapedContent `json:"scrapedContent,omitempty"`
	DocumentationURL string                 `json:"documentationUrl,omitempty"`
}

// Result carries the synthesized document and call accounting.
type Result struct {
	Content  string         `json:"content"`
	Metadata ResultMetadata `json:"metadata"`
}

// ResultMetadata records provenance of a synthesis run.
type ResultMetadata struct {
	Model      string `json:"model"`
	TokensUsed int    `json:"tokensUsed"`
}

// Generator synthesizes component documents.
type Generator struct {
	provider   domain.LLMProvider
	catalogDir string
	model      string
	log        *utils.Logger
}

// New creates a generator. provider may be nil; Generate then fails with a
// configuration error.
func New(provider domain.LLMProvider, catalogDir, model string, log *utils.Logger) *Generator {
	if log == nil {
		log = utils.NopLogger()
	}
	return &Generator{
		provider:   provider,
		catalogDir: catalogDir,
		model:      model,
		log:        log.WithComponent("generator"),
	}
}

// Generate validates the request, builds a prompt from catalog exemplars
// and authoring guidance, and returns the synthesized document.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	var missing []string
	if req.ComponentType == "" {
		missing = append(missing, "componentType")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, domain.NewMissingFieldsError(missing...)
	}

	if err := catalog.CheckType(req.ComponentType); err != nil {
		return nil, err
	}

	if g.provider == nil {
		return nil, fmt.Errorf("%w: set %s to enable generation",
			domain.ErrLLMNotConfigured, config.CredentialEnvVar)
	}

	exemplars := g.loadExemplars(req.ComponentType)
	practices := g.loadBestPractices()

	llmReq := &domain.LLMRequest{
		Messages: []domain.LLMMessage{
			{Role: domain.RoleSystem, Content: generateSystemPrompt},
			{Role: domain.RoleUser, Content: buildPrompt(req, exemplars, practices)},
		},
		MaxTokens: generateMaxTokens,
	}

	resp, err := g.provider.Complete(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("component generation failed: %w", err)
	}

	content := llm.StripCodeFence(resp.Content)

	g.log.Info().
		Str("type", req.ComponentType).
		Int("tokensUsed", resp.Usage.TotalTokens).
		Int("contentLength", len(content)).
		Msg("component generated")

	return &Result{
		Content: content,
		Metadata: ResultMetadata{
			Model:      resolveModel(resp.Model, g.model),
			TokensUsed: resp.Usage.TotalTokens,
		},
	}, nil
}

func resolveModel(responseModel, configured string) string {
	if responseModel != "" {
		return responseModel
	}
	return configured
}
