// Package analyzer classifies scraped content with an AI model. The
// classifier never fails: every error path collapses into a degraded
// analysis with zero confidence and a low data-quality verdict, so
// downstream callers can treat it as always succeeding.
package analyzer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tmplhub/catalogd/internal/domain"
	"github.com/tmplhub/catalogd/internal/llm"
	"github.com/tmplhub/catalogd/internal/utils"
)

// analysisMaxTokens is the fixed output budget for the single model call.
const analysisMaxTokens = 1500

// Analyzer turns scraped content into a structured component suggestion.
type Analyzer struct {
	provider domain.LLMProvider
	model    string
	log      *utils.Logger
}

// New creates an analyzer. provider may be nil when no AI credential is
// configured; Analyze then returns a degraded result.
func New(provider domain.LLMProvider, model string, log *utils.Logger) *Analyzer {
	if log == nil {
		log = utils.NopLogger()
	}
	return &Analyzer{
		provider: provider,
		model:    model,
		log:      log.WithComponent("analyzer"),
	}
}

// analysisPayload mirrors the JSON object the model is asked to emit.
type analysisPayload struct {
	SuggestedComponentType string                   `json:"suggestedComponentType"`
	Confidence             float64                  `json:"confidence"`
	SuggestedCategory      string                   `json:"suggestedCategory"`
	SuggestedName          string                   `json:"suggestedName"`
	ExtractedMetadata      domain.ExtractedMetadata `json:"extractedMetadata"`
	RepositoryInsights     string                   `json:"repositoryInsights"`
	Validation             domain.Validation        `json:"validation"`
	Reasoning              string                   `json:"reasoning"`
}

// Analyze issues exactly one model call and never returns an error.
func (a *Analyzer) Analyze(ctx context.Context, content *domain.ScrapedContent) *domain.AIAnalysis {
	if a.provider == nil {
		return a.degraded("AI provider not configured", 0)
	}

	req := &domain.LLMRequest{
		Messages: []domain.LLMMessage{
			{Role: domain.RoleSystem, Content: analysisSystemPrompt},
			{Role: domain.RoleUser, Content: BuildPrompt(content)},
		},
		MaxTokens: analysisMaxTokens,
	}

	resp, err := a.provider.Complete(ctx, req)
	if err != nil {
		a.log.Warn().Err(err).Msg("analysis call failed, returning degraded result")
		return a.degraded("model call failed: "+err.Error(), 0)
	}

	jsonStr := llm.ExtractJSON(resp.Content)
	if jsonStr == "" {
		a.log.Warn().Msg("no JSON object in analysis response")
		return a.degraded("no JSON object in model response", resp.Usage.TotalTokens)
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		a.log.Warn().Err(err).Msg("analysis response JSON did not parse")
		return a.degraded("model response JSON did not parse: "+err.Error(), resp.Usage.TotalTokens)
	}

	analysis := &domain.AIAnalysis{
		SuggestedComponentType: payload.SuggestedComponentType,
		Confidence:             clampConfidence(payload.Confidence),
		SuggestedCategory:      payload.SuggestedCategory,
		SuggestedName:          payload.SuggestedName,
		ExtractedMetadata:      payload.ExtractedMetadata,
		RepositoryInsights:     payload.RepositoryInsights,
		Validation:             payload.Validation,
		Reasoning:              payload.Reasoning,
		Metadata: domain.AnalysisMetadata{
			AnalyzedAt: time.Now().UTC(),
			Model:      modelName(resp.Model, a.model),
			TokensUsed: resp.Usage.TotalTokens,
		},
	}

	if analysis.Validation.DataQuality == "" {
		analysis.Validation.DataQuality = "medium"
	}

	return analysis
}

// degraded builds the fallback analysis produced on any classifier failure.
func (a *Analyzer) degraded(reason string, tokensUsed int) *domain.AIAnalysis {
	return &domain.AIAnalysis{
		Confidence: 0,
		Validation: domain.Validation{
			DataQuality: "low",
			Warnings:    []string{reason},
		},
		Metadata: domain.AnalysisMetadata{
			AnalyzedAt: time.Now().UTC(),
			Model:      a.model,
			TokensUsed: tokensUsed,
		},
		Degraded: true,
		Error:    reason,
	}
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func modelName(responseModel, configured string) string {
	if responseModel != "" {
		return responseModel
	}
	return configured
}
