package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmplhub/catalogd/internal/config"
	"github.com/tmplhub/catalogd/internal/domain"
)

func TestNewProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      ProviderConfig
		wantErr  error
		wantName string
	}{
		{
			name:     "anthropic",
			cfg:      ProviderConfig{Provider: "anthropic", APIKey: "k", Model: "m"},
			wantName: "anthropic",
		},
		{
			name:     "openai",
			cfg:      ProviderConfig{Provider: "openai", APIKey: "k", Model: "m"},
			wantName: "openai",
		},
		{
			name:    "missing api key",
			cfg:     ProviderConfig{Provider: "anthropic"},
			wantErr: domain.ErrLLMMissingAPIKey,
		},
		{
			name:    "unknown provider",
			cfg:     ProviderConfig{Provider: "mystery", APIKey: "k"},
			wantErr: domain.ErrLLMInvalidProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			provider, err := NewProvider(tt.cfg)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, provider.Name())
		})
	}
}

func TestNewProviderFromConfigWithoutCredential(t *testing.T) {
	t.Parallel()

	_, err := NewProviderFromConfig(&config.LLMConfig{Provider: "anthropic"})
	assert.True(t, errors.Is(err, domain.ErrLLMNotConfigured))
}

func TestAnthropicComplete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "you are a classifier", req.System)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]any{
			"model":       "claude-test",
			"stop_reason": "end_turn",
			"content": []map[string]any{
				{"type": "text", "text": "first "},
				{"type": "text", "text": "second"},
			},
			"usage": map[string]int{"input_tokens": 10, "output_tokens": 5},
		})
	}))
	defer server.Close()

	provider, err := NewProvider(ProviderConfig{
		Provider: "anthropic",
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Model:    "claude-test",
	})
	require.NoError(t, err)

	resp, err := provider.Complete(context.Background(), &domain.LLMRequest{
		Messages: []domain.LLMMessage{
			{Role: domain.RoleSystem, Content: "you are a classifier"},
			{Role: domain.RoleUser, Content: "classify this"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "first second", resp.Content)
	assert.Equal(t, "claude-test", resp.Model)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
}

func TestAnthropicErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			wantErr: domain.ErrLLMAuthFailed,
		},
		{
			name:    "forbidden",
			status:  http.StatusForbidden,
			wantErr: domain.ErrLLMAuthFailed,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			wantErr: domain.ErrLLMRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]string{"type": "error", "message": "nope"},
				})
			}))
			defer server.Close()

			provider, err := NewProvider(ProviderConfig{
				Provider: "anthropic",
				APIKey:   "bad-key",
				BaseURL:  server.URL,
				Model:    "m",
			})
			require.NoError(t, err)

			_, err = provider.Complete(context.Background(), &domain.LLMRequest{
				Messages: []domain.LLMMessage{{Role: domain.RoleUser, Content: "x"}},
			})
			assert.True(t, errors.Is(err, tt.wantErr))

			var llmErr *domain.LLMError
			require.ErrorAs(t, err, &llmErr)
			assert.Equal(t, tt.status, llmErr.StatusCode)
		})
	}
}
