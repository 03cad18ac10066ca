package domain

import (
	"context"
	"net/http"
)

// Fetcher defines the interface for HTTP retrieval
type Fetcher interface {
	// Fetch retrieves a URL and classifies the body as raw text or HTML
	Fetch(ctx context.Context, url string) (*Response, error)
	// Close releases resources
	Close() error
}

// Response represents an HTTP response
type Response struct {
	StatusCode  int
	Body        []byte
	Headers     http.Header
	ContentType string
	URL         string // final URL after redirects
	IsHTML      bool
}

// LLMProvider defines the interface for LLM interactions
type LLMProvider interface {
	// Name returns the provider name (openai, anthropic)
	Name() string
	// Complete sends a request and returns the response
	Complete(ctx context.Context, req *LLMRequest) (*LLMResponse, error)
	// Close releases resources
	Close() error
}

// CommandRunner defines the interface for subprocess execution
type CommandRunner interface {
	// Run executes a command and returns its combined output
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
