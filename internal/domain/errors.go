package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrInvalidURL indicates an invalid URL was provided
	ErrInvalidURL = errors.New("invalid URL")

	// ErrTimeout indicates a timeout occurred
	ErrTimeout = errors.New("timeout")

	// ErrTooManyRedirects indicates the redirect limit was exceeded
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrContentTooLarge indicates the response body exceeded the size cap
	ErrContentTooLarge = errors.New("content too large")

	// ErrInvalidComponentType indicates an unrecognized component type
	ErrInvalidComponentType = errors.New("invalid component type")

	// ErrPluginsNotSupported indicates an attempt to create a plugin as a
	// standalone file; plugins are composite entries curated elsewhere
	ErrPluginsNotSupported = errors.New("plugins are not file-backed components")

	// ErrAlreadyExists indicates the destination path is already present
	ErrAlreadyExists = errors.New("component already exists")

	// ErrScriptNotFound indicates the catalog generation script is absent
	ErrScriptNotFound = errors.New("generation script not found")
)

// FetchError represents an error during fetching
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// MissingFieldsError reports required request fields that were absent.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// NewMissingFieldsError creates a new MissingFieldsError
func NewMissingFieldsError(fields ...string) *MissingFieldsError {
	return &MissingFieldsError{Fields: fields}
}

// ConflictError reports a destination path that is already occupied.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("component already exists at %s", e.Path)
}

func (e *ConflictError) Unwrap() error {
	return ErrAlreadyExists
}

// ScriptNotFoundError reports an absent generation script.
type ScriptNotFoundError struct {
	Path string
}

func (e *ScriptNotFoundError) Error() string {
	return fmt.Sprintf("generation script not found at %s", e.Path)
}

func (e *ScriptNotFoundError) Unwrap() error {
	return ErrScriptNotFound
}

// =============================================================================
// LLM Errors
// =============================================================================

// LLM sentinel errors
var (
	// ErrLLMNotConfigured indicates no AI credential is configured
	ErrLLMNotConfigured = errors.New("LLM provider not configured")

	// ErrLLMMissingAPIKey indicates API key is required but not provided
	ErrLLMMissingAPIKey = errors.New("LLM API key is required")

	// ErrLLMInvalidProvider indicates an invalid provider type
	ErrLLMInvalidProvider = errors.New("invalid LLM provider")

	// ErrLLMAuthFailed indicates the provider rejected the credential
	ErrLLMAuthFailed = errors.New("LLM authentication failed")

	// ErrLLMRateLimited indicates rate limit was exceeded
	ErrLLMRateLimited = errors.New("LLM rate limit exceeded")
)

// LLMError represents an LLM-specific error
type LLMError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *LLMError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (HTTP %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Provider, e.Message)
}

func (e *LLMError) Unwrap() error {
	return e.Err
}

// NewLLMError creates a new LLMError
func NewLLMError(provider string, statusCode int, message string, err error) *LLMError {
	return &LLMError{
		Provider:   provider,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}
