package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "https url",
			input:   "https://example.com/path",
			wantErr: false,
		},
		{
			name:    "http url",
			input:   "http://example.com",
			wantErr: false,
		},
		{
			name:    "whitespace is trimmed",
			input:   "  https://example.com  ",
			wantErr: false,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "relative path",
			input:   "/docs/readme",
			wantErr: true,
		},
		{
			name:    "missing scheme",
			input:   "example.com/docs",
			wantErr: true,
		},
		{
			name:    "ftp scheme",
			input:   "ftp://example.com/file",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u, err := ValidateURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, u.Host)
		})
	}
}

func TestGetDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", GetDomain("https://example.com/docs"))
	assert.Equal(t, "example.com:8080", GetDomain("http://example.com:8080/"))
	assert.Equal(t, "", GetDomain("://bad"))
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	resolved, err := ResolveURL("https://example.com/docs/", "../api")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api", resolved)

	resolved, err = ResolveURL("https://example.com/docs", "https://other.com/x")
	require.NoError(t, err)
	assert.Equal(t, "https://other.com/x", resolved)
}

func TestPathSegments(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://github.com/octo/repo/blob/main/README.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"octo", "repo", "blob", "main", "README.md"}, PathSegments(u))

	root, err := url.Parse("https://github.com/")
	require.NoError(t, err)
	assert.Nil(t, PathSegments(root))
}
