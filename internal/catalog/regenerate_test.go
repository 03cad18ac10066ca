package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmplhub/catalogd/internal/domain"
)

type stubRunner struct {
	output []byte
	err    error
	called bool
	name   string
}

func (s *stubRunner) Run(_ context.Context, name string, _ ...string) ([]byte, error) {
	s.called = true
	s.name = name
	return s.output, s.err
}

func writeScript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "generate-catalog.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho done\n"), 0o755))
	return path
}

func TestRegeneratorScriptNotFound(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{}
	r := NewRegenerator(filepath.Join(t.TempDir(), "missing.sh"), time.Minute, runner, nil)

	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrScriptNotFound))
	assert.False(t, runner.called)
}

func TestRegeneratorSuccess(t *testing.T) {
	t.Parallel()

	script := writeScript(t)
	runner := &stubRunner{output: []byte("generated 12 components\n")}
	r := NewRegenerator(script, time.Minute, runner, nil)

	output, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "generated 12 components", output)
	assert.Equal(t, script, runner.name)
}

func TestRegeneratorTailsLongOutput(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 1; i <= 50; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	runner := &stubRunner{output: []byte(b.String())}
	r := NewRegenerator(writeScript(t), time.Minute, runner, nil)

	output, err := r.Run(context.Background())
	require.NoError(t, err)

	lines := strings.Split(output, "\n")
	assert.Len(t, lines, outputTailLines)
	assert.Equal(t, "line 31", lines[0])
	assert.Equal(t, "line 50", lines[len(lines)-1])
}

func TestRegeneratorFailureCarriesOutput(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{
		output: []byte("error: catalog.json is locked\n"),
		err:    errors.New("exit status 1"),
	}
	r := NewRegenerator(writeScript(t), time.Minute, runner, nil)

	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.json is locked")
}
