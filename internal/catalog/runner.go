package catalog

import (
	"context"
	"os/exec"
)

// ExecRunner runs commands as real subprocesses.
type ExecRunner struct{}

// Run executes the command and returns its combined stdout/stderr.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}
